// Command sprout lexes and parses sprout programs and inspects the
// resulting token stream / CST from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/sprout-lang/sprout/cmd/sprout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
