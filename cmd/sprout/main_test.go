package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/sprout-lang/sprout/cmd/sprout/cmd"
)

// TestMain lets the test binary re-exec itself as the sprout command, so
// the .txtar scripts under testdata/script can shell out to a real "sprout"
// without a separate go-build step.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"sprout": runSprout,
	}))
}

func runSprout() int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
