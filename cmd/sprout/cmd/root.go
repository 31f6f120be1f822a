package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information (set by build flags).
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "sprout",
	Short: "Front end for the sprout language: lexer, parser, CST tools",
	Long: `sprout is a command-line front end for the sprout language: a
statically-typed Lisp dialect with lambdas, algebraic data types,
pattern matching, and a quote/quasiquote reader.

This tool only exercises the lexer, parser, and structural validators —
it does not type-check or evaluate programs.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().Bool("trace", false, "print a line per emitted token/production")
}
