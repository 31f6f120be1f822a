package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sprout-lang/sprout/internal/lexer"
	"github.com/sprout-lang/sprout/internal/parser"
	"github.com/sprout-lang/sprout/internal/token"
)

var parseExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a sprout program and print each top-level CST as an s-expression",
	Long: `Parse a sprout program end to end (repeated top-level parses until
end of input) and print each resulting CST node in s-expression form.

Examples:
  sprout parse program.spr
  sprout parse -e "(define id (x : a -> a) x)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline source instead of reading a file")
}

func runParse(cmd *cobra.Command, args []string) error {
	src, _, err := readSource(parseExpr, args)
	if err != nil {
		return err
	}
	trace, _ := cmd.Flags().GetBool("trace")

	var lexOpts []lexer.Option
	var parserOpts []parser.Option
	if trace {
		sink := func(s string) { fmt.Fprintln(os.Stderr, "trace:", s) }
		lexOpts = append(lexOpts, lexer.WithTrace(sink))
		parserOpts = append(parserOpts, parser.WithTrace(sink))
	}

	lex := lexer.New(src, lexOpts...)
	p := parser.New(lex, parserOpts...)

	count := 0
	for lex.Peek(0).Kind != token.END {
		n, err := p.Parse()
		if err != nil {
			return err
		}
		fmt.Println(n.String())
		count++
	}
	if err := lex.Err(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "parsed %d top-level expression(s)\n", count)
	return nil
}
