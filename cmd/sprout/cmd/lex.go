package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/sprout-lang/sprout/internal/lexer"
	"github.com/sprout-lang/sprout/internal/token"
)

var lexExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a sprout program and print the resulting tokens",
	Long: `Tokenize a sprout program and print the resulting token stream.

Examples:
  sprout lex program.spr
  sprout lex -e "(lambda (x : int -> int) x)"
  sprout lex --trace program.spr`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "tokenize inline source instead of reading a file")
}

func runLex(cmd *cobra.Command, args []string) error {
	src, _, err := readSource(lexExpr, args)
	if err != nil {
		return err
	}
	trace, _ := cmd.Flags().GetBool("trace")

	var opts []lexer.Option
	if trace {
		opts = append(opts, lexer.WithTrace(func(s string) {
			fmt.Fprintln(os.Stderr, "trace:", s)
		}))
	}
	lex := lexer.New(src, opts...)

	seen := map[string]bool{}
	for {
		tok := lex.Peek(0)
		fmt.Println(tok.String())
		seen[tok.Kind.String()] = true
		if tok.Kind == token.END {
			break
		}
		lex.Next()
	}

	if err := lex.Err(); err != nil {
		return err
	}

	kinds := make([]string, 0, len(seen))
	for k := range seen {
		kinds = append(kinds, k)
	}
	sort.Sort(natural.StringSlice(kinds))
	fmt.Println("---")
	fmt.Println("kinds seen:", kinds)

	return nil
}

// readSource resolves the input program either from an inline expression,
// a file argument, or stdin, returning the source and a display name.
func readSource(inline string, args []string) (string, string, error) {
	switch {
	case inline != "":
		return inline, "<eval>", nil
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
}
