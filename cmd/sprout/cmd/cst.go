package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/sprout-lang/sprout/internal/cstjson"
	"github.com/sprout-lang/sprout/internal/lexer"
	"github.com/sprout-lang/sprout/internal/parser"
	"github.com/sprout-lang/sprout/internal/token"
)

var (
	cstExpr  string
	cstQuery string
	cstSet   string
)

var cstCmd = &cobra.Command{
	Use:   "cst [file]",
	Short: "Dump a sprout program's CST as JSON",
	Long: `Parse a sprout program and dump its CST as a JSON array (one
element per top-level expression).

--query PATH extracts a sub-value with a gjson path instead of printing
the whole dump. --set PATH=VALUE rewrites one field of the dump with
sjson before printing it back out — a debugging aid for poking at a
single field of a CST dump without round-tripping through Go structs.

Examples:
  sprout cst program.spr
  sprout cst program.spr --query "0.0.kind"
  sprout cst program.spr --set "0.0.kind=RENAMED"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCst,
}

func init() {
	rootCmd.AddCommand(cstCmd)
	cstCmd.Flags().StringVarP(&cstExpr, "eval", "e", "", "dump inline source instead of reading a file")
	cstCmd.Flags().StringVar(&cstQuery, "query", "", "extract one field of the dump with a gjson path")
	cstCmd.Flags().StringVar(&cstSet, "set", "", "rewrite one field of the dump (PATH=VALUE) before printing")
}

func runCst(cmd *cobra.Command, args []string) error {
	src, _, err := readSource(cstExpr, args)
	if err != nil {
		return err
	}

	lex := lexer.New(src)
	p := parser.New(lex)

	var dumps []cstjson.Node
	for lex.Peek(0).Kind != token.END {
		n, err := p.Parse()
		if err != nil {
			return err
		}
		dumps = append(dumps, cstjson.Dump(n))
	}
	if err := lex.Err(); err != nil {
		return err
	}

	out, err := json.Marshal(dumps)
	if err != nil {
		return fmt.Errorf("marshalling CST dump: %w", err)
	}
	doc := string(out)

	if cstSet != "" {
		path, value, ok := strings.Cut(cstSet, "=")
		if !ok {
			return fmt.Errorf("--set expects PATH=VALUE, got %q", cstSet)
		}
		doc, err = sjson.Set(doc, path, value)
		if err != nil {
			return fmt.Errorf("applying --set %s: %w", cstSet, err)
		}
	}

	if cstQuery != "" {
		result := gjson.Get(doc, cstQuery)
		fmt.Println(result.String())
		return nil
	}

	fmt.Println(doc)
	return nil
}
