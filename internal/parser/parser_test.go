package parser

import (
	"strings"
	"testing"

	"github.com/sprout-lang/sprout/internal/cst"
	"github.com/sprout-lang/sprout/internal/lexer"
	"github.com/sprout-lang/sprout/internal/token"
)

func parseOne(t *testing.T, src string) cst.Node {
	t.Helper()
	lex := lexer.New(src)
	p := New(lex)
	n, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", src, err)
	}
	return n
}

func parseErr(t *testing.T, src string) error {
	t.Helper()
	lex := lexer.New(src)
	p := New(lex)
	_, err := p.Parse()
	return err
}

func headKind(t *testing.T, n cst.Node) token.Kind {
	t.Helper()
	l, ok := cst.AsList(n)
	if !ok {
		t.Fatalf("expected list node, got %v", n)
	}
	tok, ok := cst.AsToken(cst.Head(l))
	if !ok {
		t.Fatalf("expected token head, got %v", cst.Head(l))
	}
	return tok.Kind
}

func TestParseSelfDeliveringAtom(t *testing.T) {
	n := parseOne(t, `42`)
	tok, ok := cst.AsToken(n)
	if !ok || tok.Kind != token.NUMBER {
		t.Fatalf("expected NUMBER token, got %v", n)
	}
}

func TestParseIdentUnwrapsToSymbol(t *testing.T) {
	n := parseOne(t, `foo`)
	tok, ok := cst.AsToken(n)
	if !ok || tok.Kind != token.SYMBOL || tok.Value.SymbolVal().Name != "foo" {
		t.Fatalf("expected SYMBOL(foo), got %v", n)
	}
}

func TestParseElseUnwrapsToTrue(t *testing.T) {
	n := parseOne(t, `else`)
	tok, ok := cst.AsToken(n)
	if !ok || tok.Kind != token.BOOL || !tok.Value.Bool_() {
		t.Fatalf("expected BOOL(true), got %v", n)
	}
}

func TestParseLambda(t *testing.T) {
	n := parseOne(t, `(lambda (x : int -> int) x)`)
	if headKind(t, n) != token.LAMBDA {
		t.Fatalf("expected LAMBDA head, got %v", n)
	}
}

func TestParseDefineWithType(t *testing.T) {
	n := parseOne(t, `(define x : int 5)`)
	if headKind(t, n) != token.DEFINE {
		t.Fatalf("expected DEFINE head, got %v", n)
	}
}

func TestParseDefineWithLambdaShorthand(t *testing.T) {
	n := parseOne(t, `(define id (lambda (x : int -> int) x))`)
	if headKind(t, n) != token.DEFINE {
		t.Fatalf("expected DEFINE head, got %v", n)
	}
}

func TestParseDefineWithParamList(t *testing.T) {
	n := parseOne(t, `(define add (x : int y : int -> int) (+ x y))`)
	if headKind(t, n) != token.DEFINE {
		t.Fatalf("expected DEFINE head, got %v", n)
	}
}

func TestParseCond(t *testing.T) {
	n := parseOne(t, `(cond ((eq? x 1) 2) (else 3))`)
	if headKind(t, n) != token.COND {
		t.Fatalf("expected COND head, got %v", n)
	}
}

func TestParseCondRejectsWrongClauseArity(t *testing.T) {
	if err := parseErr(t, `(cond (x 1 2))`); err == nil {
		t.Fatalf("expected error for a three-element cond clause")
	}
}

func TestParseNamedLet(t *testing.T) {
	n := parseOne(t, `(let loop ((x : int 0)) x)`)
	if headKind(t, n) != token.LET {
		t.Fatalf("expected LET head, got %v", n)
	}
}

func TestParseLetWithoutName(t *testing.T) {
	n := parseOne(t, `(let ((x : int 0)) x)`)
	if headKind(t, n) != token.LET {
		t.Fatalf("expected LET head, got %v", n)
	}
}

func TestParseLetStar(t *testing.T) {
	n := parseOne(t, `(lets ((x : int 0) (y : int x)) y)`)
	if headKind(t, n) != token.LETS {
		t.Fatalf("expected LETS head, got %v", n)
	}
}

func TestParseTypeLambdaAndApplication(t *testing.T) {
	n := parseOne(t, `(tlambda (A) (lambda (x : A -> A) x))`)
	if headKind(t, n) != token.TLAMBDA {
		t.Fatalf("expected TLAMBDA head, got %v", n)
	}

	n2 := parseOne(t, `(tapply id int)`)
	if headKind(t, n2) != token.TAPPLY {
		t.Fatalf("expected TAPPLY head, got %v", n2)
	}
}

func TestParseMatch(t *testing.T) {
	n := parseOne(t, `(match x (y y) (else 0))`)
	if headKind(t, n) != token.MATCH {
		t.Fatalf("expected MATCH head, got %v", n)
	}
}

func TestParseData(t *testing.T) {
	n := parseOne(t, `(data Option (A) (None) (Some (A)))`)
	if headKind(t, n) != token.DATA {
		t.Fatalf("expected DATA head, got %v", n)
	}
}

func TestParseQuotePrefixForms(t *testing.T) {
	n := parseOne(t, `'x`)
	if headKind(t, n) != token.QUOTE {
		t.Fatalf("expected QUOTE head, got %v", n)
	}
}

func TestParseQuoteWordFormClosesItsParen(t *testing.T) {
	n := parseOne(t, `(quote x)`)
	if headKind(t, n) != token.QUOTE {
		t.Fatalf("expected QUOTE head, got %v", n)
	}
}

func TestParseUnquoteOutsideQuasiquoteFails(t *testing.T) {
	if err := parseErr(t, `,x`); err == nil {
		t.Fatalf("expected error for unquote outside quasiquote")
	}
}

func TestParseQuasiquoteWithUnquote(t *testing.T) {
	n := parseOne(t, "`(a ,b)")
	if headKind(t, n) != token.QQUOTE {
		t.Fatalf("expected QQUOTE head, got %v", n)
	}
}

func TestParseGenericFunctionCallForm(t *testing.T) {
	// eq?/equal? promote but fall through to the generic parseList path.
	n := parseOne(t, `(eq? 1 1)`)
	l, ok := cst.AsList(n)
	if !ok {
		t.Fatalf("expected list, got %v", n)
	}
	tok, ok := cst.AsToken(cst.Head(l))
	if !ok || tok.Kind != token.EQ {
		t.Fatalf("expected EQ head token, got %v", cst.Head(l))
	}
}

func TestUnterminatedListFails(t *testing.T) {
	err := parseErr(t, `(foo bar`)
	if err == nil || !strings.Contains(err.Error(), "unterminated") {
		t.Fatalf("expected unterminated-list error, got %v", err)
	}
}

func TestParseProgramMultipleTopLevelForms(t *testing.T) {
	prog, err := ParseProgram(`1 2 3`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog) != 3 {
		t.Fatalf("expected 3 top-level forms, got %d", len(prog))
	}
}

func TestPromoteIdentRejectsNonSymbolHead(t *testing.T) {
	// A malformed identifier token at a list head (no symbol value) is a
	// structural error, not a silent fall-through to parseList.
	lex := lexer.New(`(x)`)
	p := New(lex)
	// Force the head token's value away from a symbol to exercise the
	// defensive check in promoteIdent.
	lex.Next() // consume LPAREN
	lex.SwapCurrent(token.New(token.IDENT, lex.Peek(0).Pos))
	if err := p.promoteIdent(); err == nil {
		t.Fatalf("expected error for a non-symbol IDENT at list head")
	}
}
