package lexer

import (
	"testing"

	"github.com/sprout-lang/sprout/internal/token"
)

func TestNextTokenBasics(t *testing.T) {
	input := `(lambda (x : int -> int) x)`

	tests := []struct {
		kind    token.Kind
		literal string
	}{
		{token.LPAREN, ""},
		{token.IDENT, "lambda"},
		{token.LPAREN, ""},
		{token.IDENT, "x"},
		{token.COLON, ""},
		{token.TYPE_IDENT, "int"},
		{token.ARROW, ""},
		{token.TYPE_IDENT, "int"},
		{token.RPAREN, ""},
		{token.IDENT, "x"},
		{token.RPAREN, ""},
		{token.END, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.Peek(0)
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d]: kind wrong. expected=%s, got=%s (%s)", i, tt.kind, tok.Kind, tok)
		}
		if tt.literal != "" && tok.Value.String() != tt.literal {
			t.Fatalf("tests[%d]: literal wrong. expected=%q, got=%q", i, tt.literal, tok.Value.String())
		}
		l.Next()
	}
}

func TestNumberDashDisambiguation(t *testing.T) {
	// (-1 2) lexes as LPAREN NUMBER(-1) NUMBER(2) RPAREN.
	l := New(`(-1 2)`)
	kinds := []token.Kind{token.LPAREN, token.NUMBER, token.NUMBER, token.RPAREN, token.END}
	for i, want := range kinds {
		got := l.Peek(0)
		if got.Kind != want {
			t.Fatalf("tests[%d]: expected %s, got %s", i, want, got.Kind)
		}
		l.Next()
	}

	// (- 1 2) lexes as LPAREN IDENT(-) NUMBER(1) NUMBER(2) RPAREN.
	l2 := New(`(- 1 2)`)
	kinds2 := []token.Kind{token.LPAREN, token.IDENT, token.NUMBER, token.NUMBER, token.RPAREN, token.END}
	for i, want := range kinds2 {
		got := l2.Peek(0)
		if got.Kind != want {
			t.Fatalf("tests[%d]: expected %s, got %s", i, want, got.Kind)
		}
		l2.Next()
	}
}

func TestArrowStopsIdentScan(t *testing.T) {
	// An identifier scan must stop before a literal "->" even mid-word.
	l := New(`x->y`)
	wantKinds := []token.Kind{token.IDENT, token.ARROW, token.IDENT, token.END}
	for i, want := range wantKinds {
		got := l.Peek(0)
		if got.Kind != want {
			t.Fatalf("tests[%d]: expected %s, got %s", i, want, got.Kind)
		}
		l.Next()
	}
}

func TestQuoteFamilyPunctuationAndWords(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
	}{
		{`'x`, token.QUOTE},
		{"`x", token.QQUOTE},
		{`,x`, token.UNQUOTE},
		{`,@x`, token.UNQUOTESPLICE},
		{`(quote x)`, token.LPAREN},
	}
	for _, tt := range tests {
		l := New(tt.src)
		got := l.Peek(0)
		if got.Kind != tt.kind {
			t.Fatalf("%q: expected first token %s, got %s", tt.src, tt.kind, got.Kind)
		}
	}

	l := New(`quote qquote unquote unquote-splice`)
	wantKinds := []token.Kind{token.QUOTE, token.QQUOTE, token.UNQUOTE, token.UNQUOTESPLICE, token.END}
	for i, want := range wantKinds {
		got := l.Peek(0)
		if got.Kind != want {
			t.Fatalf("word-form tests[%d]: expected %s, got %s", i, want, got.Kind)
		}
		l.Next()
	}
}

func TestElseStaysIdentInLexer(t *testing.T) {
	// The lexer never special-cases "else"; that substitution belongs to
	// the parser.
	l := New(`else`)
	tok := l.Peek(0)
	if tok.Kind != token.IDENT {
		t.Fatalf("expected IDENT, got %s", tok.Kind)
	}
	if !tok.Value.IsSymbol() || tok.Value.SymbolVal().Name != "else" {
		t.Fatalf("expected symbol name 'else', got %q", tok.Value.SymbolVal().Name)
	}
}

func TestBackupAtMostOnce(t *testing.T) {
	l := New(`1 2 3`)
	first := l.Next() // consumes 1, current becomes 2
	l.Next()          // consumes 2, current becomes 3
	if !l.Backup() {
		t.Fatalf("expected first Backup to succeed")
	}
	if l.Peek(0).Kind != token.NUMBER || l.Peek(0).Value.Int() != 2 {
		t.Fatalf("expected current restored to 2, got %s", l.Peek(0))
	}
	if l.Backup() {
		t.Fatalf("expected second consecutive Backup to fail")
	}
	_ = first
}

func TestSwapCurrentDisablesBackup(t *testing.T) {
	l := New(`foo bar`)
	l.Next() // consumes foo, current becomes bar
	l.SwapCurrent(token.New(token.LAMBDA, l.Peek(0).Pos))
	if l.Backup() {
		t.Fatalf("expected Backup to fail immediately after SwapCurrent")
	}
}

func TestMalformedNumberLiteral(t *testing.T) {
	l := New(`1/`)
	for l.Peek(0).Kind != token.END {
		l.Next()
	}
	if l.Err() == nil {
		t.Fatalf("expected a lexing error for a malformed number literal")
	}
}

func TestLineComment(t *testing.T) {
	l := New("1 ; this is a comment\n2")
	if got := l.Peek(0); got.Kind != token.NUMBER || got.Value.Int() != 1 {
		t.Fatalf("expected NUMBER(1), got %s", got)
	}
	l.Next()
	if got := l.Peek(0); got.Kind != token.NUMBER || got.Value.Int() != 2 {
		t.Fatalf("expected NUMBER(2), got %s", got)
	}
}
