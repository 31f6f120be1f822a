package token

import (
	"testing"

	"github.com/sprout-lang/sprout/internal/value"
)

func TestHasValueDistinguishesZeroLiteral(t *testing.T) {
	zero := WithValue(NUMBER, value.Int(0), Position{Line: 1, Column: 1})
	if !zero.HasValue() {
		t.Fatalf("NUMBER(0) should report HasValue() == true, got false")
	}
	if got, want := zero.String(), "NUMBER(0)@1:1"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestHasValueFalseForPunctuation(t *testing.T) {
	tok := New(LPAREN, Position{Line: 1, Column: 1})
	if tok.HasValue() {
		t.Fatalf("LPAREN should report HasValue() == false, got true")
	}
}
