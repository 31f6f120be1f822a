package token

import (
	"fmt"

	"github.com/sprout-lang/sprout/internal/value"
)

// Token is the lexer's unit of output: a Kind, an optional payload Value, and
// the source Position it was read from. Grounded on the teacher's lexer
// Token struct, generalised to carry a value.Value payload per spec.md §3.
type Token struct {
	Kind     Kind
	Value    value.Value
	hasValue bool
	Pos      Position
}

// New builds a Token carrying no value payload (punctuation, keywords).
func New(kind Kind, pos Position) Token {
	return Token{Kind: kind, Pos: pos}
}

// WithValue builds a Token carrying a value.Value payload (literals,
// identifiers, symbols).
func WithValue(kind Kind, v value.Value, pos Position) Token {
	return Token{Kind: kind, Value: v, hasValue: true, Pos: pos}
}

// Equal implements spec.md §3's "Tokens compare by (kind, value); location
// does not participate in equality."
func (t Token) Equal(o Token) bool {
	return t.Kind == o.Kind && t.Value.Equal(o.Value)
}

// HasValue reports whether the token carries a value payload, as opposed to
// a bare punctuation/keyword token whose identity is its Kind alone. Tracked
// as its own flag rather than a comparison against the zero Value, since
// value.Int(0) is bitwise identical to value.Value{}.
func (t Token) HasValue() bool {
	return t.hasValue
}

func (t Token) String() string {
	if t.HasValue() {
		return fmt.Sprintf("%s(%s)@%s", t.Kind, t.Value, t.Pos)
	}
	return fmt.Sprintf("%s@%s", t.Kind, t.Pos)
}
