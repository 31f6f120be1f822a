package value

import (
	"fmt"
	"strconv"
)

// Kind discriminates the Value tagged union (§3). The first nine kinds are
// the literal atoms; CSTRef is how the parser and validators attach a
// reference to an already-built CST sub-tree onto a token's value, and
// FunctionLiteral/ConditionalLiteral carry the same kind of payload but are
// never built by the front end — see doc.go for why that reference is typed
// `any` instead of a concrete CST type.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindRational
	KindComplex
	KindBool
	KindChar
	KindString
	KindSymbol
	KindList
	KindCSTRef
	KindFunctionLiteral
	KindConditionalLiteral
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindRational:
		return "Rational"
	case KindComplex:
		return "Complex"
	case KindBool:
		return "Bool"
	case KindChar:
		return "Char"
	case KindString:
		return "String"
	case KindSymbol:
		return "Symbol"
	case KindList:
		return "List"
	case KindCSTRef:
		return "CSTRef"
	case KindFunctionLiteral:
		return "FunctionLiteral"
	case KindConditionalLiteral:
		return "ConditionalLiteral"
	default:
		return "Unknown"
	}
}

// Value is the tagged union over every atom the front end can produce, plus
// the three downstream-only variants described above. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	i    int
	f    float64
	r    Rational
	c    Complex
	b    bool
	ch   byte
	s    string
	sym  Symbol
	list *Cell

	// ref holds a CST reference, function-literal, or conditional-literal
	// payload. It is `any` rather than a concrete CST pointer type so this
	// package never has to import the cst package — the same role
	// original_source/src/ast_fwd.h plays for the C++ AstPtr forward
	// declaration (§9): a downward-only reference with no cyclic type.
	ref any
}

func Int(i int) Value             { return Value{Kind: KindInt, i: i} }
func Float(f float64) Value       { return Value{Kind: KindFloat, f: f} }
func RationalValue(r Rational) Value { return Value{Kind: KindRational, r: r} }
func ComplexValue(c Complex) Value   { return Value{Kind: KindComplex, c: c} }
func Bool(b bool) Value           { return Value{Kind: KindBool, b: b} }
func Char(ch byte) Value          { return Value{Kind: KindChar, ch: ch} }
func Str(s string) Value          { return Value{Kind: KindString, s: s} }
func Sym(sym Symbol) Value        { return Value{Kind: KindSymbol, sym: sym} }
func List(l *Cell) Value          { return Value{Kind: KindList, list: l} }

// CSTRef wraps a reference to an already-built CST sub-tree (or any
// downstream-defined payload) for attachment to a token's value.
func CSTRef(ref any) Value { return Value{Kind: KindCSTRef, ref: ref} }

// FunctionLiteral and ConditionalLiteral mirror CSTRef but tag the payload
// with the evaluator-facing kind spec.md §3 names; the front end never
// constructs these itself, but they round-trip through Value for
// completeness of the tagged union.
func FunctionLiteral(ref any) Value    { return Value{Kind: KindFunctionLiteral, ref: ref} }
func ConditionalLiteral(ref any) Value { return Value{Kind: KindConditionalLiteral, ref: ref} }

func (v Value) IsInt() bool      { return v.Kind == KindInt }
func (v Value) IsFloat() bool    { return v.Kind == KindFloat }
func (v Value) IsRational() bool { return v.Kind == KindRational }
func (v Value) IsComplex() bool  { return v.Kind == KindComplex }
func (v Value) IsBool() bool     { return v.Kind == KindBool }
func (v Value) IsChar() bool     { return v.Kind == KindChar }
func (v Value) IsString() bool   { return v.Kind == KindString }
func (v Value) IsSymbol() bool   { return v.Kind == KindSymbol }
func (v Value) IsList() bool     { return v.Kind == KindList }
func (v Value) IsCSTRef() bool {
	return v.Kind == KindCSTRef || v.Kind == KindFunctionLiteral || v.Kind == KindConditionalLiteral
}

func (v Value) Int() int            { return v.i }
func (v Value) Float() float64      { return v.f }
func (v Value) RationalVal() Rational { return v.r }
func (v Value) ComplexVal() Complex   { return v.c }
func (v Value) Bool_() bool         { return v.b }
func (v Value) CharVal() byte       { return v.ch }
func (v Value) StringVal() string   { return v.s }
func (v Value) SymbolVal() Symbol   { return v.sym }
func (v Value) ListVal() *Cell      { return v.list }

// Ref returns the payload of a CSTRef/FunctionLiteral/ConditionalLiteral
// value. Callers that know the concrete downstream type assert it
// themselves; this package never does.
func (v Value) Ref() any { return v.ref }

// Equal implements the (kind, value) equality §3 pins for tokens: location
// never participates.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindRational:
		return v.r == o.r
	case KindComplex:
		return v.c == o.c
	case KindBool:
		return v.b == o.b
	case KindChar:
		return v.ch == o.ch
	case KindString:
		return v.s == o.s
	case KindSymbol:
		return v.sym == o.sym
	case KindList:
		return equalLists(v.list, o.list)
	default:
		return v.ref == o.ref
	}
}

func equalLists(a, b *Cell) bool {
	for a != nil && b != nil {
		if !a.Car.Equal(b.Car) {
			return false
		}
		a, b = a.Cdr, b.Cdr
	}
	return a == nil && b == nil
}

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return formatStrictFloat(v.f)
	case KindRational:
		return v.r.String()
	case KindComplex:
		return v.c.String()
	case KindBool:
		if v.b {
			return "#t"
		}
		return "#f"
	case KindChar:
		return fmt.Sprintf("%q", string(v.ch))
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindSymbol:
		return v.sym.Name
	case KindList:
		out := "("
		for cur, first := v.list, true; cur != nil; cur, first = cur.Cdr, false {
			if !first {
				out += " "
			}
			out += cur.Car.String()
		}
		return out + ")"
	default:
		return fmt.Sprintf("<%s>", v.Kind)
	}
}

// formatStrictFloat prints a float so it always carries a decimal point with
// at least one digit on each side, matching the strict-float literal form
// spec.md §3 requires on input.
func formatStrictFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	for _, r := range s {
		if r == '.' {
			return s
		}
	}
	return s + ".0"
}
