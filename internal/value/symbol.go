// Package value implements the front end's atomic literal types: integers,
// exact rationals, floats, complex numbers, booleans, characters, strings,
// and symbols. Arithmetic over these types is out of scope here — only
// string-form parsing and printing, which is the contract the lexer and
// parser depend on.
package value

// Symbol wraps an identifier string. Two symbols are equal iff their names
// are equal.
type Symbol struct {
	Name string
}

// NewSymbol constructs a Symbol from a name.
func NewSymbol(name string) Symbol {
	return Symbol{Name: name}
}

func (s Symbol) String() string {
	return s.Name
}
