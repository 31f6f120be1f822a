// Package cst defines the concrete syntax tree the parser produces: the
// tagged union `Node = Token | List(Node)` spec.md §3 and §9(a) call for,
// grounded on the teacher's internal/ast.Node interface (TokenLiteral/
// String/Pos) generalised to this language's two-variant union instead of
// the teacher's many statement/expression node types.
package cst

import "github.com/sprout-lang/sprout/internal/token"

// Node is either a TokenNode (a leaf) or a *List (a cons-chain of Nodes).
// Nodes are immutable once published as a child of another Node; a CST may
// share a Node by reference across multiple parents.
type Node interface {
	Pos() token.Position
	String() string
	isNode()
}

// TokenNode wraps a single lexer Token as a leaf CST node.
type TokenNode struct {
	Tok token.Token
}

func (t TokenNode) isNode() {}

// Pos returns the wrapped token's source position.
func (t TokenNode) Pos() token.Position { return t.Tok.Pos }

func (t TokenNode) String() string { return t.Tok.String() }

// List is a cons-chain of Nodes: `cons(Head, Tail)`. A nil *List is the
// empty list, per spec.md §3 ("The empty list is semantically nil") — it
// still satisfies Node, since its methods tolerate a nil receiver.
type List struct {
	Head Node
	Tail *List
}

func (l *List) isNode() {}

// Pos returns the position of the list's first element, or the zero
// Position for an empty list.
func (l *List) Pos() token.Position {
	if l == nil {
		return token.Position{}
	}
	return l.Head.Pos()
}

func (l *List) String() string {
	out := "("
	for cur, first := l, true; cur != nil; cur, first = cur.Tail, false {
		if !first {
			out += " "
		}
		out += cur.Head.String()
	}
	return out + ")"
}

// Cons prepends head onto tail, building one cons-cell.
func Cons(head Node, tail *List) *List {
	return &List{Head: head, Tail: tail}
}

// FromSlice builds a *List from elems in order; an empty slice yields nil.
func FromSlice(elems []Node) *List {
	var out *List
	for i := len(elems) - 1; i >= 0; i-- {
		out = Cons(elems[i], out)
	}
	return out
}

// Slice flattens a *List into a Node slice in order.
func Slice(l *List) []Node {
	var out []Node
	for cur := l; cur != nil; cur = cur.Tail {
		out = append(out, cur.Head)
	}
	return out
}

// Len returns the number of elements in the chain.
func Len(l *List) int {
	n := 0
	for cur := l; cur != nil; cur = cur.Tail {
		n++
	}
	return n
}

// IsToken reports whether n is a leaf token node — the `is-token`
// introspection primitive from spec.md §6.
func IsToken(n Node) bool {
	_, ok := n.(TokenNode)
	return ok
}

// IsList reports whether n is a list node — the `is-list` introspection
// primitive from spec.md §6.
func IsList(n Node) bool {
	_, ok := n.(*List)
	return ok
}

// AsToken type-asserts n as a TokenNode.
func AsToken(n Node) (token.Token, bool) {
	t, ok := n.(TokenNode)
	if !ok {
		return token.Token{}, false
	}
	return t.Tok, true
}

// AsList type-asserts n as a *List.
func AsList(n Node) (*List, bool) {
	l, ok := n.(*List)
	return l, ok
}

// Head returns the list's first element, or nil for an empty list — the
// `head` introspection primitive from spec.md §6.
func Head(l *List) Node {
	if l == nil {
		return nil
	}
	return l.Head
}

// Tail returns the list with its first element removed — the `tail`
// introspection primitive from spec.md §6.
func Tail(l *List) *List {
	if l == nil {
		return nil
	}
	return l.Tail
}
