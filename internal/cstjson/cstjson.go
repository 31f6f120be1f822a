// Package cstjson renders a cst.Node tree as a JSON document, for the
// `sprout cst` subcommand and for snapshot/golden tests that want a
// diffable text form of a parse result.
//
// Grounded on the teacher's internal/jsonvalue.Value: a closed Kind enum
// plus a hand-rolled MarshalJSON, rather than exporting Go structs
// straight to encoding/json, so the wire shape stays stable regardless of
// how cst.Node's internal representation changes.
package cstjson

import "github.com/sprout-lang/sprout/internal/cst"

// Kind discriminates the two JSON shapes a dumped node can take.
type Kind uint8

const (
	KindToken Kind = iota
	KindList
)

// Node is a JSON-marshalable rendering of one cst.Node. A token node
// carries Kind/Value/Pos; a list node carries Elements (possibly empty,
// never nil, so an empty list marshals as `[]` rather than `null`).
type Node struct {
	kind Kind

	tokKind  string
	tokValue string
	hasValue bool
	pos      string

	elements []Node
}

// Dump converts n into a Node tree ready for json.Marshal.
func Dump(n cst.Node) Node {
	if n == nil {
		return Node{kind: KindList}
	}
	if tok, ok := cst.AsToken(n); ok {
		out := Node{
			kind:    KindToken,
			tokKind: tok.Kind.String(),
			pos:     tok.Pos.String(),
		}
		if tok.HasValue() {
			out.hasValue = true
			out.tokValue = tok.Value.String()
		}
		return out
	}

	list, _ := cst.AsList(n)
	elems := cst.Slice(list)
	out := Node{kind: KindList, elements: make([]Node, len(elems))}
	for i, el := range elems {
		out.elements[i] = Dump(el)
	}
	return out
}

// MarshalJSON implements json.Marshaler: a token renders as
// `{"kind":"...", "value":"...", "pos":"..."}` (value omitted when the
// token carries none); a list renders as a bare JSON array of its
// elements' Node renderings.
func (n Node) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case KindToken:
		return n.marshalToken()
	default:
		return n.marshalList()
	}
}

func (n Node) marshalToken() ([]byte, error) {
	buf := []byte(`{"kind":` + quoteJSON(n.tokKind) + `,"pos":` + quoteJSON(n.pos))
	if n.hasValue {
		buf = append(buf, []byte(`,"value":`+quoteJSON(n.tokValue))...)
	}
	buf = append(buf, '}')
	return buf, nil
}

func (n Node) marshalList() ([]byte, error) {
	buf := []byte{'['}
	for i, el := range n.elements {
		if i > 0 {
			buf = append(buf, ',')
		}
		sub, err := el.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf = append(buf, sub...)
	}
	buf = append(buf, ']')
	return buf, nil
}

// quoteJSON escapes s as a JSON string literal. Token kind names and
// Position.String()'s "line:col" form never contain characters needing
// more than quote/backslash escaping, but Value.String() can surface
// arbitrary source text (string/char literals), so every control
// character and quote is escaped rather than assumed absent.
func quoteJSON(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			out = append(out, '\\', c)
		case '\n':
			out = append(out, '\\', 'n')
		case '\t':
			out = append(out, '\\', 't')
		case '\r':
			out = append(out, '\\', 'r')
		default:
			if c < 0x20 {
				const hex = "0123456789abcdef"
				out = append(out, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
			} else {
				out = append(out, c)
			}
		}
	}
	out = append(out, '"')
	return string(out)
}
