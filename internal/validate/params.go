package validate

import (
	"github.com/sprout-lang/sprout/internal/cst"
	"github.com/sprout-lang/sprout/internal/token"
	"github.com/sprout-lang/sprout/internal/value"
)

// ValidateParams is the FSM over a lambda parameter list's tokens, with
// states {ExpectBindingSymbol, ExpectColon, ExpectArgType, ExpectArgOrArrow,
// ExpectReturnType}, grounded on original_source/src/parser.cpp's
// validateParams. It accepts `sym₁ : T₁ sym₂ : T₂ … symₖ : Tₖ -> Tret` and
// produces a PARAM_LIST-headed list of (sym, type) pairs followed by a
// single RETURN_TYPE token referencing Tret.
func ValidateParams(n cst.Node) (cst.Node, error) {
	list, ok := cst.AsList(n)
	if !ok {
		return nil, fail(elemPos(n), "param list must begin with a symbol, found "+describe(n))
	}
	elems := cst.Slice(list)

	const (
		expectBindingSymbol = iota
		expectColon
		expectArgType
		expectArgOrArrow
		expectReturnType
	)

	state := expectBindingSymbol
	var args [][2]cst.Node
	var pendingSym cst.Node

	for i := 0; i < len(elems); i++ {
		el := elems[i]
		switch state {
		case expectBindingSymbol:
			tok, ok := cst.AsToken(el)
			if !ok || tok.Kind != token.SYMBOL {
				return nil, fail(elemPos(el), "param list must begin with a symbol, found "+describe(el))
			}
			pendingSym = el
			state = expectColon

		case expectColon:
			tok, ok := cst.AsToken(el)
			if !ok || tok.Kind != token.COLON {
				return nil, fail(elemPos(el), "expected colon, found "+describe(el))
			}
			state = expectArgType

		case expectArgType:
			typ, err := typeListElemAsType(el)
			if err != nil {
				return nil, err
			}
			args = append(args, [2]cst.Node{pendingSym, typ})
			state = expectArgOrArrow

		case expectArgOrArrow:
			if tok, ok := cst.AsToken(el); ok && tok.Kind == token.ARROW {
				state = expectReturnType
				continue
			}
			tok, ok := cst.AsToken(el)
			if !ok || tok.Kind != token.SYMBOL {
				return nil, fail(elemPos(el), "expected argument or arrow, found "+describe(el))
			}
			pendingSym = el
			state = expectColon

		case expectReturnType:
			tret, err := typeListElemAsType(el)
			if err != nil {
				return nil, err
			}
			if i != len(elems)-1 {
				return nil, fail(elemPos(el), "param list did not terminate in a type or has more than one return type")
			}
			return buildParamList(args, tret, n.Pos()), nil
		}
	}

	return nil, fail(n.Pos(), "invalid param list")
}

func buildParamList(args [][2]cst.Node, tret cst.Node, pos token.Position) cst.Node {
	nodes := make([]cst.Node, 0, len(args)+1)
	for _, a := range args {
		nodes = append(nodes, cst.FromSlice([]cst.Node{a[0], a[1]}))
	}
	nodes = append(nodes, cst.TokenNode{Tok: token.WithValue(token.RETURN_TYPE, value.CSTRef(tret), pos)})
	return cst.Cons(cst.TokenNode{Tok: token.New(token.PARAM_LIST, pos)}, cst.FromSlice(nodes))
}
