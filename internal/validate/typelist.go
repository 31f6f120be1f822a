package validate

import (
	"github.com/sprout-lang/sprout/internal/cst"
	"github.com/sprout-lang/sprout/internal/token"
	"github.com/sprout-lang/sprout/internal/value"
)

// ValidateTypeList is the FSM over a type expression's tokens, with states
// {ExpectType, ExpectArrowOrNat, ExpectNat}, grounded on
// original_source/src/parser.cpp's validateTypeList. It accepts `T (-> T)*`
// plus an optional trailing NUMBER for vec-style composite types (e.g.
// `(vec int 3)`), and must terminate in a type. A bare TYPE_IDENT token
// passes through unchanged; a list beginning with FORALL delegates to
// ValidateForall.
func ValidateTypeList(n cst.Node) (cst.Node, error) {
	if tok, ok := cst.AsToken(n); ok {
		if tok.Kind == token.TYPE_IDENT {
			return n, nil
		}
		return nil, fail(tok.Pos, "expected type list, found "+describe(n))
	}

	list, _ := cst.AsList(n)
	if list == nil {
		return nil, fail(elemPos(n), "expected type list, found an empty list")
	}

	if headTok, ok := cst.AsToken(cst.Head(list)); ok && headTok.Kind == token.FORALL {
		return ValidateForall(n)
	}

	elems := cst.Slice(list)

	const (
		expectType = iota
		expectArrowOrNat
		expectNat
	)

	state := expectType
	var nodes []cst.Node
	lastArrowPos := n.Pos()
	sawArrow := false

	for _, el := range elems {
		switch state {
		case expectType:
			typ, err := typeListElemAsType(el)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, typ)
			state = expectArrowOrNat

		case expectArrowOrNat:
			if tok, ok := cst.AsToken(el); ok && tok.Kind == token.ARROW {
				sawArrow = true
				lastArrowPos = tok.Pos
				state = expectType
				continue
			}
			typ, err := typeListElemAsType(el)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, typ)
			state = expectNat

		case expectNat:
			tok, ok := cst.AsToken(el)
			if !ok || tok.Kind != token.NUMBER {
				return nil, fail(elemPos(el), "expected number in composite type, found "+describe(el))
			}
			nodes = append(nodes, el)
			state = expectArrowOrNat
		}
	}

	if state == expectType {
		pos := n.Pos()
		if sawArrow {
			pos = lastArrowPos
		}
		return nil, fail(pos, "typeList did not terminate in a type")
	}

	ref := cst.FromSlice(nodes)
	return cst.TokenNode{Tok: token.WithValue(token.TYPE_IDENT, value.CSTRef(ref), n.Pos())}, nil
}

// ValidateTypeParams normalises a flat list of bare symbols into TYPE_VARs,
// grounded on validateTypeParams. The list must be non-empty.
func ValidateTypeParams(n cst.Node) (cst.Node, error) {
	list, ok := cst.AsList(n)
	if !ok {
		return nil, fail(elemPos(n), "expected flat parameter list in type lambda, found "+describe(n))
	}
	elems := cst.Slice(list)
	if len(elems) == 0 {
		return nil, fail(n.Pos(), "type lambdas cannot have no parameters")
	}

	params := make([]cst.Node, len(elems))
	for i, el := range elems {
		tok, ok := cst.AsToken(el)
		if !ok || tok.Kind != token.SYMBOL {
			return nil, fail(elemPos(el), "expected type variable in parameters list for type lambda, found "+describe(el))
		}
		params[i] = cst.TokenNode{Tok: token.WithValue(token.TYPE_VAR, tok.Value, tok.Pos)}
	}

	ref := cst.FromSlice(params)
	return cst.TokenNode{Tok: token.WithValue(token.TYPE_PARAM_LIST, value.CSTRef(ref), n.Pos())}, nil
}

// ValidateForall validates `(forall (A₁ … Aₖ) body-type)`, grounded on
// validateForall: the type-parameter list goes through ValidateTypeParams
// and the body through ValidateTypeList.
func ValidateForall(n cst.Node) (cst.Node, error) {
	list, ok := cst.AsList(n)
	if !ok {
		return nil, fail(elemPos(n), "expected forall form, found "+describe(n))
	}
	elems := cst.Slice(list)
	if len(elems) != 3 {
		return nil, fail(n.Pos(), "forall type expressions may only have one body expression")
	}

	headTok, ok := cst.AsToken(elems[0])
	if !ok || headTok.Kind != token.FORALL {
		return nil, fail(elemPos(elems[0]), "encountered "+describe(elems[0])+" in forall")
	}

	params, err := ValidateTypeParams(elems[1])
	if err != nil {
		return nil, err
	}
	body, err := ValidateTypeList(elems[2])
	if err != nil {
		return nil, err
	}

	ref := cst.FromSlice([]cst.Node{elems[0], params, body})
	return cst.TokenNode{Tok: token.WithValue(token.TYPE_IDENT, value.CSTRef(ref), headTok.Pos)}, nil
}
