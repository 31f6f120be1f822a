package validate

import (
	"github.com/sprout-lang/sprout/internal/cst"
	"github.com/sprout-lang/sprout/internal/token"
	"github.com/sprout-lang/sprout/internal/value"
)

// ValidatePatternClause validates a `match` clause: a 2-element list
// `(pattern rhs)`. A list-shaped pattern first passes through
// ValidateDottedList, then is wrapped into a PATTERN token; the pair is
// wrapped into a PATTERN_CLAUSE token. No original_source counterpart —
// modelled on the same FSM-over-cons-chain idiom as ValidateParams.
func ValidatePatternClause(n cst.Node) (cst.Node, error) {
	list, ok := cst.AsList(n)
	if !ok {
		return nil, fail(elemPos(n), "pattern clause must be a two-element list, found "+describe(n))
	}
	elems := cst.Slice(list)
	if len(elems) != 2 {
		return nil, fail(n.Pos(), "pattern clauses must have two and only two expressions")
	}

	pattern := elems[0]
	if sub, ok := cst.AsList(pattern); ok {
		validated, err := ValidateDottedList(sub)
		if err != nil {
			return nil, err
		}
		pattern = validated
	}

	patternTok := cst.TokenNode{Tok: token.WithValue(token.PATTERN, value.CSTRef(pattern), pattern.Pos())}
	ref := cst.FromSlice([]cst.Node{patternTok, elems[1]})
	return cst.TokenNode{Tok: token.WithValue(token.PATTERN_CLAUSE, value.CSTRef(ref), n.Pos())}, nil
}

// ValidateCtorDecl validates a `data` constructor declaration: either
// `(Name)` or `(Name (field₁ … fieldₘ))`. Each field is normalised as a
// type the same way a type-list element is (list recurses through
// ValidateTypeList, bare symbol promotes to TYPE_VAR, TYPE_IDENT passes
// through). No original_source counterpart.
func ValidateCtorDecl(n cst.Node) (cst.Node, error) {
	list, ok := cst.AsList(n)
	if !ok {
		return nil, fail(elemPos(n), "constructor declaration must be a list, found "+describe(n))
	}
	elems := cst.Slice(list)
	if len(elems) == 0 {
		return nil, fail(n.Pos(), "constructor declaration must name a constructor")
	}

	nameTok, ok := cst.AsToken(elems[0])
	if !ok || nameTok.Kind != token.SYMBOL {
		return nil, fail(elemPos(elems[0]), "constructor name must be a symbol, found "+describe(elems[0]))
	}

	if len(elems) == 1 {
		ref := cst.FromSlice([]cst.Node{elems[0]})
		return cst.TokenNode{Tok: token.WithValue(token.CTOR_DECL, value.CSTRef(ref), n.Pos())}, nil
	}
	if len(elems) != 2 {
		return nil, fail(n.Pos(), "constructor declaration must be (Name) or (Name (fields...))")
	}

	fieldsList, ok := cst.AsList(elems[1])
	if !ok {
		return nil, fail(elemPos(elems[1]), "constructor fields must be a list, found "+describe(elems[1]))
	}
	fieldElems := cst.Slice(fieldsList)
	fields := make([]cst.Node, len(fieldElems))
	for i, f := range fieldElems {
		typ, err := typeListElemAsType(f)
		if err != nil {
			return nil, err
		}
		fields[i] = typ
	}

	ref := cst.FromSlice([]cst.Node{elems[0], cst.FromSlice(fields)})
	return cst.TokenNode{Tok: token.WithValue(token.CTOR_DECL, value.CSTRef(ref), n.Pos())}, nil
}
