// Package validate holds the finite-state-machine structural validators
// that the parser invokes on productions with shape constraints beyond
// plain recursive descent: parameter lists, type expressions, quasiquote
// nesting, dotted lists, pattern clauses, and constructor declarations.
//
// Every validator is a pure function from a CST fragment to either a
// normalised fragment or a failure carrying a source location; none of
// them share state with each other or with the lexer/parser, per
// spec.md §4.3. validate_params/validate_type_list/validate_type_params/
// validate_forall are grounded directly on original_source/src/parser.cpp's
// validateParams/validateTypeList/validateTypeParams/validateForall.
// validate_dotted_list/validate_pattern_clause/validate_ctor_decl have no
// original_source counterpart — they are modelled in the same FSM-over-
// cons-chain idiom for the match/data forms the distillation added.
package validate

import (
	"github.com/sprout-lang/sprout/internal/cst"
	"github.com/sprout-lang/sprout/internal/errors"
	"github.com/sprout-lang/sprout/internal/token"
)

// fail builds a SourceError with no source text attached: validators never
// see the lexer, per this package's purity contract. The parser fills in
// Source via wrapValidateErr once the error reaches it, so Format can still
// render a source line and caret.
func fail(pos token.Position, msg string) error {
	return errors.NewSourceError("validate", pos, msg, "", "")
}

func describe(n cst.Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}

func elemPos(n cst.Node) token.Position {
	if n == nil {
		return token.Position{}
	}
	return n.Pos()
}

// typeListElemAsType normalises a single type-list element: a nested list
// recurses through ValidateTypeList, a bare SYMBOL promotes to TYPE_VAR, and
// a TYPE_IDENT passes through unchanged.
func typeListElemAsType(el cst.Node) (cst.Node, error) {
	if sub, ok := cst.AsList(el); ok {
		return ValidateTypeList(sub)
	}
	tok, ok := cst.AsToken(el)
	if !ok {
		return nil, fail(elemPos(el), "expected type, found "+describe(el))
	}
	switch tok.Kind {
	case token.TYPE_IDENT:
		return el, nil
	case token.SYMBOL:
		return cst.TokenNode{Tok: token.WithValue(token.TYPE_VAR, tok.Value, tok.Pos)}, nil
	default:
		return nil, fail(tok.Pos, "expected type, found "+describe(el))
	}
}
