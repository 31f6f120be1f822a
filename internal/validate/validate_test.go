package validate

import (
	"testing"

	"github.com/sprout-lang/sprout/internal/cst"
	"github.com/sprout-lang/sprout/internal/token"
	"github.com/sprout-lang/sprout/internal/value"
)

func symTok(name string) cst.Node {
	return cst.TokenNode{Tok: token.WithValue(token.SYMBOL, value.Sym(value.NewSymbol(name)), token.Position{})}
}

func typeTok(name string) cst.Node {
	return cst.TokenNode{Tok: token.WithValue(token.TYPE_IDENT, value.Str(name), token.Position{})}
}

func punct(k token.Kind) cst.Node {
	return cst.TokenNode{Tok: token.New(k, token.Position{})}
}

func list(elems ...cst.Node) cst.Node {
	return cst.FromSlice(elems)
}

func TestValidateParamsSingleArg(t *testing.T) {
	n := list(symTok("x"), punct(token.COLON), typeTok("int"), punct(token.ARROW), typeTok("int"))
	out, err := ValidateParams(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok, ok := cst.AsToken(cst.Head(mustList(t, out)))
	if !ok || tok.Kind != token.PARAM_LIST {
		t.Fatalf("expected PARAM_LIST head, got %v", out)
	}
}

func TestValidateParamsRejectsMissingColon(t *testing.T) {
	n := list(symTok("x"), typeTok("int"), punct(token.ARROW), typeTok("int"))
	if _, err := ValidateParams(n); err == nil {
		t.Fatalf("expected error for missing colon")
	}
}

func TestValidateParamsRejectsNoReturnType(t *testing.T) {
	n := list(symTok("x"), punct(token.COLON), typeTok("int"))
	if _, err := ValidateParams(n); err == nil {
		t.Fatalf("expected error when param list does not terminate in a type")
	}
}

func TestValidateTypeListArrowChain(t *testing.T) {
	n := list(typeTok("int"), punct(token.ARROW), typeTok("int"), punct(token.ARROW), typeTok("bool"))
	out, err := ValidateTypeList(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok, ok := cst.AsToken(out)
	if !ok || tok.Kind != token.TYPE_IDENT {
		t.Fatalf("expected TYPE_IDENT, got %v", out)
	}
}

func TestValidateTypeListRejectsTrailingArrow(t *testing.T) {
	n := list(typeTok("int"), punct(token.ARROW))
	if _, err := ValidateTypeList(n); err == nil {
		t.Fatalf("expected error for type list not terminating in a type")
	}
}

func TestValidateTypeParamsRejectsEmpty(t *testing.T) {
	if _, err := ValidateTypeParams(list()); err == nil {
		t.Fatalf("expected error for empty type parameter list")
	}
}

func TestValidateForall(t *testing.T) {
	n := list(punct(token.FORALL), list(symTok("A")), typeTok("A"))
	out, err := ValidateForall(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok, ok := cst.AsToken(out)
	if !ok || tok.Kind != token.TYPE_IDENT {
		t.Fatalf("expected TYPE_IDENT, got %v", out)
	}
}

func TestValidateDottedListAcceptsWellFormed(t *testing.T) {
	n := list(symTok("a"), punct(token.DOT), symTok("b"))
	if _, err := ValidateDottedList(n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateDottedListRejectsMisplacedDot(t *testing.T) {
	n := list(punct(token.DOT), symTok("a"), symTok("b"))
	if _, err := ValidateDottedList(n); err == nil {
		t.Fatalf("expected error for misplaced dot")
	}
}

func TestValidateDottedListRejectsMultipleDots(t *testing.T) {
	n := list(symTok("a"), punct(token.DOT), symTok("b"), punct(token.DOT), symTok("c"))
	if _, err := ValidateDottedList(n); err == nil {
		t.Fatalf("expected error for more than one dot")
	}
}

func TestValidatePatternClause(t *testing.T) {
	n := list(symTok("x"), symTok("x"))
	out, err := ValidatePatternClause(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok, ok := cst.AsToken(out)
	if !ok || tok.Kind != token.PATTERN_CLAUSE {
		t.Fatalf("expected PATTERN_CLAUSE, got %v", out)
	}
}

func TestValidatePatternClauseRejectsWrongArity(t *testing.T) {
	n := list(symTok("x"))
	if _, err := ValidatePatternClause(n); err == nil {
		t.Fatalf("expected error for single-element pattern clause")
	}
}

func TestValidateCtorDeclBareConstructor(t *testing.T) {
	n := list(symTok("Nil"))
	out, err := ValidateCtorDecl(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok, ok := cst.AsToken(out)
	if !ok || tok.Kind != token.CTOR_DECL {
		t.Fatalf("expected CTOR_DECL, got %v", out)
	}
}

func TestValidateCtorDeclWithFields(t *testing.T) {
	n := list(symTok("Cons"), list(typeTok("int"), symTok("a")))
	out, err := ValidateCtorDecl(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok, ok := cst.AsToken(out)
	if !ok || tok.Kind != token.CTOR_DECL {
		t.Fatalf("expected CTOR_DECL, got %v", out)
	}
}

func TestValidateQuoteDepthInvariant(t *testing.T) {
	// `,x` at depth 0 (no enclosing quasiquote) is invalid.
	n := list(punct(token.UNQUOTE), symTok("x"))
	if ValidateQuote(n, 0) {
		t.Fatalf("expected unquote at depth 0 to be rejected")
	}

	// `` `,x `` is valid: qquote raises depth to 1, unquote consumes it.
	qq := list(punct(token.QQUOTE), list(punct(token.UNQUOTE), symTok("x")))
	if !ValidateQuote(qq, 0) {
		t.Fatalf("expected nested unquote inside quasiquote to be accepted")
	}
}

func mustList(t *testing.T, n cst.Node) *cst.List {
	t.Helper()
	l, ok := cst.AsList(n)
	if !ok {
		t.Fatalf("expected list node, got %v", n)
	}
	return l
}
