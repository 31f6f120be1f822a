package parser

import (
	"github.com/sprout-lang/sprout/internal/cst"
	"github.com/sprout-lang/sprout/internal/token"
	"github.com/sprout-lang/sprout/internal/validate"
	"github.com/sprout-lang/sprout/internal/value"
)

// parseCond parses `(cond (p1 e1) (p2 e2) ...)`, grounded on parseCond: each
// clause must be a two-element list, wrapped under a CLAUSE token.
func (p *Parser) parseCond() (cst.Node, error) {
	root := p.lex.Next()

	if p.lex.Peek(0).Kind != token.LPAREN {
		return nil, p.fail(p.lex.Peek(0).Pos, "bad cond form, clauses must be lists of two expressions, found no list")
	}

	var clauses []cst.Node
	for p.lex.Peek(0).Kind == token.LPAREN {
		clause, err := p.Parse()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	if len(clauses) == 0 {
		return nil, p.fail(root.Pos, "cond expressions must have at least one clause")
	}

	wrapped := make([]cst.Node, len(clauses))
	for i, c := range clauses {
		list, ok := cst.AsList(c)
		if !ok || cst.Len(list) != 2 {
			return nil, p.fail(c.Pos(), "cond clauses must have two and only two expressions")
		}
		wrapped[i] = cst.Cons(cst.TokenNode{Tok: token.New(token.CLAUSE, c.Pos())}, cst.FromSlice([]cst.Node{c}))
	}

	if p.lex.Peek(0).Kind != token.RPAREN {
		return nil, p.fail(p.lex.Peek(0).Pos, "expected ')' to close cond, found "+p.lex.Peek(0).String())
	}
	p.lex.Next()

	return cst.Cons(cst.TokenNode{Tok: root}, cst.FromSlice(wrapped)), nil
}

// parseLambda parses `(lambda (params...) body)`, grounded on parseLambda.
func (p *Parser) parseLambda() (cst.Node, error) {
	root := p.lex.Next()

	if p.lex.Peek(0).Kind != token.LPAREN {
		return nil, p.fail(p.lex.Peek(0).Pos, "lambda must be followed by a parameter list, found "+p.lex.Peek(0).String())
	}
	rawParams, err := p.Parse()
	if err != nil {
		return nil, err
	}
	params, err := validate.ValidateParams(rawParams)
	if err != nil {
		return nil, p.wrapValidateErr(err)
	}

	body, err := p.Parse()
	if err != nil {
		return nil, err
	}

	if p.lex.Peek(0).Kind != token.RPAREN {
		return nil, p.fail(p.lex.Peek(0).Pos, "lambda expressions may only have one body expression, found "+p.lex.Peek(0).String())
	}
	p.lex.Next()

	return cst.FromSlice([]cst.Node{cst.TokenNode{Tok: root}, params, body}), nil
}

// parseTypeLambda parses `(tlambda (A...) body)`, grounded on
// parseTypeLambda.
func (p *Parser) parseTypeLambda() (cst.Node, error) {
	root := p.lex.Next()

	if p.lex.Peek(0).Kind != token.LPAREN {
		return nil, p.fail(p.lex.Peek(0).Pos, "tlambda must be followed by a type parameter list, found "+p.lex.Peek(0).String())
	}
	rawParams, err := p.Parse()
	if err != nil {
		return nil, err
	}
	params, err := validate.ValidateTypeParams(rawParams)
	if err != nil {
		return nil, p.wrapValidateErr(err)
	}

	body, err := p.Parse()
	if err != nil {
		return nil, err
	}

	if p.lex.Peek(0).Kind != token.RPAREN {
		return nil, p.fail(p.lex.Peek(0).Pos, "tlambda expressions may only have one body expression, found "+p.lex.Peek(0).String())
	}
	p.lex.Next()

	return cst.FromSlice([]cst.Node{cst.TokenNode{Tok: root}, params, body}), nil
}

// parseTypeApplication parses `(tapply expr T...)`, grounded on
// parseTypeApplication: each type argument is normalised the same way a
// type-list element is.
func (p *Parser) parseTypeApplication() (cst.Node, error) {
	root := p.lex.Next()

	expr, err := p.Parse()
	if err != nil {
		return nil, err
	}
	if p.lex.Peek(0).Kind == token.RPAREN {
		return nil, p.fail(root.Pos, "attempted to apply type lambda to no types")
	}

	var types []cst.Node
	for p.lex.Peek(0).Kind != token.RPAREN && p.lex.Peek(0).Kind != token.END {
		raw, err := p.Parse()
		if err != nil {
			return nil, err
		}
		var typ cst.Node
		if sub, ok := cst.AsList(raw); ok {
			typ, err = validate.ValidateTypeList(sub)
			if err != nil {
				return nil, p.wrapValidateErr(err)
			}
		} else {
			tok, _ := cst.AsToken(raw)
			switch tok.Kind {
			case token.SYMBOL:
				typ = cst.TokenNode{Tok: token.WithValue(token.TYPE_VAR, tok.Value, tok.Pos)}
			case token.TYPE_IDENT:
				typ = raw
			default:
				return nil, p.fail(tok.Pos, "expected type in tapply, found "+tok.String())
			}
		}
		types = append(types, typ)
	}
	if p.lex.Peek(0).Kind != token.RPAREN {
		if err := p.lex.Err(); err != nil {
			return nil, err
		}
		return nil, p.fail(root.Pos, "unterminated tapply")
	}
	p.lex.Next()

	args := append([]cst.Node{expr}, types...)
	return cst.Cons(cst.TokenNode{Tok: root}, cst.FromSlice(args)), nil
}

// isLambdaHead reports whether the token just inside an upcoming LPAREN is
// the bare word "lambda", used to disambiguate `(define name (lambda ...))`
// from `(define name (params) expr)`'s parameter-list form, grounded on
// parseDefine's lookahead.
func (p *Parser) isLambdaHead() bool {
	next := p.lex.Peek(1)
	return next.Kind == token.IDENT && next.Value.IsSymbol() && next.Value.SymbolVal().Name == "lambda"
}

// parseDefine parses `(define name : T expr)` or `(define name (params) expr)`
// or `(define name (lambda ...))`, grounded on parseDefine.
func (p *Parser) parseDefine() (cst.Node, error) {
	root := p.lex.Next()

	if p.lex.Peek(0).Kind != token.IDENT {
		return nil, p.fail(p.lex.Peek(0).Pos, "expected a symbol after define, found "+p.lex.Peek(0).String())
	}
	sym, err := p.Parse()
	if err != nil {
		return nil, err
	}

	switch p.lex.Peek(0).Kind {
	case token.COLON:
		p.lex.Next()
		rawType, err := p.Parse()
		if err != nil {
			return nil, err
		}
		typ := rawType
		if sub, ok := cst.AsList(rawType); ok {
			typ, err = validate.ValidateTypeList(sub)
			if err != nil {
				return nil, p.wrapValidateErr(err)
			}
		}
		expr, err := p.Parse()
		if err != nil {
			return nil, err
		}
		if p.lex.Peek(0).Kind != token.RPAREN {
			return nil, p.fail(p.lex.Peek(0).Pos, "expected ')' to close define, found "+p.lex.Peek(0).String())
		}
		p.lex.Next()
		return cst.FromSlice([]cst.Node{cst.TokenNode{Tok: root}, sym, typ, expr}), nil

	case token.LPAREN:
		if p.isLambdaHead() {
			lambda, err := p.Parse()
			if err != nil {
				return nil, err
			}
			if p.lex.Peek(0).Kind != token.RPAREN {
				return nil, p.fail(p.lex.Peek(0).Pos, "expected ')' to close define, found "+p.lex.Peek(0).String())
			}
			p.lex.Next()
			return cst.FromSlice([]cst.Node{cst.TokenNode{Tok: root}, sym, lambda}), nil
		}

		rawParams, err := p.Parse()
		if err != nil {
			return nil, err
		}
		expr, err := p.Parse()
		if err != nil {
			return nil, err
		}
		var typ cst.Node
		if sub, ok := cst.AsList(rawParams); ok {
			normalized, verr := validate.ValidateParams(sub)
			if verr != nil {
				return nil, p.wrapValidateErr(verr)
			}
			typ = cst.TokenNode{Tok: token.WithValue(token.TYPE_IDENT, value.CSTRef(normalized), rawParams.Pos())}
		} else {
			typ = rawParams
		}
		if p.lex.Peek(0).Kind != token.RPAREN {
			return nil, p.fail(p.lex.Peek(0).Pos, "expected ')' to close define, found "+p.lex.Peek(0).String())
		}
		p.lex.Next()
		return cst.FromSlice([]cst.Node{cst.TokenNode{Tok: root}, sym, typ, expr}), nil

	default:
		return nil, p.fail(p.lex.Peek(0).Pos, "expected a type or a closure after define name, found "+p.lex.Peek(0).String())
	}
}

// parseBinding parses a single `let`/`lets`/`letr` binding
// `(sym : T val)`, grounded on parseBinding.
func (p *Parser) parseBinding() (cst.Node, error) {
	open := p.lex.Next() // consume LPAREN

	if p.lex.Peek(0).Kind != token.IDENT {
		return nil, p.fail(p.lex.Peek(0).Pos, "bindings must start with a symbol, found "+p.lex.Peek(0).String())
	}
	sym, err := p.Parse()
	if err != nil {
		return nil, err
	}

	if p.lex.Peek(0).Kind != token.COLON {
		return nil, p.fail(p.lex.Peek(0).Pos, "expected ':' in binding type, found "+p.lex.Peek(0).String())
	}
	p.lex.Next()

	var typ cst.Node
	switch p.lex.Peek(0).Kind {
	case token.TYPE_IDENT:
		typ, err = p.Parse()
		if err != nil {
			return nil, err
		}
	case token.LPAREN:
		raw, err2 := p.Parse()
		if err2 != nil {
			return nil, err2
		}
		sub, _ := cst.AsList(raw)
		typ, err = validate.ValidateTypeList(sub)
		if err != nil {
			return nil, p.wrapValidateErr(err)
		}
	case token.IDENT:
		raw, err2 := p.Parse()
		if err2 != nil {
			return nil, err2
		}
		tok, ok := cst.AsToken(raw)
		if !ok || tok.Kind != token.SYMBOL {
			return nil, p.fail(raw.Pos(), "expected a type variable in type position, found "+raw.String())
		}
		typ = cst.TokenNode{Tok: token.WithValue(token.TYPE_VAR, tok.Value, tok.Pos)}
	default:
		return nil, p.fail(p.lex.Peek(0).Pos, "expected a type, found "+p.lex.Peek(0).String())
	}

	val, err := p.Parse()
	if err != nil {
		return nil, err
	}

	if p.lex.Peek(0).Kind != token.RPAREN {
		return nil, p.fail(p.lex.Peek(0).Pos, "expected ')' to close binding, found "+p.lex.Peek(0).String())
	}
	p.lex.Next()

	binding := cst.FromSlice([]cst.Node{sym, typ, val})
	return cst.TokenNode{Tok: token.WithValue(token.LET_BINDING, value.CSTRef(binding), open.Pos)}, nil
}

// parseLet parses `(let bindings expr)`, `(let name bindings expr)` (named
// let), `(lets bindings expr)` and `(letr bindings expr)`, grounded on
// parseLet.
func (p *Parser) parseLet() (cst.Node, error) {
	root := p.lex.Next()

	var name cst.Node
	var bindings []cst.Node

	switch p.lex.Peek(0).Kind {
	case token.IDENT:
		n, err := p.Parse()
		if err != nil {
			return nil, err
		}
		tok, ok := cst.AsToken(n)
		if !ok || tok.Kind != token.SYMBOL {
			return nil, p.fail(n.Pos(), "expected a name for named let, found "+n.String())
		}
		name = n

		if p.lex.Peek(0).Kind != token.LPAREN {
			return nil, p.fail(p.lex.Peek(0).Pos, root.Kind.String()+" bindings not followed by a bindings list, found "+p.lex.Peek(0).String())
		}
		p.lex.Next()
		for p.lex.Peek(0).Kind != token.RPAREN && p.lex.Peek(0).Kind != token.END {
			b, err := p.parseBinding()
			if err != nil {
				return nil, err
			}
			bindings = append(bindings, b)
		}
		if p.lex.Peek(0).Kind != token.RPAREN {
			return nil, p.fail(root.Pos, "unterminated bindings list")
		}
		p.lex.Next()

	case token.LPAREN:
		name = cst.TokenNode{Tok: token.New(token.SYMBOL, root.Pos)}
		p.lex.Next()
		for p.lex.Peek(0).Kind != token.RPAREN && p.lex.Peek(0).Kind != token.END {
			b, err := p.parseBinding()
			if err != nil {
				return nil, err
			}
			bindings = append(bindings, b)
		}
		if p.lex.Peek(0).Kind != token.RPAREN {
			return nil, p.fail(root.Pos, "unterminated bindings list")
		}
		p.lex.Next()

	default:
		return nil, p.fail(p.lex.Peek(0).Pos, root.Kind.String()+" bindings must begin with a name or a bindings list, found "+p.lex.Peek(0).String())
	}

	expr, err := p.Parse()
	if err != nil {
		return nil, err
	}

	if p.lex.Peek(0).Kind != token.RPAREN {
		return nil, p.fail(p.lex.Peek(0).Pos, "expected ')' to close "+root.Kind.String()+", found "+p.lex.Peek(0).String())
	}
	p.lex.Next()

	return cst.FromSlice([]cst.Node{cst.TokenNode{Tok: root}, name, cst.FromSlice(bindings), expr}), nil
}

// parseMatch parses `(match scrutinee (pattern rhs)...)`. Each clause is
// normalised by validate.ValidatePatternClause. No original_source
// counterpart — modelled on parseCond's clause-gathering shape.
func (p *Parser) parseMatch() (cst.Node, error) {
	root := p.lex.Next()

	scrutinee, err := p.Parse()
	if err != nil {
		return nil, err
	}

	if p.lex.Peek(0).Kind != token.LPAREN {
		return nil, p.fail(p.lex.Peek(0).Pos, "match must have at least one clause, found "+p.lex.Peek(0).String())
	}

	var clauses []cst.Node
	for p.lex.Peek(0).Kind == token.LPAREN {
		raw, err := p.Parse()
		if err != nil {
			return nil, err
		}
		clause, err := validate.ValidatePatternClause(raw)
		if err != nil {
			return nil, p.wrapValidateErr(err)
		}
		clauses = append(clauses, clause)
	}

	if p.lex.Peek(0).Kind != token.RPAREN {
		return nil, p.fail(p.lex.Peek(0).Pos, "expected ')' to close match, found "+p.lex.Peek(0).String())
	}
	p.lex.Next()

	return cst.Cons(cst.TokenNode{Tok: root}, cst.Cons(scrutinee, cst.FromSlice(clauses))), nil
}

// parseAdt parses `(data Name (TypeVar...) ctor...)`. The type-parameter
// list is normalised by validate.ValidateTypeParams, each constructor by
// validate.ValidateCtorDecl. No original_source counterpart — modelled on
// parseLambda's "parse then validate" shape.
func (p *Parser) parseAdt() (cst.Node, error) {
	root := p.lex.Next()

	if p.lex.Peek(0).Kind != token.IDENT {
		return nil, p.fail(p.lex.Peek(0).Pos, "expected a type name after data, found "+p.lex.Peek(0).String())
	}
	name, err := p.Parse()
	if err != nil {
		return nil, err
	}

	if p.lex.Peek(0).Kind != token.LPAREN {
		return nil, p.fail(p.lex.Peek(0).Pos, "expected a type parameter list after data name, found "+p.lex.Peek(0).String())
	}
	rawParams, err := p.Parse()
	if err != nil {
		return nil, err
	}
	typeParams, err := validate.ValidateTypeParams(rawParams)
	if err != nil {
		return nil, p.wrapValidateErr(err)
	}

	if p.lex.Peek(0).Kind != token.LPAREN {
		return nil, p.fail(p.lex.Peek(0).Pos, "data declarations require at least one constructor")
	}
	var ctors []cst.Node
	for p.lex.Peek(0).Kind == token.LPAREN {
		raw, err := p.Parse()
		if err != nil {
			return nil, err
		}
		ctor, err := validate.ValidateCtorDecl(raw)
		if err != nil {
			return nil, p.wrapValidateErr(err)
		}
		ctors = append(ctors, ctor)
	}

	if p.lex.Peek(0).Kind != token.RPAREN {
		return nil, p.fail(p.lex.Peek(0).Pos, "expected ')' to close data declaration, found "+p.lex.Peek(0).String())
	}
	p.lex.Next()

	return cst.FromSlice([]cst.Node{cst.TokenNode{Tok: root}, name, typeParams, cst.FromSlice(ctors)}), nil
}

// parseQuoteCore consumes the root quote-family token plus exactly one
// quoted expression and checks the nesting invariant, grounded on
// parseQuote.
//
// The nesting depth is the parser's ambient p.quoteDepth, not a value
// recomputed from root alone: a bare QQUOTE/UNQUOTE/UNQUOTESPLICE token only
// tells you this form's *effect* on depth, not the depth already
// accumulated by any enclosing quasiquote the recursive descent is
// currently inside. p.quoteDepth is saved and restored around the
// recursive p.Parse() call so a nested quote form (reached through an
// ordinary parseList/parseLambda/etc. recursion, not just directly) sees
// the depth its lexical position actually has.
func (p *Parser) parseQuoteCore() (token.Token, cst.Node, error) {
	root := p.lex.Next()

	next := p.quoteDepth
	switch root.Kind {
	case token.QQUOTE:
		next++
	case token.UNQUOTE, token.UNQUOTESPLICE:
		if p.quoteDepth == 0 {
			return token.Token{}, nil, p.fail(root.Pos, root.Kind.String()+" used outside of a quasiquote")
		}
		next--
	}

	saved := p.quoteDepth
	p.quoteDepth = next
	quoted, err := p.Parse()
	p.quoteDepth = saved
	if err != nil {
		return token.Token{}, nil, err
	}
	if !validate.ValidateQuote(quoted, next) {
		return token.Token{}, nil, p.fail(root.Pos, "unquote nested deeper than its enclosing quasiquote")
	}
	return root, quoted, nil
}

// parseQuotePrefix handles the reader-macro punctuation forms ', `, ,, ,@ —
// there is no enclosing paren to balance.
func (p *Parser) parseQuotePrefix() (cst.Node, error) {
	root, quoted, err := p.parseQuoteCore()
	if err != nil {
		return nil, err
	}
	return cst.FromSlice([]cst.Node{cst.TokenNode{Tok: root}, quoted}), nil
}

// parseQuoteForm handles the parenthesised word forms `(quote x)`,
// `(qquote x)`, `(unquote x)`, `(unquote-splice x)` reached via
// parseParenForm: the caller already consumed the opening LPAREN, so this
// must also consume the matching RPAREN (original_source's parseQuote
// leaves this unbalanced since its lexer never word-recognises these
// names; the distilled lexer does, so this form additionally closes its
// own paren).
func (p *Parser) parseQuoteForm() (cst.Node, error) {
	root, quoted, err := p.parseQuoteCore()
	if err != nil {
		return nil, err
	}
	if p.lex.Peek(0).Kind != token.RPAREN {
		return nil, p.fail(p.lex.Peek(0).Pos, "expected ')' to close "+root.Kind.String()+", found "+p.lex.Peek(0).String())
	}
	p.lex.Next()
	return cst.FromSlice([]cst.Node{cst.TokenNode{Tok: root}, quoted}), nil
}
