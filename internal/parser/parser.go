// Package parser implements the recursive-descent parser: it consumes
// Tokens from a Lexer through peek/next, producing CST Nodes and invoking
// validators on productions that have structural constraints. The parser
// is the sole orchestrator — validators never touch the lexer, and the
// lexer never consults the reserved-word table itself.
//
// Grounded on original_source/src/parser.cpp's free-function parser (parse,
// parseList, promoteIdent, parseCond, parseLambda, ...), restructured as
// methods on a Parser so the lexer and any accumulated state travel
// together the way the teacher's recursive-descent parsers carry a single
// receiver.
package parser

import (
	"github.com/sprout-lang/sprout/internal/cst"
	"github.com/sprout-lang/sprout/internal/errors"
	"github.com/sprout-lang/sprout/internal/lexer"
	"github.com/sprout-lang/sprout/internal/token"
	"github.com/sprout-lang/sprout/internal/value"
)

// Parser consumes a Lexer's token stream and produces CST Nodes. It owns no
// state beyond the lexer it wraps, the local stacks of whichever parse
// method is currently on the Go call stack, and quoteDepth — matching
// spec.md §5's "no shared mutable state" resource model save for that one
// save/restore counter.
type Parser struct {
	lex     *lexer.Lexer
	traceFn func(string)

	// quoteDepth is the ambient quasiquote-nesting depth at the parser's
	// current position: 0 outside any quasiquote, incremented on entry to a
	// QQUOTE form's body and decremented on entry to an UNQUOTE/
	// UNQUOTESPLICE form's body. parseQuoteCore saves and restores it around
	// each recursive p.Parse() call so the value observed by a nested quote
	// form reflects its true lexical context instead of resetting per call.
	quoteDepth int
}

// Option configures a Parser at construction, mirroring lexer.Option.
type Option func(*Parser)

// WithTrace installs a callback invoked with a one-line description of
// every top-level production as it completes.
func WithTrace(fn func(string)) Option {
	return func(p *Parser) { p.traceFn = fn }
}

// New wraps lex in a Parser.
func New(lex *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{lex: lex}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseProgram lexes and parses src in full: a sequence of top-level
// expressions obtained by repeated Parse calls until END, per spec.md
// §4.2's "public contract".
func ParseProgram(src string, opts ...lexer.Option) ([]cst.Node, error) {
	lex := lexer.New(src, opts...)
	p := New(lex)

	var program []cst.Node
	for lex.Peek(0).Kind != token.END {
		n, err := p.Parse()
		if err != nil {
			return program, err
		}
		program = append(program, n)
	}
	if err := lex.Err(); err != nil {
		return program, err
	}
	return program, nil
}

func (p *Parser) fail(pos token.Position, msg string) error {
	return errors.NewSourceError("parser", pos, msg, p.lex.Source(), "")
}

// wrapValidateErr attaches the parser's source text to an error a
// validate.Validate* call returned. Validators build their SourceError with
// an empty Source, since they never touch the lexer (§4.3); the parser is
// the one place that holds both the error and the source, so it fills the
// field in before the error propagates any further.
func (p *Parser) wrapValidateErr(err error) error {
	if se, ok := err.(*errors.SourceError); ok {
		se.Source = p.lex.Source()
	}
	return err
}

// selfDelivering is the closed set of token kinds that the parser consumes
// and wraps as a Node without further processing, per spec.md §4.2.
var selfDelivering = map[token.Kind]bool{
	token.NUMBER:      true,
	token.BOOL:        true,
	token.CHAR:        true,
	token.STRING:      true,
	token.NIL:         true,
	token.COLON:       true,
	token.ARROW:       true,
	token.DOT:         true,
	token.TYPE_IDENT:  true,
	token.FORALL:      true,
	token.PLACEHOLDER: true,
	token.CONS:        true,
}

// Parse consumes tokens until the smallest complete expression is formed
// and returns it, dispatching on peek(0).kind per spec.md §4.2.
func (p *Parser) Parse() (cst.Node, error) {
	n, err := p.parse()
	if err == nil && p.traceFn != nil {
		p.traceFn(n.String())
	}
	return n, err
}

func (p *Parser) parse() (cst.Node, error) {
	tok := p.lex.Peek(0)

	switch {
	case tok.Kind == token.END:
		if err := p.lex.Err(); err != nil {
			return nil, err
		}
		return nil, p.fail(tok.Pos, "unexpected end of input")

	case selfDelivering[tok.Kind]:
		return cst.TokenNode{Tok: p.lex.Next()}, nil

	case tok.Kind == token.LPAREN:
		return p.parseParenForm()

	case tok.Kind == token.QUOTE || tok.Kind == token.QQUOTE ||
		tok.Kind == token.UNQUOTE || tok.Kind == token.UNQUOTESPLICE:
		return p.parseQuotePrefix()

	case tok.Kind == token.IDENT:
		return p.unwrapIdent()

	default:
		return nil, p.fail(tok.Pos, "unexpected token "+tok.String())
	}
}

// parseParenForm handles everything starting with an already-peeked
// LPAREN: it consumes the paren, promotes a head IDENT if reserved, then
// dispatches on the (possibly promoted) head token.
func (p *Parser) parseParenForm() (n cst.Node, err error) {
	open := p.lex.Next()

	// A form that runs out of input before its closing paren fails as an
	// unterminated list at its opening paren, whichever production hit END.
	defer func() {
		if se, ok := err.(*errors.SourceError); ok && se.Phase == "parser" && se.Message != "unterminated list" &&
			p.lex.Peek(0).Kind == token.END && p.lex.Err() == nil {
			err = p.fail(open.Pos, "unterminated list")
		}
	}()

	promoted := false
	if p.lex.Peek(0).Kind == token.IDENT {
		if err := p.promoteIdent(); err != nil {
			return nil, err
		}
		promoted = p.lex.Peek(0).Kind != token.IDENT
	}

	switch p.lex.Peek(0).Kind {
	case token.COND:
		return p.parseCond()
	case token.LAMBDA:
		return p.parseLambda()
	case token.DEFINE:
		return p.parseDefine()
	case token.TLAMBDA:
		return p.parseTypeLambda()
	case token.TAPPLY:
		return p.parseTypeApplication()
	case token.QUOTE, token.QQUOTE, token.UNQUOTE, token.UNQUOTESPLICE:
		return p.parseQuoteForm()
	case token.LET, token.LETS, token.LETR:
		return p.parseLet()
	case token.MATCH:
		return p.parseMatch()
	case token.DATA:
		return p.parseAdt()
	default:
		if promoted {
			// A keyword with no bespoke production heads a generic list.
			head := cst.TokenNode{Tok: p.lex.Next()}
			rest, err := p.parseList(open.Pos)
			if err != nil {
				return nil, err
			}
			tail, _ := cst.AsList(rest)
			return cst.Cons(head, tail), nil
		}
		return p.parseList(open.Pos)
	}
}

// parseList consumes Nodes recursively until a matching RPAREN, grounded on
// parseList. END before RPAREN fails with the opening paren's location.
func (p *Parser) parseList(openPos token.Position) (cst.Node, error) {
	var elems []cst.Node
	for p.lex.Peek(0).Kind != token.RPAREN && p.lex.Peek(0).Kind != token.END {
		n, err := p.Parse()
		if err != nil {
			return nil, err
		}
		elems = append(elems, n)
	}
	if p.lex.Peek(0).Kind == token.END {
		if err := p.lex.Err(); err != nil {
			return nil, err
		}
		return nil, p.fail(openPos, "unterminated list")
	}
	p.lex.Next() // consume RPAREN
	return cst.FromSlice(elems), nil
}

// promoteIdent consults the fixed reserved-name table and, on a hit, swaps
// the lexer's current IDENT for the matching keyword-kind token — the only
// place the parser mutates the lexer (§4.4).
func (p *Parser) promoteIdent() error {
	tok := p.lex.Peek(0)
	if !tok.Value.IsSymbol() {
		return p.fail(tok.Pos, "ident with no value or non-symbol value: "+tok.String())
	}
	name := tok.Value.SymbolVal().Name
	kind, ok := token.ReservedKind(name)
	if !ok {
		return nil
	}
	p.lex.SwapCurrent(token.New(kind, tok.Pos))
	return nil
}

// unwrapIdent consumes an IDENT and re-tags it SYMBOL, mapping the bare
// symbol "else" to the boolean true so it can be used as a catch-all
// pattern or guard, grounded on unwrapIdent.
func (p *Parser) unwrapIdent() (cst.Node, error) {
	tok := p.lex.Next()
	if !tok.Value.IsSymbol() {
		return nil, p.fail(tok.Pos, "attempted to unwrap identifier with no value: "+tok.String())
	}
	name := tok.Value.SymbolVal().Name
	if name == "else" {
		return cst.TokenNode{Tok: token.WithValue(token.BOOL, value.Bool(true), tok.Pos)}, nil
	}
	return cst.TokenNode{Tok: token.WithValue(token.SYMBOL, value.Sym(value.NewSymbol(name)), tok.Pos)}, nil
}
