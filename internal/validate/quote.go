package validate

import (
	"github.com/sprout-lang/sprout/internal/cst"
	"github.com/sprout-lang/sprout/internal/token"
)

// ValidateQuote implements spec.md §8's quote-depth invariant, grounded on
// original_source/src/parser.cpp's validateQuote: a token fails only if it
// is UNQUOTE/UNQUOTESPLICE at depth 0. A list beginning with a quote-family
// token adjusts depth for its tail (QQUOTE increases it, UNQUOTE/
// UNQUOTESPLICE decreases it, failing if already 0); any other list is
// checked element-wise at the same depth.
func ValidateQuote(n cst.Node, depth int) bool {
	if tok, ok := cst.AsToken(n); ok {
		if tok.Kind == token.UNQUOTE || tok.Kind == token.UNQUOTESPLICE {
			return depth > 0
		}
		return true
	}

	list, _ := cst.AsList(n)
	if list == nil {
		return true
	}

	if headTok, ok := cst.AsToken(cst.Head(list)); ok {
		next := depth
		switch headTok.Kind {
		case token.QQUOTE:
			next = depth + 1
		case token.UNQUOTE, token.UNQUOTESPLICE:
			if depth == 0 {
				return false
			}
			next = depth - 1
		}
		return ValidateQuoteList(cst.Tail(list), next)
	}

	return ValidateQuoteList(list, depth)
}

// ValidateQuoteList maps ValidateQuote across a list's elements at a fixed
// depth.
func ValidateQuoteList(list *cst.List, depth int) bool {
	for cur := list; cur != nil; cur = cur.Tail {
		if !ValidateQuote(cur.Head, depth) {
			return false
		}
	}
	return true
}
