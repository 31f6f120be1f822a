package validate

import (
	"github.com/sprout-lang/sprout/internal/cst"
	"github.com/sprout-lang/sprout/internal/token"
)

// ValidateDottedList enforces spec.md §8's dotted-list invariant: at most
// one DOT token per list; if present, it sits exactly at position len-2,
// and the list has length >= 3. Nested lists are validated recursively.
// Token leaves pass through unchanged. No original_source counterpart —
// original_source's cons-lists have no dotted-pair literal syntax; this
// validator follows the same pure-function, no-shared-state shape as its
// siblings in this package.
func ValidateDottedList(n cst.Node) (cst.Node, error) {
	list, ok := cst.AsList(n)
	if !ok {
		return n, nil
	}

	elems := cst.Slice(list)
	dotCount := 0
	dotIdx := -1
	for i, el := range elems {
		if tok, ok := cst.AsToken(el); ok && tok.Kind == token.DOT {
			dotCount++
			dotIdx = i
		}
	}

	if dotCount > 1 {
		return nil, fail(n.Pos(), "list contains more than one dot")
	}
	if dotCount == 1 {
		if len(elems) < 3 {
			return nil, fail(n.Pos(), "dotted list must have at least three elements")
		}
		if dotIdx != len(elems)-2 {
			return nil, fail(elemPos(elems[dotIdx]), "dot must be the penultimate element of a dotted list")
		}
	}

	normalized := make([]cst.Node, len(elems))
	for i, el := range elems {
		if sub, ok := cst.AsList(el); ok {
			validated, err := ValidateDottedList(sub)
			if err != nil {
				return nil, err
			}
			normalized[i] = validated
		} else {
			normalized[i] = el
		}
	}
	return cst.FromSlice(normalized), nil
}
