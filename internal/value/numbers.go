package value

import (
	"regexp"
	"strconv"
)

// Numeric literal patterns, transcribed from original_source/src/lexer.cpp's
// RE_INT / RE_FLOAT / RE_RATIONAL / RE_COMPLEX and pinned verbatim by
// spec.md §3–§4.1. doubleCoeff is the unsigned "int-or-strict-float"
// coefficient shared by the complex pattern; sign is handled outside it.
const doubleCoeff = `(?:(?:0|[1-9][0-9]*)|(?:[0-9]+\.[0-9]+))`

var (
	reInt      = regexp.MustCompile(`^[+-]?(?:0|[1-9][0-9]*)$`)
	reFloat    = regexp.MustCompile(`^[+-]?(?:[0-9]+\.[0-9]+)$`)
	reRational = regexp.MustCompile(`^[+-]?(?:0|[1-9][0-9]*)/(?:0|[1-9][0-9]*)$`)
	reComplex  = regexp.MustCompile(
		`^(?:` +
			`[+-]?` + doubleCoeff + `[+-](?:` + doubleCoeff + `)?i` + // a±bi, b optional
			`|` +
			`[+-]?(?:` + doubleCoeff + `)?i` + // pure imaginary: ±bi, ±i, i
			`)$`,
	)
)

// ParseNumber classifies and parses a numeric candidate string lexed by the
// lexer's digit/sign/`i` branch, trying complex, then rational, then float,
// then int — the same order original_source/src/lexer.cpp's parseNumber
// uses. The patterns are anchored and no candidate matches more than one of
// them, so the order does not change the result.
func ParseNumber(candidate string) (Value, error) {
	switch {
	case reComplex.MatchString(candidate):
		c, err := parseComplexLiteral(candidate)
		if err != nil {
			return Value{}, err
		}
		return ComplexValue(c), nil
	case reRational.MatchString(candidate):
		r, err := ParseRational(candidate)
		if err != nil {
			return Value{}, err
		}
		return RationalValue(r), nil
	case reFloat.MatchString(candidate):
		f, err := strconv.ParseFloat(candidate, 64)
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case reInt.MatchString(candidate):
		i, err := strconv.Atoi(candidate)
		if err != nil {
			return Value{}, err
		}
		return Int(i), nil
	default:
		return Value{}, &NumberSyntaxError{Candidate: candidate}
	}
}

// NumberSyntaxError reports a numeric candidate that matched none of the
// int/float/rational/complex grammars.
type NumberSyntaxError struct {
	Candidate string
}

func (e *NumberSyntaxError) Error() string {
	return "invalid number candidate: " + e.Candidate
}

// reComplexSplit locates the split between the real coefficient and the
// trailing `±coeff?i` imaginary part of a non-pure-imaginary complex literal.
var reComplexSplit = regexp.MustCompile(`^([+-]?` + doubleCoeff + `)([+-])(` + doubleCoeff + `)?i$`)
var rePureImaginary = regexp.MustCompile(`^([+-]?)(` + doubleCoeff + `)?i$`)

func parseComplexLiteral(candidate string) (Complex, error) {
	if m := reComplexSplit.FindStringSubmatch(candidate); m != nil {
		re, err := parseCoeff(m[1])
		if err != nil {
			return Complex{}, err
		}
		im := 1.0
		if m[3] != "" {
			im, err = parseCoeff(m[3])
			if err != nil {
				return Complex{}, err
			}
		}
		if m[2] == "-" {
			im = -im
		}
		return NewComplex(re, im), nil
	}
	if m := rePureImaginary.FindStringSubmatch(candidate); m != nil {
		im := 1.0
		if m[2] != "" {
			v, err := parseCoeff(m[2])
			if err != nil {
				return Complex{}, err
			}
			im = v
		}
		if m[1] == "-" {
			im = -im
		}
		return NewComplex(0, im), nil
	}
	return Complex{}, &NumberSyntaxError{Candidate: candidate}
}

func parseCoeff(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
