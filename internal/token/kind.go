package token

// Kind is the exhaustive token-kind enum from spec.md §3. Grounded on
// internal/lexer/token_type.go's closed TokenType enum + String()/table
// pattern, but over this language's (much smaller) token surface.
type Kind int

const (
	END Kind = iota

	// Literal-bearing kinds.
	NUMBER
	IDENT
	SYMBOL
	BOOL
	CHAR
	STRING

	// Punctuation.
	LPAREN
	RPAREN
	COLON
	ARROW
	DOT
	PLACEHOLDER

	// Reader-macro (quote family) tokens.
	QUOTE
	QQUOTE
	UNQUOTE
	UNQUOTESPLICE

	// Type-expression tokens.
	TYPE_IDENT
	TYPE_VAR
	TYPE_PARAM_LIST
	PARAM_LIST
	RETURN_TYPE

	// Structured-value tokens the parser/validators attach CST references to.
	LET_BINDING
	CLAUSE
	PATTERN
	PATTERN_CLAUSE
	CTOR_DECL

	// Reserved-word keyword kinds, reached only through identifier promotion
	// (§4.4) — never emitted directly by the lexer.
	LAMBDA
	TLAMBDA
	TAPPLY
	FORALL
	COND
	LET
	LETS
	LETR
	DEFINE
	DATA
	MATCH
	PERFORM
	HANDLE
	RETURN
	ERROR
	RAISE
	TRY
	CATCH
	SHIFT
	RESET
	FORCE
	DO
	EQ
	EQUALS

	// Kinds present in spec.md's TokenKind set and referenced by the
	// "self-delivering atoms" dispatch list (§4.2) but not reachable through
	// this lexer's tokenisation rules (§4.1) or the promote_ident table
	// (§4.4). Kept for enum
	// exhaustiveness parity with spec.md, matching original_source/'s own
	// unreachable TokenKind::LIST etc.
	NIL
	LIST
	CONS
	JUST
	NOTHING
	MAYBE

	kindEnd // sentinel: one past the last real kind
)

// String returns the kind's identifier-style name.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

var kindNames = [...]string{
	END: "END",

	NUMBER: "NUMBER",
	IDENT:  "IDENT",
	SYMBOL: "SYMBOL",
	BOOL:   "BOOL",
	CHAR:   "CHAR",
	STRING: "STRING",

	LPAREN:      "LPAREN",
	RPAREN:      "RPAREN",
	COLON:       "COLON",
	ARROW:       "ARROW",
	DOT:         "DOT",
	PLACEHOLDER: "PLACEHOLDER",

	QUOTE:         "QUOTE",
	QQUOTE:        "QQUOTE",
	UNQUOTE:       "UNQUOTE",
	UNQUOTESPLICE: "UNQUOTESPLICE",

	TYPE_IDENT:      "TYPE_IDENT",
	TYPE_VAR:        "TYPE_VAR",
	TYPE_PARAM_LIST: "TYPE_PARAM_LIST",
	PARAM_LIST:      "PARAM_LIST",
	RETURN_TYPE:     "RETURN_TYPE",

	LET_BINDING:    "LET_BINDING",
	CLAUSE:         "CLAUSE",
	PATTERN:        "PATTERN",
	PATTERN_CLAUSE: "PATTERN_CLAUSE",
	CTOR_DECL:      "CTOR_DECL",

	LAMBDA:  "LAMBDA",
	TLAMBDA: "TLAMBDA",
	TAPPLY:  "TAPPLY",
	FORALL:  "FORALL",
	COND:    "COND",
	LET:     "LET",
	LETS:    "LETS",
	LETR:    "LETR",
	DEFINE:  "DEFINE",
	DATA:    "DATA",
	MATCH:   "MATCH",
	PERFORM: "PERFORM",
	HANDLE:  "HANDLE",
	RETURN:  "RETURN",
	ERROR:   "ERROR",
	RAISE:   "RAISE",
	TRY:     "TRY",
	CATCH:   "CATCH",
	SHIFT:   "SHIFT",
	RESET:   "RESET",
	FORCE:   "FORCE",
	DO:      "DO",
	EQ:      "EQ",
	EQUALS:  "EQUALS",

	NIL:     "NIL",
	LIST:    "LIST",
	CONS:    "CONS",
	JUST:    "JUST",
	NOTHING: "NOTHING",
	MAYBE:   "MAYBE",
}

// reserved maps a lexed identifier name to the keyword Kind it promotes to
// (§4.4). This is the table promote_ident/promoteIdent consults in the
// parser; it is defined here, alongside Kind, so both the parser and any
// tooling that wants to know "is this name reserved" share one source of
// truth.
var reserved = map[string]Kind{
	"lambda":  LAMBDA,
	"cond":    COND,
	"let":     LET,
	"lets":    LETS,
	"letr":    LETR,
	"define":  DEFINE,
	"shift":   SHIFT,
	"reset":   RESET,
	"force":   FORCE,
	"do":      DO,
	"forall":  FORALL,
	"tlambda": TLAMBDA,
	"tapply":  TAPPLY,
	"perform": PERFORM,
	"handle":  HANDLE,
	"return":  RETURN,
	"error":   ERROR,
	"raise":   RAISE,
	"try":     TRY,
	"catch":   CATCH,
	"eq?":     EQ,
	"equal?":  EQUALS,
	"match":   MATCH,
	"data":    DATA,
}

// ReservedKind reports whether name is a reserved word and, if so, the
// keyword Kind it promotes to.
func ReservedKind(name string) (Kind, bool) {
	k, ok := reserved[name]
	return k, ok
}

// kindByName inverts kindNames, built lazily on first use.
var kindByName map[string]Kind

// KindByName looks up a Kind by its String() spelling (e.g. "LAMBDA"). It
// exists for tooling and tests that name a kind in a serialised form,
// mirroring ReservedKind's name-to-Kind direction for reserved words.
func KindByName(name string) (Kind, bool) {
	if kindByName == nil {
		kindByName = make(map[string]Kind, len(kindNames))
		for k, n := range kindNames {
			kindByName[n] = Kind(k)
		}
	}
	k, ok := kindByName[name]
	return k, ok
}

// primitiveTypeNames is the closed set of TYPE_IDENT primitive names §3
// pins.
var primitiveTypeNames = map[string]bool{
	"int": true, "rational": true, "float": true, "complex": true,
	"bool": true, "char": true, "string": true, "symbol": true,
	"list": true, "vec": true,
}

// IsPrimitiveTypeName reports whether name is one of the closed set of
// primitive type identifiers.
func IsPrimitiveTypeName(name string) bool {
	return primitiveTypeNames[name]
}
