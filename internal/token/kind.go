package token

// Kind represents the category of a source token. The numeric value of every kind up to
// and including OrOr is the code written into the program internal form, so the order
// below is frozen.
type Kind uint8

const (
	// Ident represents an identifier token.
	Ident Kind = iota
	// ConstLit represents an integer, char, or string constant token.
	ConstLit
	// KwInt represents the 'int' keyword.
	KwInt // int
	// KwChar represents the 'char' keyword.
	KwChar // char
	// KwString represents the 'string' keyword.
	KwString // string
	// KwBool represents the 'bool' keyword.
	KwBool // bool
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwCin represents the 'cin' keyword.
	KwCin // cin
	// KwCout represents the 'cout' keyword.
	KwCout // cout
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwMain represents the 'main' keyword.
	KwMain // main

	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Plus represents the plus operator token.
	Plus // +
	// Star represents the star operator token.
	Star // *
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Minus represents the minus operator token.
	Minus // -
	// Lt represents the lt operator token.
	Lt // <
	// Gt represents the gt operator token.
	Gt // >
	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the eq eq operator token.
	EqEq // ==
	// Colon represents the colon token.
	Colon // :
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// BangEq represents the bang eq operator token.
	BangEq // !=
	// AndAnd represents the and and operator token.
	AndAnd // &&
	// OrOr represents the or or operator token.
	OrOr // ||

	// EOF marks the end of the source input. Never encoded in a PIF.
	EOF
	// Invalid indicates an erroneous token.
	Invalid
)

// NoSymbolIndex is the PIF index of tokens that have no symbol-table entry.
const NoSymbolIndex int64 = -1

var kindNames = [...]string{
	Ident:     "Ident",
	ConstLit:  "ConstLit",
	KwInt:     "KwInt",
	KwChar:    "KwChar",
	KwString:  "KwString",
	KwBool:    "KwBool",
	KwConst:   "KwConst",
	KwFor:     "KwFor",
	KwWhile:   "KwWhile",
	KwDo:      "KwDo",
	KwIf:      "KwIf",
	KwElse:    "KwElse",
	KwCin:     "KwCin",
	KwCout:    "KwCout",
	KwReturn:  "KwReturn",
	KwMain:    "KwMain",
	Semicolon: "Semicolon",
	Comma:     "Comma",
	Dot:       "Dot",
	Plus:      "Plus",
	Star:      "Star",
	LParen:    "LParen",
	RParen:    "RParen",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	Minus:     "Minus",
	Lt:        "Lt",
	Gt:        "Gt",
	Assign:    "Assign",
	EqEq:      "EqEq",
	Colon:     "Colon",
	LtEq:      "LtEq",
	GtEq:      "GtEq",
	BangEq:    "BangEq",
	AndAnd:    "AndAnd",
	OrOr:      "OrOr",
	EOF:       "EOF",
	Invalid:   "Invalid",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// Code returns the wire code of the kind as it appears in the program internal form.
func (k Kind) Code() int64 { return int64(k) }

// KindFromCode maps a wire code back to its kind. Only codes of the frozen wire
// range (Ident through OrOr) round-trip; anything else reports false.
func KindFromCode(code int64) (Kind, bool) {
	if code < 0 || code > int64(OrOr) {
		return Invalid, false
	}
	return Kind(code), true
}

// HasSymbol reports whether tokens of this kind carry a lexeme that belongs in the
// symbol table.
func (k Kind) HasSymbol() bool { return k == Ident || k == ConstLit }

// IsKeyword reports whether the kind is a reserved word.
func (k Kind) IsKeyword() bool { return k >= KwInt && k <= KwMain }

// IsPunctOrOp reports whether the kind is punctuation or an operator.
func (k Kind) IsPunctOrOp() bool { return k >= Semicolon && k <= OrOr }
