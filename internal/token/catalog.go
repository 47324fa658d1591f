package token

// catalog is the total mapping from every reserved lexeme (keyword, operator,
// punctuation) to its kind. Fixed at compile time; never mutated.
var catalog = map[string]Kind{
	"int":    KwInt,
	"char":   KwChar,
	"string": KwString,
	"bool":   KwBool,
	"const":  KwConst,
	"for":    KwFor,
	"while":  KwWhile,
	"do":     KwDo,
	"if":     KwIf,
	"else":   KwElse,
	"cin":    KwCin,
	"cout":   KwCout,
	"return": KwReturn,
	"main":   KwMain,
	";":      Semicolon,
	",":      Comma,
	".":      Dot,
	"+":      Plus,
	"*":      Star,
	"(":      LParen,
	")":      RParen,
	"[":      LBracket,
	"]":      RBracket,
	"{":      LBrace,
	"}":      RBrace,
	"-":      Minus,
	"<":      Lt,
	">":      Gt,
	"=":      Assign,
	"==":     EqEq,
	":":      Colon,
	"<=":     LtEq,
	">=":     GtEq,
	"!=":     BangEq,
	"&&":     AndAnd,
	"||":     OrOr,
}

// Lookup возвращает тип и bool если лексема — зарезервированное слово или символ.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func Lookup(lexeme string) (Kind, bool) {
	k, ok := catalog[lexeme]
	return k, ok
}

// LookupKeyword is like Lookup but matches reserved words only.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := catalog[ident]
	if !ok || !k.IsKeyword() {
		return Invalid, false
	}
	return k, true
}
