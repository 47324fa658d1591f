package lexer

import (
	"fmt"

	"lexa/internal/diag"
	"lexa/internal/token"
)

// Classify maps a raw lexeme to its token kind. Pure function of the lexeme and the
// static catalog; decision order is fixed:
//  1. exact catalog hit (keyword, operator, punctuation);
//  2. identifier pattern;
//  3. integer / char / string constant pattern;
//  4. otherwise invalid.
//
// Only the classifier declares a lexeme invalid — the scanners always produce some
// lexeme for every position.
func Classify(lexeme string) (token.Kind, bool) {
	if k, ok := token.Lookup(lexeme); ok {
		return k, true
	}
	if isIdentLexeme(lexeme) {
		return token.Ident, true
	}
	if isIntLexeme(lexeme) || isCharLexeme(lexeme) || isStringLexeme(lexeme) {
		return token.ConstLit, true
	}
	return token.Invalid, false
}

// emit завершает лексему: классифицирует срез [m, cursor) и строит токен.
func (lx *Lexer) emit(m Mark) token.Token {
	sp := lx.cursor.SpanFrom(m)
	text := string(lx.file.Content[sp.Start:sp.End])
	k, ok := Classify(text)
	if !ok {
		lx.errLex(diag.LexInvalidToken, sp, fmt.Sprintf("invalid token %q", text))
		k = token.Invalid
	}
	return token.Token{Kind: k, Span: sp, Text: text}
}

// ===== Лексемные матчеры (строго по грамматике Mini-C) =====

func isIdentLexeme(s string) bool {
	if len(s) == 0 || !isIdentStartByte(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentContinueByte(s[i]) {
			return false
		}
	}
	return true
}

func isIntLexeme(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDec(s[i]) {
			return false
		}
	}
	return true
}

// isCharLexeme: ровно 'X', где X — одна буква или цифра. Без escape-последовательностей.
func isCharLexeme(s string) bool {
	return len(s) == 3 && s[0] == '\'' && s[2] == '\'' && isAlnum(s[1])
}

// isStringLexeme: "X*", тело только из букв и цифр. Без escape-последовательностей.
func isStringLexeme(s string) bool {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return false
	}
	for i := 1; i < len(s)-1; i++ {
		if !isAlnum(s[i]) {
			return false
		}
	}
	return true
}
