package lexer

import (
	"lexa/internal/token"
)

// scanIdentOrKeyword сканирует максимальную последовательность [A-Za-z0-9_] начиная с
// буквы или '_'. Ключевое слово это или идентификатор — решает классификатор.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	return lx.emit(start)
}
