package lexer

import (
	"lexa/internal/token"
)

// scanNumber сканирует целочисленную константу: [0-9]+. Других числовых форм
// (дробных, шестнадцатеричных, подчёркиваний) в грамматике нет; "123abc" — это
// две лексемы: число и идентификатор.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	return lx.emit(start)
}
