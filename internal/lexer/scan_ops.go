package lexer

import (
	"lexa/internal/token"
)

// Жадность: сначала 2-символьные операторы (==, !=, <=, >=, &&, ||), затем один
// любой байт. Классификатор решает по каталогу, валидна ли получившаяся лексема;
// незнакомый символ становится однобайтовой лексемой и уходит в диагностику там.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	switch {
	case lx.try2('=', '='):
	case lx.try2('!', '='):
	case lx.try2('<', '='):
	case lx.try2('>', '='):
	case lx.try2('&', '&'):
	case lx.try2('|', '|'):
	default:
		lx.cursor.Bump()
	}

	return lx.emit(start)
}
