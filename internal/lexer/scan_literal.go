package lexer

import (
	"lexa/internal/token"
)

// scanCharLit сканирует символьную константу строго вида 'X', где X — буква или
// цифра. Escape-последовательностей нет. Если форма не совпала, лексемой становится
// одиночная кавычка — классификатор объявит её невалидной.
func (lx *Lexer) scanCharLit() token.Token {
	start := lx.cursor.Mark()
	if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == '\'' && isAlnum(b1) && b2 == '\'' {
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cursor.Bump()
		return lx.emit(start)
	}
	lx.cursor.Bump() // одиночная '
	return lx.emit(start)
}

// scanStringLit сканирует строковую константу "X*" с телом только из букв и цифр.
// Если закрывающей кавычки нет (или тело не алфавитно-цифровое), курсор откатывается
// и лексемой становится одиночная кавычка.
func (lx *Lexer) scanStringLit() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая "
	for isAlnum(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	if lx.cursor.Eat('"') {
		return lx.emit(start)
	}
	// не строковый литерал: откат и одиночная "
	lx.cursor.Reset(start)
	lx.cursor.Bump()
	return lx.emit(start)
}
