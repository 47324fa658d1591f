package token

import (
	"lexa/internal/source"
)

// Token represents a single source token with its location and leading trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// HasSymbol reports whether the token carries a lexeme destined for the symbol table.
func (t Token) HasSymbol() bool { return t.Kind.HasSymbol() }

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool { return t.Kind.IsPunctOrOp() }
