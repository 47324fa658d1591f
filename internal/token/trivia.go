package token

import "lexa/internal/source"

// TriviaKind classifies non-significant source text attached to tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	}
	return "Unknown"
}

// Trivia is a run of whitespace preceding a significant token. The Mini-C grammar has
// no comments, so whitespace is the only trivia kind.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
