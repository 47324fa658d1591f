// Package token defines lexical token kinds and trivia for the Mini-C analyzer.
// Invariants:
//   - Kind values up to OrOr are the wire codes used in the program internal form;
//     they are frozen and must never be reordered.
//   - Token.Text is sliced from the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace never appears in the main token stream; it is leading Trivia.
//   - Only Ident and ConstLit tokens carry a symbol-table value.
package token
