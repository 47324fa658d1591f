// Package pif builds the program internal form: one (kind code, symbol index) pair
// per significant token, encoding the token stream independently of lexeme text.
//
// The build is two-phase. Phase one inserts valued lexemes into the symbol table as
// tokens arrive and retains only the node ID per stream position. Phase two, after
// the whole source has been consumed, resolves every retained node to its rank in
// the table's final in-order traversal. Resolving ranks eagerly at insertion time
// would be unsound: a later key that sorts lexicographically earlier shifts the
// ranks of keys already emitted.
package pif

import (
	"lexa/internal/symtab"
	"lexa/internal/token"
)

// Entry is one cell of the program internal form. Index is the zero-based rank of
// the token's lexeme in the final symbol table, or token.NoSymbolIndex for tokens of
// the closed vocabulary.
type Entry struct {
	Kind  token.Kind
	Index int64
}

type slot struct {
	kind token.Kind
	node symtab.NodeID // NoNodeID для зарезервированных лексем
}

// Builder accumulates tokens for one analysis run. It owns the symbol table until
// Finalize hands both results back to the caller.
type Builder struct {
	table *symtab.Table
	slots []slot
}

// NewBuilder creates a builder with a fresh symbol table.
func NewBuilder() *Builder {
	return &Builder{
		table: symtab.NewTable(0),
		slots: make([]slot, 0, 64),
	}
}

// Add appends one significant token. Valued tokens (identifiers and constants) are
// inserted into the symbol table; insertion is idempotent, so repeated lexemes share
// one node. EOF and Invalid tokens must be filtered by the caller.
func (b *Builder) Add(tok token.Token) {
	s := slot{kind: tok.Kind}
	if tok.HasSymbol() {
		s.node = b.table.Insert(tok.Text)
	}
	b.slots = append(b.slots, s)
}

// Len reports the number of accumulated entries.
func (b *Builder) Len() int { return len(b.slots) }

// Table exposes the symbol table being built.
func (b *Builder) Table() *symtab.Table { return b.table }

// Finalize resolves every retained node against the table's final in-order ranks and
// returns the completed form. The table must not grow afterwards, or the returned
// indices go stale.
func (b *Builder) Finalize() []Entry {
	ranks := b.table.Ranks() // один обход; ranks[NoNodeID] == -1
	out := make([]Entry, len(b.slots))
	for i, s := range b.slots {
		out[i] = Entry{Kind: s.kind, Index: ranks[s.node]}
	}
	return out
}
