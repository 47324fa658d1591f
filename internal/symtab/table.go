// Package symtab implements the per-run symbol table: an unbalanced binary search
// tree keyed by lexeme under byte-lexicographic order. Nodes live in a compact
// slice-based arena and are addressed by NodeID, so no pointer into the tree ever
// escapes the table. Content is append-only: there is no deletion, and inserting an
// existing key returns the existing node.
//
// The tree is deliberately left unbalanced: a table holds the symbols of a single
// source file, so worst-case linear insertion order stays cheap. The external
// contract (Insert/Find/Rank/InOrderKeys) does not expose the tree shape, so a
// balanced map could be substituted without touching callers.
package symtab

import (
	"fmt"

	"fortio.org/safecast"
)

type node struct {
	key   string
	left  NodeID
	right NodeID
}

// Table stores unique identifier/constant lexemes in lexicographic order.
type Table struct {
	nodes []node // index 0 reserved for NoNodeID
	root  NodeID
}

// NewTable creates an empty table with an optional capacity hint.
func NewTable(capacity uint) *Table {
	if capacity == 0 {
		capacity = 32
	}
	return &Table{
		nodes: make([]node, 1, capacity+1), // index 0 reserved for NoNodeID
		root:  NoNodeID,
	}
}

func (t *Table) alloc(key string) NodeID {
	value, err := safecast.Conv[uint32](len(t.nodes))
	if err != nil {
		panic(fmt.Errorf("symtab arena overflow: %w", err))
	}
	id := NodeID(value)
	t.nodes = append(t.nodes, node{key: key})
	return id
}

// Insert adds key to the table and returns its node ID. Inserting an existing key is
// a no-op that returns the existing node's ID; no duplicate is ever created.
func (t *Table) Insert(key string) NodeID {
	if !t.root.IsValid() {
		id := t.alloc(key)
		t.root = id
		return id
	}
	cur := t.root
	for {
		n := t.nodes[cur]
		switch {
		case key == n.key:
			return cur
		case key < n.key:
			if !n.left.IsValid() {
				id := t.alloc(key)
				t.nodes[cur].left = id
				return id
			}
			cur = n.left
		default:
			if !n.right.IsValid() {
				id := t.alloc(key)
				t.nodes[cur].right = id
				return id
			}
			cur = n.right
		}
	}
}

// Find returns the node ID for key, if present.
func (t *Table) Find(key string) (NodeID, bool) {
	cur := t.root
	for cur.IsValid() {
		n := t.nodes[cur]
		switch {
		case key == n.key:
			return cur, true
		case key < n.key:
			cur = n.left
		default:
			cur = n.right
		}
	}
	return NoNodeID, false
}

// KeyOf returns the key stored at the given node, or "" for an invalid ID.
func (t *Table) KeyOf(id NodeID) string {
	if !id.IsValid() || int(id) >= len(t.nodes) {
		return ""
	}
	return t.nodes[id].key
}

// Len reports the number of stored keys excluding the sentinel.
func (t *Table) Len() int { return len(t.nodes) - 1 }

// walk visits the tree in key order, calling fn for every node.
func (t *Table) walk(id NodeID, fn func(NodeID)) {
	if !id.IsValid() {
		return
	}
	n := t.nodes[id]
	t.walk(n.left, fn)
	fn(id)
	t.walk(n.right, fn)
}

// InOrderKeys returns every key in ascending lexicographic order, duplicate-free.
func (t *Table) InOrderKeys() []string {
	out := make([]string, 0, t.Len())
	t.walk(t.root, func(id NodeID) {
		out = append(out, t.nodes[id].key)
	})
	return out
}

// Ranks performs one in-order traversal and returns the zero-based rank of every
// node, indexed by NodeID (the sentinel slot holds -1). Ranks are only stable once
// the table stops growing: a later insert that sorts before an existing key shifts
// that key's rank.
func (t *Table) Ranks() []int64 {
	out := make([]int64, len(t.nodes))
	out[NoNodeID] = -1
	var next int64
	t.walk(t.root, func(id NodeID) {
		out[id] = next
		next++
	})
	return out
}

// Rank returns the zero-based in-order position of key in the current tree.
func (t *Table) Rank(key string) (int64, bool) {
	id, ok := t.Find(key)
	if !ok {
		return 0, false
	}
	return t.Ranks()[id], true
}
