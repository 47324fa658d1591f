package symtab

// NodeID identifies a node inside the table arena.
type NodeID uint32

const (
	// NoNodeID marks the absence of a node reference.
	NoNodeID NodeID = 0
)

// IsValid reports whether the node ID refers to an allocated node.
func (id NodeID) IsValid() bool { return id != NoNodeID }
