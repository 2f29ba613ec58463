package bptree

import (
	"bytes"
	"encoding/gob"

	"github.com/bwmarrin/snowflake"
)

func init() {
	snowflake.Epoch = 1735689600000 // Wed Jan 01 2025 00:00:00 GMT+0000

	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}

	idGenerator = node
}

var (
	idGenerator *snowflake.Node
)

// nextNodeID mints the stable identifier a node keeps for its lifetime.
// The ids only surface in dumps; the tree never orders or routes by them.
func nextNodeID() int64 {
	return idGenerator.Generate().Int64()
}

// NoNode is the Prev/Next id of a leaf at either end of the leaf list.
const NoNode int64 = -1

// NodeDump is one node of a tree-shape dump: an ordered, nested record
// per node used by tests and debugging tooling. Leaves carry their
// entries plus the ids of their list neighbours; internal nodes carry
// their separators and children. No canonical wire format is implied.
type NodeDump[K, V any] struct {
	ID   int64
	Leaf bool

	Keys     []K
	Children []*NodeDump[K, V]

	Entries []Entry[K, V]
	Prev    int64
	Next    int64
}

// Dump captures the current shape of the tree.
func (t *Tree[K, V]) Dump() *NodeDump[K, V] {
	return dumpNode(t.root)
}

func dumpNode[K, V any](n *node[K, V]) *NodeDump[K, V] {
	d := &NodeDump[K, V]{ID: n.id, Leaf: n.leaf}

	if n.leaf {
		d.Entries = append(d.Entries, n.entries...)
		d.Prev, d.Next = linkID(n.prev), linkID(n.next)
		return d
	}

	d.Keys = append(d.Keys, n.keys...)
	for _, child := range n.children {
		d.Children = append(d.Children, dumpNode(child))
	}
	return d
}

func linkID[K, V any](n *node[K, V]) int64 {
	if n == nil {
		return NoNode
	}
	return n.id
}

// Serialize gob-encodes a shape dump of the tree. K and V must be gob
// encodable.
func (t *Tree[K, V]) Serialize() ([]byte, error) {
	var buffer bytes.Buffer
	if err := gob.NewEncoder(&buffer).Encode(t.Dump()); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
