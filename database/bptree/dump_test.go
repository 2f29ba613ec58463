package bptree

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_DumpLeafLinks(t *testing.T) {
	tree := New[int, int](intLess, 2)
	for i := 0; i < 30; i++ {
		tree.Insert(i, i)
	}

	d := tree.Dump()
	require.False(t, d.Leaf)

	// Collect leaves left to right and check the id chain.
	var leaves []*NodeDump[int, int]
	var walk func(d *NodeDump[int, int])
	walk = func(d *NodeDump[int, int]) {
		if d.Leaf {
			leaves = append(leaves, d)
			return
		}
		for _, c := range d.Children {
			walk(c)
		}
	}
	walk(d)
	require.Greater(t, len(leaves), 1)

	assert.Equal(t, NoNode, leaves[0].Prev)
	assert.Equal(t, NoNode, leaves[len(leaves)-1].Next)
	for i := 1; i < len(leaves); i++ {
		assert.Equal(t, leaves[i].ID, leaves[i-1].Next, "forward link mismatch at leaf %d", i-1)
		assert.Equal(t, leaves[i-1].ID, leaves[i].Prev, "backward link mismatch at leaf %d", i)
	}
}

func TestTree_DumpStableIDs(t *testing.T) {
	tree := New[int, int](intLess, 3)
	for i := 0; i < 10; i++ {
		tree.Insert(i, i)
	}

	first, second := tree.Dump(), tree.Dump()
	assert.Equal(t, first, second, "Expected identical dumps of an unchanged tree")
}

func TestTree_Serialize(t *testing.T) {
	tree := New[int, string](intLess, 3)
	for i, v := range []string{"a", "b", "c", "d", "e", "f"} {
		tree.Insert((i+1)*10, v)
	}

	raw, err := tree.Serialize()
	require.NoError(t, err, "Expected the dump to encode")
	require.NotEmpty(t, raw)

	var decoded NodeDump[int, string]
	err = gob.NewDecoder(bytes.NewReader(raw)).Decode(&decoded)
	require.NoError(t, err, "Expected the dump to decode")
	assert.Equal(t, tree.Dump(), &decoded, "Expected a round-trip of the shape dump")
}
