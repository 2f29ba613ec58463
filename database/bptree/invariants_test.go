package bptree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants validates the structural properties every operation
// must preserve: occupancy bounds, uniform leaf depth, child/key arity,
// separator bounds and the separator-copy property, a consistent leaf
// list, strictly ascending traversal, and an accurate size counter.
func checkInvariants[K, V any](t *testing.T, tree *Tree[K, V]) {
	t.Helper()

	var leaves []*node[K, V]
	leafDepth := -1

	var walk func(n *node[K, V], depth int, isRoot bool)
	walk = func(n *node[K, V], depth int, isRoot bool) {
		if !isRoot {
			require.GreaterOrEqual(t, n.count(), tree.minEntries(), "non-root node below minimum occupancy")
		}
		require.LessOrEqual(t, n.count(), tree.maxEntries(), "node above maximum occupancy")

		if n.leaf {
			if leafDepth == -1 {
				leafDepth = depth
			}
			require.Equal(t, leafDepth, depth, "leaves at different depths")
			for i := 1; i < len(n.entries); i++ {
				require.True(t, tree.less(n.entries[i-1].Key, n.entries[i].Key), "leaf entries out of order")
			}
			leaves = append(leaves, n)
			return
		}

		require.Equal(t, len(n.keys)+1, len(n.children), "child count must be key count plus one")
		if isRoot {
			require.NotEmpty(t, n.keys, "internal root with no keys")
		}

		for i, child := range n.children {
			if i > 0 {
				// Separator i-1 is a copy of the smallest key of child i.
				require.True(t, tree.equal(n.keys[i-1], child.subtreeMin()), "separator is not a copy of the right subtree minimum")
			}
			if i < len(n.keys) {
				max := child.rightmostLeaf()
				require.NotEmpty(t, max.entries)
				require.True(t, tree.less(max.entries[len(max.entries)-1].Key, n.keys[i]), "left subtree key not below separator")
			}
			walk(child, depth+1, false)
		}
	}
	walk(tree.root, 0, true)

	// The leaf list must thread the same leaves, in the same order, in
	// both directions.
	var forward []*node[K, V]
	for n := tree.root.leftmostLeaf(); n != nil; n = n.next {
		forward = append(forward, n)
	}
	require.Equal(t, leaves, forward, "leaf list disagrees with tree order")

	var backward []*node[K, V]
	for n := tree.root.rightmostLeaf(); n != nil; n = n.prev {
		backward = append(backward, n)
	}
	require.Equal(t, len(leaves), len(backward), "backward leaf walk length mismatch")
	for i, n := range backward {
		require.Same(t, leaves[len(leaves)-1-i], n, "backward leaf walk out of order")
	}

	total := 0
	var last *Entry[K, V]
	for _, leaf := range leaves {
		for i := range leaf.entries {
			if last != nil {
				require.True(t, tree.less(last.Key, leaf.entries[i].Key), "global traversal out of order")
			}
			last = &leaf.entries[i]
			total++
		}
	}
	require.Equal(t, tree.Len(), total, "size counter disagrees with traversal")
}

// collectKeys returns every key in leaf-list order.
func collectKeys[K, V any](tree *Tree[K, V]) []K {
	keys := make([]K, 0, tree.Len())
	for n := tree.root.leftmostLeaf(); n != nil; n = n.next {
		for _, e := range n.entries {
			keys = append(keys, e.Key)
		}
	}
	return keys
}
