package bptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_RangeAcrossLeaves(t *testing.T) {
	tree := New[int, int](intLess, 3)
	for i := 1; i <= 20; i++ {
		tree.Insert(i, i*100)
	}

	entries := tree.Range(5, 12)
	require.Len(t, entries, 8, "Expected keys 5 through 12")
	for i, e := range entries {
		assert.Equal(t, i+5, e.Key, "Expected the scan in sorted order")
		assert.Equal(t, (i+5)*100, e.Value)
	}
}

func TestTree_RangeBounds(t *testing.T) {
	tree := New[int, int](intLess, 2)
	for i := 1; i <= 10; i++ {
		tree.Insert(i, i)
	}

	assert.Empty(t, tree.Range(7, 3), "Expected an empty result for low > high")

	single := tree.Range(4, 4)
	require.Len(t, single, 1, "Expected at most one entry for low == high")
	assert.Equal(t, 4, single[0].Key)

	assert.Empty(t, tree.Range(11, 20), "Expected nothing above the largest key")
	assert.Len(t, tree.Range(-5, 100), 10, "Expected the whole tree for covering bounds")
}

func TestTree_RangeSkipsAbsentBounds(t *testing.T) {
	tree := New[int, int](intLess, 2)
	for _, k := range []int{2, 4, 6, 8, 10} {
		tree.Insert(k, k)
	}

	entries := tree.Range(3, 9)
	require.Len(t, entries, 3)
	assert.Equal(t, []int{4, 6, 8}, entryKeys(entries))
}

func TestTree_RangeEmptyTree(t *testing.T) {
	tree := New[int, int](intLess, 3)
	assert.Empty(t, tree.Range(1, 100))
	assert.Empty(t, tree.RangeCount(1, 10))
}

func TestTree_RangeCount(t *testing.T) {
	tree := New[int, int](intLess, 3)
	for i := 1; i <= 20; i++ {
		tree.Insert(i, i)
	}

	entries := tree.RangeCount(5, 4)
	require.Len(t, entries, 4)
	assert.Equal(t, []int{5, 6, 7, 8}, entryKeys(entries))

	// Runs out before count is reached.
	entries = tree.RangeCount(18, 10)
	require.Len(t, entries, 3)
	assert.Equal(t, []int{18, 19, 20}, entryKeys(entries))

	assert.Empty(t, tree.RangeCount(5, 0), "Expected nothing for a zero count")
	assert.Empty(t, tree.RangeCount(21, 5), "Expected nothing past the largest key")
}
