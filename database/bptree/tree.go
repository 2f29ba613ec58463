package bptree

import (
	"sort"
)

// New creates a new B+ tree ordered by less.
// The optional degree is the minimum degree t; every node except the root
// holds between t-1 and 2t-1 entries or keys.
func New[K, V any](less LessFunc[K], degree ...int) *Tree[K, V] {
	if less == nil {
		panic("BPlusTree-Database: New called with nil less func")
	}

	t := &Tree[K, V]{less: less, degree: DEFAULT_DEG_SIZE}
	if len(degree) > 0 {
		if degree[0] < 2 {
			panic("BPlusTree-Database: degree must be at least 2")
		}
		t.degree = degree[0]
	}

	t.root = t.newLeaf()
	return t
}

// maxEntries is the node capacity; reaching it triggers a split.
func (t *Tree[K, V]) maxEntries() int {
	return 2*t.degree - 1
}

// minEntries is the minimum occupancy of every non-root node.
func (t *Tree[K, V]) minEntries() int {
	return t.degree - 1
}

func (t *Tree[K, V]) equal(a, b K) bool {
	return !t.less(a, b) && !t.less(b, a)
}

// childIndex picks the child whose key range contains key: the smallest i
// with key strictly less than keys[i]. A key equal to a separator routes
// right, where its entry lives.
func (t *Tree[K, V]) childIndex(n *node[K, V], key K) int {
	return sort.Search(len(n.keys), func(i int) bool {
		return t.less(key, n.keys[i])
	})
}

// findEntry returns the position of the first entry with a key not less
// than key, and whether it is an exact match.
func (t *Tree[K, V]) findEntry(n *node[K, V], key K) (int, bool) {
	i := sort.Search(len(n.entries), func(i int) bool {
		return !t.less(n.entries[i].Key, key)
	})
	if i < len(n.entries) && !t.less(key, n.entries[i].Key) {
		return i, true
	}
	return i, false
}

// seekLeaf descends to the leaf whose range contains key and returns it
// together with the position of the first entry not less than key. The
// position may be one past the last entry; the next leaf then holds the
// following keys.
func (t *Tree[K, V]) seekLeaf(key K) (*node[K, V], int) {
	n := t.root
	for !n.leaf {
		n = n.children[t.childIndex(n, key)]
	}
	i := sort.Search(len(n.entries), func(i int) bool {
		return !t.less(n.entries[i].Key, key)
	})
	return n, i
}

// Get returns the value bound to key. The second return is false if the
// key is absent.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	leaf, i := t.seekLeaf(key)
	if i < len(leaf.entries) && !t.less(key, leaf.entries[i].Key) {
		return leaf.entries[i].Value, true
	}
	var zero V
	return zero, false
}

// GetRef returns a reference to the value bound to key, or nil if the
// key is absent. The reference is invalidated by any subsequent mutation
// of the tree.
func (t *Tree[K, V]) GetRef(key K) *V {
	leaf, i := t.seekLeaf(key)
	if i < len(leaf.entries) && !t.less(key, leaf.entries[i].Key) {
		return &leaf.entries[i].Value
	}
	return nil
}

// At returns a reference to the value bound to key, or ErrKeyNotFound.
// Unlike Insert it never creates an entry.
func (t *Tree[K, V]) At(key K) (*V, error) {
	if ref := t.GetRef(key); ref != nil {
		return ref, nil
	}
	return nil, ErrKeyNotFound
}

// Has returns true if the key exists in the tree.
func (t *Tree[K, V]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Min returns the smallest entry, or false if the tree is empty.
func (t *Tree[K, V]) Min() (Entry[K, V], bool) {
	leaf := t.root.leftmostLeaf()
	if len(leaf.entries) == 0 {
		return Entry[K, V]{}, false
	}
	return leaf.entries[0], true
}

// Max returns the largest entry, or false if the tree is empty.
func (t *Tree[K, V]) Max() (Entry[K, V], bool) {
	leaf := t.root.rightmostLeaf()
	if len(leaf.entries) == 0 {
		return Entry[K, V]{}, false
	}
	return leaf.entries[len(leaf.entries)-1], true
}

// Len returns the number of entries currently in the tree.
func (t *Tree[K, V]) Len() int {
	return t.length
}

// Insert binds value to key.
// Returns the previous value and true if an existing entry was overwritten,
// or the zero value and false if the key is new.
func (t *Tree[K, V]) Insert(key K, value V) (V, bool) {
	if t.root.count() == t.maxEntries() {
		// The root is full; grow the tree by one level. This is the only
		// place the height increases.
		oldRoot := t.root
		t.root = t.newInternal()
		t.root.children = append(t.root.children, oldRoot)
		t.splitChild(t.root, 0)
	}

	prev, updated := t.insertNonFull(t.root, key, value)
	if !updated {
		t.length++
	}
	return prev, updated
}

// insertNonFull inserts into the subtree rooted at a node that is
// guaranteed not to be full, splitting any full child before descending so
// the recursion never meets a node that would need to push a split back up.
func (t *Tree[K, V]) insertNonFull(n *node[K, V], key K, value V) (V, bool) {
	if n.leaf {
		i, found := t.findEntry(n, key)
		if found {
			prev := n.entries[i].Value
			n.entries[i].Value = value
			return prev, true
		}
		n.entries.insertAt(i, Entry[K, V]{Key: key, Value: value})
		var zero V
		return zero, false
	}

	i := t.childIndex(n, key)
	if n.children[i].count() == t.maxEntries() {
		t.splitChild(n, i)
		// The split placed a new separator at index i; re-pick the side.
		// A key equal to the separator belongs to the right half.
		if !t.less(key, n.keys[i]) {
			i++
		}
	}
	return t.insertNonFull(n.children[i], key, value)
}

// splitChild divides the full child at index into two siblings, promoting
// a separator into parent.
//
// For a leaf, the upper t-1 entries move to a new right leaf, the promoted
// separator is a copy of the right leaf's first key, and the new leaf is
// spliced into the linked list. For an internal node, the upper t-1 keys
// and t children move right and the middle key itself is promoted.
func (t *Tree[K, V]) splitChild(parent *node[K, V], index int) {
	child := parent.children[index]

	if child.leaf {
		right := t.newLeaf()
		right.entries = append(right.entries, child.entries[t.degree:]...)
		child.entries.truncate(t.degree)

		right.next = child.next
		right.prev = child
		if child.next != nil {
			child.next.prev = right
		}
		child.next = right

		parent.keys.insertAt(index, right.entries[0].Key)
		parent.children.insertAt(index+1, right)
		return
	}

	right := t.newInternal()
	mid := t.degree - 1
	midKey := child.keys[mid]

	right.keys = append(right.keys, child.keys[mid+1:]...)
	right.children = append(right.children, child.children[mid+1:]...)
	child.keys.truncate(mid)
	child.children.truncate(mid + 1)

	parent.keys.insertAt(index, midKey)
	parent.children.insertAt(index+1, right)
}

// Clear removes every entry, tearing nodes down post-order and resetting
// the root to an empty leaf.
func (t *Tree[K, V]) Clear() {
	destroyNode(t.root)
	t.root = t.newLeaf()
	t.length = 0
}

func destroyNode[K, V any](n *node[K, V]) {
	if n == nil {
		return
	}
	for _, child := range n.children {
		destroyNode(child)
	}
	n.keys, n.children, n.entries = nil, nil, nil
	n.next, n.prev = nil, nil
}
