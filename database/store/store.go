package store

import (
	"context"
	"time"

	"github.com/Aran404/BPlusTree-Database/database/bptree"
)

// New creates a new Store.
func New(opts ...Option) (s *Store) {
	s = &Store{degree: bptree.DEFAULT_DEG_SIZE}

	if len(opts) == 0 {
		opts = WithDefaultOptions()
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Tree = bptree.New[[]byte, *KVPair](byteLess, s.degree)
	return
}

// Size returns the number of live pairs currently in the store. Pairs
// whose TTL has passed but have not been touched since still count until
// a read evicts them.
func (s *Store) Size() int64 {
	if s.Tree == nil {
		panic("BPlusTree-Database: Size called after store was closed")
	}
	return int64(s.Tree.Len())
}

// Close deallocates the tree and pair memory.
func (s *Store) Close() {
	if s.Tree != nil {
		s.Tree.Clear()
		s.Tree = nil
	}
	s.Compressor = nil

	s.WrittenMemory = 0
	s.ReadMemory = 0
	s.DeletedMemory = 0
}

// inflate decompresses the value if it is compressed.
// If the value is not compressed, this is a no-op.
func (s *Store) inflate(v *KVPair) {
	// In the case that the decompression fails, the user gets delegated the responsibility.
	if v.IsCompressed && s.Compressor != nil {
		decompressed, err := s.Compressor.Decompress(v.Value)
		if err == nil {
			v.Value = decompressed
			v.IsCompressed = false
		}
	}
}

// Get returns the pair for the given key. Returns nil if not found.
// An expired pair is evicted on the spot.
func (s *Store) Get(key []byte) *KVPair {
	if s.Tree == nil {
		panic("BPlusTree-Database: Get called after store was closed")
	}

	v, ok := s.Tree.Get(key)
	if !ok {
		return nil
	}

	if v.Expired() {
		s.Tree.Remove(key)
		s.DeletedMemory += Memory(len(v.Key) + len(v.Value))
		return nil
	}

	s.ReadMemory += Memory(len(v.Key) + len(v.Value))
	s.inflate(v)
	return v
}

// GetString returns the pair for the given key. Returns nil if not found.
func (s *Store) GetString(key string) *KVPair {
	return s.Get([]byte(key))
}

// Set sets the value for the given key.
// Returns the previous pair if the key existed, and nil if the key was
// newly inserted.
func (s *Store) Set(key, value []byte, ttl ...time.Duration) *KVPair {
	if s.Tree == nil {
		panic("BPlusTree-Database: Set called after store was closed")
	}

	pair := NewKVPair(key, value, ttl...)
	if s.Compressor != nil {
		compressed, err := s.Compressor.Compress(value)
		// Fallback to uncompressed
		if err == nil {
			pair.IsCompressed = true
			pair.Value = compressed
		}
	}

	s.WrittenMemory += Memory(len(pair.Key) + len(pair.Value))

	prev, updated := s.Tree.Insert(key, pair)
	if !updated {
		return nil
	}
	s.inflate(prev)
	return prev
}

// SetString sets the value for the given key.
func (s *Store) SetString(key string, value []byte, ttl ...time.Duration) *KVPair {
	return s.Set([]byte(key), value, ttl...)
}

// Delete deletes the pair for the given key. Returns nil if not found.
func (s *Store) Delete(key []byte) *KVPair {
	if s.Tree == nil {
		panic("BPlusTree-Database: Delete called after store was closed")
	}

	v, ok := s.Tree.Get(key)
	if !ok {
		return nil
	}

	s.Tree.Remove(key)
	s.DeletedMemory += Memory(len(v.Key) + len(v.Value))

	if v.Expired() {
		return nil
	}
	s.inflate(v)
	return v
}

// DeleteString deletes the pair for the given key. Returns nil if not found.
func (s *Store) DeleteString(key string) *KVPair {
	return s.Delete([]byte(key))
}

// Has returns true if the key exists in the store.
func (s *Store) Has(key []byte) bool { return s.Get(key) != nil }

// HasString returns true if the key exists in the store.
func (s *Store) HasString(key string) bool { return s.Has([]byte(key)) }

// List returns all live pairs in key order. Expired pairs encountered
// during the walk are evicted after it completes.
func (s *Store) List(ctx context.Context) []*KVPair {
	if ctx == nil {
		panic("BPlusTree-Database: List called with nil context")
	}
	if s.Tree == nil {
		panic("BPlusTree-Database: List called after store was closed")
	}

	pairs := make([]*KVPair, 0, s.Tree.Len())
	var expired [][]byte

	cursor := bptree.NewCursor(s.Tree)
	defer cursor.Close()

	for entry, ok := cursor.Current(); ok; entry, ok = cursor.Current() {
		select {
		case <-ctx.Done():
			return pairs
		default:
		}

		v := entry.Value
		if v.Expired() {
			expired = append(expired, entry.Key)
		} else {
			s.inflate(v)
			s.ReadMemory += Memory(len(v.Key) + len(v.Value))
			pairs = append(pairs, v)
		}

		if !cursor.Next() {
			break
		}
	}

	s.evict(expired)
	return pairs
}

// Range returns the live pairs with start <= key <= end in key order.
func (s *Store) Range(ctx context.Context, start, end []byte) []*KVPair {
	if ctx == nil {
		panic("BPlusTree-Database: Range called with nil context")
	}
	if s.Tree == nil {
		panic("BPlusTree-Database: Range called after store was closed")
	}

	pairs := make([]*KVPair, 0)
	var expired [][]byte

	for _, entry := range s.Tree.Range(start, end) {
		select {
		case <-ctx.Done():
			return pairs
		default:
		}

		v := entry.Value
		if v.Expired() {
			expired = append(expired, entry.Key)
			continue
		}

		s.inflate(v)
		s.ReadMemory += Memory(len(v.Key) + len(v.Value))
		pairs = append(pairs, v)
	}

	s.evict(expired)
	return pairs
}

// evict removes pairs marked expired during a walk. Deferred so the walk
// never mutates the tree it is iterating.
func (s *Store) evict(keys [][]byte) {
	for _, key := range keys {
		if v, ok := s.Tree.Get(key); ok {
			s.DeletedMemory += Memory(len(v.Key) + len(v.Value))
		}
		s.Tree.Remove(key)
	}
}
