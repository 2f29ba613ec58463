package store

import (
	"bytes"
	"time"

	"github.com/Aran404/BPlusTree-Database/database/bptree"
	"github.com/Aran404/BPlusTree-Database/database/compression"
)

// KVPair is the unit stored in the tree.
type KVPair struct {
	Key          []byte // You may not need the key here, though for serialization it's useful
	Value        []byte
	ExpiresAt    uint64
	IsCompressed bool
}

func NewKVPair(key, value []byte, ttl ...time.Duration) *KVPair {
	kv := &KVPair{Key: key, Value: value}
	if len(ttl) > 0 {
		kv.ExpiresAt = uint64(time.Now().UnixMilli()) + uint64(ttl[0].Milliseconds())
	}
	return kv
}

// Expired reports whether the pair's TTL has passed. Zero ExpiresAt means
// the pair never expires.
func (kv *KVPair) Expired() bool {
	return kv.ExpiresAt != 0 && kv.ExpiresAt < uint64(time.Now().UnixMilli())
}

// Store is a byte-oriented KV layer over the B+ tree, ordered
// lexicographically. Like the tree itself it is single-owner: no locking,
// and mutations must not race reads or iteration.
type Store struct {
	Tree *bptree.Tree[[]byte, *KVPair]
	// Compressor usually isn't needed for in-memory stores but can be
	// useful if you plan on running a server with little RAM.
	Compressor compression.Compressor

	// Memory Logs
	WrittenMemory Memory
	ReadMemory    Memory
	DeletedMemory Memory

	degree int
}

type Option func(s *Store)

// WithDefaultOptions returns the default options: values compressed with
// the default compressor at the default degree.
func WithDefaultOptions() []Option {
	return []Option{
		WithCompressor(compression.DefaultCompressor),
		WithDegree(bptree.DEFAULT_DEG_SIZE),
	}
}

// WithCompressor sets the value compressor. Nil disables compression.
func WithCompressor(compressor compression.Compressor) Option {
	return func(s *Store) {
		s.Compressor = compressor
	}
}

// WithDegree sets the tree's minimum degree.
func WithDegree(degree int) Option {
	if degree < 2 {
		panic("BPlusTree-Database: degree must be at least 2")
	}
	return func(s *Store) {
		s.degree = degree
	}
}

func byteLess(a, b []byte) bool {
	return bytes.Compare(a, b) < 0
}
