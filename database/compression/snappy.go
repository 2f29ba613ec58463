package compression

import (
	"github.com/golang/snappy"
)

// snappyCompressor trades ratio for speed; it is the default for
// in-memory stores where the compressor runs on every Set.
type snappyCompressor struct {
}

func NewSnappyCompressor() Compressor {
	return &snappyCompressor{}
}

func (snappyCompressor) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (snappyCompressor) Decompress(data []byte) ([]byte, error) {
	return snappy.Decode(nil, data)
}
