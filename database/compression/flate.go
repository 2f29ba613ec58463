package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

type flateCompressor struct {
	level int
}

func NewFlateCompressor(level ...int) Compressor {
	c := &flateCompressor{level: flate.DefaultCompression}
	if len(level) > 0 {
		c.level = level[0]
	}
	return c
}

func (c flateCompressor) Compress(data []byte) ([]byte, error) {
	var b bytes.Buffer
	w, err := flate.NewWriter(&b, c.level)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (flateCompressor) Decompress(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	return io.ReadAll(r)
}
