package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

type gzipCompressor struct {
	level int
}

func NewGzipCompressor(level ...int) Compressor {
	c := &gzipCompressor{level: gzip.BestCompression}
	if len(level) > 0 {
		c.level = level[0]
	}
	return c
}

func (c gzipCompressor) Compress(data []byte) ([]byte, error) {
	var b bytes.Buffer
	w, err := gzip.NewWriterLevel(&b, c.level)
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

func (gzipCompressor) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
