package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

type zlibCompressor struct {
	level int
}

func NewZlibCompressor(level ...int) Compressor {
	c := &zlibCompressor{level: zlib.BestCompression}
	if len(level) > 0 {
		c.level = level[0]
	}
	return c
}

func (c zlibCompressor) Compress(data []byte) ([]byte, error) {
	var b bytes.Buffer
	w, err := zlib.NewWriterLevel(&b, c.level)
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

func (zlibCompressor) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
