package compression

// Compressor compresses and decompresses opaque value bytes. A nil
// Compressor anywhere in the database means values are stored raw.
type Compressor interface {
	Compress([]byte) ([]byte, error)
	Decompress([]byte) ([]byte, error)
}

type CompressorID int32

const (
	FLATE_COMPRESSION CompressorID = iota
	GZIP_COMPRESSION
	ZIP_COMPRESSION
	ZLIB_COMPRESSION
	SNAPPY_COMPRESSION
)

var (
	_ Compressor = (*flateCompressor)(nil)
	_ Compressor = (*gzipCompressor)(nil)
	_ Compressor = (*zipCompressor)(nil)
	_ Compressor = (*zlibCompressor)(nil)
	_ Compressor = (*snappyCompressor)(nil)

	DefaultCompressor = NewSnappyCompressor()

	Compressors = map[string]Compressor{
		"flate":  NewFlateCompressor(),
		"gzip":   NewGzipCompressor(),
		"zip":    NewZipCompressor(),
		"zlib":   NewZlibCompressor(),
		"snappy": NewSnappyCompressor(),
	}

	CompressorIDs = map[CompressorID]Compressor{
		FLATE_COMPRESSION:  NewFlateCompressor(),
		GZIP_COMPRESSION:   NewGzipCompressor(),
		ZIP_COMPRESSION:    NewZipCompressor(),
		ZLIB_COMPRESSION:   NewZlibCompressor(),
		SNAPPY_COMPRESSION: NewSnappyCompressor(),
	}
)
