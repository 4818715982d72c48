package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4WriterPool pools frame writers. Reset rebinds a writer to a new
// destination without reallocating its block buffers.
var lz4WriterPool = sync.Pool{
	New: func() any {
		return lz4.NewWriter(nil)
	},
}

var lz4ReaderPool = sync.Pool{
	New: func() any {
		return lz4.NewReader(nil)
	},
}

// LZ4Compressor uses the LZ4 frame format. Frames carry their own block
// sizes, so decompression needs no guess at the expanded length; a record
// stream for a large uniform input can expand by many orders of magnitude.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into a single LZ4 frame.
//
// Parameters:
//   - data: record stream to compress
//
// Returns:
//   - []byte: the frame (nil if data is empty)
//   - error: frame writer error
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	buf.Grow(lz4.CompressBlockBound(len(data)))

	zw, _ := lz4WriterPool.Get().(*lz4.Writer)
	defer lz4WriterPool.Put(zw)
	zw.Reset(&buf)

	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress reads a single LZ4 frame back into memory.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr, _ := lz4ReaderPool.Get().(*lz4.Reader)
	defer lz4ReaderPool.Put(zr)
	zr.Reset(bytes.NewReader(data))

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return out, nil
}
