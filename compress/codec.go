package compress

import (
	"fmt"
	"time"

	"github.com/suvikristiin/CT30A3370-projects/errs"
	"github.com/suvikristiin/CT30A3370-projects/format"
)

// Compressor compresses a complete record stream.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// The returned slice is owned by the caller. data is not modified. An empty
	// input compresses to nil.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a record stream produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original bytes of data.
	//
	// It fails when data is corrupt or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression call.
type CompressionStats struct {
	// Algorithm identifies the codec used.
	Algorithm format.CompressionType

	// OriginalSize is the size of the record stream.
	OriginalSize int64

	// CompressedSize is the size after compression.
	CompressedSize int64

	// Duration is the time spent inside the codec.
	Duration time.Duration
}

// CompressionRatio returns compressed size over original size.
//
// Values below 1.0 mean the codec saved space. An empty original yields 0.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}

// CompressMeasured compresses data with the built-in codec for
// compressionType and reports sizes and timing.
func CompressMeasured(compressionType format.CompressionType, data []byte) ([]byte, CompressionStats, error) {
	stats := CompressionStats{
		Algorithm:    compressionType,
		OriginalSize: int64(len(data)),
	}

	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, stats, err
	}

	start := time.Now()
	out, err := codec.Compress(data)
	stats.Duration = time.Since(start)
	if err != nil {
		return nil, stats, fmt.Errorf("%s compress: %w", compressionType, err)
	}
	stats.CompressedSize = int64(len(out))

	return out, stats, nil
}
