package compress

// ZstdCompressor provides Zstandard compression. It gives the best ratio of
// the built-in codecs on record streams and is the usual choice for archives.
//
// The implementation is chosen at build time: pure Go by default, the cgo
// binding with the gozstd build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with default settings.
//
// Example:
//
//	codec := NewZstdCompressor()
//	compressed, err := codec.Compress(records)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
