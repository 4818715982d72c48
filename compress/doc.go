// Package compress wraps a finished run record stream in an optional
// general-purpose codec.
//
// A record stream is highly repetitive: every count shares its upper bytes
// with its neighbours and long inputs of a few symbols repeat the same five
// byte record pattern. A second-stage codec removes that redundancy. The
// stream is compressed as one unit after merging, so the codec never sees
// segment boundaries.
//
// Supported algorithms:
//   - None: the record stream is written unchanged
//   - Zstd: best ratio, moderate speed
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// The pure Go Zstandard implementation is used by default. Building with the
// gozstd tag switches to the cgo binding of the reference library:
//
//	go build -tags gozstd ./cmd/pzip
//
// All codecs are safe for concurrent use.
package compress
