// Package format defines the constants and small enums shared by the run
// record format and the tools that produce or consume it.
package format

import (
	"fmt"
	"strings"

	"github.com/suvikristiin/CT30A3370-projects/errs"
)

// Run record layout. A record is a run count followed by the repeated byte;
// there is no header, footer, terminator or padding.
const (
	CountSize  = 4                     // CountSize is the size of the uint32 run count.
	ValueSize  = 1                     // ValueSize is the size of the repeated byte.
	RecordSize = CountSize + ValueSize // RecordSize is the size of one encoded run.
)

type (
	CompressionType uint8
	BytePolicy      uint8
	ByteOrder       uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone writes the record stream as-is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	BytePolicyFull  BytePolicy = 0x1 // BytePolicyFull encodes every byte value 0-255.
	BytePolicyASCII BytePolicy = 0x2 // BytePolicyASCII drops byte values above 127.

	ByteOrderNative ByteOrder = 0x1 // ByteOrderNative uses the host's byte order.
	ByteOrderLittle ByteOrder = 0x2 // ByteOrderLittle forces little-endian counts.
	ByteOrderBig    ByteOrder = 0x3 // ByteOrderBig forces big-endian counts.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (p BytePolicy) String() string {
	switch p {
	case BytePolicyFull:
		return "Full"
	case BytePolicyASCII:
		return "ASCII"
	default:
		return "Unknown"
	}
}

func (o ByteOrder) String() string {
	switch o {
	case ByteOrderNative:
		return "Native"
	case ByteOrderLittle:
		return "Little"
	case ByteOrderBig:
		return "Big"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a case-insensitive name ("none", "zstd", "s2",
// "lz4") to its CompressionType. The empty string selects CompressionNone.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}

// ParseByteOrder maps "native", "little" or "big" to a ByteOrder. The empty
// string selects ByteOrderNative.
func ParseByteOrder(name string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "native":
		return ByteOrderNative, nil
	case "little", "le":
		return ByteOrderLittle, nil
	case "big", "be":
		return ByteOrderBig, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidByteOrder, name)
	}
}

// ParseBytePolicy maps "full" or "ascii" to a BytePolicy. The empty string
// selects BytePolicyFull.
func ParseBytePolicy(name string) (BytePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "full":
		return BytePolicyFull, nil
	case "ascii":
		return BytePolicyASCII, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidBytePolicy, name)
	}
}
