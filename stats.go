package pzip

import (
	"time"

	"github.com/suvikristiin/CT30A3370-projects/format"
)

// Stats summarizes one compression run.
type Stats struct {
	// InputBytes is the size of the aggregated input.
	InputBytes int64
	// RecordBytes is the size of the record stream before the outer codec.
	RecordBytes int64
	// OutputBytes is the size of what was (or would be) written.
	OutputBytes int64
	// Runs is the number of records emitted.
	Runs int
	// Workers is the number of segments encoded in parallel.
	Workers int
	// SeamsMerged counts segment boundaries where a run continued across.
	SeamsMerged int
	// DroppedBytes counts input bytes rejected by the byte policy.
	DroppedBytes uint64
	// Codec is the outer codec applied to the record stream.
	Codec format.CompressionType
	// Digest is the xxHash64 of the decoded output. Only set with WithVerify.
	Digest uint64
	// Duration is the wall time of the run, loading included.
	Duration time.Duration
}

// Ratio returns output size over input size, or 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}

	return float64(s.OutputBytes) / float64(s.InputBytes)
}
