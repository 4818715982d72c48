package rle

import (
	"fmt"
	"math"

	"github.com/suvikristiin/CT30A3370-projects/errs"
)

// MaxCount is the largest repetition count a single record can hold.
const MaxCount uint32 = math.MaxUint32

// Run is a single value repeated Count times.
type Run struct {
	Count uint32
	Value byte
}

// Sequence is an ordered list of runs.
type Sequence []Run

// Total returns the number of bytes the sequence expands to.
func (s Sequence) Total() uint64 {
	var total uint64
	for _, r := range s {
		total += uint64(r.Count)
	}

	return total
}

// Validate checks that every run is non-empty and within maxCount, and that
// adjacent runs only share a value when the earlier one is saturated.
func (s Sequence) Validate(maxCount uint32) error {
	maxCount = limit(maxCount)
	for i, r := range s {
		if r.Count == 0 || r.Count > maxCount {
			return fmt.Errorf("%w: run %d has count %d (limit %d)", errs.ErrInvalidRunCount, i, r.Count, maxCount)
		}
		if i > 0 && s[i-1].Value == r.Value && s[i-1].Count != maxCount {
			return fmt.Errorf("%w: runs %d and %d share value %#02x", errs.ErrInvalidRunCount, i-1, i, r.Value)
		}
	}

	return nil
}

// limit maps the zero value to MaxCount so callers can leave the run limit
// unset.
func limit(maxCount uint32) uint32 {
	if maxCount == 0 {
		return MaxCount
	}

	return maxCount
}
