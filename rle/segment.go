package rle

import (
	"fmt"

	"github.com/suvikristiin/CT30A3370-projects/errs"
)

// initialSegmentRuns is the starting capacity of a segment's run list.
const initialSegmentRuns = 16

// EncodeSegment run-length encodes buf[start:end].
//
// The returned runs cover exactly the bytes of the range, in order, and are
// maximal within it: a run only ends when the value changes or its count
// reaches maxCount (zero means MaxCount). An empty range yields an empty
// sequence.
//
// EncodeSegment never writes to buf, so any number of calls may share it.
//
// Returns errs.ErrInvalidSegment if the range does not lie within buf.
func EncodeSegment(buf []byte, start, end int, maxCount uint32) (Sequence, error) {
	if start < 0 || end > len(buf) || start > end {
		return nil, fmt.Errorf("%w: [%d, %d) of %d bytes", errs.ErrInvalidSegment, start, end, len(buf))
	}
	if start == end {
		return Sequence{}, nil
	}

	maxCount = limit(maxCount)
	runs := make(Sequence, 0, initialSegmentRuns)

	current := Run{Count: 1, Value: buf[start]}
	for _, b := range buf[start+1 : end] {
		if b == current.Value && current.Count < maxCount {
			current.Count++
			continue
		}
		runs = append(runs, current)
		current = Run{Count: 1, Value: b}
	}

	return append(runs, current), nil
}
