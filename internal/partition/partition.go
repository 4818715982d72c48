// Package partition splits a buffer into the contiguous segments handed to
// the parallel encoders.
package partition

import (
	"fmt"
	"runtime"

	"github.com/suvikristiin/CT30A3370-projects/errs"
)

// Segment is the half-open byte range [Start, End) assigned to worker Index.
type Segment struct {
	Index int
	Start int
	End   int
}

func (s Segment) Len() int {
	return s.End - s.Start
}

// MaxWorkers returns the parallelism available to the process.
func MaxWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// WorkerCount returns min(maxWorkers, max(1, total)). A non-positive
// maxWorkers counts as 1.
func WorkerCount(total, maxWorkers int) int {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	return min(maxWorkers, max(1, total))
}

// Plan divides [0, total) into WorkerCount(total, maxWorkers) segments.
//
// Every segment except the last is total/workers bytes long; the last one
// absorbs the remainder. An empty buffer still gets one empty segment, so
// callers always have at least one unit of work. Plan is deterministic.
func Plan(total, maxWorkers int) []Segment {
	if total < 0 {
		total = 0
	}

	workers := WorkerCount(total, maxWorkers)
	size := total / workers

	segments := make([]Segment, workers)
	for i := range segments {
		segments[i] = Segment{Index: i, Start: i * size, End: (i + 1) * size}
	}
	segments[workers-1].End = total

	return segments
}

// Validate checks that segments tile [0, total) exactly, in index order,
// with no empty segment unless total is zero.
func Validate(segments []Segment, total int) error {
	if len(segments) == 0 {
		return fmt.Errorf("%w: no segments", errs.ErrInvalidSegment)
	}

	next := 0
	for i, s := range segments {
		switch {
		case s.Index != i:
			return fmt.Errorf("%w: segment %d has index %d", errs.ErrInvalidSegment, i, s.Index)
		case s.Start != next:
			return fmt.Errorf("%w: segment %d starts at %d, want %d", errs.ErrInvalidSegment, i, s.Start, next)
		case s.End < s.Start:
			return fmt.Errorf("%w: segment %d ends before it starts", errs.ErrInvalidSegment, i)
		case s.Len() == 0 && total != 0:
			return fmt.Errorf("%w: segment %d is empty", errs.ErrInvalidSegment, i)
		}
		next = s.End
	}

	if next != total {
		return fmt.Errorf("%w: segments end at %d, want %d", errs.ErrInvalidSegment, next, total)
	}

	return nil
}
