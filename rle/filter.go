package rle

import (
	"fmt"

	"github.com/boljen/go-bitmap"

	"github.com/suvikristiin/CT30A3370-projects/errs"
	"github.com/suvikristiin/CT30A3370-projects/format"
)

// ByteFilter decides which byte values may be encoded. A nil *ByteFilter
// allows everything.
type ByteFilter struct {
	allowed bitmap.Bitmap
}

// NewByteFilter builds the filter for a byte policy. BytePolicyFull returns
// nil, since there is nothing to reject.
func NewByteFilter(policy format.BytePolicy) (*ByteFilter, error) {
	switch policy {
	case format.BytePolicyFull:
		return nil, nil
	case format.BytePolicyASCII:
		f := &ByteFilter{allowed: bitmap.New(256)}
		for v := 0; v <= 127; v++ {
			f.allowed.Set(v, true)
		}

		return f, nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidBytePolicy, policy)
	}
}

// Allows reports whether v may be encoded.
func (f *ByteFilter) Allows(v byte) bool {
	if f == nil {
		return true
	}

	return f.allowed.Get(int(v))
}
