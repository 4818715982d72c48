package rle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suvikristiin/CT30A3370-projects/errs"
)

func TestSequence_Total(t *testing.T) {
	require.Zero(t, Sequence{}.Total())
	require.Equal(t, uint64(6), Sequence{{1, 'a'}, {2, 'b'}, {3, 'c'}}.Total())

	// Totals must not wrap when counts are near the limit.
	big := Sequence{{MaxCount, 'x'}, {MaxCount, 'x'}}
	require.Equal(t, 2*uint64(MaxCount), big.Total())
}

func TestSequence_Validate(t *testing.T) {
	tests := []struct {
		name     string
		seq      Sequence
		maxCount uint32
		wantErr  bool
	}{
		{"empty", Sequence{}, 0, false},
		{"distinct values", Sequence{{3, 'a'}, {1, 'b'}, {2, 'a'}}, 0, false},
		{"zero count", Sequence{{0, 'a'}}, 0, true},
		{"adjacent duplicate", Sequence{{2, 'a'}, {1, 'a'}}, 0, true},
		{"saturated duplicate", Sequence{{4, 'a'}, {1, 'a'}}, 4, false},
		{"over limit", Sequence{{5, 'a'}}, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.seq.Validate(tt.maxCount)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidRunCount)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
