package partition

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suvikristiin/CT30A3370-projects/errs"
)

func TestWorkerCount(t *testing.T) {
	tests := []struct {
		total, maxWorkers, want int
	}{
		{0, 8, 1},
		{1, 8, 1},
		{3, 8, 3},
		{100, 8, 8},
		{100, 0, 1},
		{100, -2, 1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, WorkerCount(tt.total, tt.maxWorkers), "total=%d max=%d", tt.total, tt.maxWorkers)
	}
}

func TestPlan(t *testing.T) {
	t.Run("empty buffer", func(t *testing.T) {
		segs := Plan(0, 4)
		require.Equal(t, []Segment{{Index: 0, Start: 0, End: 0}}, segs)
		require.NoError(t, Validate(segs, 0))
	})

	t.Run("remainder goes to last", func(t *testing.T) {
		segs := Plan(10, 3)
		require.Equal(t, []Segment{
			{Index: 0, Start: 0, End: 3},
			{Index: 1, Start: 3, End: 6},
			{Index: 2, Start: 6, End: 10},
		}, segs)
	})

	t.Run("fewer bytes than workers", func(t *testing.T) {
		segs := Plan(3, 16)
		require.Len(t, segs, 3)
		for _, s := range segs {
			require.Equal(t, 1, s.Len())
		}
	})

	t.Run("million bytes eight workers", func(t *testing.T) {
		segs := Plan(1_000_000, 8)
		require.Len(t, segs, 8)
		for _, s := range segs {
			require.Equal(t, 125_000, s.Len())
		}
	})
}

func TestPlan_AlwaysTiles(t *testing.T) {
	for total := 0; total <= 64; total++ {
		for workers := 1; workers <= 12; workers++ {
			segs := Plan(total, workers)
			require.NoError(t, Validate(segs, total), "total=%d workers=%d", total, workers)
			require.Equal(t, segs, Plan(total, workers), "plan must be deterministic")
		}
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		segs  []Segment
		total int
	}{
		{"none", nil, 0},
		{"gap", []Segment{{0, 0, 2}, {1, 3, 5}}, 5},
		{"overlap", []Segment{{0, 0, 3}, {1, 2, 5}}, 5},
		{"short", []Segment{{0, 0, 4}}, 5},
		{"empty segment", []Segment{{0, 0, 0}, {1, 0, 5}}, 5},
		{"wrong index", []Segment{{1, 0, 5}}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, Validate(tt.segs, tt.total), errs.ErrInvalidSegment)
		})
	}
}

func TestMaxWorkers(t *testing.T) {
	require.GreaterOrEqual(t, MaxWorkers(), 1)
}
