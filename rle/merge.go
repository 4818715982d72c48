package rle

import "github.com/boljen/go-bitmap"

// Merger joins per-segment run sequences into one globally correct
// sequence.
//
// Segments must be appended in segment order. When the last merged run and
// the next incoming run share a value, the incoming count is folded into the
// last run (up to the run limit) instead of starting a new run. Runs rejected
// by the byte filter are dropped, and their neighbours merge as if the
// dropped run had never been there.
//
// A Merger is not safe for concurrent use.
type Merger struct {
	maxCount uint32
	filter   *ByteFilter
	onDrop   func(value byte)

	runs    Sequence
	dropped uint64
	seams   int
	warned  bitmap.Bitmap
}

// NewMerger creates a Merger. maxCount of zero means MaxCount; a nil filter
// keeps every value. sizeHint preallocates room for that many runs.
func NewMerger(maxCount uint32, filter *ByteFilter, sizeHint int) *Merger {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Merger{
		maxCount: limit(maxCount),
		filter:   filter,
		runs:     make(Sequence, 0, sizeHint),
		warned:   bitmap.New(256),
	}
}

// OnDrop registers fn to be called the first time each distinct value is
// rejected by the filter.
func (m *Merger) OnDrop(fn func(value byte)) {
	m.onDrop = fn
}

// Append merges the next segment's runs.
func (m *Merger) Append(seg Sequence) {
	for i, r := range seg {
		if m.push(r) && i == 0 {
			m.seams++
		}
	}
}

// push adds one run and reports whether any of it was folded into the
// previous run.
func (m *Merger) push(r Run) bool {
	if !m.filter.Allows(r.Value) {
		m.dropped += uint64(r.Count)
		if !m.warned.Get(int(r.Value)) {
			m.warned.Set(int(r.Value), true)
			if m.onDrop != nil {
				m.onDrop(r.Value)
			}
		}

		return false
	}

	merged := false
	if n := len(m.runs); n > 0 && m.runs[n-1].Value == r.Value {
		last := &m.runs[n-1]
		if room := m.maxCount - last.Count; room > 0 {
			take := min(room, r.Count)
			last.Count += take
			r.Count -= take
			merged = true
		}
	}

	if r.Count > 0 {
		// A run can exceed the limit only if it came from an encoder using
		// a larger limit; split it so every record stays in range.
		for r.Count > m.maxCount {
			m.runs = append(m.runs, Run{Count: m.maxCount, Value: r.Value})
			r.Count -= m.maxCount
		}
		m.runs = append(m.runs, r)
	}

	return merged
}

// Runs returns the merged sequence. The slice is owned by the Merger until
// the caller is done appending.
func (m *Merger) Runs() Sequence {
	return m.runs
}

// Dropped returns how many input bytes the filter rejected.
func (m *Merger) Dropped() uint64 {
	return m.dropped
}

// SeamsMerged returns how many segments began with a run that was folded
// into the previous segment's last run.
func (m *Merger) SeamsMerged() int {
	return m.seams
}

// Merge is a convenience wrapper that merges segs in order with no filter.
func Merge(maxCount uint32, segs ...Sequence) Sequence {
	hint := 0
	for _, s := range segs {
		hint += len(s)
	}

	m := NewMerger(maxCount, nil, hint)
	for _, s := range segs {
		m.Append(s)
	}

	return m.Runs()
}
