package rle

import (
	"io"

	"github.com/suvikristiin/CT30A3370-projects/endian"
	"github.com/suvikristiin/CT30A3370-projects/format"
	"github.com/suvikristiin/CT30A3370-projects/internal/pool"
)

// AppendRecord appends the 5-byte record for r to dst.
func AppendRecord(dst []byte, engine endian.EndianEngine, r Run) []byte {
	dst = engine.AppendUint32(dst, r.Count)
	return append(dst, r.Value)
}

// RecordWriter serializes runs into a pooled buffer.
//
// Call Release when the bytes are no longer needed; the slice returned by
// Bytes must not be used afterwards.
type RecordWriter struct {
	engine endian.EndianEngine
	buf    *pool.ByteBuffer
	count  int
}

// NewRecordWriter creates a writer using engine for run counts.
func NewRecordWriter(engine endian.EndianEngine) *RecordWriter {
	return &RecordWriter{
		engine: engine,
		buf:    pool.GetRecordBuffer(),
	}
}

// WriteRun appends a single record.
func (w *RecordWriter) WriteRun(r Run) {
	w.buf.Grow(format.RecordSize)
	w.buf.B = AppendRecord(w.buf.B, w.engine, r)
	w.count++
}

// WriteRuns appends one record per run, growing the buffer once.
func (w *RecordWriter) WriteRuns(runs Sequence) {
	if len(runs) == 0 {
		return
	}

	w.buf.Grow(len(runs) * format.RecordSize)
	for _, r := range runs {
		w.buf.B = AppendRecord(w.buf.B, w.engine, r)
	}
	w.count += len(runs)
}

// Bytes returns the serialized records.
func (w *RecordWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of serialized bytes.
func (w *RecordWriter) Len() int {
	return w.buf.Len()
}

// Records returns the number of records written since the last Reset.
func (w *RecordWriter) Records() int {
	return w.count
}

// WriteTo writes the serialized records to dst.
func (w *RecordWriter) WriteTo(dst io.Writer) (int64, error) {
	return w.buf.WriteTo(dst)
}

// Reset discards the serialized records but keeps the buffer.
func (w *RecordWriter) Reset() {
	w.buf.Reset()
	w.count = 0
}

// Release returns the buffer to its pool.
func (w *RecordWriter) Release() {
	pool.PutRecordBuffer(w.buf)
	w.buf = nil
}
