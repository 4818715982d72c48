package rle

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/boljen/go-bitmap"

	"github.com/suvikristiin/CT30A3370-projects/endian"
	"github.com/suvikristiin/CT30A3370-projects/internal/pool"
)

// EncodeResult summarizes one call to Encoder.Encode.
type EncodeResult struct {
	// BytesRead is the number of input bytes consumed.
	BytesRead int64
	// BytesWritten is the number of record bytes written to the output.
	BytesWritten int64
	// Records is the number of records written.
	Records int
	// Dropped is the number of input bytes rejected by the filter.
	Dropped int64
}

// Encoder is the sequential, single-goroutine counterpart of the parallel
// pipeline. It reads its input as a stream, so it does not need to hold the
// input in memory, and writes records as runs complete.
type Encoder struct {
	engine   endian.EndianEngine
	filter   *ByteFilter
	maxCount uint32
	onDrop   func(value byte)
	warned   bitmap.Bitmap
}

// NewEncoder creates a sequential encoder. A nil filter keeps every value;
// maxCount of zero means MaxCount.
func NewEncoder(engine endian.EndianEngine, filter *ByteFilter, maxCount uint32) *Encoder {
	return &Encoder{
		engine:   engine,
		filter:   filter,
		maxCount: limit(maxCount),
		warned:   bitmap.New(256),
	}
}

// OnDrop registers fn to be called the first time each distinct value is
// rejected by the filter.
func (e *Encoder) OnDrop(fn func(value byte)) {
	e.onDrop = fn
}

// Encode reads input until EOF and writes its records to output. Runs never
// continue across calls, so encoding several inputs one after another yields
// the concatenation of their individual encodings.
func (e *Encoder) Encode(input io.Reader, output io.Writer) (EncodeResult, error) {
	var result EncodeResult

	rd := bufio.NewReader(input)
	records := NewRecordWriter(e.engine)
	defer records.Release()

	flush := func() error {
		result.Records += records.Records()
		n, err := records.WriteTo(output)
		result.BytesWritten += n
		records.Reset()
		if err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}

		return nil
	}

	var current Run
	for {
		b, err := rd.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return result, fmt.Errorf("error reading input: %w", err)
			}

			break
		}
		result.BytesRead++

		if !e.filter.Allows(b) {
			result.Dropped++
			e.warnOnce(b)
			continue
		}

		if current.Count > 0 && b == current.Value && current.Count < e.maxCount {
			current.Count++
			continue
		}

		if current.Count > 0 {
			records.WriteRun(current)
			if records.Len() >= pool.RecordBufferDefaultSize {
				if err := flush(); err != nil {
					return result, err
				}
			}
		}
		current = Run{Count: 1, Value: b}
	}

	if current.Count > 0 {
		records.WriteRun(current)
	}

	return result, flush()
}

func (e *Encoder) warnOnce(v byte) {
	if e.warned.Get(int(v)) {
		return
	}
	e.warned.Set(int(v), true)
	if e.onDrop != nil {
		e.onDrop(v)
	}
}
