package rle

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/suvikristiin/CT30A3370-projects/endian"
	"github.com/suvikristiin/CT30A3370-projects/errs"
	"github.com/suvikristiin/CT30A3370-projects/format"
	"github.com/suvikristiin/CT30A3370-projects/internal/pool"
)

// Decoder reads run records from a stream.
type Decoder struct {
	rd     *bufio.Reader
	engine endian.EndianEngine
	record [format.RecordSize]byte
	offset int64
}

// NewDecoder creates a Decoder reading records from r with counts in the
// byte order of engine.
func NewDecoder(r io.Reader, engine endian.EndianEngine) *Decoder {
	return &Decoder{rd: bufio.NewReader(r), engine: engine}
}

// Next returns the next run. It returns io.EOF at a clean end of stream and
// errs.ErrTruncatedRecord if the stream ends inside a record.
func (d *Decoder) Next() (Run, error) {
	n, err := io.ReadFull(d.rd, d.record[:])
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		return Run{}, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return Run{}, fmt.Errorf("%w: %d trailing bytes at offset %d", errs.ErrTruncatedRecord, n, d.offset)
	default:
		return Run{}, fmt.Errorf("error reading input: %w", err)
	}
	d.offset += format.RecordSize

	return Run{
		Count: d.engine.Uint32(d.record[:format.CountSize]),
		Value: d.record[format.CountSize],
	}, nil
}

// Expand decodes every remaining record and writes the expanded bytes to w.
//
// The returned int64 is the number of bytes written to w. Everything decoded
// before an error has already been written.
func (d *Decoder) Expand(w io.Writer) (int64, error) {
	staging := pool.GetExpandBuffer()
	defer pool.PutExpandBuffer(staging)

	flushAt := cap(staging.B)
	total := int64(0)

	flush := func() error {
		n, err := staging.WriteTo(w)
		total += n
		staging.Reset()
		if err != nil {
			return fmt.Errorf("failed to write to output: %w", err)
		}

		return nil
	}

	for {
		run, err := d.Next()
		if err != nil {
			if flushErr := flush(); flushErr != nil {
				return total, flushErr
			}
			if errors.Is(err, io.EOF) {
				return total, nil
			}

			return total, err
		}

		remaining := int(run.Count)
		for remaining > 0 {
			chunk := min(remaining, flushAt-staging.Len())
			if chunk <= 0 {
				if err := flush(); err != nil {
					return total, err
				}
				continue
			}
			staging.AppendRepeat(run.Value, chunk)
			remaining -= chunk
		}
	}
}

// DecodeRuns parses a complete record stream held in memory.
func DecodeRuns(data []byte, engine endian.EndianEngine) (Sequence, error) {
	if rem := len(data) % format.RecordSize; rem != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes at offset %d", errs.ErrTruncatedRecord, rem, len(data)-rem)
	}

	runs := make(Sequence, 0, len(data)/format.RecordSize)
	for off := 0; off < len(data); off += format.RecordSize {
		runs = append(runs, Run{
			Count: engine.Uint32(data[off : off+format.CountSize]),
			Value: data[off+format.CountSize],
		})
	}

	return runs, nil
}

// Expand decodes a complete record stream held in memory into w.
func Expand(data []byte, engine endian.EndianEngine, w io.Writer) (int64, error) {
	return NewDecoder(bytes.NewReader(data), engine).Expand(w)
}
