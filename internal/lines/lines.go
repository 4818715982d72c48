// Package lines reads text line by line for the cat, grep and reverse
// tools. Lines keep their trailing newline, so writing them back reproduces
// the input byte for byte.
package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/suvikristiin/CT30A3370-projects/errs"
)

// ErrStop can be returned by a Func to end Scan early without an error.
var ErrStop = errors.New("stop scanning")

// Func receives one line. The slice is only valid until Func returns.
type Func func(line []byte) error

// Scan calls fn for every line of r, including a final line without a
// newline. Lines may be arbitrarily long.
func Scan(r io.Reader, fn Func) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			// Long line: fall back to an allocating read for the rest.
			rest, restErr := br.ReadBytes('\n')
			line = append(slices.Clone(line), rest...)
			err = restErr
		}

		if len(line) > 0 {
			if fnErr := fn(line); fnErr != nil {
				if errors.Is(fnErr, ErrStop) {
					return nil
				}

				return fnErr
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("read line: %w", err)
		}
	}
}

// ReadAll returns every line of r as its own slice.
func ReadAll(r io.Reader) ([][]byte, error) {
	var all [][]byte
	err := Scan(r, func(line []byte) error {
		all = append(all, slices.Clone(line))
		return nil
	})

	return all, err
}

// WriteAll writes lines to w in order.
func WriteAll(w io.Writer, all [][]byte) error {
	bw := bufio.NewWriter(w)
	for _, line := range all {
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrWriteOutput, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrWriteOutput, err)
	}

	return nil
}

// IsBlank reports whether line holds nothing but its line terminator.
func IsBlank(line []byte) bool {
	return len(line) == 1 && line[0] == '\n'
}

// Open opens path for reading. The error names the path the way the tools
// report it: cannot open file '<path>'.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", errs.ErrOpenInput, path, err)
	}

	return f, nil
}

// SameFile reports whether a and b name the same file, either literally or
// through links. A path that does not exist yet is never the same file.
func SameFile(a, b string) bool {
	if a == b {
		return true
	}

	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}

	return os.SameFile(ai, bi)
}
