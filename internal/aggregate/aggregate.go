// Package aggregate concatenates the input files into the single in-memory
// buffer the encoders work on.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/suvikristiin/CT30A3370-projects/errs"
)

// File records where one input landed in the buffer.
type File struct {
	Path   string
	Offset int
	Size   int
}

// Buffer is the concatenation of all inputs in argument order. It is
// read-only once Load returns; encoders share it without locking.
type Buffer struct {
	data  []byte
	files []File
}

// NewBuffer wraps data that is already in memory as a single unnamed input.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{
		data:  data,
		files: []File{{Offset: 0, Size: len(data)}},
	}
}

// Bytes returns the aggregated input. Callers must not modify it.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the aggregate size in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Files returns the per-input offset table.
func (b *Buffer) Files() []File {
	return b.files
}

// Loader reads inputs into a Buffer.
type Loader struct {
	// MaxBytes caps the aggregate size; zero means no cap beyond what fits
	// in an int.
	MaxBytes int64
	// Logger receives per-file debug output. Nil disables logging.
	Logger *slog.Logger
}

// Load reads paths with a default Loader.
func Load(ctx context.Context, paths []string) (*Buffer, error) {
	return Loader{}.Load(ctx, paths)
}

// Load sizes every input, allocates the buffer once, then copies each file
// into place in argument order.
//
// The first file that cannot be opened or sized aborts the load; later
// files are not touched. A file that is shorter on the second pass than on
// the first is reported as errs.ErrInputChanged. Bytes appended between the
// passes are ignored.
func (l Loader) Load(ctx context.Context, paths []string) (*Buffer, error) {
	logger := l.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	files := make([]File, 0, len(paths))
	total := int64(0)
	limit := int64(math.MaxInt)
	if l.MaxBytes > 0 && l.MaxBytes < limit {
		limit = l.MaxBytes
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		size, err := statInput(path)
		if err != nil {
			return nil, err
		}
		if size > limit-total {
			return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", errs.ErrBufferTooLarge, total+size, limit)
		}

		files = append(files, File{Path: path, Offset: int(total), Size: int(size)})
		total += size
	}

	data := make([]byte, total)
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := copyInput(f, data[f.Offset:f.Offset+f.Size]); err != nil {
			return nil, err
		}
		logger.Debug("loaded input", "path", f.Path, "offset", f.Offset, "size", f.Size)
	}

	return &Buffer{data: data, files: files}, nil
}

func statInput(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errs.ErrOpenInput, path, err)
	}

	info, statErr := f.Stat()
	var result *multierror.Error
	if statErr != nil {
		result = multierror.Append(result, fmt.Errorf("%w: %s: %w", errs.ErrStatInput, path, statErr))
	} else if !info.Mode().IsRegular() {
		result = multierror.Append(result, fmt.Errorf("%w: %s", errs.ErrNotRegularFile, path))
	}
	if closeErr := f.Close(); closeErr != nil {
		result = multierror.Append(result, fmt.Errorf("close %s: %w", path, closeErr))
	}
	if err := result.ErrorOrNil(); err != nil {
		return 0, err
	}

	return info.Size(), nil
}

func copyInput(file File, dst []byte) error {
	f, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrOpenInput, file.Path, err)
	}

	var result *multierror.Error
	if _, readErr := io.ReadFull(f, dst); readErr != nil {
		if errors.Is(readErr, io.EOF) || errors.Is(readErr, io.ErrUnexpectedEOF) {
			readErr = fmt.Errorf("%w: %s: expected %d bytes", errs.ErrInputChanged, file.Path, file.Size)
		} else {
			readErr = fmt.Errorf("read %s: %w", file.Path, readErr)
		}
		result = multierror.Append(result, readErr)
	}
	if closeErr := f.Close(); closeErr != nil {
		result = multierror.Append(result, fmt.Errorf("close %s: %w", file.Path, closeErr))
	}

	return result.ErrorOrNil()
}
