// Package errs defines the sentinel errors returned by pzip and its sibling
// tools.
//
// Callers wrap these with additional context using fmt.Errorf and %w, so
// errors.Is is the intended way to test for them.
package errs

import "errors"

// Usage errors.
var (
	ErrUsage          = errors.New("incorrect usage")
	ErrNoInputFiles   = errors.New("no input files")
	ErrInvalidWorkers = errors.New("invalid worker count")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// Input errors.
var (
	ErrOpenInput       = errors.New("cannot open file")
	ErrStatInput       = errors.New("cannot stat file")
	ErrNotRegularFile  = errors.New("not a regular file")
	ErrInputChanged    = errors.New("input file changed while reading")
	ErrBufferTooLarge  = errors.New("aggregate input too large")
	ErrWriteOutput     = errors.New("cannot write output")
	ErrSameInputOutput = errors.New("input and output file must differ")
)

// Encoding errors.
var (
	ErrInvalidSegment     = errors.New("invalid segment")
	ErrIncompleteSegment  = errors.New("segment encoding incomplete")
	ErrWorkerPanic        = errors.New("worker panicked")
	ErrInvalidRunCount    = errors.New("invalid run count")
	ErrInvalidByteOrder   = errors.New("invalid byte order")
	ErrInvalidBytePolicy  = errors.New("invalid byte policy")
	ErrInvalidCompression = errors.New("invalid compression type")
)

// Decoding errors.
var (
	ErrTruncatedRecord = errors.New("truncated run record")
	ErrVerifyMismatch  = errors.New("decoded output does not match input")
)
