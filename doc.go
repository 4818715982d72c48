// Package pzip is a parallel run-length encoder.
//
// The input files are concatenated into one in-memory buffer, the buffer is
// split into contiguous segments, every segment is encoded by its own
// goroutine, and the per-segment runs are merged into one globally correct
// run sequence. Runs that span a segment boundary come out exactly as a
// single-threaded encoder would produce them, so the output does not depend
// on the number of workers.
//
// # Output Format
//
// The output is a flat sequence of 5-byte records with no header:
//
//	+----------------+-------+
//	| count (uint32) | value |
//	+----------------+-------+
//
// The count uses the host's native byte order unless WithByteOrder says
// otherwise. A run longer than the count can hold is split into saturated
// records followed by the remainder.
//
// # Basic Usage
//
// Compressing files to stdout:
//
//	stats, err := pzip.Compress(ctx, []string{"a.txt", "b.txt"}, os.Stdout,
//	    pzip.WithWorkers(8),
//	)
//
// Encoding a buffer that is already in memory:
//
//	res, err := pzip.Encode(ctx, data)
//	fmt.Println(len(res.Data) / format.RecordSize) // number of runs
//
// Expanding a record stream:
//
//	n, err := pzip.Decompress(os.Stdin, os.Stdout)
//
// # Optional Stages
//
// WithASCII drops bytes above 127 before serialization; the runs either side
// of a dropped run merge. WithCompression wraps the record stream in a
// general-purpose codec from the compress package. WithVerify decodes the
// finished output in memory and compares xxHash64 digests with the input
// before anything is written.
//
// Nothing is written to the destination until the whole pipeline, including
// the optional stages, has succeeded.
package pzip
