// Package rle implements the run-length encoding used by pzip: encoding a
// byte range into runs, merging per-segment run sequences across seams, and
// serializing runs as fixed-size records.
//
// # Record Format
//
// A stream is a sequence of 5-byte records with no header, footer or
// terminator:
//
//	+----------------------+-------+
//	| count (uint32)       | value |
//	+----------------------+-------+
//
// The count uses the byte order of the configured endian engine, which is the
// host's native order unless told otherwise. End of stream is end of input.
//
// # Run Limits
//
// A run holds at most MaxCount repetitions. A longer repetition is emitted as
// several records with the same value, each saturated except the last. This
// is the only way two adjacent records can share a value; decoders need no
// special handling since they simply expand every record in turn.
//
// # Segments and Seams
//
// EncodeSegment encodes one half-open range of a shared buffer and is safe
// to call concurrently on disjoint or overlapping ranges, because it only
// reads the buffer. Runs that were split by a segment boundary are joined
// again by a Merger, which consumes segment sequences strictly in segment
// order.
package rle
