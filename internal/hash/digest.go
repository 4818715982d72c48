// Package hash computes the xxHash64 digests used to verify that an encoded
// stream decodes back to the aggregated input.
package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates an xxHash64 over everything written to it. It is meant
// to sit at the end of a decoder so the expanded bytes never need to be held
// in memory at once.
type Digest struct {
	d *xxhash.Digest
	n int64
}

func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Write implements io.Writer. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	n, _ := d.d.Write(p)
	d.n += int64(n)

	return n, nil
}

// Sum64 returns the digest of everything written so far.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}

// Len returns the number of bytes written so far.
func (d *Digest) Len() int64 {
	return d.n
}
