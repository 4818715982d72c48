package pool

import (
	"io"
	"sync"
)

const (
	RecordBufferDefaultSize  = 1024 * 64       // 64KiB, 13107 records
	RecordBufferMaxThreshold = 1024 * 1024 * 4 // 4MiB
	ExpandBufferDefaultSize  = 1024 * 32       // 32KiB
	ExpandBufferMaxThreshold = 1024 * 1024     // 1MiB
)

// ByteBuffer is a growable byte slice that can be recycled through a
// ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of buffered bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the underlying slice.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures at least requiredBytes can be appended without reallocating.
//
// Capacity doubles on each reallocation (or jumps straight to what is
// required, if that is larger), keeping amortized append cost constant.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	newCap := cap(bb.B) * 2
	if newCap < len(bb.B)+requiredBytes {
		newCap = len(bb.B) + requiredBytes
	}

	newBuf := make([]byte, len(bb.B), newCap)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteByte appends a single byte. It never fails.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// AppendRepeat appends n copies of c.
func (bb *ByteBuffer) AppendRepeat(c byte, n int) {
	if n <= 0 {
		return
	}

	bb.Grow(n)
	start := len(bb.B)
	bb.B = bb.B[:start+n]

	fill := bb.B[start:]
	fill[0] = c
	for filled := 1; filled < n; filled *= 2 {
		copy(fill[filled:], fill[:filled])
	}
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool recycles ByteBuffers. Buffers that grew beyond maxThreshold
// are dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize
// capacity. A maxThreshold of zero keeps every buffer.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer from the pool, allocating one if none is idle.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets bb and returns it to the pool. Oversized buffers are dropped.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	recordPool = NewByteBufferPool(RecordBufferDefaultSize, RecordBufferMaxThreshold)
	expandPool = NewByteBufferPool(ExpandBufferDefaultSize, ExpandBufferMaxThreshold)
)

// GetRecordBuffer returns a buffer sized for serializing run records.
func GetRecordBuffer() *ByteBuffer {
	return recordPool.Get()
}

func PutRecordBuffer(bb *ByteBuffer) {
	recordPool.Put(bb)
}

// GetExpandBuffer returns a buffer sized for staging decoded bytes.
func GetExpandBuffer() *ByteBuffer {
	return expandPool.Get()
}

func PutExpandBuffer(bb *ByteBuffer) {
	expandPool.Put(bb)
}
