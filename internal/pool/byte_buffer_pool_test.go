package pool

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)
	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.NoError(t, bb.WriteByte('!'))
	assert.Equal(t, []byte("hello!"), bb.Bytes())

	capBefore := bb.Cap()
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity is a no-op", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(64)
		assert.Equal(t, 64, bb.Cap())
	})

	t.Run("doubles capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		_, _ = bb.Write(make([]byte, 60))
		bb.Grow(10)
		assert.Equal(t, 128, bb.Cap())
		assert.Equal(t, 60, bb.Len())
	})

	t.Run("jumps to required size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.Grow(1000)
		assert.GreaterOrEqual(t, bb.Cap(), 1000)
	})

	t.Run("grows from zero capacity", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(5)
		assert.GreaterOrEqual(t, bb.Cap(), 5)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(4)
		_, _ = bb.Write([]byte{1, 2, 3, 4})
		bb.Grow(100)
		assert.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())
	})
}

func TestByteBuffer_AppendRepeat(t *testing.T) {
	tests := []struct {
		name   string
		prefix []byte
		n      int
	}{
		{"zero", nil, 0},
		{"negative", []byte("ab"), -3},
		{"one", nil, 1},
		{"power of two", []byte("x"), 64},
		{"odd length", nil, 1000},
		{"grows past capacity", []byte("head"), 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := NewByteBuffer(16)
			_, _ = bb.Write(tt.prefix)
			bb.AppendRepeat('z', tt.n)

			want := append([]byte{}, tt.prefix...)
			if tt.n > 0 {
				want = append(want, bytes.Repeat([]byte{'z'}, tt.n)...)
			}
			require.Equal(t, want, bb.Bytes())
		})
	}
}

type failingWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteFailed }

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("records"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "records", out.String())

	_, err = bb.WriteTo(failingWriter{})
	require.ErrorIs(t, err, errWriteFailed)
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	bb.Grow(1024)
	require.Greater(t, bb.Cap(), 32)
	p.Put(bb)

	// The oversized buffer was discarded; sync.Pool may hand out any
	// retained buffer, but never one larger than the threshold.
	got := p.Get()
	require.LessOrEqual(t, got.Cap(), 32)
	require.Equal(t, 0, got.Len())
}

func TestByteBufferPool_PutNil(t *testing.T) {
	require.NotPanics(t, func() { PutRecordBuffer(nil) })
	require.NotPanics(t, func() { PutExpandBuffer(nil) })
}

func TestDefaultPools(t *testing.T) {
	rb := GetRecordBuffer()
	require.NotNil(t, rb)
	require.Equal(t, 0, rb.Len())
	_, _ = rb.Write([]byte{1, 2, 3})
	PutRecordBuffer(rb)

	eb := GetExpandBuffer()
	require.NotNil(t, eb)
	require.Equal(t, 0, eb.Len())
	PutExpandBuffer(eb)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			bb := GetRecordBuffer()
			defer PutRecordBuffer(bb)
			for range 100 {
				_ = bb.WriteByte(byte(id))
			}
			assert.Equal(t, 100, bb.Len())
		}(i)
	}
	wg.Wait()
}
