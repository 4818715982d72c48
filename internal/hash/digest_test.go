package hash

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Sum([]byte(tt.data)))
		})
	}
}

func TestDigestMatchesSum(t *testing.T) {
	data := make([]byte, 10_000)
	rand.New(rand.NewSource(7)).Read(data)

	d := NewDigest()
	for off := 0; off < len(data); off += 333 {
		end := min(off+333, len(data))
		n, err := d.Write(data[off:end])
		require.NoError(t, err)
		require.Equal(t, end-off, n)
	}

	require.Equal(t, Sum(data), d.Sum64())
	require.Equal(t, int64(len(data)), d.Len())
}

func TestDigestEmpty(t *testing.T) {
	d := NewDigest()
	require.Equal(t, Sum(nil), d.Sum64())
	require.Zero(t, d.Len())
}
