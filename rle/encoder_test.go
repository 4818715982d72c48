package rle

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/noxer/bytewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suvikristiin/CT30A3370-projects/endian"
	"github.com/suvikristiin/CT30A3370-projects/format"
)

func encodeToRuns(t *testing.T, enc *Encoder, input []byte) (Sequence, EncodeResult) {
	t.Helper()

	var out bytes.Buffer
	res, err := enc.Encode(bytes.NewReader(input), &out)
	require.NoError(t, err)
	require.Equal(t, int64(out.Len()), res.BytesWritten)

	runs, err := DecodeRuns(out.Bytes(), endian.GetLittleEndianEngine())
	require.NoError(t, err)
	require.Equal(t, len(runs), res.Records)

	return runs, res
}

func TestEncoder_Basic(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  Sequence
	}{
		{"empty", []byte{}, Sequence{}},
		{"single", []byte("A"), Sequence{{1, 'A'}}},
		{"two only", []byte{4, 4}, Sequence{{2, 4}}},
		{"adjacent runs", []byte{9, 5, 5, 5, 3, 3, 7}, Sequence{{1, 9}, {3, 5}, {2, 3}, {1, 7}}},
		{"high bytes kept", []byte{0xfe, 0xfe}, Sequence{{2, 0xfe}}},
	}

	enc := NewEncoder(endian.GetLittleEndianEngine(), nil, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, res := encodeToRuns(t, enc, tt.input)
			assert.Equal(t, tt.want, runs)
			assert.Equal(t, int64(len(tt.input)), res.BytesRead)
			assert.Zero(t, res.Dropped)
		})
	}
}

func TestEncoder_RunLimit(t *testing.T) {
	enc := NewEncoder(endian.GetLittleEndianEngine(), nil, 255)
	runs, _ := encodeToRuns(t, enc, bytes.Repeat([]byte{8}, 600))
	require.Equal(t, Sequence{{255, 8}, {255, 8}, {90, 8}}, runs)
}

func TestEncoder_ASCII(t *testing.T) {
	filter, err := NewByteFilter(format.BytePolicyASCII)
	require.NoError(t, err)

	enc := NewEncoder(endian.GetLittleEndianEngine(), filter, 0)
	var warned []byte
	enc.OnDrop(func(v byte) { warned = append(warned, v) })

	runs, res := encodeToRuns(t, enc, []byte{'a', 0xc3, 0xa4, 'a', 'b', 0xc3})
	require.Equal(t, Sequence{{2, 'a'}, {1, 'b'}}, runs)
	require.Equal(t, int64(3), res.Dropped)
	require.Equal(t, []byte{0xc3, 0xa4}, warned)
}

func TestEncoder_ConcatenatesInputs(t *testing.T) {
	// Runs never continue from one Encode call into the next.
	enc := NewEncoder(endian.GetLittleEndianEngine(), nil, 0)
	var out bytes.Buffer
	_, err := enc.Encode(bytes.NewReader([]byte("aa")), &out)
	require.NoError(t, err)
	_, err = enc.Encode(bytes.NewReader([]byte("ab")), &out)
	require.NoError(t, err)

	runs, err := DecodeRuns(out.Bytes(), endian.GetLittleEndianEngine())
	require.NoError(t, err)
	require.Equal(t, Sequence{{2, 'a'}, {1, 'a'}, {1, 'b'}}, runs)
}

func TestEncoder_RoundTrip(t *testing.T) {
	random := make([]byte, 1852)
	_, _ = rand.Read(random)

	inputs := map[string][]byte{
		"random":  random,
		"nulls":   make([]byte, 571),
		"uniform": bytes.Repeat([]byte{182}, 934),
		"large":   bytes.Repeat([]byte("abbcccdddd"), 20_000),
	}

	engine := endian.GetNativeEngine()
	enc := NewEncoder(engine, nil, 0)
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			var compressed bytes.Buffer
			_, err := enc.Encode(bytes.NewReader(input), &compressed)
			require.NoError(t, err)

			out := make([]byte, len(input))
			n, err := Expand(compressed.Bytes(), engine, bytewriter.New(out))
			require.NoError(t, err)
			require.Equal(t, int64(len(input)), n)
			require.Equal(t, input, out)
		})
	}
}
