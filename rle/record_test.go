package rle

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/noxer/bytewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suvikristiin/CT30A3370-projects/endian"
	"github.com/suvikristiin/CT30A3370-projects/errs"
)

func TestAppendRecord(t *testing.T) {
	little := AppendRecord(nil, endian.GetLittleEndianEngine(), Run{Count: 0x01020304, Value: 'A'})
	big := AppendRecord(nil, endian.GetBigEndianEngine(), Run{Count: 0x01020304, Value: 'A'})

	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01, 'A'}, little)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 'A'}, big)
}

func TestRecordWriter(t *testing.T) {
	w := NewRecordWriter(endian.GetLittleEndianEngine())
	defer w.Release()

	w.WriteRuns(Sequence{{1, 'a'}, {2, 'b'}})
	w.WriteRun(Run{Count: 3, Value: 'c'})
	require.Equal(t, 3, w.Records())
	require.Equal(t, 15, w.Len())

	out := make([]byte, 15)
	n, err := w.WriteTo(bytewriter.New(out))
	require.NoError(t, err)
	require.Equal(t, int64(15), n)
	require.Equal(t, []byte{
		1, 0, 0, 0, 'a',
		2, 0, 0, 0, 'b',
		3, 0, 0, 0, 'c',
	}, out)

	w.Reset()
	require.Zero(t, w.Records())
	require.Zero(t, w.Len())
}

func TestDecodeRuns(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	want := Sequence{{1, 'x'}, {MaxCount, 0}, {42, 0xff}}

	var data []byte
	for _, r := range want {
		data = AppendRecord(data, engine, r)
	}

	got, err := DecodeRuns(data, engine)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = DecodeRuns(data[:len(data)-2], engine)
	require.ErrorIs(t, err, errs.ErrTruncatedRecord)

	empty, err := DecodeRuns(nil, engine)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestDecoder_Next(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := AppendRecord(nil, engine, Run{Count: 5, Value: 'q'})

	d := NewDecoder(bytes.NewReader(data), engine)
	r, err := d.Next()
	require.NoError(t, err)
	require.Equal(t, Run{Count: 5, Value: 'q'}, r)

	_, err = d.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestDecoder_Truncated(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := AppendRecord(nil, engine, Run{Count: 3, Value: 'z'})
	data = append(data, 9, 0, 0)

	var out bytes.Buffer
	n, err := Expand(data, engine, &out)
	require.ErrorIs(t, err, errs.ErrTruncatedRecord)
	require.Equal(t, int64(3), n, "complete records are still written")
	require.Equal(t, "zzz", out.String())
}

func TestExpand(t *testing.T) {
	engine := endian.GetNativeEngine()
	runs := Sequence{{3, 'a'}, {1, 'b'}, {70_000, 'c'}, {2, 0}}

	var data []byte
	for _, r := range runs {
		data = AppendRecord(data, engine, r)
	}

	var out bytes.Buffer
	n, err := Expand(data, engine, &out)
	require.NoError(t, err)

	want := append([]byte("aaab"), bytes.Repeat([]byte{'c'}, 70_000)...)
	want = append(want, 0, 0)
	require.Equal(t, int64(len(want)), n)
	require.Equal(t, want, out.Bytes())
}

type errWriter struct{}

var errSink = errors.New("sink failed")

func (errWriter) Write([]byte) (int, error) { return 0, errSink }

func TestExpand_WriteError(t *testing.T) {
	engine := endian.GetNativeEngine()
	data := AppendRecord(nil, engine, Run{Count: 10, Value: 'a'})

	_, err := Expand(data, engine, errWriter{})
	require.ErrorIs(t, err, errSink)
}
