package lines

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suvikristiin/CT30A3370-projects/errs"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single line no newline", "abc", []string{"abc"}},
		{"lines", "a\nb\n", []string{"a\n", "b\n"}},
		{"blank lines kept", "a\n\n\nb", []string{"a\n", "\n", "\n", "b"}},
		{"long line", strings.Repeat("x", 10_000) + "\nend", []string{strings.Repeat("x", 10_000) + "\n", "end"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			err := Scan(strings.NewReader(tt.input), func(line []byte) error {
				got = append(got, string(line))
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestScan_Stop(t *testing.T) {
	var got []string
	err := Scan(strings.NewReader("a\n\nb\n"), func(line []byte) error {
		if IsBlank(line) {
			return ErrStop
		}
		got = append(got, string(line))

		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a\n"}, got)

	boom := errors.New("boom")
	err = Scan(strings.NewReader("a\n"), func([]byte) error { return boom })
	require.ErrorIs(t, err, boom)
}

func TestReadAllWriteAll(t *testing.T) {
	input := "one\ntwo\n\nthree"

	all, err := ReadAll(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, all, 4)

	var out bytes.Buffer
	require.NoError(t, WriteAll(&out, all))
	require.Equal(t, input, out.String())
}

func TestIsBlank(t *testing.T) {
	require.True(t, IsBlank([]byte("\n")))
	require.False(t, IsBlank([]byte("")))
	require.False(t, IsBlank([]byte(" \n")))
}

func TestOpen(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")

	_, err := Open(missing)
	require.ErrorIs(t, err, errs.ErrOpenInput)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.ErrorContains(t, err, "cannot open file '"+missing+"'")
}

func TestSameFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("x"), 0o600))
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Link(a, link))

	require.True(t, SameFile(a, a))
	require.True(t, SameFile(a, link))
	require.True(t, SameFile(a, filepath.Join(dir, ".", "a.txt")))
	require.False(t, SameFile(a, filepath.Join(dir, "new.txt")))
}
