package rle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suvikristiin/CT30A3370-projects/errs"
	"github.com/suvikristiin/CT30A3370-projects/format"
)

func TestByteFilter(t *testing.T) {
	full, err := NewByteFilter(format.BytePolicyFull)
	require.NoError(t, err)
	require.Nil(t, full)

	ascii, err := NewByteFilter(format.BytePolicyASCII)
	require.NoError(t, err)

	for v := 0; v < 256; v++ {
		require.True(t, full.Allows(byte(v)))
		require.Equal(t, v <= 127, ascii.Allows(byte(v)), "value %d", v)
	}

	_, err = NewByteFilter(format.BytePolicy(0))
	require.ErrorIs(t, err, errs.ErrInvalidBytePolicy)
}
