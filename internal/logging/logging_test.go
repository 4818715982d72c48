package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suvikristiin/CT30A3370-projects/errs"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelWarn,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, "pzip")

	logger.Debug("hidden")
	logger.Info("shown", "segments", 4)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "msg=shown")
	require.Contains(t, out, "tool=pzip")
	require.Contains(t, out, "segments=4")
}

func TestDiscard(t *testing.T) {
	require.NotPanics(t, func() { Discard().Error("nothing") })
}
