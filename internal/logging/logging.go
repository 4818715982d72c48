// Package logging builds the slog loggers used by the command-line tools.
// Logs always go to stderr, since stdout carries the encoded stream.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/suvikristiin/CT30A3370-projects/errs"
)

// ParseLevel maps debug, info, warn(ing) or error to a slog level. The empty
// string selects warn.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: unknown log level %q", errs.ErrInvalidConfig, name)
	}
}

// New returns a text logger writing to w at the given level, tagged with the
// tool name.
func New(w io.Writer, level slog.Level, tool string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("tool", tool)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
