// Package report writes the optional per-segment CSV report.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// SegmentRow describes how one segment was encoded.
type SegmentRow struct {
	Index      int    `csv:"segment"`
	Start      int    `csv:"start"`
	End        int    `csv:"end"`
	Runs       int    `csv:"runs"`
	FirstValue string `csv:"first_value"`
	LastValue  string `csv:"last_value"`
	SeamMerged bool   `csv:"seam_merged"`
	DurationUs int64  `csv:"duration_us"`
}

// FormatValue renders a byte for the report.
func FormatValue(v byte) string {
	return fmt.Sprintf("0x%02x", v)
}

// Write writes rows as CSV with a header line.
func Write(w io.Writer, rows []SegmentRow) error {
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("write segment report: %w", err)
	}

	return nil
}

// WriteFile writes rows to path, replacing any existing file.
func WriteFile(path string, rows []SegmentRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create segment report: %w", err)
	}

	if err := Write(f, rows); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
