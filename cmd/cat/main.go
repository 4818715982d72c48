// Command cat prints each file in turn. With no files it does nothing.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/suvikristiin/CT30A3370-projects/errs"
	"github.com/suvikristiin/CT30A3370-projects/internal/lines"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(paths []string, stdout, stderr io.Writer) int {
	out := bufio.NewWriter(stdout)

	err := catFiles(paths, out)
	if flushErr := out.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("%w: %w", errs.ErrWriteOutput, flushErr)
	}
	if err != nil {
		fmt.Fprintf(stderr, "cat: %v\n", err)
		return 1
	}

	return 0
}

func catFiles(paths []string, w io.Writer) error {
	for _, path := range paths {
		if err := catFile(path, w); err != nil {
			return err
		}
	}

	return nil
}

func catFile(path string, w io.Writer) error {
	f, err := lines.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return lines.Scan(f, func(line []byte) error {
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrWriteOutput, err)
		}

		return nil
	})
}
