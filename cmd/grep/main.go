// Command grep prints the lines that contain a search term.
//
// Without files it reads stdin until end of input or the first empty line.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/suvikristiin/CT30A3370-projects/errs"
	"github.com/suvikristiin/CT30A3370-projects/internal/lines"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "grep: searchterm [file...]")
		return 1
	}

	term := []byte(args[0])
	out := bufio.NewWriter(stdout)

	err := grep(args[1:], term, stdin, out)
	if flushErr := out.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("%w: %w", errs.ErrWriteOutput, flushErr)
	}
	if err != nil {
		fmt.Fprintf(stderr, "grep: %v\n", err)
		return 1
	}

	return 0
}

// grep searches each path in order, or stdin when there are none.
func grep(paths []string, term []byte, stdin io.Reader, w io.Writer) error {
	if len(paths) == 0 {
		return search(stdin, term, true, w)
	}

	for _, path := range paths {
		if err := searchFile(path, term, w); err != nil {
			return err
		}
	}

	return nil
}

func searchFile(path string, term []byte, w io.Writer) error {
	f, err := lines.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return search(f, term, false, w)
}

// search writes every line of r containing term. Interactive input ends at
// the first blank line.
func search(r io.Reader, term []byte, interactive bool, w io.Writer) error {
	return lines.Scan(r, func(line []byte) error {
		if interactive && lines.IsBlank(line) {
			return lines.ErrStop
		}
		if !bytes.Contains(line, term) {
			return nil
		}
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrWriteOutput, err)
		}

		return nil
	})
}
