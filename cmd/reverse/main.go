// Command reverse prints the lines of its input in reverse order.
//
//	reverse [input [output]]
//
// Input defaults to stdin and output to stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/suvikristiin/CT30A3370-projects/errs"
	"github.com/suvikristiin/CT30A3370-projects/internal/lines"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := reverse(args, stdin, stdout); err != nil {
		switch {
		case errors.Is(err, errs.ErrUsage):
			fmt.Fprintln(stderr, "usage: reverse <input> <output>")
		case errors.Is(err, errs.ErrSameInputOutput):
			fmt.Fprintln(stderr, "Input and output file must differ")
		default:
			fmt.Fprintf(stderr, "reverse: %v\n", err)
		}

		return 1
	}

	return 0
}

func reverse(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) > 2 {
		return errs.ErrUsage
	}
	if len(args) == 2 && lines.SameFile(args[0], args[1]) {
		return errs.ErrSameInputOutput
	}

	in := stdin
	if len(args) >= 1 {
		f, err := lines.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	all, err := lines.ReadAll(in)
	if err != nil {
		return err
	}
	slices.Reverse(all)

	if len(args) < 2 {
		return lines.WriteAll(stdout, all)
	}

	out, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("cannot open file '%s': %w", args[1], err)
	}
	if err := lines.WriteAll(out, all); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
