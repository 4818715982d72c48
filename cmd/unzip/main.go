// Command unzip expands run record streams produced by pzip or zip and
// writes the original bytes to stdout.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	pzip "github.com/suvikristiin/CT30A3370-projects"
	"github.com/suvikristiin/CT30A3370-projects/errs"
	"github.com/suvikristiin/CT30A3370-projects/format"
	"github.com/suvikristiin/CT30A3370-projects/internal/command"
	"github.com/suvikristiin/CT30A3370-projects/internal/lines"
)

const synopsis = "unzip [options] file1 [file2 ...]"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	app := command.NewApp("unzip", "expand run-length encoded files", "file1 [file2 ...]", stdout, stderr)
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "codec",
			Usage:   "outer compression the files were written with: none, zstd, s2 or lz4",
			Value:   "none",
			EnvVars: []string{"PZIP_CODEC"},
		},
		&cli.StringFlag{
			Name:    "byte-order",
			Usage:   "byte order of record counts: native, little or big",
			Value:   "native",
			EnvVars: []string{"PZIP_BYTE_ORDER"},
		},
	}
	app.Action = func(c *cli.Context) error {
		if c.NArg() == 0 {
			return command.Usage(synopsis)
		}

		codec, err := format.ParseCompressionType(c.String("codec"))
		if err != nil {
			return err
		}
		order, err := format.ParseByteOrder(c.String("byte-order"))
		if err != nil {
			return err
		}
		opts := []pzip.Option{pzip.WithCompression(codec), pzip.WithByteOrder(order)}

		out := bufio.NewWriter(stdout)
		for _, path := range c.Args().Slice() {
			if err := unzipFile(path, out, opts); err != nil {
				_ = out.Flush()
				return err
			}
		}

		if err := out.Flush(); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrWriteOutput, err)
		}

		return nil
	}

	return command.Run(app, args, stderr)
}

func unzipFile(path string, w io.Writer, opts []pzip.Option) error {
	f, err := lines.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := pzip.Decompress(f, w, opts...); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
