// Command zip is the sequential encoder. It streams each file through a
// single encoder, keeps only 7-bit ASCII bytes and writes the records to
// stdout. Files are encoded independently, so a run never continues from one
// file into the next.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/suvikristiin/CT30A3370-projects/endian"
	"github.com/suvikristiin/CT30A3370-projects/errs"
	"github.com/suvikristiin/CT30A3370-projects/format"
	"github.com/suvikristiin/CT30A3370-projects/internal/command"
	"github.com/suvikristiin/CT30A3370-projects/internal/lines"
	"github.com/suvikristiin/CT30A3370-projects/internal/logging"
	"github.com/suvikristiin/CT30A3370-projects/internal/report"
	"github.com/suvikristiin/CT30A3370-projects/rle"
)

const synopsis = "zip file1 [file2 ...]"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	app := command.NewApp("zip", "sequential run-length encoder", "file1 [file2 ...]", stdout, stderr)
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "byte-order",
			Usage:   "byte order of record counts: native, little or big",
			Value:   "native",
			EnvVars: []string{"PZIP_BYTE_ORDER"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "debug, info, warn or error",
			Value:   "warn",
			EnvVars: []string{"PZIP_LOG_LEVEL"},
		},
	}
	app.Action = func(c *cli.Context) error {
		if c.NArg() == 0 {
			return command.Usage(synopsis)
		}

		level, err := logging.ParseLevel(c.String("log-level"))
		if err != nil {
			return err
		}
		logger := logging.New(stderr, level, "zip")

		order, err := format.ParseByteOrder(c.String("byte-order"))
		if err != nil {
			return err
		}
		engine, err := endian.ForOrder(order)
		if err != nil {
			return err
		}
		filter, err := rle.NewByteFilter(format.BytePolicyASCII)
		if err != nil {
			return err
		}

		enc := rle.NewEncoder(engine, filter, rle.MaxCount)
		enc.OnDrop(func(value byte) {
			logger.Warn("omitting non-ASCII byte", "value", report.FormatValue(value))
		})

		out := bufio.NewWriter(stdout)
		for _, path := range c.Args().Slice() {
			res, err := zipFile(enc, path, out)
			if err != nil {
				_ = out.Flush()
				return err
			}
			logger.Info("encoded file",
				"path", path,
				"bytes_read", res.BytesRead,
				"records", res.Records,
				"dropped", res.Dropped,
			)
		}

		if err := out.Flush(); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrWriteOutput, err)
		}

		return nil
	}

	return command.Run(app, args, stderr)
}

func zipFile(enc *rle.Encoder, path string, w io.Writer) (rle.EncodeResult, error) {
	f, err := lines.Open(path)
	if err != nil {
		return rle.EncodeResult{}, err
	}
	defer f.Close()

	res, err := enc.Encode(f, w)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}

	return res, nil
}
