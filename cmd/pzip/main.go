// Command pzip run-length encodes the concatenation of its input files in
// parallel and writes the 5-byte record stream to stdout.
package main

import (
	"io"
	"os"

	"github.com/urfave/cli/v2"

	pzip "github.com/suvikristiin/CT30A3370-projects"
	"github.com/suvikristiin/CT30A3370-projects/internal/command"
	"github.com/suvikristiin/CT30A3370-projects/internal/config"
	"github.com/suvikristiin/CT30A3370-projects/internal/logging"
)

const synopsis = "pzip [options] file1 [file2 ...]"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	app := command.NewApp("pzip", "parallel run-length encoder", "file1 [file2 ...]", stdout, stderr)
	app.Flags = flags()
	app.Action = func(c *cli.Context) error {
		if c.NArg() == 0 {
			return command.Usage(synopsis)
		}

		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}

		opts, err := pipelineOptions(cfg, stderr)
		if err != nil {
			return err
		}

		_, err = pzip.Compress(c.Context, c.Args().Slice(), stdout, opts...)

		return err
	}

	return command.Run(app, args, stderr)
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"j"},
			Usage:   "upper bound on parallel workers (default: GOMAXPROCS)",
			EnvVars: []string{"PZIP_WORKERS"},
		},
		&cli.BoolFlag{
			Name:    "ascii",
			Usage:   "drop bytes above 127 with a warning",
			EnvVars: []string{"PZIP_ASCII"},
		},
		&cli.StringFlag{
			Name:    "byte-order",
			Usage:   "byte order of record counts: native, little or big",
			Value:   "native",
			EnvVars: []string{"PZIP_BYTE_ORDER"},
		},
		&cli.StringFlag{
			Name:    "codec",
			Usage:   "outer compression: none, zstd, s2 or lz4",
			Value:   "none",
			EnvVars: []string{"PZIP_CODEC"},
		},
		&cli.BoolFlag{
			Name:    "verify",
			Usage:   "decode the output in memory and compare digests before writing",
			EnvVars: []string{"PZIP_VERIFY"},
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
			EnvVars: []string{"PZIP_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "debug, info, warn or error",
			Value:   "warn",
			EnvVars: []string{"PZIP_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "metrics-file",
			Usage:   "write Prometheus metrics to this file",
			EnvVars: []string{"PZIP_METRICS_FILE"},
		},
		&cli.StringFlag{
			Name:    "segment-report",
			Usage:   "write a per-segment CSV report to this file",
			EnvVars: []string{"PZIP_SEGMENT_REPORT"},
		},
	}
}

// loadConfig layers the config file, then env vars and flags, over the
// defaults. IsSet is true for values coming from either of the latter.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("ascii") {
		cfg.BytePolicy = "full"
		if c.Bool("ascii") {
			cfg.BytePolicy = "ascii"
		}
	}
	if c.IsSet("byte-order") {
		cfg.ByteOrder = c.String("byte-order")
	}
	if c.IsSet("codec") {
		cfg.Codec = c.String("codec")
	}
	if c.IsSet("verify") {
		cfg.Verify = c.Bool("verify")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("metrics-file") {
		cfg.MetricsFile = c.String("metrics-file")
	}
	if c.IsSet("segment-report") {
		cfg.SegmentReport = c.String("segment-report")
	}

	return cfg, nil
}

func pipelineOptions(cfg config.Config, stderr io.Writer) ([]pzip.Option, error) {
	r, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	logger := logging.New(stderr, r.LogLevel, "pzip")
	logger.Debug("configuration resolved",
		"workers", r.Workers,
		"byte_policy", r.BytePolicy.String(),
		"byte_order", r.ByteOrder.String(),
		"codec", r.Codec.String(),
	)

	return []pzip.Option{
		pzip.WithWorkers(r.Workers),
		pzip.WithBytePolicy(r.BytePolicy),
		pzip.WithByteOrder(r.ByteOrder),
		pzip.WithCompression(r.Codec),
		pzip.WithVerify(cfg.Verify),
		pzip.WithMaxRunLength(cfg.MaxRunLength),
		pzip.WithMaxInputBytes(cfg.MaxInputBytes),
		pzip.WithLogger(logger),
		pzip.WithMetricsFile(cfg.MetricsFile),
		pzip.WithSegmentReport(cfg.SegmentReport),
	}, nil
}
