package pzip

import (
	"fmt"
	"log/slog"

	"github.com/suvikristiin/CT30A3370-projects/compress"
	"github.com/suvikristiin/CT30A3370-projects/endian"
	"github.com/suvikristiin/CT30A3370-projects/errs"
	"github.com/suvikristiin/CT30A3370-projects/format"
	"github.com/suvikristiin/CT30A3370-projects/internal/logging"
	"github.com/suvikristiin/CT30A3370-projects/internal/options"
	"github.com/suvikristiin/CT30A3370-projects/internal/partition"
	"github.com/suvikristiin/CT30A3370-projects/rle"
)

// Config holds the settings of one pipeline run. It is built from Options;
// the zero value is not usable.
type Config struct {
	workers       int
	bytePolicy    format.BytePolicy
	byteOrder     format.ByteOrder
	codec         format.CompressionType
	maxRunLength  uint32
	maxInputBytes int64
	verify        bool
	logger        *slog.Logger
	metricsFile   string
	segmentReport string
}

// Option configures a pipeline run.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		workers:      partition.MaxWorkers(),
		bytePolicy:   format.BytePolicyFull,
		byteOrder:    format.ByteOrderNative,
		codec:        format.CompressionNone,
		maxRunLength: rle.MaxCount,
		logger:       logging.Discard(),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithWorkers sets the upper bound on parallel segment encoders. The actual
// number is never larger than the input size.
func WithWorkers(n int) Option {
	return options.New(func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidWorkers, n)
		}
		c.workers = n

		return nil
	})
}

// WithBytePolicy selects which byte values are encoded.
func WithBytePolicy(policy format.BytePolicy) Option {
	return options.New(func(c *Config) error {
		switch policy {
		case format.BytePolicyFull, format.BytePolicyASCII:
			c.bytePolicy = policy
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidBytePolicy, policy)
		}
	})
}

// WithASCII is shorthand for WithBytePolicy(format.BytePolicyASCII).
func WithASCII() Option {
	return WithBytePolicy(format.BytePolicyASCII)
}

// WithByteOrder sets the byte order of record counts. The default is the
// host's native order.
func WithByteOrder(order format.ByteOrder) Option {
	return options.New(func(c *Config) error {
		if _, err := endian.ForOrder(order); err != nil {
			return err
		}
		c.byteOrder = order

		return nil
	})
}

// WithCompression wraps the record stream in an outer codec.
func WithCompression(codec format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if _, err := compress.GetCodec(codec); err != nil {
			return err
		}
		c.codec = codec

		return nil
	})
}

// WithMaxRunLength lowers the largest count a single record may hold. Zero
// restores the default of rle.MaxCount. It exists mainly to exercise run
// splitting without multi-gigabyte inputs.
func WithMaxRunLength(n uint32) Option {
	return options.NoError(func(c *Config) {
		if n == 0 {
			n = rle.MaxCount
		}
		c.maxRunLength = n
	})
}

// WithMaxInputBytes caps the aggregate input size. Zero means no cap.
func WithMaxInputBytes(n int64) Option {
	return options.New(func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: max input bytes %d", errs.ErrInvalidConfig, n)
		}
		c.maxInputBytes = n

		return nil
	})
}

// WithVerify enables the in-memory decode check before output is written.
func WithVerify(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.verify = enabled
	})
}

// WithLogger sets the logger for progress and warnings. Nil discards.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = logging.Discard()
		}
		c.logger = logger
	})
}

// WithMetricsFile writes Prometheus metrics for the run to path in the text
// exposition format once the run succeeds.
func WithMetricsFile(path string) Option {
	return options.NoError(func(c *Config) {
		c.metricsFile = path
	})
}

// WithSegmentReport writes one CSV row per segment to path once the run
// succeeds.
func WithSegmentReport(path string) Option {
	return options.NoError(func(c *Config) {
		c.segmentReport = path
	})
}
