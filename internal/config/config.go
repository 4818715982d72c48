// Package config loads pzip settings from an optional YAML file. Command-line
// flags and environment variables are applied on top by the commands.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suvikristiin/CT30A3370-projects/errs"
	"github.com/suvikristiin/CT30A3370-projects/format"
	"github.com/suvikristiin/CT30A3370-projects/internal/logging"
	"github.com/suvikristiin/CT30A3370-projects/internal/partition"
)

// Config is the settings schema shared by the file, env vars and flags.
type Config struct {
	Workers       int    `yaml:"workers"`
	BytePolicy    string `yaml:"byte_policy"`
	ByteOrder     string `yaml:"byte_order"`
	Codec         string `yaml:"codec"`
	Verify        bool   `yaml:"verify"`
	MaxRunLength  uint32 `yaml:"max_run_length"`
	MaxInputBytes int64  `yaml:"max_input_bytes"`
	LogLevel      string `yaml:"log_level"`
	MetricsFile   string `yaml:"metrics_file"`
	SegmentReport string `yaml:"segment_report"`
}

// Resolved holds the parsed form of a validated Config.
type Resolved struct {
	Workers    int
	BytePolicy format.BytePolicy
	ByteOrder  format.ByteOrder
	Codec      format.CompressionType
	LogLevel   slog.Level
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Workers:    partition.MaxWorkers(),
		BytePolicy: "full",
		ByteOrder:  "native",
		Codec:      "none",
		LogLevel:   "warn",
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if _, err := cfg.Resolve(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports whether the config can be resolved.
func (c Config) Validate() error {
	_, err := c.Resolve()
	return err
}

// Resolve validates the config and parses its enum fields.
func (c Config) Resolve() (Resolved, error) {
	var r Resolved
	var err error

	if c.Workers < 1 {
		return r, fmt.Errorf("%w: workers must be at least 1, got %d", errs.ErrInvalidWorkers, c.Workers)
	}
	if c.MaxInputBytes < 0 {
		return r, fmt.Errorf("%w: max_input_bytes must not be negative", errs.ErrInvalidConfig)
	}
	r.Workers = c.Workers

	if r.BytePolicy, err = format.ParseBytePolicy(c.BytePolicy); err != nil {
		return r, err
	}
	if r.ByteOrder, err = format.ParseByteOrder(c.ByteOrder); err != nil {
		return r, err
	}
	if r.Codec, err = format.ParseCompressionType(c.Codec); err != nil {
		return r, err
	}
	if r.LogLevel, err = logging.ParseLevel(c.LogLevel); err != nil {
		return r, err
	}

	return r, nil
}
