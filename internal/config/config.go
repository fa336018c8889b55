// Package config loads CarbonTrace settings from the user config file, an
// optional project overlay, .env files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/carbontrace/internal/classify"
	"github.com/rshade/carbontrace/internal/greenops"
	"github.com/rshade/carbontrace/internal/offsets"
)

// Output formats accepted by output.default_format and --output.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// Defaults.
const (
	DefaultPrecision      = 1
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
	DefaultProduct        = "coffee"
	DefaultServeAddr      = ":9464"
	maxPrecision          = 6
	configFileName        = "config.yaml"
	outputTypeFile        = "file"
	outputTypeStderr      = "stderr"
	configFilePermissions = 0o600
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full CarbonTrace configuration.
type Config struct {
	Output         OutputConfig        `yaml:"output"`
	Logging        LoggingConfig       `yaml:"logging"`
	Classification classify.Thresholds `yaml:"classification"`
	Offsets        OffsetsConfig       `yaml:"offsets"`
	Data           DataConfig          `yaml:"data"`
	Serve          ServeConfig         `yaml:"serve"`

	// loadErr records a config file that existed but failed to parse.
	loadErr error
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// OffsetsConfig prices the offset calculator.
type OffsetsConfig struct {
	PricePerKg float64 `yaml:"price_per_kg"`
	KgPerTree  float64 `yaml:"kg_per_tree"`
}

// DataConfig selects the emission data source.
type DataConfig struct {
	// Path is a YAML, JSON or CSV data file. Empty uses the embedded profiles.
	Path           string `yaml:"path,omitempty"`
	DefaultProduct string `yaml:"default_product"`
	ExportDir      string `yaml:"export_dir,omitempty"`
}

// ServeConfig configures `carbontrace serve`.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output:         OutputConfig{DefaultFormat: FormatTable, Precision: DefaultPrecision},
		Logging:        LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Classification: classify.DefaultThresholds(),
		Offsets:        OffsetsConfig{PricePerKg: offsets.DefaultPricePerKg, KgPerTree: greenops.TreeYearFactor},
		Data:           DataConfig{DefaultProduct: DefaultProduct},
		Serve:          ServeConfig{Addr: DefaultServeAddr},
	}
}

// New returns the defaults overlaid with the user config file and the
// environment. A config file that fails to parse is skipped and reported by
// LoadError.
func New() *Config {
	cfg := Default()
	if path, err := ConfigFilePath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if loadErr := cfg.LoadFile(path); loadErr != nil {
				cfg.loadErr = loadErr
			}
		}
	}
	cfg.ApplyEnv()
	return cfg
}

// LoadError returns the error from loading the user config file, if any.
func (c *Config) LoadError() error {
	return c.loadErr
}

// LoadFile shallow-merges the YAML file at path onto c.
func (c *Config) LoadFile(path string) error {
	return ShallowMergeYAML(c, path)
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if mkErr := os.MkdirAll(filepath.Dir(path), 0o700); mkErr != nil {
		return fmt.Errorf("creating config directory: %w", mkErr)
	}
	if writeErr := os.WriteFile(path, data, configFilePermissions); writeErr != nil {
		return fmt.Errorf("writing config %s: %w", path, writeErr)
	}
	return nil
}

// Validate checks every section and joins all problems into one error.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON, FormatNDJSON:
	default:
		errs = append(errs, fmt.Errorf("output.default_format %q must be one of table, json, ndjson", c.Output.DefaultFormat))
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		errs = append(errs, fmt.Errorf("output.precision %d must be between 0 and %d", c.Output.Precision, maxPrecision))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console", "text":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be json, console or text", c.Logging.Format))
	}
	if err := c.Classification.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("classification: %w", err))
	}
	if c.Offsets.PricePerKg <= 0 {
		errs = append(errs, fmt.Errorf("offsets.price_per_kg %v must be positive", c.Offsets.PricePerKg))
	}
	if c.Offsets.KgPerTree <= 0 {
		errs = append(errs, fmt.Errorf("offsets.kg_per_tree %v must be positive", c.Offsets.KgPerTree))
	}
	if c.Serve.Addr == "" {
		errs = append(errs, errors.New("serve.addr must not be empty"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
