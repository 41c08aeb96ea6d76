// Package config loads the adtbench YAML configuration.
//
// Every field has a default, so a missing file or an empty document is a
// valid configuration. Fields present in the file replace the defaults;
// command-line flags are applied on top by the CLI.
//
// Example:
//
//	bench:
//	  iterations: 20
//	  warmup: 2
//	  sizes: [100, 200, 400, 800]
//	  workloads: [linked_list_search, stack_push]
//	growth:
//	  tolerance: 0.25
//	output:
//	  color: never
//	  csv: results.csv
//	log:
//	  level: debug
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/randomizedcoder/adt-complexity-bench/internal/bench"
	"github.com/randomizedcoder/adt-complexity-bench/internal/growth"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the root of the configuration file.
type Config struct {
	Bench  BenchConfig  `yaml:"bench"`
	Growth GrowthConfig `yaml:"growth"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// BenchConfig configures the harness.
type BenchConfig struct {
	Iterations     int   `yaml:"iterations" validate:"gte=1,lte=1000000"`
	Warmup         int   `yaml:"warmup" validate:"gte=0,lte=1000000"`
	Sizes          []int `yaml:"sizes" validate:"required,min=1,dive,gte=1"`
	CollectGarbage bool  `yaml:"collect_garbage"`

	// Workloads restricts sweeps to these keys; empty means all.
	Workloads []string `yaml:"workloads,omitempty" validate:"dive,required"`
}

// GrowthConfig configures the growth analyzer.
type GrowthConfig struct {
	Tolerance float64 `yaml:"tolerance" validate:"gt=0,lt=1"`
}

// OutputConfig configures report output.
type OutputConfig struct {
	// Color is auto (styled only on a terminal), always or never.
	Color string `yaml:"color" validate:"oneof=auto always never"`

	// CSV, when set, receives the chart data of every sweep.
	CSV string `yaml:"csv"`

	// MetricsFile, when set, receives the Prometheus textfile of every sweep.
	MetricsFile string `yaml:"metrics_file"`

	// PlotWidth is the longest bar of terminal plots.
	PlotWidth int `yaml:"plot_width" validate:"gte=10,lte=200"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	h := bench.DefaultConfig()
	return Config{
		Bench: BenchConfig{
			Iterations:     h.Iterations,
			Warmup:         h.Warmup,
			Sizes:          h.Sizes,
			CollectGarbage: h.CollectGarbage,
		},
		Growth: GrowthConfig{Tolerance: growth.DefaultTolerance},
		Output: OutputConfig{Color: "auto", PlotWidth: 40},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Load reads path over the defaults. An empty path returns the defaults.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Harness converts the bench section into a harness configuration.
func (b BenchConfig) Harness() bench.Config {
	return bench.Config{
		Iterations:     b.Iterations,
		Warmup:         b.Warmup,
		Sizes:          slices.Clone(b.Sizes),
		CollectGarbage: b.CollectGarbage,
	}
}

// Analyzer returns the configured growth analyzer.
func (g GrowthConfig) Analyzer() *growth.Analyzer {
	return &growth.Analyzer{Tolerance: g.Tolerance}
}

// SlogLevel maps the level name to a slog.Level.
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
