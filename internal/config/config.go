// Package config loads the YAML configuration shared by the command-line
// tools.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"github.com/cwbudde/algo-eeg/dsp/signal"
	"github.com/cwbudde/algo-eeg/dsp/window"
	"github.com/cwbudde/algo-eeg/measure/bandpower"
	"github.com/cwbudde/algo-eeg/measure/eeg"
	"gopkg.in/yaml.v3"
)

// Config is the root of the configuration file.
type Config struct {
	Recording RecordingConfig `yaml:"recording"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Logging   LoggingConfig   `yaml:"logging"`
	Output    OutputConfig    `yaml:"output"`
}

// RecordingConfig describes how sample tables are read.
type RecordingConfig struct {
	SampleRate float64  `yaml:"sample_rate"`
	Labels     []string `yaml:"labels"`
	SkipLines  int      `yaml:"skip_lines"`
}

// AnalysisConfig mirrors eeg.Config with YAML-friendly types.
type AnalysisConfig struct {
	MinSamples    int              `yaml:"min_samples"`
	FlatThreshold float64          `yaml:"flat_threshold"`
	DropZeros     bool             `yaml:"drop_zeros"`
	Window        string           `yaml:"window"`
	Workers       int              `yaml:"workers"`
	Bands         []bandpower.Band `yaml:"bands"`
}

// LoggingConfig configures internal/logging.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// OutputConfig selects the report format.
type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// Default returns the configuration used without a file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, defaults and validates the YAML file at filename.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, fills defaults for zero fields and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Recording.SampleRate == 0 {
		c.Recording.SampleRate = core.DefaultSampleRate
	}
	if c.Analysis.MinSamples == 0 {
		c.Analysis.MinSamples = signal.DefaultMinSamples
	}
	if c.Analysis.FlatThreshold == 0 {
		c.Analysis.FlatThreshold = signal.DefaultFlatThreshold
	}
	if c.Analysis.Window == "" {
		c.Analysis.Window = window.TypeHann.String()
	}
	if len(c.Analysis.Bands) == 0 {
		c.Analysis.Bands = bandpower.DefaultBands()
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if err := core.ValidateSampleRate(c.Recording.SampleRate); err != nil {
		return fmt.Errorf("recording.sample_rate: %w", err)
	}
	if c.Recording.SkipLines < 0 {
		return fmt.Errorf("recording.skip_lines must be >= 0: %d", c.Recording.SkipLines)
	}
	if c.Analysis.Workers < 0 {
		return fmt.Errorf("analysis.workers must be >= 0: %d", c.Analysis.Workers)
	}
	switch strings.ToLower(c.Output.Format) {
	case "text", "json", "csv", "yaml":
	default:
		return fmt.Errorf("output.format must be text, json, csv or yaml: %q", c.Output.Format)
	}
	ac, err := c.AnalyzerConfig()
	if err != nil {
		return err
	}
	return ac.Validate()
}

// AnalyzerConfig converts the analysis section to an eeg.Config.
func (c *Config) AnalyzerConfig() (eeg.Config, error) {
	w, err := window.ParseType(c.Analysis.Window)
	if err != nil {
		return eeg.Config{}, fmt.Errorf("analysis.window: %w", err)
	}
	return eeg.Config{
		MinSamples:    c.Analysis.MinSamples,
		FlatThreshold: c.Analysis.FlatThreshold,
		DropZeros:     c.Analysis.DropZeros,
		Window:        w,
		Workers:       c.Analysis.Workers,
		Bands:         append([]bandpower.Band(nil), c.Analysis.Bands...),
	}, nil
}
