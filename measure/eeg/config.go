package eeg

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/dsp/signal"
	"github.com/cwbudde/algo-eeg/dsp/window"
	"github.com/cwbudde/algo-eeg/measure/bandpower"
)

// Config holds analysis parameters.
//
// The zero Window is rectangular; start from DefaultConfig for the Hann
// estimator.
type Config struct {
	// MinSamples is the shortest channel accepted (after zero dropping).
	MinSamples int
	// FlatThreshold is the population standard deviation below which a
	// channel counts as flat.
	FlatThreshold float64
	// DropZeros removes samples that are exactly 0 before analysis, for
	// exports that pad missing data with zeros.
	DropZeros bool
	// Window is the periodogram taper.
	Window window.Type
	// Workers bounds concurrent channel analyses; <= 0 means one per channel.
	Workers int
	// Bands are the named bands of multi-band mode.
	Bands []bandpower.Band
}

// DefaultConfig returns the standard analysis settings.
func DefaultConfig() Config {
	return Config{
		MinSamples:    signal.DefaultMinSamples,
		FlatThreshold: signal.DefaultFlatThreshold,
		Window:        window.TypeHann,
		Bands:         bandpower.DefaultBands(),
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.MinSamples <= 0 {
		cfg.MinSamples = signal.DefaultMinSamples
	}
	if cfg.FlatThreshold <= 0 {
		cfg.FlatThreshold = signal.DefaultFlatThreshold
	}
	if len(cfg.Bands) == 0 {
		cfg.Bands = bandpower.DefaultBands()
	} else {
		cfg.Bands = append([]bandpower.Band(nil), cfg.Bands...)
	}
	return cfg
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.MinSamples < 2 {
		return fmt.Errorf("eeg min samples must be >= 2: %d", c.MinSamples)
	}
	if c.FlatThreshold < 0 {
		return fmt.Errorf("eeg flat threshold must be >= 0: %g", c.FlatThreshold)
	}
	if _, err := window.ParseType(c.Window.String()); err != nil {
		return err
	}
	return bandpower.ValidateAll(c.Bands)
}

func (c Config) preprocessOptions() []signal.PreprocessOption {
	opts := []signal.PreprocessOption{
		signal.WithMinSamples(c.MinSamples),
		signal.WithFlatThreshold(c.FlatThreshold),
	}
	if c.DropZeros {
		opts = append(opts, signal.WithDropValue(0))
	}
	return opts
}
