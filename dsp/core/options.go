package core

import (
	"errors"
	"fmt"
	"math"
)

// DefaultSampleRate is the acquisition rate of the EEG amplifier in Hz. The
// rate is not stored in the sample files, so it is supplied out of band.
const DefaultSampleRate = 5000.0

// ErrInvalidSampleRate reports a sample rate that is not a positive finite
// number.
var ErrInvalidSampleRate = errors.New("sample rate must be > 0 and finite")

// ValidateSampleRate returns ErrInvalidSampleRate, wrapped with the value,
// unless fs is positive and finite.
func ValidateSampleRate(fs float64) error {
	if !(fs > 0) || math.IsInf(fs, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidSampleRate, fs)
	}
	return nil
}

// ProcessorConfig holds settings shared by signal sources.
type ProcessorConfig struct {
	SampleRate float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// WithSampleRate sets the sample rate. Invalid rates are ignored.
func WithSampleRate(fs float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if ValidateSampleRate(fs) == nil {
			cfg.SampleRate = fs
		}
	}
}

// ApplyProcessorOptions applies opts over a config at DefaultSampleRate.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := ProcessorConfig{SampleRate: DefaultSampleRate}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
