package signal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultMinSamples is the shortest channel accepted for spectral analysis.
	DefaultMinSamples = 1000
	// DefaultFlatThreshold is the standard deviation (in the signal's physical
	// units) below which a channel counts as flat.
	DefaultFlatThreshold = 1e-10
)

// PreprocessOption configures Preprocess.
type PreprocessOption func(*preprocessConfig)

type preprocessConfig struct {
	minSamples    int
	flatThreshold float64
	dropValue     float64
	drop          bool
}

func defaultPreprocessConfig() preprocessConfig {
	return preprocessConfig{
		minSamples:    DefaultMinSamples,
		flatThreshold: DefaultFlatThreshold,
	}
}

// WithMinSamples sets the minimum post-drop length. Values below 1 are ignored.
func WithMinSamples(n int) PreprocessOption {
	return func(c *preprocessConfig) {
		if n >= 1 {
			c.minSamples = n
		}
	}
}

// WithFlatThreshold sets the standard deviation noise floor. Negative or
// non-finite values are ignored.
func WithFlatThreshold(eps float64) PreprocessOption {
	return func(c *preprocessConfig) {
		if eps >= 0 && !math.IsInf(eps, 0) {
			c.flatThreshold = eps
		}
	}
}

// WithDropValue removes samples exactly equal to v before the mean is
// taken. Recorders that pad missing data with a literal 0 need
// WithDropValue(0); note that genuine zero samples are removed as well and
// the frequency resolution changes with the shorter length.
func WithDropValue(v float64) PreprocessOption {
	return func(c *preprocessConfig) {
		c.dropValue = v
		c.drop = true
	}
}

// Preprocess returns a new zero-mean copy of x.
//
// It fails with ErrInsufficientSamples when fewer than the minimum number of
// samples remain, and with ErrFlatSignal when the population standard
// deviation is below the flat threshold.
func Preprocess(x []float64, opts ...PreprocessOption) ([]float64, error) {
	cfg := defaultPreprocessConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var out []float64
	if cfg.drop {
		out = make([]float64, 0, len(x))
		for _, v := range x {
			if v != cfg.dropValue {
				out = append(out, v)
			}
		}
	} else {
		out = make([]float64, len(x))
		copy(out, x)
	}

	if len(out) < cfg.minSamples {
		return nil, fmt.Errorf("%w: %d < %d", ErrInsufficientSamples, len(out), cfg.minSamples)
	}

	mean, std := stat.PopMeanStdDev(out, nil)
	if !(std >= cfg.flatThreshold) {
		return nil, fmt.Errorf("%w: std %g < %g", ErrFlatSignal, std, cfg.flatThreshold)
	}

	floats.AddConst(-mean, out)
	return out, nil
}

// RemoveDC returns x with its mean subtracted. Unlike Preprocess it applies
// no length or flatness checks.
func RemoveDC(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("remove dc input must not be empty")
	}
	out := make([]float64, len(x))
	copy(out, x)
	floats.AddConst(-stat.Mean(out, nil), out)
	return out, nil
}
