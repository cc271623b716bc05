package spectrum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"github.com/cwbudde/algo-eeg/dsp/window"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

var errLengthMismatch = errors.New("frequency and power lengths differ")

// PSD is a one-sided power spectral density.
//
// Frequencies is ascending, starts at 0 and never exceeds SampleRate/2.
// Power holds one non-negative value per frequency in signal units^2/Hz.
type PSD struct {
	Frequencies []float64
	Power       []float64
	SampleRate  float64
	// N is the length of the transformed signal.
	N int
	// Window is the taper applied before the transform.
	Window window.Type
}

// Len returns the number of frequency bins.
func (p PSD) Len() int { return len(p.Frequencies) }

// Resolution returns the bin spacing fs/N in Hz.
func (p PSD) Resolution() float64 {
	if p.N <= 0 {
		return 0
	}
	return p.SampleRate / float64(p.N)
}

// Validate checks the pair invariants.
func (p PSD) Validate() error {
	if len(p.Frequencies) != len(p.Power) {
		return fmt.Errorf("%w: %d != %d", errLengthMismatch, len(p.Frequencies), len(p.Power))
	}
	for i := 1; i < len(p.Frequencies); i++ {
		if !(p.Frequencies[i] > p.Frequencies[i-1]) {
			return fmt.Errorf("psd frequencies must be strictly increasing at index %d", i)
		}
	}
	return nil
}

// Select returns the bins with lo <= f <= hi. The returned slices alias p.
func (p PSD) Select(lo, hi float64) (freqs, power []float64) {
	start := -1
	end := -1
	for i, f := range p.Frequencies {
		if f >= lo && f <= hi {
			if start < 0 {
				start = i
			}
			end = i + 1
		}
	}
	if start < 0 {
		return nil, nil
	}
	return p.Frequencies[start:end], p.Power[start:end]
}

// Option configures Periodogram.
type Option func(*config)

type config struct {
	window window.Type
}

// WithWindow selects the taper. The default is Hann.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// Periodogram estimates the PSD of x sampled at sampleRate Hz.
//
// x is tapered, transformed, and |X[k]|^2 is divided by fs*sum(w^2). Bins
// whose conventional FFT frequency lies in [0, fs/2] are kept; the spectrum
// is not doubled to fold in the negative frequencies. A window with zero
// energy (Hann with N=2) yields zero power. x is not modified.
func Periodogram(x []float64, sampleRate float64, opts ...Option) (PSD, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return PSD{}, fmt.Errorf("periodogram: %w", err)
	}
	n := len(x)
	if n < 2 {
		return PSD{}, fmt.Errorf("periodogram requires at least 2 samples: %d", n)
	}

	cfg := config{window: window.TypeHann}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	coeffs := window.Generate(cfg.window, n)
	windowed, err := window.ApplyCoefficients(x, coeffs)
	if err != nil {
		return PSD{}, err
	}

	nyquist := sampleRate / 2
	all := FFTFreq(n, sampleRate)
	freqs := make([]float64, 0, n/2+1)
	for _, f := range all {
		if f >= 0 && f <= nyquist {
			freqs = append(freqs, f)
		}
	}

	bins := fourier.NewFFT(n).Coefficients(nil, windowed)

	power := make([]float64, len(freqs))
	binPower(power, bins[:len(freqs)])

	energy := window.Energy(coeffs)
	if energy > 0 {
		floats.Scale(1/(sampleRate*energy), power)
	} else {
		for k := range power {
			power[k] = 0
		}
	}

	return PSD{
		Frequencies: freqs,
		Power:       power,
		SampleRate:  sampleRate,
		N:           n,
		Window:      cfg.window,
	}, nil
}
