// Package frequency summarizes the shape of a power spectral density over
// a frequency range.
package frequency

import (
	"math"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"github.com/cwbudde/algo-eeg/dsp/spectrum"
	"github.com/cwbudde/algo-eeg/measure/bandpower"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultEdgeFraction is the cumulative power share that defines the
// spectral edge frequency.
const DefaultEdgeFraction = 0.95

// Stats describes a PSD restricted to [lo, hi].
type Stats struct {
	BinCount     int     `json:"bin_count" yaml:"bin_count"`
	PeakHz       float64 `json:"peak_hz" yaml:"peak_hz"`
	PeakPower    float64 `json:"peak_power" yaml:"peak_power"`
	PeakPower_dB float64 `json:"peak_power_db" yaml:"peak_power_db"` //nolint:revive
	TotalPower   float64 `json:"total_power" yaml:"total_power"`     // trapezoidal integral
	MeanPower    float64 `json:"mean_power" yaml:"mean_power"`
	Centroid     float64 `json:"centroid" yaml:"centroid"` // power-weighted mean frequency (Hz)
	Spread       float64 `json:"spread" yaml:"spread"`     // power-weighted standard deviation (Hz)
	Flatness     float64 `json:"flatness" yaml:"flatness"` // geometric / arithmetic mean, 0..1
	Edge         float64 `json:"edge" yaml:"edge"`         // frequency below which DefaultEdgeFraction of the power lies
}

// Calculate summarizes psd over [lo, hi]. A range without bins yields a
// zero Stats with PeakPower_dB = -Inf.
func Calculate(psd spectrum.PSD, lo, hi float64) Stats {
	freqs, power := psd.Select(lo, hi)
	if len(freqs) == 0 {
		return Stats{PeakPower_dB: math.Inf(-1)}
	}

	var s Stats
	s.BinCount = len(freqs)
	peak := floats.MaxIdx(power)
	s.PeakHz = freqs[peak]
	s.PeakPower = power[peak]
	s.PeakPower_dB = core.LinearPowerToDB(s.PeakPower)
	s.TotalPower, _ = bandpower.Integrate(psd, lo, hi)
	s.MeanPower = stat.Mean(power, nil)

	if sum := floats.Sum(power); sum > 0 {
		s.Centroid, s.Spread = stat.PopMeanStdDev(freqs, power)
		s.Edge = edge(freqs, power, sum, DefaultEdgeFraction)
	}
	s.Flatness = flatness(power)
	return s
}

// edge returns the first frequency at which the running power sum reaches
// fraction of the total.
func edge(freqs, power []float64, total, fraction float64) float64 {
	target := fraction * total
	acc := 0.0
	for i, p := range power {
		acc += p
		if acc >= target {
			return freqs[i]
		}
	}
	return freqs[len(freqs)-1]
}

func flatness(power []float64) float64 {
	mean := stat.Mean(power, nil)
	if mean <= 0 {
		return 0
	}
	logSum := 0.0
	for _, p := range power {
		if p <= 0 {
			return 0
		}
		logSum += math.Log(p)
	}
	return math.Exp(logSum/float64(len(power))) / mean
}
