// Package time computes descriptive statistics of time-domain EEG samples,
// as shown next to the visible window of a channel.
package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain statistics of a sample slice in signal units.
type Stats struct {
	Length    int     `json:"length" yaml:"length"`
	Min       float64 `json:"min" yaml:"min"`
	MinPos    int     `json:"min_pos" yaml:"min_pos"`
	Max       float64 `json:"max" yaml:"max"`
	MaxPos    int     `json:"max_pos" yaml:"max_pos"`
	Mean      float64 `json:"mean" yaml:"mean"`
	StdDev    float64 `json:"std_dev" yaml:"std_dev"` // population
	Range     float64 `json:"range" yaml:"range"`     // max - min
	RMS       float64 `json:"rms" yaml:"rms"`
	Peak      float64 `json:"peak" yaml:"peak"`           // max(|max|, |min|)
	Crossings int     `json:"crossings" yaml:"crossings"` // sign changes around the mean
}

// Calculate computes Stats for signal. An empty slice yields a zero Stats.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var s Stats
	s.Length = n
	s.MinPos = floats.MinIdx(signal)
	s.MaxPos = floats.MaxIdx(signal)
	s.Min = signal[s.MinPos]
	s.Max = signal[s.MaxPos]
	s.Range = s.Max - s.Min
	s.Peak = math.Max(math.Abs(s.Max), math.Abs(s.Min))
	s.Mean, s.StdDev = stat.PopMeanStdDev(signal, nil)
	s.RMS = math.Sqrt(floats.Dot(signal, signal) / float64(n))

	prev := signal[0] - s.Mean
	for _, x := range signal[1:] {
		d := x - s.Mean
		if prev*d < 0 {
			s.Crossings++
		}
		if d != 0 {
			prev = d
		}
	}
	return s
}
