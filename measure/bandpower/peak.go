package bandpower

import (
	"math"

	"github.com/cwbudde/algo-eeg/dsp/spectrum"
	"gonum.org/v1/gonum/floats"
)

// Peak is the strongest PSD bin inside a band.
type Peak struct {
	Frequency float64 `json:"frequency" yaml:"frequency"`
	Power     float64 `json:"power" yaml:"power"`
}

// FindPeak returns the maximum-power bin of psd inside b. Ties keep the
// lowest frequency. ok is false when no bin falls in the band.
func FindPeak(psd spectrum.PSD, b Band) (Peak, bool) {
	freqs, power := psd.Select(b.Low, b.High)
	if len(freqs) == 0 {
		return Peak{}, false
	}
	best := floats.MaxIdx(power)
	return Peak{Frequency: freqs[best], Power: power[best]}, true
}

// Amplitude returns sqrt(Power), the amplitude of the sinusoid that stands
// in for the band on the display.
func (p Peak) Amplitude() float64 {
	if p.Power <= 0 {
		return 0
	}
	return math.Sqrt(p.Power)
}

// Sinusoid renders Amplitude()*sin(2*pi*Frequency*t) for t in
// [0, duration) at sampleRate Hz. Non-positive arguments yield nil.
func (p Peak) Sinusoid(duration, sampleRate float64) []float64 {
	if !(duration > 0) || !(sampleRate > 0) {
		return nil
	}
	n := int(duration * sampleRate)
	out := make([]float64, n)
	a := p.Amplitude()
	step := 2 * math.Pi * p.Frequency / sampleRate
	for i := range out {
		out[i] = a * math.Sin(step*float64(i))
	}
	return out
}
