package bandpower

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eeg/dsp/spectrum"
	"gonum.org/v1/gonum/integrate"
)

// Integrate returns the trapezoidal integral of psd.Power over the bins with
// lo <= f <= hi.
//
// The result is exactly 0 when fewer than two bins fall inside the interval;
// that is a valid outcome for short signals whose resolution fs/N is coarser
// than the interval. Errors are reserved for malformed input.
func Integrate(psd spectrum.PSD, lo, hi float64) (float64, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, fmt.Errorf("%w: NaN edge", ErrInvalidBand)
	}
	if lo > hi {
		return 0, fmt.Errorf("%w: low edge %g > high edge %g", ErrInvalidBand, lo, hi)
	}
	if len(psd.Frequencies) != len(psd.Power) {
		return 0, fmt.Errorf("bandpower: psd has %d frequencies and %d power values",
			len(psd.Frequencies), len(psd.Power))
	}

	freqs, power := psd.Select(lo, hi)
	if len(freqs) < 2 {
		return 0, nil
	}
	return integrate.Trapezoidal(freqs, power), nil
}

// IntegrateBand is Integrate over b's edges.
func IntegrateBand(psd spectrum.PSD, b Band) (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return Integrate(psd, b.Low, b.High)
}

// IntegrateAll integrates every band and returns the powers keyed by name.
func IntegrateAll(psd spectrum.PSD, bands []Band) (map[string]float64, error) {
	out := make(map[string]float64, len(bands))
	for _, b := range bands {
		p, err := IntegrateBand(psd, b)
		if err != nil {
			return nil, err
		}
		out[b.Name] = p
	}
	return out, nil
}
