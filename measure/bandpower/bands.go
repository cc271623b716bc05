package bandpower

import (
	"fmt"
	"math"
	"strings"
)

// Band is a named closed frequency interval in Hz.
type Band struct {
	Name string  `json:"name" yaml:"name"`
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// Canonical EEG rhythm names.
const (
	NameDelta = "delta"
	NameTheta = "theta"
	NameAlpha = "alpha"
	NameBeta  = "beta"
	NameGamma = "gamma"
	NameTotal = "total"
)

// FullSpectrum is the broadband 0.5-45 Hz range reported in full-spectrum mode.
var FullSpectrum = Band{Name: NameTotal, Low: 0.5, High: 45}

// DeltaRhythm is the wider 0.5-4 Hz delta range used by single-band analysis.
var DeltaRhythm = Band{Name: NameDelta, Low: 0.5, High: 4}

// DefaultBands returns the five named rhythms. The slice is freshly
// allocated and may be modified by the caller.
func DefaultBands() []Band {
	return []Band{
		{Name: NameDelta, Low: 0.5, High: 3},
		{Name: NameTheta, Low: 4, High: 7},
		{Name: NameAlpha, Low: 8, High: 13},
		{Name: NameBeta, Low: 15, High: 30},
		{Name: NameGamma, Low: 30, High: 45},
	}
}

// Contains reports whether f lies in [Low, High].
func (b Band) Contains(f float64) bool {
	return f >= b.Low && f <= b.High
}

// Width returns High - Low.
func (b Band) Width() float64 {
	return b.High - b.Low
}

// Validate checks that both edges are finite, non-negative and ordered.
func (b Band) Validate() error {
	if math.IsNaN(b.Low) || math.IsNaN(b.High) || math.IsInf(b.Low, 0) || math.IsInf(b.High, 0) {
		return fmt.Errorf("%w: %q has non-finite edges", ErrInvalidBand, b.Name)
	}
	if b.Low < 0 {
		return fmt.Errorf("%w: %q low edge %g < 0", ErrInvalidBand, b.Name, b.Low)
	}
	if b.Low > b.High {
		return fmt.Errorf("%w: %q low edge %g > high edge %g", ErrInvalidBand, b.Name, b.Low, b.High)
	}
	return nil
}

// String formats the band as "name (low-high Hz)".
func (b Band) String() string {
	name := b.Name
	if name == "" {
		name = "band"
	}
	return fmt.Sprintf("%s (%g-%g Hz)", name, b.Low, b.High)
}

// Lookup finds a band by case-insensitive name.
func Lookup(bands []Band, name string) (Band, error) {
	for _, b := range bands {
		if strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}
	return Band{}, fmt.Errorf("%w: %q", ErrUnknownBand, name)
}

// ValidateAll validates every band and rejects duplicate names.
func ValidateAll(bands []Band) error {
	seen := make(map[string]struct{}, len(bands))
	for _, b := range bands {
		if err := b.Validate(); err != nil {
			return err
		}
		key := strings.ToLower(b.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidBand, b.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}
