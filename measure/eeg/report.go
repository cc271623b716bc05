package eeg

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cwbudde/algo-eeg/dsp/signal"
	"github.com/cwbudde/algo-eeg/dsp/spectrum"
	"github.com/cwbudde/algo-eeg/dsp/window"
	"github.com/cwbudde/algo-eeg/measure/bandpower"
	"github.com/cwbudde/algo-eeg/stats/frequency"
	"gonum.org/v1/gonum/stat"
)

// Report is the result of one analysis run.
type Report struct {
	RunID      string           `json:"run_id" yaml:"run_id"`
	CreatedAt  time.Time        `json:"created_at" yaml:"created_at"`
	SampleRate float64          `json:"sample_rate" yaml:"sample_rate"`
	Samples    int              `json:"samples" yaml:"samples"`
	Window     string           `json:"window" yaml:"window"`
	DropZeros  bool             `json:"drop_zeros" yaml:"drop_zeros"`
	Bands      []bandpower.Band `json:"bands" yaml:"bands"`
	Channels   []ChannelResult  `json:"channels" yaml:"channels"`
}

// ChannelResult is one channel of a Report. Invalid channels carry a
// reason and zero band powers.
type ChannelResult struct {
	Index       int                       `json:"index" yaml:"index"`
	Label       string                    `json:"label" yaml:"label"`
	Valid       bool                      `json:"valid" yaml:"valid"`
	Reason      string                    `json:"reason,omitempty" yaml:"reason,omitempty"`
	Samples     int                       `json:"samples,omitempty" yaml:"samples,omitempty"`
	SampleRate  float64                   `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`
	Window      string                    `json:"window,omitempty" yaml:"window,omitempty"`
	Resolution  float64                   `json:"resolution_hz,omitempty" yaml:"resolution_hz,omitempty"`
	BandPowers  map[string]float64        `json:"band_powers" yaml:"band_powers"`
	Peaks       map[string]bandpower.Peak `json:"peaks,omitempty" yaml:"peaks,omitempty"`
	Summary     *frequency.Stats          `json:"summary,omitempty" yaml:"summary,omitempty"`
	Frequencies []float64                 `json:"frequencies,omitempty" yaml:"-"`
	Power       []float64                 `json:"power,omitempty" yaml:"-"`

	err error
}

// reasonErrors are the preprocessing sentinels a Reason can start with.
var reasonErrors = []error{signal.ErrInsufficientSamples, signal.ErrFlatSignal}

// Err returns the error that invalidated the channel, or nil for a valid
// one. For a decoded report it is rebuilt from Reason and still matches
// signal.ErrInsufficientSamples and signal.ErrFlatSignal with errors.Is.
func (c ChannelResult) Err() error {
	if c.err != nil || c.Valid {
		return c.err
	}
	for _, sentinel := range reasonErrors {
		if rest, ok := strings.CutPrefix(c.Reason, sentinel.Error()); ok {
			return fmt.Errorf("%w%s", sentinel, rest)
		}
	}
	if c.Reason != "" {
		return errors.New(c.Reason)
	}
	return errors.New("invalid channel")
}

// PSD returns the channel spectrum. It is empty for invalid channels.
func (c ChannelResult) PSD() spectrum.PSD {
	psd := spectrum.PSD{
		Frequencies: c.Frequencies,
		Power:       c.Power,
		SampleRate:  c.SampleRate,
		N:           c.Samples,
	}
	if t, err := window.ParseType(c.Window); err == nil {
		psd.Window = t
	}
	return psd
}

// Extreme identifies the channel holding an aggregate value.
type Extreme struct {
	Index int
	Label string
	Power float64
}

// Band returns the report band with the given name.
func (r *Report) Band(name string) (bandpower.Band, error) {
	return bandpower.Lookup(r.Bands, name)
}

// ValidChannels returns the channels that produced a spectrum.
func (r *Report) ValidChannels() []ChannelResult {
	out := make([]ChannelResult, 0, len(r.Channels))
	for _, c := range r.Channels {
		if c.Valid {
			out = append(out, c)
		}
	}
	return out
}

// Powers returns the band power of every channel in channel order; invalid
// channels contribute 0.
func (r *Report) Powers(band string) ([]float64, error) {
	b, err := r.Band(band)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(r.Channels))
	for i, c := range r.Channels {
		if c.Valid {
			out[i] = c.BandPowers[b.Name]
		}
	}
	return out, nil
}

// Max returns the valid channel with the largest power in band. Ties keep
// the lowest channel index.
func (r *Report) Max(band string) (Extreme, error) {
	return r.extreme(band, func(a, b float64) bool { return a > b })
}

// Min returns the valid channel with the smallest power in band. Ties keep
// the lowest channel index.
func (r *Report) Min(band string) (Extreme, error) {
	return r.extreme(band, func(a, b float64) bool { return a < b })
}

func (r *Report) extreme(band string, better func(a, b float64) bool) (Extreme, error) {
	b, err := r.Band(band)
	if err != nil {
		return Extreme{}, err
	}
	var (
		best  Extreme
		found bool
	)
	for _, c := range r.Channels {
		if !c.Valid {
			continue
		}
		p := c.BandPowers[b.Name]
		if !found || better(p, best.Power) {
			best = Extreme{Index: c.Index, Label: c.Label, Power: p}
			found = true
		}
	}
	if !found {
		return Extreme{}, fmt.Errorf("%w: band %s", ErrNoValidChannels, b.Name)
	}
	return best, nil
}

// Mean returns the mean power in band over valid channels.
func (r *Report) Mean(band string) (float64, error) {
	b, err := r.Band(band)
	if err != nil {
		return 0, err
	}
	var powers []float64
	for _, c := range r.Channels {
		if c.Valid {
			powers = append(powers, c.BandPowers[b.Name])
		}
	}
	if len(powers) == 0 {
		return 0, fmt.Errorf("%w: band %s", ErrNoValidChannels, b.Name)
	}
	return stat.Mean(powers, nil), nil
}

// Sinusoid is the peak of one channel inside a band, shown as a pure tone
// of amplitude sqrt(peak PSD).
type Sinusoid struct {
	Index     int     `json:"index" yaml:"index"`
	Label     string  `json:"label" yaml:"label"`
	Found     bool    `json:"found" yaml:"found"`
	Frequency float64 `json:"frequency" yaml:"frequency"`
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`
}

// Render samples the tone over duration seconds at sampleRate Hz.
func (s Sinusoid) Render(duration, sampleRate float64) []float64 {
	if !s.Found {
		return nil
	}
	p := bandpower.Peak{Frequency: s.Frequency, Power: s.Amplitude * s.Amplitude}
	return p.Sinusoid(duration, sampleRate)
}

// Sinusoids returns the in-band peak tone of every valid channel. Found is
// false when the band holds no frequency bin on that channel.
func Sinusoids(r *Report, band string) ([]Sinusoid, error) {
	b, err := r.Band(band)
	if err != nil {
		return nil, err
	}
	out := make([]Sinusoid, 0, len(r.Channels))
	for _, c := range r.Channels {
		if !c.Valid {
			continue
		}
		s := Sinusoid{Index: c.Index, Label: c.Label}
		if p, ok := c.Peaks[b.Name]; ok {
			s.Found = true
			s.Frequency = p.Frequency
			s.Amplitude = p.Amplitude()
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: band %s", ErrNoValidChannels, b.Name)
	}
	return out, nil
}
