package recording

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-eeg/dsp/core"
)

// DefaultLabels are the electrode positions of the six-lead parieto-occipital
// montage the sample tables are recorded with.
var DefaultLabels = []string{"P3", "Pz", "P4", "O1", "Oz", "O2"}

// Recording is an immutable multi-channel recording. Samples are stored
// per channel.
type Recording struct {
	channels   [][]float64
	labels     []string
	sampleRate float64
}

// New builds a Recording from sample rows (one row per time sample, one
// column per channel). rows is copied. labels may be nil, in which case
// DefaultLabels are used, continued as Ch7, Ch8, ... for wider tables.
func New(rows [][]float64, sampleRate float64, labels []string) (*Recording, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	width := len(rows[0])
	channels := make([][]float64, width)
	for c := range channels {
		channels[c] = make([]float64, len(rows))
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformed, i, len(row), width)
		}
		for c, v := range row {
			channels[c][i] = v
		}
	}
	return newRecording(channels, sampleRate, labels)
}

// FromChannels builds a Recording from per-channel sample slices. The
// slices are copied and must all have the same non-zero length.
func FromChannels(channels [][]float64, sampleRate float64, labels []string) (*Recording, error) {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil, ErrEmpty
	}
	n := len(channels[0])
	data := make([][]float64, len(channels))
	for c, ch := range channels {
		if len(ch) != n {
			return nil, fmt.Errorf("%w: channel %d has %d samples, want %d", ErrMalformed, c, len(ch), n)
		}
		data[c] = append([]float64(nil), ch...)
	}
	return newRecording(data, sampleRate, labels)
}

func newRecording(channels [][]float64, sampleRate float64, labels []string) (*Recording, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("recording: %w", err)
	}
	if labels == nil {
		labels = Labels(len(channels))
	} else if len(labels) != len(channels) {
		return nil, fmt.Errorf("%w: %d labels for %d channels", ErrLabelCount, len(labels), len(channels))
	}
	return &Recording{
		channels:   channels,
		labels:     append([]string(nil), labels...),
		sampleRate: sampleRate,
	}, nil
}

// Labels returns n channel labels: DefaultLabels first, then Ch<k>.
func Labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		if i < len(DefaultLabels) {
			out[i] = DefaultLabels[i]
		} else {
			out[i] = "Ch" + strconv.Itoa(i+1)
		}
	}
	return out
}

// Samples returns the number of samples per channel.
func (r *Recording) Samples() int { return len(r.channels[0]) }

// Channels returns the number of channels.
func (r *Recording) Channels() int { return len(r.channels) }

// SampleRate returns the sample rate in Hz.
func (r *Recording) SampleRate() float64 { return r.sampleRate }

// Duration returns the recording length in seconds.
func (r *Recording) Duration() float64 {
	return float64(r.Samples()) / r.sampleRate
}

// Labels returns a copy of the channel labels.
func (r *Recording) Labels() []string {
	return append([]string(nil), r.labels...)
}

// Label returns the label of channel i.
func (r *Recording) Label(i int) string { return r.labels[i] }

// Channel returns a copy of channel i.
func (r *Recording) Channel(i int) []float64 {
	return append([]float64(nil), r.channels[i]...)
}

// View returns channel i without copying. Callers must not modify it.
func (r *Recording) View(i int) []float64 { return r.channels[i] }

// Slice returns a copy of samples [lo, hi) of channel i, clamped to the
// channel length.
func (r *Recording) Slice(i, lo, hi int) []float64 {
	n := r.Samples()
	lo = core.ClampIndex(lo, 0, n)
	hi = core.ClampIndex(hi, lo, n)
	return append([]float64(nil), r.channels[i][lo:hi]...)
}
