package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"github.com/cwbudde/algo-eeg/dsp/signal"
	"github.com/cwbudde/algo-eeg/recording"
)

// synthRhythms is the base mixture of every synthetic lead; lead k scales
// the delta component so the channels differ in delta power.
var synthRhythms = []signal.Component{
	{FreqHz: 2, Amplitude: 40},
	{FreqHz: 6, Amplitude: 8},
	{FreqHz: 10, Amplitude: 20},
	{FreqHz: 20, Amplitude: 5},
	{FreqHz: 38, Amplitude: 2},
}

func runSynth(_ context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("synth", stderr)
	sampleRate := fs.Float64("fs", core.DefaultSampleRate, "sample rate in Hz")
	duration := fs.Float64("duration", 30, "length in seconds")
	channels := fs.Int("channels", len(recording.DefaultLabels), "number of channels")
	seed := fs.Int64("seed", 1, "noise seed")
	noise := fs.Float64("noise", 3, "white noise amplitude in uV")
	offset := fs.Float64("offset", 0, "DC offset in uV")
	out := fs.String("out", "", "output file (.asc, .asc.gz, .edf)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("synth: -out is required")
	}
	if *channels < 1 {
		return fmt.Errorf("synth: -channels must be >= 1: %d", *channels)
	}

	data, err := synthesize(*sampleRate, *duration, *channels, *seed, *noise, *offset)
	if err != nil {
		return err
	}
	rec, err := recording.FromChannels(data, *sampleRate, nil)
	if err != nil {
		return err
	}
	if err := recording.Save(*out, rec); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s: %d channels, %d samples at %g Hz\n", *out, rec.Channels(), rec.Samples(), rec.SampleRate())
	return nil
}

func synthesize(sampleRate, duration float64, channels int, seed int64, noise, offset float64) ([][]float64, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}
	n := int(duration * sampleRate)
	gen := signal.NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(sampleRate)}, signal.WithSeed(seed))

	out := make([][]float64, channels)
	for c := range out {
		mix := append([]signal.Component(nil), synthRhythms...)
		mix[0].Amplitude *= 1 + 0.25*float64(c)
		x, err := gen.Multisine(mix, n)
		if err != nil {
			return nil, err
		}
		gen.SetSeed(seed + int64(c))
		w, err := gen.WhiteNoise(noise, n)
		if err != nil {
			return nil, err
		}
		for i := range x {
			x[i] += w[i] + offset
		}
		out[c] = x
	}
	return out, nil
}
