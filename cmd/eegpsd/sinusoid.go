package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-eeg/measure/bandpower"
	"github.com/cwbudde/algo-eeg/measure/eeg"
	"github.com/cwbudde/algo-eeg/recording"
)

func runSinusoid(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("sinusoid", stderr)
	var common commonFlags
	common.register(fs)
	bandName := fs.String("band", bandpower.NameDelta, "band to search for the peak")
	render := fs.String("render", "", "write the tones as a recording to this file (.asc, .asc.gz, .edf)")
	seconds := fs.Float64("seconds", 5, "length of the rendered tones in seconds")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load(fs)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	band, err := bandpower.Lookup(cfg.Analysis.Bands, *bandName)
	if err != nil {
		return err
	}
	rec, err := openRecording(fs, cfg, logger)
	if err != nil {
		return err
	}
	analyzer, err := newAnalyzer(cfg, logger)
	if err != nil {
		return err
	}
	r, err := analyzer.AnalyzeBand(ctx, rec, band)
	if err != nil {
		return err
	}
	tones, err := eeg.Sinusoids(r, band.Name)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Channel\tPeak [Hz]\tAmplitude [uV]\n")
	fmt.Fprintf(tw, "-------\t---------\t--------------\n")
	for _, s := range tones {
		if !s.Found {
			fmt.Fprintf(tw, "%s\tno data\t\n", s.Label)
			continue
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%.4f\n", s.Label, s.Frequency, s.Amplitude)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if *render == "" {
		return nil
	}
	return saveTones(*render, tones, *seconds, rec.SampleRate())
}

func saveTones(path string, tones []eeg.Sinusoid, seconds, sampleRate float64) error {
	var (
		channels [][]float64
		labels   []string
	)
	for _, s := range tones {
		if y := s.Render(seconds, sampleRate); len(y) > 0 {
			channels = append(channels, y)
			labels = append(labels, s.Label)
		}
	}
	rec, err := recording.FromChannels(channels, sampleRate, labels)
	if err != nil {
		return fmt.Errorf("render tones: %w", err)
	}
	return recording.Save(path, rec)
}
