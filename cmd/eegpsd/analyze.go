package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/cwbudde/algo-eeg/measure/bandpower"
	"github.com/cwbudde/algo-eeg/measure/eeg"
	"github.com/cwbudde/algo-eeg/report"
)

func runAnalyze(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("analyze", stderr)
	var common commonFlags
	common.register(fs)
	mode := fs.String("mode", "bands", "analysis mode: delta, band, bands, full")
	bandName := fs.String("band", "", "band name for -mode band (from the configured bands)")
	low := fs.Float64("low", math.NaN(), "lower band edge in Hz for -mode band")
	high := fs.Float64("high", math.NaN(), "upper band edge in Hz for -mode band")
	format := fs.String("format", "", "report format: text, json, csv, yaml (default from config or -out extension)")
	out := fs.String("out", "", "write the report to this file instead of stdout")
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

	rec, err := openRecording(fs, cfg, logger)
	if err != nil {
		return err
	}
	analyzer, err := newAnalyzer(cfg, logger)
	if err != nil {
		return err
	}

	var r *eeg.Report
	switch strings.ToLower(*mode) {
	case "delta":
		r, err = analyzer.AnalyzeBand(ctx, rec, bandpower.DeltaRhythm)
	case "band":
		var b bandpower.Band
		if b, err = selectBand(cfg.Analysis.Bands, *bandName, *low, *high); err != nil {
			return err
		}
		r, err = analyzer.AnalyzeBand(ctx, rec, b)
	case "bands":
		r, err = analyzer.AnalyzeBands(ctx, rec, nil)
	case "full":
		r, err = analyzer.FullSpectrum(ctx, rec)
	default:
		return fmt.Errorf("unknown mode %q (want delta, band, bands or full)", *mode)
	}
	if err != nil {
		return err
	}

	f, err := outputFormat(*format, *out, cfg.Output.Format)
	if err != nil {
		return err
	}
	if *out != "" {
		return report.Save(*out, r, f)
	}
	if cfg.Output.Path != "" {
		return report.Save(cfg.Output.Path, r, f)
	}
	return report.Write(stdout, r, f)
}

func selectBand(bands []bandpower.Band, name string, low, high float64) (bandpower.Band, error) {
	if name != "" {
		return bandpower.Lookup(bands, name)
	}
	if math.IsNaN(low) || math.IsNaN(high) {
		return bandpower.Band{}, fmt.Errorf("-mode band needs -band or both -low and -high")
	}
	b := bandpower.Band{Name: "band", Low: low, High: high}
	return b, b.Validate()
}

// outputFormat prefers the -format flag, then the -out extension, then the
// configured format.
func outputFormat(flagValue, out, configured string) (report.Format, error) {
	if flagValue != "" {
		return report.ParseFormat(flagValue)
	}
	if out != "" {
		return report.FormatFromPath(out), nil
	}
	return report.ParseFormat(configured)
}
