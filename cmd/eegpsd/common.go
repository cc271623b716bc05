package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-eeg/internal/config"
	"github.com/cwbudde/algo-eeg/internal/logging"
	"github.com/cwbudde/algo-eeg/measure/eeg"
	"github.com/cwbudde/algo-eeg/recording"
	"go.uber.org/zap"
)

// commonFlags are shared by every command that reads a recording.
type commonFlags struct {
	configPath string
	sampleRate float64
	logLevel   string
	labels     string
	skipLines  int
	dropZeros  bool
	window     string
	workers    int
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "YAML configuration file")
	fs.Float64Var(&c.sampleRate, "fs", 0, "sample rate of text recordings in Hz (default from config, 5000)")
	fs.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&c.labels, "labels", "", "comma-separated channel labels")
	fs.IntVar(&c.skipLines, "skip", -1, "skip this many leading lines of a text recording")
	fs.BoolVar(&c.dropZeros, "drop-zeros", false, "drop samples that are exactly 0 before analysis")
	fs.StringVar(&c.window, "window", "", "periodogram window: hann, hamming, blackman, flattop, rectangular")
	fs.IntVar(&c.workers, "workers", -1, "concurrent channel analyses (0 = one per channel)")
}

// load merges the configuration file with flags that were set explicitly.
func (c *commonFlags) load(fs *flag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return nil, err
		}
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["fs"] {
		cfg.Recording.SampleRate = c.sampleRate
	}
	if set["log-level"] {
		cfg.Logging.Level = c.logLevel
	}
	if set["labels"] {
		cfg.Recording.Labels = splitList(c.labels)
	}
	if set["skip"] {
		cfg.Recording.SkipLines = c.skipLines
	}
	if set["drop-zeros"] {
		cfg.Analysis.DropZeros = c.dropZeros
	}
	if set["window"] {
		cfg.Analysis.Window = c.window
	}
	if set["workers"] {
		cfg.Analysis.Workers = c.workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(
		logging.WithLevel(cfg.Logging.Level),
		logging.WithDevelopment(cfg.Logging.Development),
		logging.WithFields(map[string]any{"app": "eegpsd"}),
	)
}

func openRecording(fs *flag.FlagSet, cfg *config.Config, logger *zap.Logger) (*recording.Recording, error) {
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("%s: expected exactly one recording path, got %d", fs.Name(), fs.NArg())
	}
	opts := []recording.Option{
		recording.WithSampleRate(cfg.Recording.SampleRate),
		recording.WithSkipLines(cfg.Recording.SkipLines),
		recording.WithLogger(logger),
	}
	if len(cfg.Recording.Labels) > 0 {
		opts = append(opts, recording.WithLabels(cfg.Recording.Labels))
	}
	rec, err := recording.Open(fs.Arg(0), opts...)
	if err != nil {
		return nil, err
	}
	logger.Info("recording loaded",
		zap.String("path", fs.Arg(0)),
		zap.Int("channels", rec.Channels()),
		zap.Int("samples", rec.Samples()),
		zap.Float64("duration_s", rec.Duration()))
	return rec, nil
}

func newAnalyzer(cfg *config.Config, logger *zap.Logger) (*eeg.Analyzer, error) {
	ac, err := cfg.AnalyzerConfig()
	if err != nil {
		return nil, err
	}
	return eeg.NewAnalyzer(ac, eeg.WithLogger(logger))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
