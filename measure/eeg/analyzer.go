package eeg

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-eeg/dsp/signal"
	"github.com/cwbudde/algo-eeg/dsp/spectrum"
	"github.com/cwbudde/algo-eeg/measure/bandpower"
	"github.com/cwbudde/algo-eeg/recording"
	"github.com/cwbudde/algo-eeg/stats/frequency"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Analyzer runs the channel pipeline with a fixed configuration. It is
// safe for concurrent use.
type Analyzer struct {
	cfg    Config
	logger *zap.Logger
	now    func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAnalyzer validates cfg and builds an Analyzer. Zero MinSamples,
// FlatThreshold and Bands take their defaults.
func NewAnalyzer(cfg Config, opts ...Option) (*Analyzer, error) {
	cfg = normalizeConfig(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Analyzer{
		cfg:    cfg,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a, nil
}

// Config returns the effective configuration.
func (a *Analyzer) Config() Config {
	cfg := a.cfg
	cfg.Bands = append([]bandpower.Band(nil), a.cfg.Bands...)
	return cfg
}

// Channel is the spectrum of one channel, or the reason it has none.
type Channel struct {
	Index int
	Label string
	// Samples is the length that was transformed (after zero dropping).
	Samples int
	PSD     spectrum.PSD
	// Err is non-nil for invalid channels; it wraps
	// signal.ErrInsufficientSamples or signal.ErrFlatSignal.
	Err error
}

// Valid reports whether the channel produced a spectrum.
func (c Channel) Valid() bool { return c.Err == nil }

// Spectra preprocesses and transforms every channel of rec. Channel
// failures are recorded in the result; only context cancellation aborts.
// The result is ordered by channel index.
func (a *Analyzer) Spectra(ctx context.Context, rec *recording.Recording) ([]Channel, error) {
	out := make([]Channel, rec.Channels())

	g, ctx := errgroup.WithContext(ctx)
	if a.cfg.Workers > 0 {
		g.SetLimit(a.cfg.Workers)
	}
	for i := range out {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = a.channel(rec, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Analyzer) channel(rec *recording.Recording, i int) Channel {
	ch := Channel{Index: i, Label: rec.Label(i)}

	x, err := signal.Preprocess(rec.View(i), a.cfg.preprocessOptions()...)
	if err != nil {
		ch.Err = err
		a.logger.Warn("channel excluded",
			zap.Int("channel", i),
			zap.String("label", ch.Label),
			zap.Error(err))
		return ch
	}
	ch.Samples = len(x)

	psd, err := spectrum.Periodogram(x, rec.SampleRate(), spectrum.WithWindow(a.cfg.Window))
	if err != nil {
		ch.Err = err
		a.logger.Warn("channel spectrum failed",
			zap.Int("channel", i),
			zap.String("label", ch.Label),
			zap.Error(err))
		return ch
	}
	ch.PSD = psd
	a.logger.Debug("channel spectrum",
		zap.Int("channel", i),
		zap.String("label", ch.Label),
		zap.Int("samples", len(x)),
		zap.Int("bins", psd.Len()),
		zap.Float64("resolution_hz", psd.Resolution()))
	return ch
}

// AnalyzeBand integrates a single band on every channel.
func (a *Analyzer) AnalyzeBand(ctx context.Context, rec *recording.Recording, band bandpower.Band) (*Report, error) {
	return a.AnalyzeBands(ctx, rec, []bandpower.Band{band})
}

// AnalyzeBands integrates each band on every channel. A nil bands slice
// uses the configured bands. When every channel is invalid the error
// wraps ErrNoValidChannels and no report is returned.
func (a *Analyzer) AnalyzeBands(ctx context.Context, rec *recording.Recording, bands []bandpower.Band) (*Report, error) {
	if bands == nil {
		bands = a.cfg.Bands
	}
	if len(bands) == 0 {
		return nil, fmt.Errorf("%w: no bands requested", bandpower.ErrInvalidBand)
	}
	if err := bandpower.ValidateAll(bands); err != nil {
		return nil, err
	}

	started := a.now()
	spectra, err := a.Spectra(ctx, rec)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:      uuid.NewString(),
		CreatedAt:  started.UTC(),
		SampleRate: rec.SampleRate(),
		Samples:    rec.Samples(),
		Window:     a.cfg.Window.String(),
		DropZeros:  a.cfg.DropZeros,
		Bands:      append([]bandpower.Band(nil), bands...),
		Channels:   make([]ChannelResult, len(spectra)),
	}
	valid := 0
	for i, ch := range spectra {
		res, err := channelResult(ch, bands)
		if err != nil {
			return nil, err
		}
		if res.Valid {
			valid++
		}
		report.Channels[i] = res
	}

	a.logger.Info("analysis finished",
		zap.String("run_id", report.RunID),
		zap.Int("channels", len(spectra)),
		zap.Int("valid", valid),
		zap.Int("bands", len(bands)),
		zap.Duration("elapsed", a.now().Sub(started)))

	if valid == 0 {
		return nil, fmt.Errorf("%w: all %d channels invalid", ErrNoValidChannels, len(spectra))
	}
	return report, nil
}

// FullSpectrum is AnalyzeBands with the 0.5-45 Hz total prepended to the
// configured bands.
func (a *Analyzer) FullSpectrum(ctx context.Context, rec *recording.Recording) (*Report, error) {
	bands := make([]bandpower.Band, 0, len(a.cfg.Bands)+1)
	bands = append(bands, bandpower.FullSpectrum)
	for _, b := range a.cfg.Bands {
		if b.Name != bandpower.FullSpectrum.Name {
			bands = append(bands, b)
		}
	}
	return a.AnalyzeBands(ctx, rec, bands)
}

func channelResult(ch Channel, bands []bandpower.Band) (ChannelResult, error) {
	res := ChannelResult{
		Index:      ch.Index,
		Label:      ch.Label,
		BandPowers: make(map[string]float64, len(bands)),
	}
	if !ch.Valid() {
		res.Reason = ch.Err.Error()
		res.err = ch.Err
		for _, b := range bands {
			res.BandPowers[b.Name] = 0
		}
		return res, nil
	}

	res.Valid = true
	res.Samples = ch.PSD.N
	res.SampleRate = ch.PSD.SampleRate
	res.Window = ch.PSD.Window.String()
	res.Resolution = ch.PSD.Resolution()
	res.Frequencies = ch.PSD.Frequencies
	res.Power = ch.PSD.Power
	res.Peaks = make(map[string]bandpower.Peak, len(bands))
	for _, b := range bands {
		p, err := bandpower.IntegrateBand(ch.PSD, b)
		if err != nil {
			return ChannelResult{}, fmt.Errorf("channel %s band %s: %w", ch.Label, b.Name, err)
		}
		res.BandPowers[b.Name] = p
		if peak, ok := bandpower.FindPeak(ch.PSD, b); ok {
			res.Peaks[b.Name] = peak
		}
	}
	// A spectrum without bins in range, or without power, has no finite
	// dB peak and is left unsummarized.
	summary := frequency.Calculate(ch.PSD, bandpower.FullSpectrum.Low, bandpower.FullSpectrum.High)
	if summary.BinCount > 0 && !math.IsInf(summary.PeakPower_dB, 0) {
		res.Summary = &summary
	}
	return res, nil
}
