package recording

import (
	"github.com/cwbudde/algo-eeg/dsp/core"
	"go.uber.org/zap"
)

// Option configures the readers.
type Option func(*readConfig)

type readConfig struct {
	sampleRate float64
	labels     []string
	skipLines  int
	logger     *zap.Logger
}

func applyOptions(opts []Option) readConfig {
	cfg := readConfig{
		sampleRate: core.DefaultSampleRate,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSampleRate sets the sample rate of text tables. EDF files carry
// their own rate and ignore it. Non-positive values are ignored.
func WithSampleRate(fs float64) Option {
	return func(c *readConfig) {
		if fs > 0 {
			c.sampleRate = fs
		}
	}
}

// WithLabels overrides the channel labels.
func WithLabels(labels []string) Option {
	return func(c *readConfig) {
		if len(labels) > 0 {
			c.labels = append([]string(nil), labels...)
		}
	}
}

// WithSkipLines skips the first n lines of a text table regardless of
// their content, for exports whose header is not ';'-prefixed.
func WithSkipLines(n int) Option {
	return func(c *readConfig) {
		if n >= 0 {
			c.skipLines = n
		}
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *readConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
