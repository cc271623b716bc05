package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Sine returns samples of amplitude*sin(2*pi*freqHz*t) starting at t = 0.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = math.Sin(step * float64(i))
	}
	floats.Scale(amplitude, out)
	return out, nil
}

// Component is one sinusoid of a rhythm mixture.
type Component struct {
	FreqHz    float64
	Amplitude float64
}

// Multisine sums the given components.
func (g *Generator) Multisine(components []Component, samples int) ([]float64, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("multisine requires at least one component")
	}
	var out []float64
	for _, c := range components {
		s, err := g.Sine(c.FreqHz, c.Amplitude, samples)
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = s
			continue
		}
		floats.Add(out, s)
	}
	return out, nil
}

// WhiteNoise returns uniform noise in [-amplitude, amplitude] drawn from the
// generator seed. Equal seeds give equal noise.
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	rng := rand.New(rand.NewSource(g.seed))
	out := make([]float64, samples)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	floats.Scale(amplitude, out)
	return out, nil
}
