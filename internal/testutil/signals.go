package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// EEGLike mixes a delta rhythm (deltaHz), an alpha rhythm (10 Hz), a DC
// offset and seeded noise, roughly what a resting occipital lead looks like
// in microvolts.
func EEGLike(seed int64, sampleRate, deltaHz, deltaAmp float64, length int) []float64 {
	delta := DeterministicSine(deltaHz, sampleRate, deltaAmp, length)
	alpha := DeterministicSine(10, sampleRate, 15, length)
	noise := DeterministicNoise(seed, 2, length)
	out := make([]float64, length)
	for i := range out {
		out[i] = 40 + delta[i] + alpha[i] + noise[i]
	}
	return out
}

// Rows transposes channel-major data into sample rows. All channels must
// have the same length.
func Rows(channels ...[]float64) [][]float64 {
	if len(channels) == 0 {
		return nil
	}
	rows := make([][]float64, len(channels[0]))
	for i := range rows {
		row := make([]float64, len(channels))
		for c, ch := range channels {
			row[c] = ch[i]
		}
		rows[i] = row
	}
	return rows
}
