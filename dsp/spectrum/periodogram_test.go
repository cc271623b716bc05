package spectrum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-eeg/dsp/window"
	"github.com/cwbudde/algo-eeg/internal/testutil"
	"github.com/mjibson/go-dsp/fft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peakIndex(p []float64) int {
	best := 0
	for i, v := range p {
		if v > p[best] {
			best = i
		}
	}
	return best
}

func TestPeriodogramPeakWithinResolution(t *testing.T) {
	tests := []struct {
		f0, fs float64
		n      int
	}{
		{f0: 10.3, fs: 500, n: 5000},
		{f0: 2.0, fs: 5000, n: 25000},
		{f0: 1.7, fs: 256, n: 2561},
		{f0: 40, fs: 1000, n: 1000},
	}

	for _, tt := range tests {
		x := testutil.DeterministicSine(tt.f0, tt.fs, 30, tt.n)
		psd, err := Periodogram(x, tt.fs)
		require.NoError(t, err)

		peak := psd.Frequencies[peakIndex(psd.Power)]
		assert.LessOrEqual(t, math.Abs(peak-tt.f0), psd.Resolution(), "f0=%v peak=%v", tt.f0, peak)
	}
}

func TestPeriodogramLayoutInvariants(t *testing.T) {
	for n := 2; n <= 64; n++ {
		x := testutil.DeterministicNoise(int64(n), 1, n)
		psd, err := Periodogram(x, 100)
		require.NoError(t, err, "n=%d", n)

		require.Equal(t, len(psd.Frequencies), len(psd.Power), "n=%d", n)
		require.NoError(t, psd.Validate(), "n=%d", n)
		assert.Equal(t, 0.0, psd.Frequencies[0])
		assert.LessOrEqual(t, psd.Frequencies[psd.Len()-1], 50.0)
		assert.Equal(t, (n+1)/2, psd.Len(), "n=%d", n)
		for _, v := range psd.Power {
			require.GreaterOrEqual(t, v, 0.0)
			require.False(t, math.IsNaN(v))
		}
	}
}

func TestPeriodogramEvenLengthExcludesNyquist(t *testing.T) {
	psd, err := Periodogram(testutil.DeterministicNoise(1, 1, 8), 8)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, psd.Frequencies)

	psd, err = Periodogram(testutil.DeterministicNoise(1, 1, 9), 9)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 2, 3, 4}, psd.Frequencies, 1e-12)
}

func TestPeriodogramScalingOnBinCenteredSine(t *testing.T) {
	// Rectangular taper, sine exactly on bin k0: |X[k0]| = A*N/2.
	const (
		fs = 1000.0
		n  = 1000
		a  = 3.0
		f0 = 50.0
	)
	x := testutil.DeterministicSine(f0, fs, a, n)
	psd, err := Periodogram(x, fs, WithWindow(window.TypeRectangular))
	require.NoError(t, err)

	k0 := int(f0 * n / fs)
	want := a * a * n / (4 * fs)
	assert.InDelta(t, want, psd.Power[k0], want*1e-9)
	assert.Equal(t, window.TypeRectangular, psd.Window)
}

func TestPeriodogramTotalPowerIdentity(t *testing.T) {
	// Integrating the one-sided, undoubled periodogram over [0, fs/2]
	// recovers half of the window-weighted mean square of the signal.
	const fs = 1000.0
	x := testutil.DeterministicSine(10, fs, 20, 4000)
	noise := testutil.DeterministicNoise(7, 2, 4000)
	for i := range x {
		x[i] += noise[i]
	}

	psd, err := Periodogram(x, fs)
	require.NoError(t, err)

	total := 0.0
	for i := 1; i < psd.Len(); i++ {
		df := psd.Frequencies[i] - psd.Frequencies[i-1]
		total += 0.5 * (psd.Power[i] + psd.Power[i-1]) * df
	}

	w := window.Generate(window.TypeHann, len(x))
	weighted := 0.0
	for i, v := range x {
		weighted += v * v * w[i] * w[i]
	}
	want := 0.5 * weighted / window.Energy(w)

	assert.InDelta(t, want, total, want*0.01)
}

func TestPeriodogramMatchesReferenceFFT(t *testing.T) {
	for _, n := range []int{16, 17, 1000, 1023} {
		x := testutil.DeterministicNoise(3, 5, n)
		const fs = 250.0

		psd, err := Periodogram(x, fs)
		require.NoError(t, err)

		w := window.Generate(window.TypeHann, n)
		tapered := make([]float64, n)
		for i := range x {
			tapered[i] = x[i] * w[i]
		}
		ref := fft.FFTReal(tapered)
		scale := fs * window.Energy(w)

		for k := 0; k < psd.Len(); k++ {
			want := math.Pow(cmplx.Abs(ref[k]), 2) / scale
			require.InDelta(t, want, psd.Power[k], 1e-9*math.Max(1, want), "n=%d k=%d", n, k)
		}
	}
}

func TestPeriodogramZeroEnergyWindow(t *testing.T) {
	psd, err := Periodogram([]float64{1, -1}, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, psd.Power)
}

func TestPeriodogramDoesNotMutateInput(t *testing.T) {
	x := testutil.DeterministicNoise(11, 1, 128)
	orig := append([]float64(nil), x...)
	_, err := Periodogram(x, 128)
	require.NoError(t, err)
	assert.Equal(t, orig, x)
}

func TestPeriodogramErrors(t *testing.T) {
	_, err := Periodogram([]float64{1, 2, 3}, 0)
	assert.Error(t, err)
	_, err = Periodogram([]float64{1, 2, 3}, math.NaN())
	assert.Error(t, err)
	_, err = Periodogram([]float64{1}, 100)
	assert.Error(t, err)
}

func TestPSDSelect(t *testing.T) {
	p := PSD{
		Frequencies: []float64{0, 0.5, 1, 1.5, 2},
		Power:       []float64{1, 2, 3, 4, 5},
		SampleRate:  5,
		N:           10,
	}
	f, pw := p.Select(0.5, 1.5)
	assert.Equal(t, []float64{0.5, 1, 1.5}, f)
	assert.Equal(t, []float64{2, 3, 4}, pw)

	f, pw = p.Select(0.6, 0.9)
	assert.Nil(t, f)
	assert.Nil(t, pw)

	assert.Equal(t, 0.5, p.Resolution())
	assert.Equal(t, 0.0, PSD{}.Resolution())
}

func TestPSDValidate(t *testing.T) {
	assert.Error(t, PSD{Frequencies: []float64{0, 1}, Power: []float64{1}}.Validate())
	assert.Error(t, PSD{Frequencies: []float64{0, 0}, Power: []float64{1, 1}}.Validate())
	assert.NoError(t, PSD{}.Validate())
}
