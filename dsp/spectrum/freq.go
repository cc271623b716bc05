package spectrum

// FFTFreq returns the frequency of every bin of an n-point DFT sampled at
// sampleRate, in the conventional FFT layout: k*fs/n for the first
// ceil(n/2) bins, then the negative frequencies in ascending order. For
// even n the bin at index n/2 is reported as -fs/2.
func FFTFreq(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	positive := (n-1)/2 + 1
	fn := float64(n)
	for k := 0; k < positive; k++ {
		out[k] = float64(k) * sampleRate / fn
	}
	for k := positive; k < n; k++ {
		out[k] = float64(k-n) * sampleRate / fn
	}
	return out
}
