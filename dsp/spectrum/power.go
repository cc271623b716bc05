package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// splitBuf backs the real and imaginary halves of a spectrum.
type splitBuf struct {
	data []float64
}

var splitPool = sync.Pool{
	New: func() any { return &splitBuf{} },
}

// Power returns |X[k]|^2 for each bin.
func Power(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}
	out := make([]float64, len(bins))
	binPower(out, bins)
	return out
}

// binPower writes |bins[k]|^2 into dst[:len(bins)].
func binPower(dst []float64, bins []complex128) {
	n := len(bins)
	buf := splitPool.Get().(*splitBuf)
	if cap(buf.data) < 2*n {
		buf.data = make([]float64, 2*n)
	}
	re, im := buf.data[:n], buf.data[n:2*n]
	for k, c := range bins {
		re[k], im[k] = real(c), imag(c)
	}
	vecmath.Power(dst[:n], re, im)
	splitPool.Put(buf)
}
