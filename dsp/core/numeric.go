package core

import "math"

// Clamp limits value to [lo, hi]. Swapped bounds are reordered.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Min(math.Max(value, lo), hi)
}

// ClampIndex limits i to [lo, hi].
func ClampIndex(i, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return min(max(i, lo), hi)
}

// LinearPowerToDB converts a power ratio to dB. Zero maps to -Inf and
// negative values to NaN.
func LinearPowerToDB(power float64) float64 {
	switch {
	case power < 0:
		return math.NaN()
	case power == 0:
		return math.Inf(-1)
	}
	return 10 * math.Log10(power)
}
