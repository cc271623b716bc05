package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and every pair differs by at most eps.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	if floats.EqualApprox(got, want, eps) {
		return
	}
	d, _ := MaxAbsDiff(got, want)
	require.Failf(t, "slices differ", "max abs diff %g > %g", d, eps)
}

// RequireFinite fails t at the first NaN or Inf sample.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d: %v", i, v)
	}
}

// MaxAbsDiff returns the Chebyshev distance between a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	return floats.Distance(a, b, math.Inf(1)), nil
}
