package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	pow := Power(bins)
	require.Len(t, pow, len(bins))
	assert.InDeltaSlice(t, []float64{25, 2, 0}, pow, 1e-12)
	assert.Nil(t, Power(nil))
}

func TestBinPowerPrefix(t *testing.T) {
	dst := []float64{-1, -1, -1}
	binPower(dst, []complex128{1 + 2i, 2})
	assert.Equal(t, []float64{5, 4, -1}, dst)

	// A pooled buffer from a longer call must not leak into a shorter one.
	_ = Power(make([]complex128, 64))
	assert.Equal(t, []float64{1}, Power([]complex128{1i}))
}
