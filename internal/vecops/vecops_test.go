// SPDX-License-Identifier: MIT

package vecops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/relax/internal/vecops"
)

func TestFloat64FastPathMatchesLoop(t *testing.T) {
	t.Parallel()

	const n = 37 // not a multiple of any SIMD width
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = math.Sin(float64(i)) * 1e3
		b[i] = math.Cos(float64(i)) / 7
	}

	got := append([]float64(nil), a...)
	vecops.AddInPlace(got, b)
	for i := range a {
		assert.Equal(t, a[i]+b[i], got[i], "add %d", i)
	}

	got = append([]float64(nil), a...)
	vecops.ScaleInPlace(got, 0.3)
	for i := range a {
		assert.Equal(t, a[i]*0.3, got[i], "scale in place %d", i)
	}

	got = make([]float64, n)
	vecops.Scale(got, b, -1.5)
	for i := range b {
		assert.Equal(t, b[i]*-1.5, got[i], "scale %d", i)
	}

	got = append([]float64(nil), a...)
	vecops.MulInPlace(got, b)
	for i := range a {
		assert.Equal(t, a[i]*b[i], got[i], "mul %d", i)
	}
}

func TestGenericPath(t *testing.T) {
	t.Parallel()

	x := []complex64{1 + 1i, 2}
	vecops.AddInPlace(x, []complex64{1i, -2})
	assert.Equal(t, []complex64{1 + 2i, 0}, x)

	vecops.ScaleInPlace(x, 2)
	assert.Equal(t, []complex64{2 + 4i, 0}, x)

	y := make([]float32, 2)
	vecops.Scale(y, []float32{1, 2}, 3)
	assert.Equal(t, []float32{3, 6}, y)

	vecops.MulInPlace(y, []float32{2, 0.5})
	assert.Equal(t, []float32{6, 3}, y)

	vecops.Fill(y, 7)
	assert.Equal(t, []float32{7, 7}, y)
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, vecops.IsZero([]float64{0, math.Copysign(0, -1)}))
	assert.True(t, vecops.IsZero([]complex128{}))
	assert.False(t, vecops.IsZero([]float64{0, 1e-300}))
	assert.False(t, vecops.IsZero([]float64{math.NaN()}), "NaN is not zero")
}
