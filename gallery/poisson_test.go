// SPDX-License-Identifier: MIT

package gallery_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relax/gallery"
)

func TestPoisson1D(t *testing.T) {
	t.Parallel()

	a, err := gallery.Poisson1D[float64](4)
	require.NoError(t, err)
	assert.Equal(t, []float64{
		2, -1, 0, 0,
		-1, 2, -1, 0,
		0, -1, 2, -1,
		0, 0, -1, 2,
	}, a.ToDense())
	assert.Equal(t, 10, a.NNZ())

	one, err := gallery.Poisson1D[complex128](1)
	require.NoError(t, err)
	assert.Equal(t, []complex128{2}, one.ToDense())
}

func TestPoisson2D(t *testing.T) {
	t.Parallel()

	a, err := gallery.Poisson2D[float64](2, 3)
	require.NoError(t, err)
	rows, cols := a.Dims()
	require.Equal(t, 6, rows)
	require.Equal(t, 6, cols)

	// Cell (0,1) has neighbours (0,0), (0,2) and (1,1).
	assert.Equal(t, []int{0, 1, 2, 4}, a.Indices[a.Indptr[1]:a.Indptr[2]])
	assert.Equal(t, []float64{-1, 4, -1, -1}, a.Data[a.Indptr[1]:a.Indptr[2]])

	d := a.ToDense()
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			assert.Equal(t, d[i*6+j], d[j*6+i])
		}
	}
	// Every row lists its columns ascending.
	for i := 0; i < rows; i++ {
		for k := a.Indptr[i] + 1; k < a.Indptr[i+1]; k++ {
			assert.Less(t, a.Indices[k-1], a.Indices[k])
		}
	}
}

func TestBlockPoisson1D(t *testing.T) {
	t.Parallel()

	b, err := gallery.BlockPoisson1D[float64](3, 2)
	require.NoError(t, err)
	r, c := b.BlockSize()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3, b.BlockRows())

	p, err := gallery.Poisson1D[float64](6)
	require.NoError(t, err)
	assert.Equal(t, p.ToDense(), b.ToCSR().ToDense())

	unit, err := gallery.BlockPoisson1D[float64](4, 1)
	require.NoError(t, err)
	p4, err := gallery.Poisson1D[float64](4)
	require.NoError(t, err)
	assert.Equal(t, p4.Data, unit.Data)
	assert.Equal(t, p4.Indices, unit.Indices)
}

func TestBadSize(t *testing.T) {
	t.Parallel()

	_, err := gallery.Poisson1D[float64](0)
	assert.True(t, errors.Is(err, gallery.ErrBadSize))
	_, err = gallery.Poisson2D[float32](3, 0)
	assert.True(t, errors.Is(err, gallery.ErrBadSize))
	_, err = gallery.BlockPoisson1D[float64](2, 0)
	assert.True(t, errors.Is(err, gallery.ErrBadSize))
}

func TestOnes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []complex64{1, 1, 1}, gallery.Ones[complex64](3))
	assert.Empty(t, gallery.Ones[float64](0))
}
