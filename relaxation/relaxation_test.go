// SPDX-License-Identifier: MIT

package relaxation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/relax/gallery"
	"github.com/katalvlaran/relax/relaxation"
	"github.com/katalvlaran/relax/sparse"
	"github.com/katalvlaran/relax/sweep"
)

const tol = 1e-12

func poisson(t *testing.T, n int) *sparse.CSR[float64] {
	t.Helper()
	a, err := gallery.Poisson1D[float64](n)
	require.NoError(t, err)

	return a
}

// ramp returns [0, 1, ..., n-1] scaled by s.
func ramp(n int, s float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(i) * s
	}

	return v
}

// denseResidual computes b − A·x from the dense expansion of a.
func denseResidual(a *sparse.CSR[float64], x, b []float64) []float64 {
	n, _ := a.Dims()
	d := a.ToDense()
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		s := 0.0
		for j := 0; j < n; j++ {
			s += d[i*n+j] * x[j]
		}
		r[i] = b[i] - s
	}

	return r
}

func TestGaussSeidel_ClosedForm(t *testing.T) {
	t.Parallel()

	x := make([]float64, 4)
	require.NoError(t, relaxation.GaussSeidel[float64](poisson(t, 4), x, []float64{0, 1, 2, 3}))
	assert.Equal(t, []float64{0, 0.5, 1.25, 2.125}, x)
}

func TestGaussSeidel_SymmetricEqualsForwardBackward(t *testing.T) {
	t.Parallel()

	const n, k = 7, 3
	a := poisson(t, n)
	b := ramp(n, 0.5)

	got := ramp(n, -0.25)
	require.NoError(t, relaxation.GaussSeidel[float64](a, got, b,
		relaxation.WithSweep(sweep.Symmetric), relaxation.WithIterations(k)))

	want := ramp(n, -0.25)
	for i := 0; i < k; i++ {
		require.NoError(t, relaxation.GaussSeidel[float64](a, want, b, relaxation.WithSweep(sweep.Forward)))
		require.NoError(t, relaxation.GaussSeidel[float64](a, want, b, relaxation.WithSweep(sweep.Backward)))
	}
	assert.Equal(t, want, got)
}

func TestSOR_OmegaOneEqualsGaussSeidel(t *testing.T) {
	t.Parallel()

	for _, d := range []sweep.Direction{sweep.Forward, sweep.Backward, sweep.Symmetric} {
		d := d
		t.Run(d.String(), func(t *testing.T) {
			t.Parallel()
			a := poisson(t, 6)
			b := ramp(6, 1)

			gs := ramp(6, 0.1)
			require.NoError(t, relaxation.GaussSeidel[float64](a, gs, b,
				relaxation.WithSweep(d), relaxation.WithIterations(4)))

			sor := ramp(6, 0.1)
			require.NoError(t, relaxation.SOR[float64](a, sor, b, 1,
				relaxation.WithSweep(d), relaxation.WithIterations(4)))
			assert.Equal(t, gs, sor)
		})
	}
}

func TestSOR_Blend(t *testing.T) {
	t.Parallel()

	a := poisson(t, 4)
	b := []float64{0, 1, 2, 3}
	x := make([]float64, 4)
	require.NoError(t, relaxation.SOR[float64](a, x, b, 0.5))
	// x_old = 0, so the blend halves the Gauss-Seidel iterate.
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.625, 1.0625}, x, tol)
}

func TestGaussSeidelIndexed(t *testing.T) {
	t.Parallel()

	t.Run("natural order equals point sweep", func(t *testing.T) {
		t.Parallel()
		a := poisson(t, 5)
		b := ramp(5, 1)
		want := make([]float64, 5)
		require.NoError(t, relaxation.GaussSeidel[float64](a, want, b, relaxation.WithIterations(2)))
		got := make([]float64, 5)
		require.NoError(t, relaxation.GaussSeidelIndexed[float64](a, got, b, []int{0, 1, 2, 3, 4}, relaxation.WithIterations(2)))
		assert.Equal(t, want, got)
	})

	t.Run("reverse order equals backward sweep", func(t *testing.T) {
		t.Parallel()
		a := poisson(t, 5)
		b := ramp(5, 1)
		want := make([]float64, 5)
		require.NoError(t, relaxation.GaussSeidel[float64](a, want, b, relaxation.WithSweep(sweep.Backward)))
		got := make([]float64, 5)
		require.NoError(t, relaxation.GaussSeidelIndexed[float64](a, got, b, []int{4, 3, 2, 1, 0}))
		assert.Equal(t, want, got)
	})

	t.Run("subset leaves other rows alone", func(t *testing.T) {
		t.Parallel()
		a := poisson(t, 4)
		x := []float64{9, 9, 9, 9}
		require.NoError(t, relaxation.GaussSeidelIndexed[float64](a, x, []float64{0, 0, 0, 0}, []int{1, 1}))
		// Row 1 relaxed twice: (0 + 9 + 9)/2 both times.
		assert.Equal(t, []float64{9, 9, 9, 9}, x)
		require.NoError(t, relaxation.GaussSeidelIndexed[float64](a, x, []float64{0, 0, 0, 2}, []int{3}))
		assert.Equal(t, []float64{9, 9, 9, 5.5}, x)
	})

	t.Run("out of range index", func(t *testing.T) {
		t.Parallel()
		x := []float64{1, 2, 3}
		err := relaxation.GaussSeidelIndexed[float64](poisson(t, 3), x, make([]float64, 3), []int{0, 3})
		require.ErrorIs(t, err, relaxation.ErrShapeMismatch)
		assert.Equal(t, []float64{1, 2, 3}, x)
	})
}

func TestJacobi_ReferenceLaw(t *testing.T) {
	t.Parallel()

	a := poisson(t, 6)
	b := ramp(6, 1)
	x := ramp(6, 0.3)

	r := denseResidual(a, x, b)
	diag := a.Diagonal()
	want := make([]float64, len(x))
	for i := range want {
		want[i] = x[i] + r[i]/diag[i]
	}

	require.NoError(t, relaxation.Jacobi[float64](a, x, b))
	assert.InDeltaSlice(t, want, x, tol)
}

func TestJacobi_Damped(t *testing.T) {
	t.Parallel()

	a := poisson(t, 4)
	x := make([]float64, 4)
	require.NoError(t, relaxation.Jacobi[float64](a, x, []float64{2, 2, 2, 2},
		relaxation.WithOmega(2.0/3.0)))
	assert.InDeltaSlice(t, []float64{2.0 / 3, 2.0 / 3, 2.0 / 3, 2.0 / 3}, x, tol)
}

func TestPolynomial(t *testing.T) {
	t.Parallel()

	t.Run("degree zero is a Richardson step", func(t *testing.T) {
		t.Parallel()
		a := poisson(t, 5)
		b := ramp(5, 1)
		x := ramp(5, -0.5)
		r := denseResidual(a, x, b)
		want := make([]float64, 5)
		for i := range want {
			want[i] = x[i] + r[i]
		}
		require.NoError(t, relaxation.Polynomial[float64](a, x, b, []float64{1}))
		assert.InDeltaSlice(t, want, x, tol)
	})

	t.Run("horner", func(t *testing.T) {
		t.Parallel()
		// A = 2I, so p(A) = c0·A + c1 = 2·c0 + c1.
		a, err := sparse.FromDense(2, 2, []float64{2, 0, 0, 2})
		require.NoError(t, err)
		x := make([]float64, 2)
		require.NoError(t, relaxation.Polynomial[float64](a, x, []float64{1, 3}, []float64{0.25, 0.5}))
		assert.InDeltaSlice(t, []float64{1, 3}, x, tol)
	})

	t.Run("any storage", func(t *testing.T) {
		t.Parallel()
		a := poisson(t, 4)
		bsr, err := a.ToBSR(2, 2)
		require.NoError(t, err)
		b := ramp(4, 1)
		want := make([]float64, 4)
		require.NoError(t, relaxation.Polynomial[float64](a, want, b, []float64{0.1, 0.4}, relaxation.WithIterations(3)))
		got := make([]float64, 4)
		require.NoError(t, relaxation.Polynomial[float64](bsr, got, b, []float64{0.1, 0.4}, relaxation.WithIterations(3)))
		assert.InDeltaSlice(t, want, got, tol)
	})

	t.Run("empty coefficients", func(t *testing.T) {
		t.Parallel()
		err := relaxation.Polynomial[float64](poisson(t, 2), make([]float64, 2), make([]float64, 2), nil)
		require.ErrorIs(t, err, relaxation.ErrInvalidConfig)
	})
}

// kaczmarzReference runs one forward Kaczmarz Gauss-Seidel sweep on the
// dense expansion of a, with the row norms computed by brute force.
func kaczmarzReference(a *sparse.CSR[float64], x, b []float64) {
	n, _ := a.Dims()
	d := a.ToDense()
	for i := 0; i < n; i++ {
		norm := 0.0
		for j := 0; j < n; j++ {
			norm += d[i*n+j] * d[i*n+j]
		}
		s := 0.0
		for j := 0; j < n; j++ {
			s += d[i*n+j] * x[j]
		}
		delta := (b[i] - s) / norm
		for j := 0; j < n; j++ {
			x[j] += delta * d[i*n+j]
		}
	}
}

func TestKaczmarzGaussSeidel_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	a, err := sparse.FromDense(3, 3, []float64{
		4, 1, 0,
		-2, 3, 1,
		0, 5, -1,
	})
	require.NoError(t, err)
	b := []float64{1, -2, 3}

	want := []float64{0.5, 0, -0.5}
	kaczmarzReference(a, want, b)

	got := []float64{0.5, 0, -0.5}
	require.NoError(t, relaxation.KaczmarzGaussSeidel[float64](a, got, b))
	assert.InDeltaSlice(t, want, got, tol)
}

func TestKaczmarzGaussSeidel_RowProjection(t *testing.T) {
	t.Parallel()

	// A single row sweep projects x onto {y : A_i·y = b_i}.
	a, err := sparse.FromDense(2, 2, []float64{3, 4, 0, 1})
	require.NoError(t, err)
	x := make([]float64, 2)
	require.NoError(t, relaxation.KaczmarzGaussSeidel[float64](a, x, []float64{25, 100},
		relaxation.WithSweep(sweep.Backward), relaxation.WithIterations(0)))
	assert.Equal(t, []float64{0, 0}, x)

	require.NoError(t, relaxation.KaczmarzGaussSeidel[float64](a, x, []float64{25, 4}))
	// Row 0: delta = 25/25, x = [3, 4]; row 1: delta = (4-4)/1, unchanged.
	assert.InDeltaSlice(t, []float64{3, 4}, x, tol)
}

func TestKaczmarzJacobiAndRichardson(t *testing.T) {
	t.Parallel()

	a, err := sparse.FromDense(3, 3, []float64{
		2, -1, 0,
		1, 3, 1,
		0, -1, 4,
	})
	require.NoError(t, err)
	b := []float64{1, 2, 3}
	x0 := []float64{0.25, -0.5, 1}
	d := a.ToDense()

	normal := func(scale bool, omega float64) []float64 {
		r := denseResidual(a, x0, b)
		if scale {
			for i := 0; i < 3; i++ {
				norm := 0.0
				for j := 0; j < 3; j++ {
					norm += d[i*3+j] * d[i*3+j]
				}
				r[i] /= norm
			}
		}
		out := append([]float64(nil), x0...)
		for j := 0; j < 3; j++ {
			s := 0.0
			for i := 0; i < 3; i++ {
				s += d[i*3+j] * r[i]
			}
			out[j] += omega * s
		}

		return out
	}

	x := append([]float64(nil), x0...)
	require.NoError(t, relaxation.KaczmarzJacobi[float64](a, x, b, relaxation.WithOmega(0.5)))
	assert.InDeltaSlice(t, normal(true, 0.5), x, tol)

	x = append([]float64(nil), x0...)
	require.NoError(t, relaxation.KaczmarzRichardson[float64](a, x, b, relaxation.WithOmega(0.05)))
	assert.InDeltaSlice(t, normal(false, 0.05), x, tol)
}

func TestKaczmarz_ComplexConjugate(t *testing.T) {
	t.Parallel()

	// A = [i], b = [1]: the row projection gives x = -i.
	a, err := sparse.NewCSR(1, 1, []int{0, 1}, []int{0}, []complex128{1i})
	require.NoError(t, err)
	x := []complex128{0}
	require.NoError(t, relaxation.KaczmarzGaussSeidel[complex128](a, x, []complex128{1}))
	assert.Equal(t, []complex128{-1i}, x)

	x = []complex128{0}
	require.NoError(t, relaxation.KaczmarzJacobi[complex128](a, x, []complex128{1}))
	assert.Equal(t, []complex128{-1i}, x)
}

func TestKaczmarz_ZeroRowPropagates(t *testing.T) {
	t.Parallel()

	// Row 1 stores only an explicit zero, so Dinv_1 = +Inf.
	a, err := sparse.NewCSR(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{1, 0})
	require.NoError(t, err)

	x := []float64{0, 0}
	require.NoError(t, relaxation.KaczmarzGaussSeidel[float64](a, x, []float64{1, 1}))
	assert.Equal(t, 1.0, x[0])
	assert.True(t, math.IsNaN(x[1]), "Inf·0 in the zero row")

	x = []float64{0, 0}
	require.NoError(t, relaxation.KaczmarzJacobi[float64](a, x, []float64{1, 1}))
	assert.Equal(t, 1.0, x[0])
	assert.True(t, math.IsNaN(x[1]))
}

func TestBlockGaussSeidel_UnitBlocksEqualPoint(t *testing.T) {
	t.Parallel()

	const n = 6
	a := poisson(t, n)
	blk, err := gallery.BlockPoisson1D[float64](n, 1)
	require.NoError(t, err)
	b := ramp(n, 1)

	for _, d := range []sweep.Direction{sweep.Forward, sweep.Backward, sweep.Symmetric} {
		want := ramp(n, 0.2)
		require.NoError(t, relaxation.GaussSeidel[float64](a, want, b, relaxation.WithSweep(d), relaxation.WithIterations(2)))
		got := ramp(n, 0.2)
		require.NoError(t, relaxation.GaussSeidel[float64](blk, got, b, relaxation.WithSweep(d), relaxation.WithIterations(2)))
		assert.Equal(t, want, got, d.String())
	}
}

func TestBlockGaussSeidel_ConvergesOnBlocks(t *testing.T) {
	t.Parallel()

	blk, err := gallery.BlockPoisson1D[float64](4, 2)
	require.NoError(t, err)
	a := poisson(t, 8)
	b := gallery.Ones[float64](8)
	xs := exact(t, a, b)

	x := make([]float64, 8)
	_, before := errorNorms(a, x, xs)
	require.NoError(t, relaxation.GaussSeidel[float64](blk, x, b,
		relaxation.WithSweep(sweep.Symmetric), relaxation.WithIterations(5)))
	_, after := errorNorms(a, x, xs)
	assert.Less(t, after, before)
}

func TestGaussSeidel_RejectsRectangularBlocks(t *testing.T) {
	t.Parallel()

	bad, err := poisson(t, 4).ToBSR(2, 1)
	require.NoError(t, err)
	x := []float64{1, 2, 3, 4}
	err = relaxation.GaussSeidel[float64](bad, x, make([]float64, 4))
	require.ErrorIs(t, err, relaxation.ErrInvalidConfig)
	err = relaxation.SOR[float64](bad, x, make([]float64, 4), 1.5)
	require.ErrorIs(t, err, relaxation.ErrInvalidConfig)
	assert.Equal(t, []float64{1, 2, 3, 4}, x)
}

func TestComplexMatchesReal(t *testing.T) {
	t.Parallel()

	ar := poisson(t, 5)
	ac, err := gallery.Poisson1D[complex128](5)
	require.NoError(t, err)

	xr := make([]float64, 5)
	require.NoError(t, relaxation.GaussSeidel[float64](ar, xr, ramp(5, 1), relaxation.WithSweep(sweep.Symmetric)))

	bc := make([]complex128, 5)
	for i := range bc {
		bc[i] = complex(float64(i), 0)
	}
	xc := make([]complex128, 5)
	require.NoError(t, relaxation.GaussSeidel[complex128](ac, xc, bc, relaxation.WithSweep(sweep.Symmetric)))
	for i := range xr {
		assert.Equal(t, xr[i], real(xc[i]))
		assert.Zero(t, imag(xc[i]))
	}
}

func TestNoOpOnZeroIterations(t *testing.T) {
	t.Parallel()

	a := poisson(t, 5)
	blk, err := gallery.BlockPoisson1D[float64](5, 1)
	require.NoError(t, err)
	b := ramp(5, 1)
	zero := relaxation.WithIterations(0)

	cases := []struct {
		name string
		run  func(x []float64) error
	}{
		{"gauss_seidel", func(x []float64) error { return relaxation.GaussSeidel[float64](a, x, b, zero) }},
		{"block_gauss_seidel", func(x []float64) error { return relaxation.GaussSeidel[float64](blk, x, b, zero) }},
		{"sor", func(x []float64) error { return relaxation.SOR[float64](a, x, b, 1.3, zero) }},
		{"indexed", func(x []float64) error {
			return relaxation.GaussSeidelIndexed[float64](a, x, b, []int{4, 0, 2}, zero)
		}},
		{"jacobi", func(x []float64) error { return relaxation.Jacobi[float64](a, x, b, zero) }},
		{"polynomial", func(x []float64) error {
			return relaxation.Polynomial[float64](a, x, b, []float64{1, 2}, zero)
		}},
		{"kaczmarz_jacobi", func(x []float64) error { return relaxation.KaczmarzJacobi[float64](a, x, b, zero) }},
		{"kaczmarz_richardson", func(x []float64) error { return relaxation.KaczmarzRichardson[float64](a, x, b, zero) }},
		{"kaczmarz_gauss_seidel", func(x []float64) error {
			return relaxation.KaczmarzGaussSeidel[float64](a, x, b, zero, relaxation.WithSweep(sweep.Symmetric))
		}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			x := []float64{math.Copysign(0, -1), 1.5, math.Inf(1), -7, 1e-300}
			require.NoError(t, tc.run(x))
			assert.Equal(t, math.Float64bits(math.Copysign(0, -1)), math.Float64bits(x[0]))
			assert.Equal(t, 1.5, x[1])
			assert.True(t, math.IsInf(x[2], 1))
			assert.Equal(t, []float64{-7, 1e-300}, x[3:])
		})
	}
}

func TestConvergenceOnPoisson2D(t *testing.T) {
	t.Parallel()

	a, err := gallery.Poisson2D[float64](6, 6)
	require.NoError(t, err)
	n, _ := a.Dims()
	b := gallery.Ones[float64](n)
	xs := exact(t, a, b)

	// Gauss-Seidel style smoothers contract the energy norm of the error on
	// an SPD operator; Kaczmarz contracts its Euclidean norm.
	cases := []struct {
		name   string
		run    func(x []float64) error
		energy bool
	}{
		{"gauss_seidel", func(x []float64) error {
			return relaxation.GaussSeidel[float64](a, x, b, relaxation.WithIterations(10))
		}, true},
		{"sor", func(x []float64) error {
			return relaxation.SOR[float64](a, x, b, 1.5, relaxation.WithIterations(10))
		}, true},
		{"jacobi", func(x []float64) error {
			return relaxation.Jacobi[float64](a, x, b, relaxation.WithOmega(0.8), relaxation.WithIterations(10))
		}, true},
		{"kaczmarz_gauss_seidel", func(x []float64) error {
			return relaxation.KaczmarzGaussSeidel[float64](a, x, b,
				relaxation.WithSweep(sweep.Symmetric), relaxation.WithIterations(10))
		}, false},
	}
	for _, tc := range cases {
		x := make([]float64, n)
		l2, en := errorNorms(a, x, xs)
		require.NoError(t, tc.run(x), tc.name)
		l2After, enAfter := errorNorms(a, x, xs)
		if tc.energy {
			assert.Less(t, enAfter, en, tc.name)
		} else {
			assert.Less(t, l2After, l2, tc.name)
		}
	}
}

// exact solves A·x = b densely with gonum.
func exact(t *testing.T, a *sparse.CSR[float64], b []float64) []float64 {
	t.Helper()
	n, _ := a.Dims()
	var x mat.VecDense
	require.NoError(t, x.SolveVec(mat.NewDense(n, n, a.ToDense()), mat.NewVecDense(n, append([]float64(nil), b...))))

	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out
}

// errorNorms returns the Euclidean and energy norms of x − xs.
func errorNorms(a *sparse.CSR[float64], x, xs []float64) (l2, energy float64) {
	e := make([]float64, len(x))
	floats.SubTo(e, x, xs)
	ae := make([]float64, len(x))
	if err := a.MatVec(ae, e); err != nil {
		panic(err)
	}

	return floats.Norm(e, 2), math.Sqrt(floats.Dot(e, ae))
}
