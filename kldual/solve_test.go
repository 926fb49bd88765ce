// SPDX-License-Identifier: MIT

package kldual_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robust/kldual"
	"github.com/katalvlaran/robust/linalg"
	"github.com/katalvlaran/robust/minimize"
)

// fixedSampler feeds a pre-built sample set into the Monte Carlo path.
type fixedSampler struct{ rows [][]float64 }

func (f *fixedSampler) Dim() int { return len(f.rows[0]) }

func (f *fixedSampler) Sample(n int) ([][]float64, error) {
	if n != len(f.rows) {
		return nil, fmt.Errorf("fixed sampler holds %d rows, asked for %d", len(f.rows), n)
	}

	return f.rows, nil
}

func TestSolve_ClosedFormCanonical(t *testing.T) {
	// x=[1], ξ ~ N(0, 1), η=0.1: worst case √0.2 ≈ 0.4472 at α* = √5.
	res, err := kldual.Solve(scalarSpec(t, 0.1))
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Greater(t, res.Evals, 0)
	assert.InDelta(t, math.Sqrt(5), res.Alpha, epsArg)
	assert.InDelta(t, math.Sqrt(0.2), res.Value, epsVal)

	want, err := kldual.AnalyticWorstCase(scalarSpec(t, 0.1))
	require.NoError(t, err)
	assert.InDelta(t, want, res.Value, epsVal)
}

func TestSolve_ClosedFormMultivariate(t *testing.T) {
	// m = 0.5, q = 11 ⇒ worst case 0.5 + √(2·0.5)·√11 = 0.5 + √11.
	spec := kldual.ModelSpec{
		X:    []float64{1, 2},
		Mean: []float64{0.1, 0.2},
		Cov:  mustCov(t, [][]float64{{1, 0.5}, {0.5, 2}}),
		Eta:  0.5,
	}

	res, err := kldual.Solve(spec)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 0.5+math.Sqrt(11), res.Value, epsVal)

	want, err := kldual.AnalyticWorstCase(spec)
	require.NoError(t, err)
	assert.InDelta(t, want, res.Value, epsVal)
}

func TestSolve_MonteCarloMatchesClosedForm(t *testing.T) {
	spec := scalarSpec(t, 0.1)
	spec.SampleSize = 10000

	want, err := kldual.AnalyticWorstCase(spec)
	require.NoError(t, err)

	t.Run("Faithful", func(t *testing.T) {
		res, err := kldual.Solve(spec, kldual.WithMonteCarlo(), kldual.WithSeed(seedDet))
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.InDelta(t, want, res.Value, mcTol)
	})
	t.Run("Stabilized", func(t *testing.T) {
		res, err := kldual.Solve(spec,
			kldual.WithMonteCarlo(), kldual.WithSeed(seedDet), kldual.WithStabilized())
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.InDelta(t, want, res.Value, mcTol)
	})
}

func TestSolve_StabilizedAgreesWithFaithful(t *testing.T) {
	spec := scalarSpec(t, 0.1)
	spec.SampleSize = 5000

	faithful, err := kldual.Solve(spec, kldual.WithMonteCarlo(), kldual.WithSeed(seedDet))
	require.NoError(t, err)
	stabilized, err := kldual.Solve(spec,
		kldual.WithMonteCarlo(), kldual.WithSeed(seedDet), kldual.WithStabilized())
	require.NoError(t, err)

	// Same sample set, same objective up to rounding: the two numeric routes
	// must land on the same optimum.
	assert.InDelta(t, faithful.Value, stabilized.Value, epsVal)
	assert.InDelta(t, faithful.Alpha, stabilized.Alpha, 1e-4)
}

func TestSolve_MonotoneInBudget(t *testing.T) {
	etas := []float64{0, 0.05, 0.1, 0.5, 1}

	t.Run("ClosedForm", func(t *testing.T) {
		prev := math.Inf(-1)
		for _, eta := range etas {
			res, err := kldual.Solve(scalarSpec(t, eta))
			require.NoError(t, err, "eta=%g", eta)
			assert.LessOrEqual(t, prev-epsVal, res.Value, "eta=%g", eta)
			prev = res.Value
		}
	})
	t.Run("MonteCarlo", func(t *testing.T) {
		prev := math.Inf(-1)
		for _, eta := range etas {
			spec := scalarSpec(t, eta)
			spec.SampleSize = 4000
			res, err := kldual.Solve(spec, kldual.WithMonteCarlo(), kldual.WithSeed(seedDet))
			require.NoError(t, err, "eta=%g", eta)
			assert.LessOrEqual(t, prev-epsVal, res.Value, "eta=%g", eta)
			prev = res.Value
		}
	})
}

func TestSolve_MethodAgreement(t *testing.T) {
	brent, err := kldual.Solve(scalarSpec(t, 0.1), kldual.WithMethod(minimize.Brent))
	require.NoError(t, err)
	golden, err := kldual.Solve(scalarSpec(t, 0.1), kldual.WithMethod(minimize.GoldenSection))
	require.NoError(t, err)

	assert.InDelta(t, brent.Alpha, golden.Alpha, epsArg)
	assert.InDelta(t, brent.Value, golden.Value, epsVal)
}

func TestSolve_Deterministic(t *testing.T) {
	spec := scalarSpec(t, 0.1)
	spec.SampleSize = 2000

	a, err := kldual.Solve(spec, kldual.WithMonteCarlo(), kldual.WithSeed(99))
	require.NoError(t, err)
	b, err := kldual.Solve(spec, kldual.WithMonteCarlo(), kldual.WithSeed(99))
	require.NoError(t, err)

	assert.Equal(t, a, b)

	c, err := kldual.Solve(spec, kldual.WithMonteCarlo(), kldual.WithSeed(100))
	require.NoError(t, err)
	assert.NotEqual(t, a.Value, c.Value)
}

func TestSolve_ZeroBudget(t *testing.T) {
	// η = 0: f(α) = q/(2α) decreases in α, so the minimizer parks at the
	// upper α bound and the value collapses to the nominal expectation up
	// to the residual q/(2·αmax).
	res, err := kldual.Solve(scalarSpec(t, 0))
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.InDelta(t, kldual.DefaultAlphaMax, res.Alpha, 1.0)
	assert.InDelta(t, 1/(2*kldual.DefaultAlphaMax), res.Value, 1e-8)
	assert.InDelta(t, 0, res.Value, 1e-3) // nominal mean, up to the residual
}

func TestSolve_CustomAlphaBounds(t *testing.T) {
	// The canonical optimum √5 lies inside [1, 10]; tightening the interval
	// must not move it.
	res, err := kldual.Solve(scalarSpec(t, 0.1), kldual.WithAlphaBounds(1, 10))
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.InDelta(t, math.Sqrt(5), res.Alpha, epsArg)
	assert.InDelta(t, math.Sqrt(0.2), res.Value, epsVal)
}

func TestSolve_BudgetExhaustedReported(t *testing.T) {
	res, err := kldual.Solve(scalarSpec(t, 0.1), kldual.WithMaxEvals(3))
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.Equal(t, 3, res.Evals)
}

func TestSolve_WithSamplerInjection(t *testing.T) {
	spec := scalarSpec(t, 0.1)
	spec.SampleSize = 3
	sampler := &fixedSampler{rows: [][]float64{{0}, {1}, {-1}}}

	a, err := kldual.Solve(spec, kldual.WithMonteCarlo(), kldual.WithSampler(sampler))
	require.NoError(t, err)
	b, err := kldual.Solve(spec, kldual.WithMonteCarlo(), kldual.WithSampler(sampler))
	require.NoError(t, err)

	assert.True(t, a.Converged)
	// Worst case dominates the nominal sample mean (0 here).
	assert.Greater(t, a.Value, 0.0)
	assert.Equal(t, a, b)
}

func TestSolve_InputContract(t *testing.T) {
	base := func() kldual.ModelSpec { return scalarSpec(t, 0.1) }

	t.Run("EmptyDecision", func(t *testing.T) {
		spec := base()
		spec.X = nil
		_, err := kldual.Solve(spec)
		assert.ErrorIs(t, err, kldual.ErrEmptyDecision)
	})
	t.Run("NonFiniteDecision", func(t *testing.T) {
		spec := base()
		spec.X = []float64{math.NaN()}
		_, err := kldual.Solve(spec)
		assert.ErrorIs(t, err, linalg.ErrNaNInf)
	})
	t.Run("MeanLengthMismatch", func(t *testing.T) {
		spec := base()
		spec.Mean = []float64{0, 0}
		_, err := kldual.Solve(spec)
		assert.ErrorIs(t, err, kldual.ErrDimensionMismatch)
	})
	t.Run("CovarianceShapeMismatch", func(t *testing.T) {
		spec := base()
		spec.Cov = mustCov(t, [][]float64{{1, 0}, {0, 1}})
		_, err := kldual.Solve(spec)
		assert.ErrorIs(t, err, kldual.ErrDimensionMismatch)
	})
	t.Run("AsymmetricCovariance", func(t *testing.T) {
		spec := kldual.ModelSpec{
			X:    []float64{1, 1},
			Mean: []float64{0, 0},
			Cov:  mustCov(t, [][]float64{{1, 0.5}, {0.4, 1}}),
			Eta:  0.1,
		}
		_, err := kldual.Solve(spec)
		assert.ErrorIs(t, err, linalg.ErrAsymmetry)
	})
	t.Run("NegativeBudget", func(t *testing.T) {
		spec := base()
		spec.Eta = -0.1
		_, err := kldual.Solve(spec)
		assert.ErrorIs(t, err, kldual.ErrNegativeBudget)
	})
	t.Run("MonteCarloWithoutSampleSize", func(t *testing.T) {
		_, err := kldual.Solve(base(), kldual.WithMonteCarlo())
		assert.ErrorIs(t, err, kldual.ErrBadSampleSize)
	})
	t.Run("ClosedFormCustomObjective", func(t *testing.T) {
		spec := base()
		spec.Objective = func(x, xi []float64) float64 { return xi[0] }
		_, err := kldual.Solve(spec)
		assert.ErrorIs(t, err, kldual.ErrClosedFormObjective)

		_, err = kldual.AnalyticWorstCase(spec)
		assert.ErrorIs(t, err, kldual.ErrClosedFormObjective)
	})
	t.Run("NonPSDCovarianceMonteCarlo", func(t *testing.T) {
		spec := kldual.ModelSpec{
			X:          []float64{1, 0},
			Mean:       []float64{0, 0},
			Cov:        mustCov(t, [][]float64{{1, 2}, {2, 1}}),
			Eta:        0.1,
			SampleSize: 16,
		}
		_, err := kldual.Solve(spec, kldual.WithMonteCarlo())
		assert.ErrorIs(t, err, linalg.ErrNotPSD)
	})
}

func TestAnalyticWorstCase(t *testing.T) {
	t.Run("Shifted", func(t *testing.T) {
		spec := kldual.ModelSpec{
			X:    []float64{1},
			Mean: []float64{0.5},
			Cov:  mustCov(t, [][]float64{{1}}),
			Eta:  0.08,
		}
		v, err := kldual.AnalyticWorstCase(spec)
		require.NoError(t, err)
		assert.InDelta(t, 0.9, v, epsTiny) // 0.5 + √0.16
	})
	t.Run("ZeroBudgetIsNominal", func(t *testing.T) {
		spec := kldual.ModelSpec{
			X:    []float64{2, -1},
			Mean: []float64{0.3, 0.7},
			Cov:  mustCov(t, [][]float64{{1, 0}, {0, 1}}),
			Eta:  0,
		}
		v, err := kldual.AnalyticWorstCase(spec)
		require.NoError(t, err)
		assert.InDelta(t, -0.1, v, epsTiny) // meanᵀx = 0.6 - 0.7
	})
}

func TestSolve_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { kldual.WithAlphaBounds(0, 1) })
	assert.Panics(t, func() { kldual.WithAlphaBounds(2, 1) })
	assert.Panics(t, func() { kldual.WithAlphaBounds(1, math.Inf(1)) })
	assert.Panics(t, func() { kldual.WithRelTol(0) })
	assert.Panics(t, func() { kldual.WithRelTol(math.NaN()) })
	assert.Panics(t, func() { kldual.WithMaxEvals(2) })
	assert.Panics(t, func() { kldual.WithWorkers(0) })
	assert.Panics(t, func() { kldual.WithSampler(nil) })
}
