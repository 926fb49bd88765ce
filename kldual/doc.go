// Package kldual computes worst-case expected values under KL-divergence
// distributional ambiguity via the convex dual reformulation.
//
// 🚀 What problem does it solve?
//
//	Given a nominal distribution for a random vector ξ, a decision vector x,
//	and an objective H(x, ξ), the worst case over every distribution within
//	KL divergence η of the nominal is
//
//	    sup_P { E_P[H(x, ξ)] : KL(P ‖ P₀) ≤ η }.
//
//	The duality theorem collapses that infinite-dimensional search into a
//	one-dimensional convex minimization over a scaling parameter α > 0:
//
//	    worst case = min_{α>0}  α·log E[exp(H(x, ξ)/α)] + α·η.
//
//	This package evaluates the inner expectation, assembles the dual
//	objective, and minimizes it over a bounded positive interval.
//
// ✨ Key features:
//   - ClosedForm evaluator: exact moment-generating-function identity for
//     the linear objective ξᵀx under a Gaussian nominal. Zero variance.
//   - MonteCarlo evaluator: any objective, any sampler; sample set drawn
//     once per solve and reused across every α so the dual objective stays
//     deterministic during minimization.
//   - Faithful or log-sum-exp-stabilized numerics (WithStabilized).
//   - AnalyticWorstCase: the linear/Gaussian reference identity
//     meanᵀx + √(2η)·√(xᵀΣx) for validation.
//   - SolveBatch: independent solves across a bounded worker pool with
//     deterministic per-solve seed substreams.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/robust/kldual"
//
//	cov, _ := linalg.FromRows([][]float64{{1}})
//	spec := kldual.ModelSpec{
//	  X:    []float64{1},
//	  Mean: []float64{0},
//	  Cov:  cov,
//	  Eta:  0.1,
//	}
//	res, err := kldual.Solve(spec) // closed form by default
//	// res.Value ≈ 0.4472 (= √0.2), res.Alpha ≈ √5
//
//	// Monte Carlo with a fixed seed:
//	spec.SampleSize = 10_000
//	res, err = kldual.Solve(spec, kldual.WithMonteCarlo(), kldual.WithSeed(42))
//
// Errors:
//   - Invalid input (dimensions, η < 0, α ≤ 0, sample size) fails fast with
//     package sentinels; test with errors.Is.
//   - Non-finite or non-positive expectations surface as
//     ErrNonFiniteExpectation wrapped with the offending α, never clamped.
//   - Minimizer budget exhaustion is reported via SolverResult.Converged,
//     not an error.
//
// See example_test.go for runnable scenarios.
package kldual
