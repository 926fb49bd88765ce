// SPDX-License-Identifier: MIT

// Package kldual - shared types and input validation.
//
// Purpose:
//   - Declare the immutable input bundle (ModelSpec), the solver output
//     (SolverResult), and the evaluator contract shared by the closed-form
//     and Monte Carlo strategies.
//   - Centralize fail-fast validation so every public entry point enforces
//     one identical contract before any computation starts.
package kldual

import (
	"fmt"
	"math"

	"github.com/katalvlaran/robust/linalg"
)

// Objective maps a decision vector x and one realization ξ of the random
// vector to a scalar payoff H(x, ξ). A nil Objective in ModelSpec selects the
// built-in linear objective ξᵀx. Implementations must be pure: the solver
// evaluates them once per sample and caches the results.
type Objective func(x, xi []float64) float64

// ModelSpec is the immutable input bundle for one worst-case computation.
//
// Invariant: len(X) == len(Mean) == Cov.Rows() == Cov.Cols(). Validated
// fail-fast on every public entry; no partial computation happens on
// invalid input.
type ModelSpec struct {
	// X is the decision vector (dimension d, finite entries).
	X []float64

	// Mean is the nominal-distribution mean vector (dimension d).
	Mean []float64

	// Cov is the nominal covariance matrix (d×d, symmetric within
	// linalg.DefaultEpsilon, positive semi-definite, finite).
	Cov *linalg.Dense

	// Eta is the KL divergence budget η ≥ 0. Larger η admits a larger
	// ambiguity set and therefore a larger worst-case expectation.
	Eta float64

	// SampleSize is the number of draws N for the Monte Carlo evaluator.
	// Ignored on the closed-form path.
	SampleSize int

	// Objective is the payoff H(x, ξ); nil selects the built-in linear ξᵀx.
	// The closed-form path requires nil (ErrClosedFormObjective otherwise).
	Objective Objective
}

// dim reports the decision dimension d.
func (s ModelSpec) dim() int { return len(s.X) }

// SolverResult is the outcome of one dual minimization.
// Constructed once per solve, never mutated afterward.
type SolverResult struct {
	// Alpha is the minimizing scale α* > 0.
	Alpha float64

	// Value is the worst-case expected value f(α*).
	Value float64

	// Converged reports whether the minimizer met its tolerance within the
	// evaluation budget. False means Alpha/Value are best-effort.
	Converged bool

	// Evals counts dual-objective evaluations spent by the minimizer.
	Evals int
}

// Evaluator computes the inner expectation E[exp(H(x, ξ)/α)] of the dual
// objective under the nominal distribution, for fixed x captured at
// construction. Both methods require α > 0 and report ErrNonPositiveAlpha
// otherwise.
//
// Expectation returns E directly (the faithful numerics; may overflow for
// extreme H/α ratios, reported as ErrNonFiniteExpectation). LogExpectation
// returns log E computed in the log domain, immune to overflow of exp.
type Evaluator interface {
	Expectation(alpha float64) (float64, error)
	LogExpectation(alpha float64) (float64, error)
}

// guardAlpha enforces the shared evaluator precondition α > 0 (finite).
// Used by both evaluator implementations and the dual objective.
func guardAlpha(op string, alpha float64) error {
	if !(alpha > 0) || math.IsInf(alpha, 0) { // NaN fails alpha > 0
		return fmt.Errorf("%s: alpha %g: %w", op, alpha, ErrNonPositiveAlpha)
	}

	return nil
}

// validateSpec enforces the ModelSpec contract: finite non-empty vectors,
// one shared dimension, a well-formed covariance, a legal budget, and (on
// the Monte Carlo path) a positive sample size.
func validateSpec(s ModelSpec, needSamples bool) error {
	if s.dim() == 0 {
		return ErrEmptyDecision
	}
	if err := linalg.ValidateVector(s.X); err != nil {
		return fmt.Errorf("kldual: decision vector: %w", err)
	}
	if err := linalg.ValidateVector(s.Mean); err != nil {
		return fmt.Errorf("kldual: mean vector: %w", err)
	}
	if len(s.Mean) != s.dim() {
		return fmt.Errorf("kldual: mean length %d vs decision %d: %w", len(s.Mean), s.dim(), ErrDimensionMismatch)
	}
	if err := linalg.ValidateCovariance(s.Cov, linalg.DefaultEpsilon); err != nil {
		return fmt.Errorf("kldual: covariance: %w", err)
	}
	if s.Cov.Rows() != s.dim() {
		return fmt.Errorf("kldual: covariance %dx%d vs decision %d: %w", s.Cov.Rows(), s.Cov.Cols(), s.dim(), ErrDimensionMismatch)
	}
	if s.Eta < 0 || math.IsNaN(s.Eta) || math.IsInf(s.Eta, 0) {
		return fmt.Errorf("kldual: eta %g: %w", s.Eta, ErrNegativeBudget)
	}
	if needSamples && s.SampleSize <= 0 {
		return fmt.Errorf("kldual: N %d: %w", s.SampleSize, ErrBadSampleSize)
	}

	return nil
}
