// SPDX-License-Identifier: MIT

// Package kldual - closed-form expectation evaluator (linear/Gaussian).
//
// Purpose:
//   - Evaluate E[exp(ξᵀx/α)] exactly via the Gaussian moment-generating
//     function: for ξ ~ N(μ, Σ) and t = x/α,
//     E[exp(tᵀξ)] = exp(tᵀμ + tᵀΣt/2) = exp(m/α + q/(2α²))
//     with m = μᵀx and q = xᵀΣx precomputed once at construction.
//   - Zero variance and O(1) per query: the minimizer can probe α freely.
//
// Validity boundary: the identity holds ONLY for the built-in linear
// objective under a Gaussian nominal; construction rejects any custom
// Objective with ErrClosedFormObjective.
package kldual

import (
	"fmt"
	"math"

	"github.com/katalvlaran/robust/linalg"
)

// ---------- error context tags ----------

const (
	opCFNew    = "NewClosedForm"
	opCFExp    = "ClosedForm.Expectation"
	opCFLogExp = "ClosedForm.LogExpectation"
)

// ClosedForm is the exact expectation evaluator for the linear objective
// ξᵀx under a Gaussian nominal distribution. Immutable after construction;
// safe to share across goroutines.
type ClosedForm struct {
	m float64 // μᵀx, the nominal expected payoff
	q float64 // xᵀΣx, the payoff variance under the nominal
}

// Compile-time check: *ClosedForm satisfies the Evaluator contract.
var _ Evaluator = (*ClosedForm)(nil)

// NewClosedForm validates spec and precomputes the two scalars (m, q) that
// fully determine the linear/Gaussian expectation.
//
// Implementation:
//   - Stage 1: shared ModelSpec validation (dimensions, covariance, η);
//     SampleSize is ignored on this path.
//   - Stage 2: reject a custom Objective; the identity is linear-only.
//   - Stage 3: m = μᵀx (Dot), q = xᵀΣx (QuadForm). A PSD covariance makes
//     q ≥ 0 mathematically; negative rounding dust below linalg
//     DefaultEpsilon is clamped to zero, anything worse reports
//     linalg.ErrNotPSD.
//
// Returns: the evaluator, or a sentinel (ErrClosedFormObjective, dimension/
// budget errors from validation, wrapped linalg errors).
//
// Complexity: O(d²) setup, O(1) per evaluator call afterward.
func NewClosedForm(spec ModelSpec) (*ClosedForm, error) {
	// Stage 1 - shared input contract.
	if err := validateSpec(spec, false); err != nil {
		return nil, err
	}
	// Stage 2 - the identity covers the built-in linear objective only.
	if spec.Objective != nil {
		return nil, fmt.Errorf("%s: %w", opCFNew, ErrClosedFormObjective)
	}

	// Stage 3 - the two moments of the payoff distribution.
	m, err := linalg.Dot(spec.Mean, spec.X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCFNew, err)
	}
	q, err := linalg.QuadForm(spec.Cov, spec.X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCFNew, err)
	}
	if q < 0 {
		if q < -linalg.DefaultEpsilon {
			return nil, fmt.Errorf("%s: quadratic form %g: %w", opCFNew, q, linalg.ErrNotPSD)
		}
		q = 0 // rounding dust on a PSD covariance
	}

	return &ClosedForm{m: m, q: q}, nil
}

// LogExpectation returns log E[exp(ξᵀx/α)] = m/α + q/(2α²) exactly.
//
// Errors: ErrNonPositiveAlpha for α ≤ 0 or non-finite α;
// ErrNonFiniteExpectation when the identity overflows float64 (extreme
// moments at tiny α).
//
// Complexity: O(1). Deterministic.
func (c *ClosedForm) LogExpectation(alpha float64) (float64, error) {
	if err := guardAlpha(opCFLogExp, alpha); err != nil {
		return 0, err
	}

	logE := c.m/alpha + c.q/(2*alpha*alpha)
	if math.IsNaN(logE) || math.IsInf(logE, 0) {
		return 0, fmt.Errorf("%s: alpha %g: %w", opCFLogExp, alpha, ErrNonFiniteExpectation)
	}

	return logE, nil
}

// Expectation returns E[exp(ξᵀx/α)] = exp(m/α + q/(2α²)).
//
// The exponent is evaluated first and exponentiated once; overflow to +Inf
// or underflow to 0 is surfaced as ErrNonFiniteExpectation rather than fed
// into a downstream log.
//
// Complexity: O(1). Deterministic.
func (c *ClosedForm) Expectation(alpha float64) (float64, error) {
	if err := guardAlpha(opCFExp, alpha); err != nil {
		return 0, err
	}

	e := math.Exp(c.m/alpha + c.q/(2*alpha*alpha))
	if e == 0 || math.IsNaN(e) || math.IsInf(e, 0) {
		return 0, fmt.Errorf("%s: alpha %g: %w", opCFExp, alpha, ErrNonFiniteExpectation)
	}

	return e, nil
}
