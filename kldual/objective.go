// SPDX-License-Identifier: MIT

// Package kldual - the dual objective f(α) = α·log E[exp(H/α)] + α·η.
//
// Purpose:
//   - Bind one Evaluator and one budget η into a pure scalar function of α,
//     built once per solve with everything it needs captured immutably.
//   - Guard the log: evaluator outputs are validated finite and positive
//     before they reach math.Log, so numerical instability surfaces as a
//     typed error instead of silently corrupting the minimization.
//
// Convexity: per the KL duality theorem, f is convex on α > 0 for
// admissible objectives. That is a property of the mathematics, not checked
// at runtime; under Monte Carlo noise the minimizer may legitimately settle
// in a local dip of the sampled surface.
package kldual

import (
	"fmt"
	"math"
)

const opDualValue = "DualObjective.Value"

// DualObjective is the one-dimensional convex reduction of the worst-case
// problem. Value is assignable to minimize.Func, which is how Solve hands
// it to the minimizer. Immutable after construction.
type DualObjective struct {
	ev         Evaluator
	eta        float64
	stabilized bool
}

// NewDualObjective binds an evaluator and a divergence budget.
//
// stabilized selects the evaluation route inside Value: false reproduces
// the faithful α·log(Expectation(α)) numerics, true routes through
// LogExpectation for overflow-immune log-domain evaluation.
//
// Errors: ErrNilEvaluator; ErrNegativeBudget for η < 0 or non-finite η.
func NewDualObjective(ev Evaluator, eta float64, stabilized bool) (*DualObjective, error) {
	if ev == nil {
		return nil, ErrNilEvaluator
	}
	if eta < 0 || math.IsNaN(eta) || math.IsInf(eta, 0) {
		return nil, fmt.Errorf("kldual: eta %g: %w", eta, ErrNegativeBudget)
	}

	return &DualObjective{ev: ev, eta: eta, stabilized: stabilized}, nil
}

// Value evaluates f(α) = α·log E[exp(H/α)] + α·η.
//
// Faithful route: E = Expectation(α) must be finite and strictly positive
// before log(E) is taken (ErrNonFiniteExpectation otherwise, wrapped with
// the offending α). Stabilized route: log E comes straight from
// LogExpectation, already guarded by the evaluator.
//
// Complexity: one evaluator call. Deterministic for a fixed evaluator.
func (o *DualObjective) Value(alpha float64) (float64, error) {
	if err := guardAlpha(opDualValue, alpha); err != nil {
		return 0, err
	}

	var logE float64
	if o.stabilized {
		v, err := o.ev.LogExpectation(alpha)
		if err != nil {
			return 0, err
		}
		logE = v
	} else {
		e, err := o.ev.Expectation(alpha)
		if err != nil {
			return 0, err
		}
		if !(e > 0) || math.IsInf(e, 0) { // NaN fails e > 0
			return 0, fmt.Errorf("%s: alpha %g: expectation %g: %w", opDualValue, alpha, e, ErrNonFiniteExpectation)
		}
		logE = math.Log(e)
	}

	return alpha*logE + alpha*o.eta, nil
}
