// Package minimize - unified dispatcher for scalar minimization engines.
//
// Minimize is the canonical entry point: it validates user input with strict
// sentinels, resolves options against documented defaults, and routes to the
// requested engine. Engines never see unvalidated input.
//
// Design principles:
//   - Deterministic: identical inputs and options ⇒ identical results.
//   - Strict sentinels: only errors from types.go at this surface; objective
//     errors propagate unchanged.
//   - Non-convergence is data, not an error: budget exhaustion returns the
//     best point with Converged=false.
package minimize

import (
	"fmt"
	"math"
)

// zeps is the absolute floor added to the relative tolerance so the stopping
// criterion stays meaningful when the argmin sits at or near zero.
const zeps = 1e-18

// Minimize searches for the minimizer of f over [lower, upper].
//
// Stage 1 - validate the objective and bounds (ErrNilFunc, ErrBadBounds).
// Stage 2 - resolve options (method, tolerance, budget).
// Stage 3 - route to the engine (Brent or GoldenSection).
//
// Contracts:
//   - f is evaluated only at points strictly inside (lower, upper) except
//     possibly within tolerance of the endpoints.
//   - A monotone f drives the argmin to the corresponding bound (within
//     tolerance); that is a legitimate converged outcome, not an error.
//
// Complexity: O(Evals) objective calls; O(1) space.
func Minimize(f Func, lower, upper float64, opts ...Option) (Result, error) {
	// Stage 1 - user input (sentinels, never panics).
	if f == nil {
		return Result{}, ErrNilFunc
	}
	if math.IsNaN(lower) || math.IsInf(lower, 0) ||
		math.IsNaN(upper) || math.IsInf(upper, 0) || lower >= upper {
		return Result{}, ErrBadBounds
	}

	// Stage 2 - effective configuration.
	o := gatherOptions(opts...)

	// Stage 3 - route by engine.
	switch o.method {
	case Brent:
		return brentMin(f, lower, upper, o)
	case GoldenSection:
		return goldenMin(f, lower, upper, o)
	default:
		return Result{}, ErrUnknownMethod
	}
}

// guardedEval calls f(x) and converts non-finite values into ErrNonFinite
// wrapped with the offending coordinate. Objective errors pass through.
//
// Complexity: O(1) plus the objective itself.
func guardedEval(f Func, x float64) (float64, error) {
	v, err := f(x)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("f(%g): %w", x, ErrNonFinite)
	}
	return v, nil
}
