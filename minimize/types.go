// Package minimize provides derivative-free minimization of a univariate
// function over a closed bounded interval [lower, upper].
//
// Two interchangeable engines are exposed behind one dispatcher:
//
//   - GoldenSection: bracket shrinking at the golden ratio. Robust, needs no
//     smoothness beyond continuity, converges linearly (one evaluation per
//     step, interval shrinks by ~0.618 per step).
//   - Brent: successive parabolic interpolation guarded by golden-section
//     fallback steps. Superlinear on smooth unimodal objectives; the default.
//
// Both engines evaluate the objective only inside [lower, upper], never at
// the exact endpoints first, and both honor a hard evaluation budget: when
// the budget exhausts before the tolerance is met, the best point seen so
// far is returned with Converged=false and a nil error. Non-convergence is
// reported, not escalated - callers decide whether a loose argmin is
// acceptable.
//
// Errors (sentinel):
//
//	– ErrNilFunc     if the objective is nil.
//	– ErrBadBounds   if a bound is NaN/±Inf or lower >= upper.
//	– ErrNonFinite   if the objective returns NaN/±Inf at some point
//	                 (wrapped with the offending coordinate).
//	– ErrBadTol      / ErrBadMaxEvals: nonsensical option values
//	                 (panic messages in option constructors).
//	– ErrUnknownMethod if the Method enum value is not recognized.
//
// An error returned by the objective itself aborts the search immediately
// and propagates unchanged (it typically carries a domain sentinel).
//
// Example usage:
//
//	res, err := minimize.Minimize(
//	    func(x float64) (float64, error) { return (x - 2) * (x - 2), nil },
//	    0, 5,
//	    minimize.WithRelTol(1e-10),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("argmin=%.6f evals=%d\n", res.Argmin, res.Evals)
package minimize

import "errors"

// Sentinel errors returned by the dispatcher and engines.
var (
	// ErrNilFunc indicates that a nil objective was passed to Minimize.
	ErrNilFunc = errors.New("minimize: objective function is nil")

	// ErrBadBounds indicates a non-finite bound or lower >= upper.
	ErrBadBounds = errors.New("minimize: bounds must be finite with lower < upper")

	// ErrNonFinite indicates that the objective produced NaN or ±Inf;
	// the wrap site attaches the offending coordinate.
	ErrNonFinite = errors.New("minimize: objective returned NaN or Inf")

	// ErrBadTol indicates a non-positive or non-finite relative tolerance.
	ErrBadTol = errors.New("minimize: RelTol must be positive and finite")

	// ErrBadMaxEvals indicates a non-positive evaluation budget.
	ErrBadMaxEvals = errors.New("minimize: MaxEvals must be >= 3")

	// ErrUnknownMethod indicates an unrecognized Method value.
	ErrUnknownMethod = errors.New("minimize: unknown method")
)

// Func is the objective contract: pure, deterministic for a fixed x, and
// cheap enough to call a few hundred times. Returning an error aborts the
// search immediately.
type Func func(x float64) (float64, error)

// Method selects the minimization engine.
type Method int

const (
	// Brent runs successive parabolic interpolation with golden-section
	// safeguards (the default: fewest evaluations on smooth objectives).
	Brent Method = iota

	// GoldenSection runs pure golden-ratio bracket shrinking (one evaluation
	// per step; linear convergence; no smoothness assumptions).
	GoldenSection
)

// Result reports the outcome of a bounded scalar minimization.
type Result struct {
	// Argmin is the best abscissa found (always inside [lower, upper]).
	Argmin float64

	// Value is the objective value at Argmin.
	Value float64

	// Converged is true when the tolerance criterion was met within the
	// evaluation budget; false when the budget exhausted first.
	Converged bool

	// Evals counts objective evaluations actually performed.
	Evals int
}
