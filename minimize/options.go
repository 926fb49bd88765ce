// Package minimize - functional configuration for the dispatcher.
//
// Design:
//   - Constants are the single source of truth for defaults.
//   - Options fields are unexported; public entry points consume ...Option.
//   - Option constructors panic ONLY on nonsensical values (programmer error),
//     using the matching sentinel's message for stable panic text.
package minimize

import "math"

// Defaults (single source of truth).
const (
	// DefaultRelTol is the relative width tolerance at which the search stops.
	// Near machine precision for float64 bracketing; tighter values buy noise.
	DefaultRelTol = 1e-9

	// DefaultMaxEvals caps objective evaluations. Golden-section shrinks the
	// bracket by ~0.618 per evaluation, so 256 covers ~47 decades of width
	// reduction - far beyond any float64 bracket; Brent needs far fewer.
	DefaultMaxEvals = 256

	// DefaultMethod is the engine used when no WithMethod option is given.
	DefaultMethod = Brent
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque: public entry points accept ...Option and
// resolve them via gatherOptions.
type Options struct {
	method   Method  // engine selector; DefaultMethod
	relTol   float64 // > 0, finite; DefaultRelTol
	maxEvals int     // >= 3; DefaultMaxEvals
}

// WithMethod selects the engine (Brent or GoldenSection).
// Unknown values are NOT validated here; Minimize returns ErrUnknownMethod,
// keeping the failure on the error path rather than the panic path because a
// Method may arrive from configuration rather than source code.
func WithMethod(m Method) Option {
	return func(o *Options) { o.method = m }
}

// WithRelTol sets the relative stopping tolerance.
// Panics on non-positive or non-finite values (programmer error).
func WithRelTol(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) { // NaN fails tol > 0
		panic(ErrBadTol.Error())
	}
	return func(o *Options) { o.relTol = tol }
}

// WithMaxEvals caps the number of objective evaluations.
// Both engines need at least 3 evaluations to make any progress;
// panics below that (programmer error).
func WithMaxEvals(n int) Option {
	if n < 3 {
		panic(ErrBadMaxEvals.Error())
	}
	return func(o *Options) { o.maxEvals = n }
}

// DefaultOptions returns the documented defaults. Use as a base for manual
// construction in tests; public APIs resolve options internally.
func DefaultOptions() Options {
	return Options{
		method:   DefaultMethod,
		relTol:   DefaultRelTol,
		maxEvals: DefaultMaxEvals,
	}
}

// gatherOptions applies user setters over defaults (last-writer-wins).
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}
	return o
}
