// SPDX-License-Identifier: MIT

// Package reweight - functional configuration for the tilting search.
//
// Design:
//   - Constants are the single source of truth for defaults.
//   - Options fields are unexported; Reweight consumes ...Option.
//   - Option constructors panic ONLY on nonsensical values (programmer
//     error); user data errors stay on Reweight's error path.
package reweight

import "math"

// Defaults (single source of truth).
const (
	// DefaultTolerance is the KL-matching tolerance: bisection stops once
	// |KL(p(λ)‖q) − η| falls below it. The returned distribution always
	// satisfies KL ≤ η + DefaultTolerance.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps bracket expansion plus bisection steps.
	// Each bisection halves the λ interval, so 200 covers any float64
	// bracket with a wide margin.
	DefaultMaxIterations = 200
)

// Stable messages for option-constructor panics (programmer errors).
const (
	panicBadTolerance  = "reweight: WithTolerance requires a positive finite tolerance"
	panicBadIterations = "reweight: WithMaxIterations requires a positive count"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	tol     float64 // KL matching tolerance; DefaultTolerance
	maxIter int     // search step cap; DefaultMaxIterations
}

// WithTolerance sets the KL-matching tolerance.
// Panics on non-positive or non-finite values (programmer error).
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) { // NaN fails tol > 0
		panic(panicBadTolerance)
	}
	return func(o *options) { o.tol = tol }
}

// WithMaxIterations caps the λ search steps.
// Panics on counts below 1 (programmer error).
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicBadIterations)
	}
	return func(o *options) { o.maxIter = n }
}

// gatherOptions applies user setters over defaults (last-writer-wins).
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) options {
	o := options{tol: DefaultTolerance, maxIter: DefaultMaxIterations}
	for _, set := range user {
		set(&o)
	}

	return o
}
