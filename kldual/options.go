// SPDX-License-Identifier: MIT

// Package kldual - functional configuration for Solve and SolveBatch.
//
// Design:
//   - Constants are the single source of truth for defaults.
//   - Evaluator choice is an explicit per-solve option, never ambient state.
//   - Options fields are unexported; public entry points consume ...Option.
//   - Option constructors panic ONLY on nonsensical values (programmer
//     error); user data errors stay on the error path of Solve.
package kldual

import (
	"math"

	"github.com/katalvlaran/robust/minimize"
	"github.com/katalvlaran/robust/randvec"
)

// Defaults (single source of truth).
const (
	// DefaultAlphaMin is the lower bound of the α search interval. Strictly
	// positive at machine-epsilon scale: the dual objective is undefined at
	// α = 0 (log of an expectation scaled by zero).
	DefaultAlphaMin = 1e-12

	// DefaultAlphaMax is the upper bound of the α search interval. Generous
	// relative to natural problem scales so the optimum is not clamped; when
	// η = 0 the objective decreases in α and the minimizer legitimately
	// parks here.
	DefaultAlphaMax = 1e4

	// DefaultBatchWorkers caps SolveBatch concurrency when WithWorkers is
	// not given; the effective default is min(GOMAXPROCS, DefaultBatchWorkers).
	DefaultBatchWorkers = 8
)

// Stable messages for option-constructor panics (programmer errors).
const (
	panicBadAlphaBounds = "kldual: WithAlphaBounds requires 0 < lo < hi, both finite"
	panicBadRelTol      = "kldual: WithRelTol requires a positive finite tolerance"
	panicBadMaxEvals    = "kldual: WithMaxEvals requires at least 3 evaluations"
	panicBadWorkers     = "kldual: WithWorkers requires a positive count"
	panicNilSampler     = "kldual: WithSampler(nil)"
)

// evalMode selects the expectation strategy for a solve.
type evalMode int

const (
	modeClosedForm evalMode = iota // exact; linear objective + Gaussian nominal
	modeMonteCarlo                 // general; sampling error O(1/√N)
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque: public entry points accept ...Option and
// resolve them via gatherOptions.
type Options struct {
	mode       evalMode        // evaluator strategy; closed form by default
	alphaMin   float64         // lower α bound; DefaultAlphaMin
	alphaMax   float64         // upper α bound; DefaultAlphaMax
	method     minimize.Method // 1-D engine; minimize.DefaultMethod
	relTol     float64         // minimizer tolerance; minimize.DefaultRelTol
	maxEvals   int             // minimizer budget; minimize.DefaultMaxEvals
	seed       int64           // sampler seed; 0 ⇒ randvec default policy
	sampler    randvec.Sampler // injected sampler; nil ⇒ Gaussian from spec
	stabilized bool            // log-sum-exp path instead of faithful exp
	workers    int             // SolveBatch pool size; 0 ⇒ derived default
}

// WithMonteCarlo switches the solve to the Monte Carlo evaluator: a sample
// set of ModelSpec.SampleSize draws is taken once, then reused for every α
// the minimizer probes.
func WithMonteCarlo() Option {
	return func(o *Options) { o.mode = modeMonteCarlo }
}

// WithAlphaBounds overrides the α search interval [lo, hi].
// Panics unless 0 < lo < hi with both bounds finite (programmer error).
func WithAlphaBounds(lo, hi float64) Option {
	if !(lo > 0) || !(hi > lo) || math.IsInf(hi, 0) { // NaN fails both comparisons
		panic(panicBadAlphaBounds)
	}
	return func(o *Options) {
		o.alphaMin = lo
		o.alphaMax = hi
	}
}

// WithMethod selects the 1-D minimization engine. Unknown values surface as
// minimize.ErrUnknownMethod from Solve, not as a panic here: a Method may
// arrive from configuration rather than source code.
func WithMethod(m minimize.Method) Option {
	return func(o *Options) { o.method = m }
}

// WithRelTol sets the minimizer's relative stopping tolerance.
// Panics on non-positive or non-finite values (programmer error).
func WithRelTol(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) { // NaN fails tol > 0
		panic(panicBadRelTol)
	}
	return func(o *Options) { o.relTol = tol }
}

// WithMaxEvals caps dual-objective evaluations inside the minimizer.
// Panics below 3 (programmer error).
func WithMaxEvals(n int) Option {
	if n < 3 {
		panic(panicBadMaxEvals)
	}
	return func(o *Options) { o.maxEvals = n }
}

// WithSeed fixes the sampler seed for the Monte Carlo path. Policy follows
// randvec: seed 0 selects the fixed default seed. Ignored on the closed-form
// path and when WithSampler injects a generator of its own.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithSampler injects an alternative nominal-distribution sampler for the
// Monte Carlo path (any randvec.Sampler). Panics on nil (programmer error).
// Rejected by SolveBatch: samplers are not goroutine-safe.
func WithSampler(s randvec.Sampler) Option {
	if s == nil {
		panic(panicNilSampler)
	}
	return func(o *Options) { o.sampler = s }
}

// WithStabilized evaluates the dual objective through the log-sum-exp path:
// α·LogExpectation(α) + α·η. Immune to overflow of exp for extreme H/α
// ratios; the default faithful path reproduces the unstabilized reference
// numerics exactly.
func WithStabilized() Option {
	return func(o *Options) { o.stabilized = true }
}

// WithWorkers sets the SolveBatch worker-pool size exactly.
// Panics on counts below 1 (programmer error). Ignored by Solve.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicBadWorkers)
	}
	return func(o *Options) { o.workers = n }
}

// DefaultOptions returns the documented defaults. Use as a base for manual
// construction in tests; public APIs resolve options internally.
func DefaultOptions() Options {
	return Options{
		mode:       modeClosedForm,
		alphaMin:   DefaultAlphaMin,
		alphaMax:   DefaultAlphaMax,
		method:     minimize.DefaultMethod,
		relTol:     minimize.DefaultRelTol,
		maxEvals:   minimize.DefaultMaxEvals,
		seed:       0,
		sampler:    nil,
		stabilized: false,
		workers:    0,
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
