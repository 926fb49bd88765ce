// SPDX-License-Identifier: MIT
// Package kldual: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the kldual
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. Nothing in this package panics on user input; the only
// panics live in option constructors and signal programmer error.

package kldual

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "kldual: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// detection site when α or an index matters; callers still match via
// errors.Is. Structural errors raised by linalg and randvec (ErrNaNInf,
// ErrAsymmetry, ErrNotPSD, ...) propagate wrapped, never re-minted.
//
// ERROR PRIORITY (documented, enforced in tests):
// input shape/content (decision, mean, covariance, η, N) -> evaluator
// contract (α, objective choice) -> numeric policy (non-finite expectation).
// Non-convergence of the minimizer is NOT an error: it is reported through
// SolverResult.Converged.

var (
	// ErrEmptyDecision is returned when the decision vector X has length zero.
	ErrEmptyDecision = errors.New("kldual: decision vector must be non-empty")

	// ErrDimensionMismatch indicates that X, Mean, and Cov do not share one
	// dimension d, or that a sample row disagrees with d.
	ErrDimensionMismatch = errors.New("kldual: x, mean, and covariance dimensions must agree")

	// ErrNegativeBudget rejects a divergence budget η that is negative or
	// non-finite. η = 0 is legal and means "no ambiguity".
	ErrNegativeBudget = errors.New("kldual: divergence budget must be >= 0 and finite")

	// ErrBadSampleSize is returned when the Monte Carlo path is requested with
	// SampleSize <= 0, or an evaluator is built over an empty sample set.
	ErrBadSampleSize = errors.New("kldual: sample size must be positive")

	// ErrNonPositiveAlpha rejects evaluator or objective queries at α <= 0
	// (or NaN). The dual objective is defined on strictly positive α only.
	ErrNonPositiveAlpha = errors.New("kldual: alpha must be strictly positive")

	// ErrNonFiniteExpectation signals that an expectation evaluator produced a
	// non-finite or non-positive value (overflow of exp, degenerate underflow).
	// Surfaced with the offending α, never clamped: it means the objective is
	// being queried outside a numerically safe α range.
	ErrNonFiniteExpectation = errors.New("kldual: expectation is non-finite or non-positive")

	// ErrNonFiniteObjective is returned when the user objective H(x, ξ)
	// produces NaN or ±Inf on a drawn sample.
	ErrNonFiniteObjective = errors.New("kldual: objective produced a non-finite value")

	// ErrNilEvaluator rejects a nil Evaluator handed to NewDualObjective.
	ErrNilEvaluator = errors.New("kldual: evaluator must not be nil")

	// ErrClosedFormObjective is returned when the closed-form evaluator is
	// requested for a custom objective. The moment-generating-function
	// identity holds only for the built-in linear objective ξᵀx, so ModelSpec.
	// Objective must be nil on this path.
	ErrClosedFormObjective = errors.New("kldual: closed form requires the built-in linear objective")

	// ErrBatchSampler rejects SolveBatch with a user-supplied sampler:
	// samplers are not goroutine-safe and cannot be shared across workers.
	// Per-worker samplers are constructed internally from seed substreams.
	ErrBatchSampler = errors.New("kldual: SolveBatch cannot share a user-supplied sampler across workers")
)
