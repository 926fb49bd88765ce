// SPDX-License-Identifier: MIT
// Package reweight: sentinel error set (unified, consistent).
// All operations return these sentinels (optionally wrapped with context);
// tests and callers match them via errors.Is. Nothing here panics on user
// input; option constructors panic on programmer error only.

package reweight

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "reweight: ..." for consistency and to
// allow easy grepping across logs.
//
// ERROR PRIORITY (documented, enforced in tests):
// support shape (empty, length mismatch) -> weight content (negative,
// zero total, non-finite) -> budget.

var (
	// ErrEmptySupport is returned when the support has no points.
	ErrEmptySupport = errors.New("reweight: support must contain at least one point")

	// ErrLengthMismatch indicates values and weights of different lengths.
	ErrLengthMismatch = errors.New("reweight: values and weights lengths must agree")

	// ErrNegativeWeight rejects a nominal weight below zero.
	ErrNegativeWeight = errors.New("reweight: nominal weights must be >= 0")

	// ErrZeroTotalWeight rejects an all-zero weight vector: the nominal
	// distribution must carry positive total mass to be normalized.
	ErrZeroTotalWeight = errors.New("reweight: nominal weights must sum to a positive total")

	// ErrNegativeBudget rejects a divergence budget that is negative or
	// non-finite. η = 0 is legal and returns the nominal weights.
	ErrNegativeBudget = errors.New("reweight: divergence budget must be >= 0 and finite")

	// ErrNonFiniteValue signals NaN or ±Inf among values or weights.
	ErrNonFiniteValue = errors.New("reweight: NaN or Inf encountered")
)
