// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the linalg
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package linalg

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linalg: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// detection site when coordinates matter; callers still match via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape/index -> dimension mismatch -> structural violations
// (symmetry, definiteness) -> numeric policy (NaN/Inf).

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrInvalidDimensions is returned when a requested shape is invalid
	// (e.g., rows<=0 or cols<=0 on public constructors, or an empty vector).
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Dot over different lengths, or MatVec where m.Cols != len(v).
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured numeric tolerance (eps).
	ErrAsymmetry = errors.New("linalg: matrix is not symmetric within eps")

	// ErrNotPSD signals that a matrix required to be positive semi-definite
	// exposed a negative pivot during factorization (beyond tolerance).
	ErrNotPSD = errors.New("linalg: matrix is not positive semi-definite")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (ingestion, validation).
	ErrNaNInf = errors.New("linalg: NaN or Inf encountered")
)
