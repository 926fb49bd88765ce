// SPDX-License-Identifier: MIT

// Package linalg - central validators shared by kernels and downstream packages.
//
// Purpose:
//   - Concentrate fail-fast input checks in one place so every consumer applies
//     identical semantics (nil, shape, symmetry, finiteness).
//   - Validators return bare sentinels; callers wrap with operation context.
//
// Notes:
//   - Symmetry uses an absolute tolerance eps (DefaultEpsilon when in doubt).
//   - Finiteness rejects NaN and ±Inf uniformly (covariances must be finite).

package linalg

import (
	"fmt"
	"math"
)

// Numeric policy defaults (single source of truth).
const (
	// DefaultEpsilon defines the non-negative tolerance used by symmetry checks.
	DefaultEpsilon = 1e-9

	// DefaultPSDTolerance scales the pivot cutoff in Cholesky: pivots within
	// ±tol·maxDiag are treated as exact zeros (degenerate directions), pivots
	// below -tol·maxDiag reject the matrix as indefinite.
	DefaultPSDTolerance = 1e-12
)

// isNonFinite reports whether v is NaN or ±Inf.
// Complexity: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ValidateVector checks that v is non-empty and finite.
// MAIN DESCRIPTION:
//   - Entry guard for caller-supplied float vectors (decisions, means, weights).
//
// Implementation:
//   - Stage 1: reject len(v)==0 (ErrInvalidDimensions).
//   - Stage 2: scan for NaN/±Inf (ErrNaNInf, wrapped with the index).
//
// Complexity:
//   - Time O(n), Space O(1).
func ValidateVector(v []float64) error {
	if len(v) == 0 {
		return ErrInvalidDimensions
	}
	var i int
	for i = 0; i < len(v); i++ {
		if isNonFinite(v[i]) {
			return fmt.Errorf("vector[%d]: %w", i, ErrNaNInf)
		}
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}

// ValidateSymmetric checks |m[i,j] - m[j,i]| <= eps for all pairs.
// MAIN DESCRIPTION:
//   - Structural symmetry check with absolute tolerance.
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: scan the strict upper triangle; compare mirrored entries.
//
// Behavior highlights:
//   - eps < 0 is treated as 0 (strict equality).
//   - NaN entries fail the comparison and surface as ErrAsymmetry here;
//     use ValidateCovariance for a combined finite+symmetric contract.
//
// Complexity:
//   - Time O(n^2), Space O(1).
func ValidateSymmetric(m *Dense, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if eps < 0 {
		eps = 0
	}
	n := m.r
	var i, j int
	var diff float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			diff = m.data[i*n+j] - m.data[j*n+i]
			if diff < 0 {
				diff = -diff // abs
			}
			if !(diff <= eps) { // NaN-safe: NaN comparisons are false
				return fmt.Errorf("entries (%d,%d)/(%d,%d): %w", i, j, j, i, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateCovariance checks the full covariance entry contract:
// non-nil, square, finite entries, symmetric within eps.
// MAIN DESCRIPTION:
//   - The shared gate for covariance matrices before factorization or
//     quadratic forms; all downstream consumers call this first.
//
// Implementation:
//   - Stage 1: ValidateSquare (nil/shape).
//   - Stage 2: finite scan over all entries (ErrNaNInf with coordinates).
//   - Stage 3: ValidateSymmetric with eps.
//
// Behavior highlights:
//   - Positive semi-definiteness is NOT checked here; that is the job of
//     Cholesky, which reports ErrNotPSD at the failing pivot.
//
// Complexity:
//   - Time O(n^2), Space O(1).
func ValidateCovariance(m *Dense, eps float64) error {
	// Stage 1: nil/shape.
	if err := ValidateSquare(m); err != nil {
		return err
	}

	// Stage 2: finite-only scan (fixed i→j order).
	n := m.r
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			if isNonFinite(m.data[base+j]) {
				return fmt.Errorf("entry (%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	// Stage 3: symmetry within eps.
	return ValidateSymmetric(m, eps)
}
