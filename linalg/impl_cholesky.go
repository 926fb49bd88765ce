// SPDX-License-Identifier: MIT

// Package linalg - Cholesky factorization tolerant of PSD-degenerate input.
//
// Purpose:
//   - Factor a symmetric positive semi-definite matrix M as L·Lᵀ with L lower
//     triangular, the transform kernel behind correlated Gaussian sampling.
//   - Tolerate rank deficiency: covariance matrices with degenerate directions
//     (zero variance along some axes) are legal inputs, not errors.
//
// Numerical policy:
//   - Pivots within ±tol are flattened to exact zero and the remainder of the
//     column is zeroed (degenerate direction contributes no spread).
//   - Pivots below -tol reject the matrix with ErrNotPSD at the failing column.
//   - tol = DefaultPSDTolerance · max(1, max |M[i,i]|), scale-aware.

package linalg

import (
	"fmt"
	"math"
)

// opCholesky tags Cholesky errors for uniform wrapping.
const opCholesky = "Cholesky"

// Cholesky computes the lower-triangular factor L with L·Lᵀ = m.
// MAIN DESCRIPTION:
//   - Standard column-by-column Cholesky with a zero-pivot escape hatch for
//     positive SEMI-definite matrices.
//
// Implementation:
//   - Stage 1: validate m non-nil and square; derive the scale-aware tolerance
//     from the largest absolute diagonal entry.
//   - Stage 2: for each column j compute the pivot d = m[j,j] - Σ_k L[j,k]².
//     d < -tol ⇒ ErrNotPSD; |d| ≤ tol ⇒ zero column (degenerate direction);
//     otherwise L[j,j] = √d and fill the column below.
//
// Behavior highlights:
//   - Only the lower triangle of m (diagonal included) is read; symmetry is
//     the caller's contract (ValidateCovariance enforces it upstream).
//   - Input is never mutated; the factor is a fresh Dense.
//   - Deterministic j→i→k loops; identical results for identical inputs.
//
// Inputs:
//   - m: n×n symmetric PSD matrix.
//
// Returns:
//   - *Dense: lower-triangular n×n factor (strict upper triangle is zero).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (shape), ErrNotPSD (indefinite input,
//     wrapped with the failing column index).
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the factor.
func Cholesky(m *Dense) (*Dense, error) {
	// Stage 1 (Validate): nil and squareness.
	if err := ValidateSquare(m); err != nil {
		return nil, kernelErrorf(opCholesky, err)
	}
	n := m.r

	// Stage 1 (Tolerance): scale by the dominant diagonal magnitude so the
	// zero-pivot band tracks the matrix scale; floor at 1 to keep a sane
	// absolute cutoff for near-zero matrices.
	var maxDiag float64 = 1.0
	var i, j, k int
	var v float64
	for i = 0; i < n; i++ {
		v = m.data[i*n+i]
		if v < 0 {
			v = -v
		}
		if v > maxDiag {
			maxDiag = v
		}
	}
	tol := DefaultPSDTolerance * maxDiag

	// Stage 2 (Factor): column-by-column, lower triangle only.
	L, err := NewDense(n, n)
	if err != nil {
		return nil, kernelErrorf(opCholesky, err)
	}
	var d, s float64
	for j = 0; j < n; j++ {
		// Pivot: subtract the squared prefix of row j.
		d = m.data[j*n+j]
		for k = 0; k < j; k++ {
			d -= L.data[j*n+k] * L.data[j*n+k]
		}

		// Indefinite input: a pivot clearly below zero.
		if d < -tol {
			return nil, fmt.Errorf("%s: column %d pivot %g: %w", opCholesky, j, d, ErrNotPSD)
		}

		// Degenerate direction: flatten the pivot and the column below it.
		if d <= tol {
			L.data[j*n+j] = 0.0
			for i = j + 1; i < n; i++ {
				L.data[i*n+j] = 0.0
			}
			continue
		}

		// Regular pivot: fill column j below the diagonal.
		L.data[j*n+j] = math.Sqrt(d)
		invPivot := 1.0 / L.data[j*n+j]
		for i = j + 1; i < n; i++ {
			s = m.data[i*n+j]
			for k = 0; k < j; k++ {
				s -= L.data[i*n+k] * L.data[j*n+k]
			}
			L.data[i*n+j] = s * invPivot
		}
	}

	return L, nil
}
