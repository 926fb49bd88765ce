// SPDX-License-Identifier: MIT

// Package linalg - canonical vector/matrix kernels.
//
// Purpose:
//   - Provide the three kernels the robust-optimization pipelines need:
//     Dot (inner product), MatVec (matrix-vector product), QuadForm (vᵀ·M·v).
//   - All kernels perform strict fail-fast validation and return sentinel
//     errors on dimension mismatches; operands are never mutated.
//
// Determinism & Performance:
//   - Fixed i→j traversal; flat-buffer indexing with a cached row base.
//   - Single output allocation in MatVec; Dot/QuadForm allocate nothing.

package linalg

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDot      = "Dot"
	opMatVec   = "MatVec"
	opQuadForm = "QuadForm"
)

// kernelErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
//
// Complexity: O(1).
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dot returns the inner product Σ a[i]*b[i].
// MAIN DESCRIPTION:
//   - Canonical inner product over equal-length slices.
//
// Implementation:
//   - Stage 1: validate len(a)==len(b) and non-empty.
//   - Stage 2: accumulate in a single deterministic pass.
//
// Inputs:
//   - a, b: non-empty slices of identical length.
//
// Returns:
//   - float64: Σ a[i]*b[i].
//
// Errors:
//   - ErrInvalidDimensions (empty), ErrDimensionMismatch (length differ).
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(a, b []float64) (float64, error) {
	// Stage 1 (Validate): shapes.
	if len(a) == 0 || len(b) == 0 {
		return 0, kernelErrorf(opDot, ErrInvalidDimensions)
	}
	if len(a) != len(b) {
		return 0, kernelErrorf(opDot, ErrDimensionMismatch)
	}

	// Stage 2 (Accumulate): fixed order 0..n-1.
	var s float64
	var i int
	for i = 0; i < len(a); i++ {
		s += a[i] * b[i]
	}

	return s, nil
}

// MatVec returns the product m·v as a fresh slice.
// MAIN DESCRIPTION:
//   - Dense matrix-vector product on the flat row-major buffer.
//
// Implementation:
//   - Stage 1: validate m non-nil and m.Cols()==len(v).
//   - Stage 2: allocate the output once; accumulate per row with a cached base.
//
// Inputs:
//   - m: r×c matrix; v: slice of length c.
//
// Returns:
//   - []float64: length r, out[i] = Σ_j m[i,j]*v[j].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→j accumulation order.
//
// Complexity:
//   - Time O(r*c), Space O(r) for the result.
func MatVec(m *Dense, v []float64) ([]float64, error) {
	// Stage 1 (Validate): presence and conformability.
	if m == nil {
		return nil, kernelErrorf(opMatVec, ErrNilMatrix)
	}
	if m.c != len(v) {
		return nil, kernelErrorf(opMatVec, ErrDimensionMismatch)
	}

	// Stage 2 (Accumulate): one output allocation; flat indexing.
	out := make([]float64, m.r)
	var i, j, base int
	var s float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		s = 0.0
		for j = 0; j < m.c; j++ {
			s += m.data[base+j] * v[j]
		}
		out[i] = s
	}

	return out, nil
}

// QuadForm returns the scalar quadratic form vᵀ·M·v.
// MAIN DESCRIPTION:
//   - The variance kernel: for a covariance M and direction v this is the
//     variance of the linear functional ⟨v, ·⟩.
//
// Implementation:
//   - Stage 1: validate M square and conformable with v.
//   - Stage 2: accumulate Σ_i v[i] · (Σ_j M[i,j]·v[j]) without intermediate slices.
//
// Inputs:
//   - m: n×n matrix; v: slice of length n.
//
// Returns:
//   - float64: vᵀ·M·v.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→j accumulation order.
//
// Complexity:
//   - Time O(n^2), Space O(1).
func QuadForm(m *Dense, v []float64) (float64, error) {
	// Stage 1 (Validate): shape and conformability.
	if err := ValidateSquare(m); err != nil {
		return 0, kernelErrorf(opQuadForm, err)
	}
	if m.c != len(v) {
		return 0, kernelErrorf(opQuadForm, ErrDimensionMismatch)
	}

	// Stage 2 (Accumulate): row sums folded into the outer product on the fly.
	n := m.r
	var i, j, base int
	var row, total float64
	for i = 0; i < n; i++ {
		base = i * n
		row = 0.0
		for j = 0; j < n; j++ {
			row += m.data[base+j] * v[j]
		}
		total += v[i] * row
	}

	return total, nil
}
