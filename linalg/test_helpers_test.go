// SPDX-License-Identifier: MIT
// Package linalg_test provides lightweight helpers shared across *_test.go
// files in this package. Helpers are intentionally minimal and avoid
// duplicating functionality that lives in focused test files.
package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robust/linalg"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the strict comparison tolerance for exact algebraic identities.
	epsTiny = 1e-12

	// epsLoose is a relaxed tolerance for accumulated floating-point noise.
	epsLoose = 1e-9
)

// mustDense builds a Dense from rows and fails the test on any error.
func mustDense(t *testing.T, rows [][]float64) *linalg.Dense {
	t.Helper()
	m, err := linalg.FromRows(rows)
	require.NoError(t, err, "FromRows must succeed for well-formed literals")

	return m
}

// reconstruct returns L·Lᵀ as a closure-free [][]float64 for comparisons.
func reconstruct(t *testing.T, L *linalg.Dense) [][]float64 {
	t.Helper()
	n := L.Rows()
	out := make([][]float64, n)

	var i, j, k int
	var lik, ljk float64
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			s := 0.0
			for k = 0; k < n; k++ {
				var err error
				lik, err = L.At(i, k)
				require.NoError(t, err)
				ljk, err = L.At(j, k)
				require.NoError(t, err)
				s += lik * ljk
			}
			out[i][j] = s
		}
	}

	return out
}
