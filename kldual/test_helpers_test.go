// SPDX-License-Identifier: MIT
// Shared helpers and tolerances for the kldual test suite.

package kldual_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/robust/kldual"
	"github.com/katalvlaran/robust/linalg"
)

const (
	// epsTiny checks identities that hold to floating-point rounding.
	epsTiny = 1e-12

	// epsArg bounds argmin agreement between minimizer configurations.
	epsArg = 1e-5

	// epsVal bounds dual-value agreement between minimizer configurations.
	epsVal = 1e-9

	// mcTol bounds Monte Carlo vs closed-form disagreement at N=10000.
	// Sampling error is O(1/√N) ≈ 1e-2; 0.05 keeps the check meaningful
	// while leaving several standard deviations of headroom.
	mcTol = 0.05

	// seedDet is the fixed seed for deterministic sampling tests.
	seedDet = 42
)

// mustCov builds a covariance matrix from rows, failing the test on error.
func mustCov(t *testing.T, rows [][]float64) *linalg.Dense {
	t.Helper()
	m, err := linalg.FromRows(rows)
	require.NoError(t, err)

	return m
}

// scalarSpec is the canonical 1-D model: x=[1], ξ ~ N(0, 1), budget eta.
// Its exact worst case is √(2·eta); eta=0.1 gives √0.2 ≈ 0.4472.
func scalarSpec(t *testing.T, eta float64) kldual.ModelSpec {
	t.Helper()

	return kldual.ModelSpec{
		X:    []float64{1},
		Mean: []float64{0},
		Cov:  mustCov(t, [][]float64{{1}}),
		Eta:  eta,
	}
}
