// SPDX-License-Identifier: MIT

// Package reweight - expectation and divergence measures over a support.
package reweight

import (
	"fmt"
	"math"
)

// Mean returns the expectation Σ v_i·w_i / Σ w_i under the (possibly
// unnormalized) weights. It shares the support contract of Reweight.
//
// Errors: ErrEmptySupport, ErrLengthMismatch, ErrNonFiniteValue,
// ErrNegativeWeight, ErrZeroTotalWeight.
func Mean(values, weights []float64) (float64, error) {
	q, err := normalize(values, weights)
	if err != nil {
		return 0, err
	}

	var (
		m float64
		i int
	)
	for i = 0; i < len(q); i++ {
		m += values[i] * q[i]
	}

	return m, nil
}

// KLDivergence returns Σ p_i·log(p_i/q_i) between two probability vectors
// on a shared support. Both arguments are taken as given, not renormalized.
//
// Conventions: 0·log(0/q) counts as zero, and any point with p_i > 0 but
// q_i = 0 breaks absolute continuity, so the divergence is +Inf. The +Inf
// case is a legitimate measurement, not an error.
//
// Errors: ErrEmptySupport, ErrLengthMismatch, ErrNonFiniteValue,
// ErrNegativeWeight.
func KLDivergence(p, q []float64) (float64, error) {
	if len(p) == 0 {
		return 0, ErrEmptySupport
	}
	if len(p) != len(q) {
		return 0, fmt.Errorf("reweight: %d vs %d entries: %w", len(p), len(q), ErrLengthMismatch)
	}

	var (
		kl float64
		i  int
	)
	for i = 0; i < len(p); i++ {
		if math.IsNaN(p[i]) || math.IsInf(p[i], 0) || math.IsNaN(q[i]) || math.IsInf(q[i], 0) {
			return 0, fmt.Errorf("reweight: entry[%d]: %w", i, ErrNonFiniteValue)
		}
		if p[i] < 0 || q[i] < 0 {
			return 0, fmt.Errorf("reweight: entry[%d]: %w", i, ErrNegativeWeight)
		}
		if p[i] == 0 {
			continue
		}
		if q[i] == 0 {
			return math.Inf(1), nil
		}
		kl += p[i] * math.Log(p[i]/q[i])
	}

	return kl, nil
}
