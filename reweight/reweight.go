// SPDX-License-Identifier: MIT

// Package reweight - worst-case exponential tilting on a finite support.
//
// Purpose:
//   - Solve max_p Σ p·v subject to KL(p‖q) ≤ η on a finite support by the
//     closed-form tilting family p_i(λ) ∝ q_i·exp(v_i/λ), λ > 0.
//   - Locate the dual scalar λ with a bracketed bisection on KL(λ): the
//     divergence of the tilted family decreases monotonically in λ (λ → 0
//     concentrates mass on the argmax, λ → ∞ recovers q), so the budget
//     equality KL(λ) = η has exactly one root whenever it binds.
//
// Numerics:
//   - Tilts are formed in the log domain shifted by the support maximum:
//     every exponent is ≤ 0, so the partition sum lives in (0, 1] and the
//     softmax cannot overflow for any value spread.
//   - Zero nominal weights stay exactly zero; the support never grows.
//
// Degenerate budgets are exact: η = 0 returns q itself, and η at or above
// the concentration divergence −log(Σ q over the argmax) returns the
// argmax-concentrated distribution without any search.
package reweight

import (
	"fmt"
	"math"
)

// Reweight computes the worst-case distribution p maximizing Σ p·v within
// KL divergence eta of the nominal weights.
//
// Implementation:
//   - Stage 1: validate shape and content, normalize weights to q.
//   - Stage 2: η = 0 or constant values on the support ⇒ p = q exactly.
//   - Stage 3: non-binding budget (η ≥ −log Σ q over argmax, up to the
//     matching tolerance) ⇒ all mass concentrates on the maximum-value
//     points, proportionally to q.
//   - Stage 4: otherwise bracket λ by doubling/halving from the value
//     spread, then bisect until |KL(p(λ)‖q) − η| ≤ tol.
//
// The returned slice is freshly allocated; inputs are never mutated.
// Output invariants: Σp = 1, p ≥ 0, KL(p‖q) ≤ η + tol (under the default
// iteration budget), and p_i = 0 wherever q_i = 0.
//
// Errors: ErrEmptySupport, ErrLengthMismatch, ErrNonFiniteValue,
// ErrNegativeWeight, ErrZeroTotalWeight, ErrNegativeBudget.
//
// Complexity: O(n) per KL evaluation, O(n·iterations) overall; O(n) space.
func Reweight(values, weights []float64, eta float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)

	// Stage 1 - contract and normalization.
	q, err := normalize(values, weights)
	if err != nil {
		return nil, err
	}
	if eta < 0 || math.IsNaN(eta) || math.IsInf(eta, 0) {
		return nil, fmt.Errorf("reweight: eta %g: %w", eta, ErrNegativeBudget)
	}

	// Stage 2 - degenerate budgets and supports.
	if eta == 0 {
		return q, nil
	}
	vmax, vmin := supportRange(values, q)
	if vmax == vmin {
		// Constant payoff on the support: tilting cannot move the mean.
		return q, nil
	}

	// Stage 3 - concentration when the budget does not bind.
	qmax := argmaxMass(values, q, vmax)
	if eta >= -math.Log(qmax)-o.tol {
		return concentrate(values, q, vmax, qmax), nil
	}

	// Stage 4 - bisection on the monotone KL(λ) curve.
	return tiltSearch(values, q, vmax, vmin, eta, o)
}

// supportRange returns the extreme values over the support (q_i > 0).
func supportRange(values, q []float64) (vmax, vmin float64) {
	vmax, vmin = math.Inf(-1), math.Inf(1)
	var i int
	for i = 0; i < len(q); i++ {
		if q[i] == 0 {
			continue
		}
		if values[i] > vmax {
			vmax = values[i]
		}
		if values[i] < vmin {
			vmin = values[i]
		}
	}

	return vmax, vmin
}

// argmaxMass returns Σ q_i over the maximum-value support points.
func argmaxMass(values, q []float64, vmax float64) float64 {
	var (
		mass float64
		i    int
	)
	for i = 0; i < len(q); i++ {
		if q[i] > 0 && values[i] == vmax {
			mass += q[i]
		}
	}

	return mass
}

// concentrate places all mass on the argmax set, proportionally to q.
func concentrate(values, q []float64, vmax, qmax float64) []float64 {
	p := make([]float64, len(q))
	invMass := 1.0 / qmax
	var i int
	for i = 0; i < len(q); i++ {
		if q[i] > 0 && values[i] == vmax {
			p[i] = q[i] * invMass
		}
	}

	return p
}

// tilt fills p with the λ-tilted distribution and returns KL(p‖q).
//
// Exponents are shifted by vmax so each term q_i·exp((v_i−vmax)/λ) lies in
// (0, q_i]; the partition sum z is bounded by (0, 1] and division by it is
// safe. KL accumulates as Σ p_i·((v_i−vmax)/λ − log z), the log-domain
// form of Σ p_i·log(p_i/q_i).
//
// Complexity: O(n), no allocations.
func tilt(values, q []float64, vmax, lambda float64, p []float64) float64 {
	var (
		z float64
		i int
	)
	for i = 0; i < len(q); i++ {
		if q[i] == 0 {
			p[i] = 0
			continue
		}
		p[i] = q[i] * math.Exp((values[i]-vmax)/lambda)
		z += p[i]
	}

	var (
		kl   float64
		invZ = 1.0 / z
		logZ = math.Log(z)
	)
	for i = 0; i < len(q); i++ {
		if p[i] == 0 {
			continue
		}
		p[i] *= invZ
		kl += p[i] * ((values[i]-vmax)/lambda - logZ)
	}

	return kl
}

// tiltSearch brackets and bisects λ until the KL budget is matched.
//
// Bracket invariant: KL(lo) ≥ η ≥ KL(hi). Halving lo approaches the
// concentration divergence (> η here, Stage 3 filtered the rest); doubling
// hi drives KL toward zero. Bisection then halves [lo, hi] and keeps the
// invariant, returning as soon as the midpoint matches η within tol. When
// the iteration budget runs out, the ≤ η side (hi) is returned so the
// divergence constraint still holds.
func tiltSearch(values, q []float64, vmax, vmin, eta float64, o options) ([]float64, error) {
	var (
		p      = make([]float64, len(q))
		spread = vmax - vmin
		lo     = spread
		hi     = spread
		iter   int
	)

	// Bracket from below: shrink until the tilt overshoots the budget.
	for tilt(values, q, vmax, lo, p) < eta && iter < o.maxIter {
		lo /= 2
		iter++
	}
	// Bracket from above: grow until the tilt fits the budget.
	for tilt(values, q, vmax, hi, p) > eta && iter < o.maxIter {
		hi *= 2
		iter++
	}

	// Bisect, keeping KL(lo) ≥ η ≥ KL(hi).
	var mid, kl float64
	for ; iter < o.maxIter; iter++ {
		mid = 0.5 * (lo + hi)
		kl = tilt(values, q, vmax, mid, p)
		if math.Abs(kl-eta) <= o.tol {
			return p, nil
		}
		if kl > eta {
			lo = mid
		} else {
			hi = mid
		}
	}

	// Budget exhausted: settle on the feasible side.
	tilt(values, q, vmax, hi, p)

	return p, nil
}

// normalize validates the support contract and returns weights scaled to a
// probability vector. Inputs are never mutated.
func normalize(values, weights []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmptySupport
	}
	if len(values) != len(weights) {
		return nil, fmt.Errorf("reweight: %d values vs %d weights: %w", len(values), len(weights), ErrLengthMismatch)
	}

	var (
		total float64
		i     int
	)
	for i = 0; i < len(weights); i++ {
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			return nil, fmt.Errorf("reweight: value[%d]: %w", i, ErrNonFiniteValue)
		}
		if math.IsNaN(weights[i]) || math.IsInf(weights[i], 0) {
			return nil, fmt.Errorf("reweight: weight[%d]: %w", i, ErrNonFiniteValue)
		}
		if weights[i] < 0 {
			return nil, fmt.Errorf("reweight: weight[%d] = %g: %w", i, weights[i], ErrNegativeWeight)
		}
		total += weights[i]
	}
	if total <= 0 {
		return nil, ErrZeroTotalWeight
	}

	q := make([]float64, len(weights))
	invTotal := 1.0 / total
	for i = 0; i < len(weights); i++ {
		q[i] = weights[i] * invTotal
	}

	return q, nil
}
