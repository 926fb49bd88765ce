// SPDX-License-Identifier: MIT

// Package kldual - Monte Carlo expectation evaluator.
//
// Purpose:
//   - Estimate E[exp(H(x, ξ)/α)] as a sample mean over a fixed set of draws
//     from the nominal distribution. Valid for any objective and any
//     sampler, at the price of O(1/√N) sampling error.
//   - The payoffs h_i = H(x, ξ_i) are computed ONCE at construction; every
//     α query reuses them. Redrawing per α would make the dual objective
//     discontinuous in α and break the minimizer's assumptions, so the
//     sample set is sealed before minimization starts.
//
// Numerics:
//   - Expectation: the faithful mean of exp(h_i/α). Reproduces the
//     unstabilized reference behavior bit-for-bit; overflow of exp is
//     surfaced as ErrNonFiniteExpectation, never clamped.
//   - LogExpectation: log-sum-exp with max subtraction. Every term of the
//     shifted sum lies in (0, 1], so the sum is immune to overflow; only a
//     genuinely unrepresentable hmax/α can fail.
package kldual

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	opMCNew    = "NewMonteCarlo"
	opMCExp    = "MonteCarlo.Expectation"
	opMCLogExp = "MonteCarlo.LogExpectation"
)

// linearPayoff is the built-in objective ξᵀx. Lengths are validated by the
// caller; the raw loop keeps the per-sample cost at exactly d multiply-adds.
func linearPayoff(x, xi []float64) float64 {
	var (
		sum float64
		k   int
	)
	for k = 0; k < len(x); k++ {
		sum += x[k] * xi[k]
	}

	return sum
}

// MonteCarlo is the sampling expectation evaluator. It owns the precomputed
// payoff vector of one solve; immutable after construction, safe to share
// across goroutines.
type MonteCarlo struct {
	h    []float64 // h_i = H(x, ξ_i), fixed for the lifetime of the solve
	hmax float64   // max over h, the log-sum-exp shift
}

// Compile-time check: *MonteCarlo satisfies the Evaluator contract.
var _ Evaluator = (*MonteCarlo)(nil)

// NewMonteCarlo validates spec, applies the objective to every drawn sample
// and seals the payoff vector h.
//
// Implementation:
//   - Stage 1: shared ModelSpec validation; the effective sample count is
//     len(samples), so SampleSize is not re-checked here.
//   - Stage 2: per-row dimension check, then h_i = H(x, ξ_i) with a
//     finiteness gate (ErrNonFiniteObjective names the offending row).
//   - Stage 3: record the payoff maximum for the log-sum-exp path.
//
// The samples slice is read, never retained: only h survives.
//
// Complexity: O(N·d) for the built-in linear objective; O(N·cost(H))
// otherwise. Deterministic given the same samples.
func NewMonteCarlo(spec ModelSpec, samples [][]float64) (*MonteCarlo, error) {
	// Stage 1 - shared input contract.
	if err := validateSpec(spec, false); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%s: empty sample set: %w", opMCNew, ErrBadSampleSize)
	}

	obj := spec.Objective
	if obj == nil {
		obj = linearPayoff
	}

	// Stage 2 - evaluate the payoff once per draw.
	var (
		d    = spec.dim()
		h    = make([]float64, len(samples))
		hmax = math.Inf(-1)
		v    float64
		i    int
	)
	for i = 0; i < len(samples); i++ {
		if len(samples[i]) != d {
			return nil, fmt.Errorf("%s: sample %d length %d vs decision %d: %w",
				opMCNew, i, len(samples[i]), d, ErrDimensionMismatch)
		}
		v = obj(spec.X, samples[i])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: sample %d: %w", opMCNew, i, ErrNonFiniteObjective)
		}
		h[i] = v
		// Stage 3 - track the shift for log-sum-exp.
		if v > hmax {
			hmax = v
		}
	}

	return &MonteCarlo{h: h, hmax: hmax}, nil
}

// Expectation returns the faithful sample mean (1/N)·Σ exp(h_i/α).
//
// Overflow of any term drives the mean to +Inf and is reported as
// ErrNonFiniteExpectation; full underflow of every term (mean 0) is reported
// the same way since log(0) downstream is as undefined as log(∞).
//
// Complexity: O(N). Deterministic for a fixed payoff vector.
func (mc *MonteCarlo) Expectation(alpha float64) (float64, error) {
	if err := guardAlpha(opMCExp, alpha); err != nil {
		return 0, err
	}

	var (
		invAlpha = 1.0 / alpha
		sum      float64
		i        int
	)
	for i = 0; i < len(mc.h); i++ {
		sum += math.Exp(mc.h[i] * invAlpha)
	}

	e := sum / float64(len(mc.h))
	if e == 0 || math.IsNaN(e) || math.IsInf(e, 0) {
		return 0, fmt.Errorf("%s: alpha %g: %w", opMCExp, alpha, ErrNonFiniteExpectation)
	}

	return e, nil
}

// LogExpectation returns log((1/N)·Σ exp(h_i/α)) through the log-sum-exp
// identity: hmax/α + log((1/N)·Σ exp((h_i−hmax)/α)).
//
// The shifted sum lies in [1, N], so the only representable failure is
// hmax/α itself overflowing, reported as ErrNonFiniteExpectation.
//
// Complexity: O(N). Deterministic for a fixed payoff vector.
func (mc *MonteCarlo) LogExpectation(alpha float64) (float64, error) {
	if err := guardAlpha(opMCLogExp, alpha); err != nil {
		return 0, err
	}

	var (
		invAlpha = 1.0 / alpha
		sum      float64
		i        int
	)
	for i = 0; i < len(mc.h); i++ {
		sum += math.Exp((mc.h[i] - mc.hmax) * invAlpha)
	}

	logE := mc.hmax*invAlpha + math.Log(sum/float64(len(mc.h)))
	if math.IsNaN(logE) || math.IsInf(logE, 0) {
		return 0, fmt.Errorf("%s: alpha %g: %w", opMCLogExp, alpha, ErrNonFiniteExpectation)
	}

	return logE, nil
}
