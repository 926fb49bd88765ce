// SPDX-License-Identifier: MIT

// Package kldual - unified entry point for the worst-case solve.
//
// This file provides the canonical pipeline:
//
//   - Solve: validate the ModelSpec, build the configured evaluator (drawing
//     the Monte Carlo sample set exactly once when requested), bind the dual
//     objective, minimize it over a bounded positive α interval, and pack
//     the SolverResult.
//   - AnalyticWorstCase: the linear/Gaussian reference identity
//     meanᵀx + √(2η)·√(xᵀΣx), exported so callers and tests can compare
//     solver output against the exact value.
//
// Design principles:
//   - Deterministic: explicit seeding; the sample set is sealed before the
//     minimizer starts and never regenerated mid-solve.
//   - Strict sentinels: invalid input fails fast before any computation;
//     numerical instability carries the offending α.
//   - Non-convergence is data: budget exhaustion lands in Result.Converged,
//     never in the error return, and is never retried internally.
package kldual

import (
	"fmt"
	"math"

	"github.com/katalvlaran/robust/minimize"
	"github.com/katalvlaran/robust/randvec"
)

const opSolve = "Solve"

// Solve computes the worst-case expected value of H(x, ξ) over all
// distributions within KL divergence spec.Eta of the nominal.
//
// Pipeline:
//   - Stage 1: fail-fast ModelSpec validation (dimensions, covariance,
//     budget; sample size on the Monte Carlo path).
//   - Stage 2: evaluator construction. Monte Carlo draws spec.SampleSize
//     vectors once, through WithSampler's generator or a Gaussian sampler
//     seeded via WithSeed.
//   - Stage 3: dual objective f(α) = α·log E[exp(H/α)] + α·η.
//   - Stage 4: bounded 1-D minimization of f over [αmin, αmax].
//
// Returns SolverResult{Alpha, Value, Converged, Evals}. Converged=false
// (budget exhausted) still carries the best α and value found.
//
// Errors: package sentinels for invalid input; wrapped linalg/randvec
// errors for structural covariance failures; ErrNonFiniteExpectation when
// an α probe leaves the numerically safe range.
//
// Complexity: closed form O(d²) + O(Evals); Monte Carlo O(N·d²) sampling +
// O(N·d) payoffs + O(N·Evals) minimization.
func Solve(spec ModelSpec, opts ...Option) (SolverResult, error) {
	return solveWith(spec, gatherOptions(opts...))
}

// solveWith runs the pipeline under resolved options. SolveBatch calls it
// directly with per-worker option copies.
func solveWith(spec ModelSpec, o Options) (SolverResult, error) {
	// Stage 1 - unified validation.
	if err := validateSpec(spec, o.mode == modeMonteCarlo); err != nil {
		return SolverResult{}, err
	}

	// Stage 2 - evaluator.
	ev, err := buildEvaluator(spec, o)
	if err != nil {
		return SolverResult{}, err
	}

	// Stage 3 - dual objective, everything captured immutably.
	obj, err := NewDualObjective(ev, spec.Eta, o.stabilized)
	if err != nil {
		return SolverResult{}, err
	}

	// Stage 4 - bounded minimization over α.
	res, err := minimize.Minimize(obj.Value, o.alphaMin, o.alphaMax,
		minimize.WithMethod(o.method),
		minimize.WithRelTol(o.relTol),
		minimize.WithMaxEvals(o.maxEvals),
	)
	if err != nil {
		return SolverResult{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	return SolverResult{
		Alpha:     res.Argmin,
		Value:     res.Value,
		Converged: res.Converged,
		Evals:     res.Evals,
	}, nil
}

// buildEvaluator routes to the configured expectation strategy. On the
// Monte Carlo path the sample set is drawn here, exactly once per solve.
func buildEvaluator(spec ModelSpec, o Options) (Evaluator, error) {
	if o.mode == modeClosedForm {
		return NewClosedForm(spec)
	}

	sampler := o.sampler
	if sampler == nil {
		g, err := randvec.NewGaussian(spec.Mean, spec.Cov, randvec.WithSeed(o.seed))
		if err != nil {
			return nil, fmt.Errorf("%s: sampler: %w", opSolve, err)
		}
		sampler = g
	}
	samples, err := sampler.Sample(spec.SampleSize)
	if err != nil {
		return nil, fmt.Errorf("%s: sampling: %w", opSolve, err)
	}

	return NewMonteCarlo(spec, samples)
}

// AnalyticWorstCase returns the exact worst-case expectation for the linear
// objective under a Gaussian nominal:
//
//	meanᵀx + √(2η)·√(xᵀΣx).
//
// It is the value Solve converges to on the closed-form path (up to solver
// tolerance and the finite α interval) and the reference for validating the
// Monte Carlo pipeline. η = 0 collapses it to the nominal expectation meanᵀx.
//
// Errors: as NewClosedForm (including ErrClosedFormObjective for a custom
// objective).
//
// Complexity: O(d²).
func AnalyticWorstCase(spec ModelSpec) (float64, error) {
	cf, err := NewClosedForm(spec)
	if err != nil {
		return 0, err
	}

	return cf.m + math.Sqrt(2*spec.Eta)*math.Sqrt(cf.q), nil
}
