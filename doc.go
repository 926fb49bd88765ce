// Package robust is your in-memory toolkit for distributionally robust
// expectations — from dense covariance kernels to worst-case solves under
// a KL divergence budget.
//
// 🚀 What is robust?
//
//	A deterministic, test-first library that brings together:
//		• Dual solves: worst-case E[H(x,ξ)] over all laws within KL budget η
//		• Closed form: exact linear/Gaussian identity meanᵀx + √(2η)·√(xᵀΣx)
//		• Monte Carlo: any payoff, any sampler, one frozen sample set per solve
//		• Discrete stress: exponential reweighting of finite scenario sets
//		• 1-D engines: Brent and golden-section minimization on an interval
//		• Linear algebra: flat row-major matrices, Cholesky, quadratic forms
//
// ✨ Why choose robust?
//
//   - Deterministic by default – explicit seeds, derived substreams, stable batches
//   - Strict contracts – sentinel errors, fail-fast validation, no silent NaNs
//   - Pure computation – no globals, no background goroutines outside SolveBatch
//   - Extensible – plug any sampler or payoff into the Monte Carlo path
//
// Under the hood, everything is organized under five subpackages:
//
//	linalg/   — dense vectors & matrices, Cholesky, sample moments, validators
//	randvec/  — seeded multivariate Gaussian sampling with derived substreams
//	minimize/ — bounded scalar minimization (Brent, golden section)
//	kldual/   — the dual pipeline: evaluators, Solve, SolveBatch, analytics
//	reweight/ — worst-case reweighting of discrete supports, KL measures
//
// Quick sketch of the pipeline:
//
//	ModelSpec ──▶ Evaluator (closed form | Monte Carlo)
//	                  │
//	                  ▼
//	    f(α) = α·log E[exp(H/α)] + α·η   ──▶  minimize over α > 0
//
// Dive into the package docs for the exact contracts, and into examples/
// for runnable portfolio, scenario-stress and frontier demos.
//
//	go get github.com/katalvlaran/robust
package robust
