// Package reweight computes worst-case reweighted probabilities on a finite
// support under a KL divergence budget.
//
// The package solves, for values v and nominal weights q,
//
//	max_p Σ p_i·v_i   s.t.   Σ p_i·log(p_i/q_i) ≤ η,   Σ p_i = 1,   p_i ≥ 0.
//
// The maximizer is an exponential tilting p_i ∝ q_i·exp(v_i/λ) whose single
// dual scalar λ > 0 is located by bisection on the monotone KL(λ) curve.
// Tilted weights are always formed in the log domain with max subtraction,
// so extreme value spreads cannot overflow.
//
// Reweight pairs with the continuous dual solver: reweighting the empirical
// distribution of a sample set reproduces, by strong duality, the same
// worst-case expectation the dual minimization finds on that sample set.
// Mean and KLDivergence are exported so callers can run that comparison and
// audit any returned distribution.
//
// Edge cases are exact, not approximate: η = 0 returns the nominal weights
// unchanged, and a budget at or above the concentration divergence moves all
// mass onto the maximum-value support points.
//
// See the examples in this package for usage patterns.
package reweight
