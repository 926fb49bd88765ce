// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Provide empirical moments of a sample matrix (rows = observations,
//     columns = coordinates): SampleMean and SampleCovariance.
//   - Used to verify sampler output against model parameters and available to
//     callers that estimate moments from data before a solve.
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops; two-pass covariance (means first,
//     centered cross-products second) for numerical sanity.
//   - Zero allocations beyond the returned containers.

package linalg

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opSampleMean       = "SampleMean"
	opSampleCovariance = "SampleCovariance"
)

// SampleMean returns the per-coordinate mean of the sample rows.
// MAIN DESCRIPTION:
//   - Column means of an n×d observation slice.
//
// Implementation:
//   - Stage 1: validate n>0, d>0, rectangular rows.
//   - Stage 2: accumulate column sums in a deterministic pass; divide by n.
//
// Inputs:
//   - samples: n rows of identical length d.
//
// Returns:
//   - []float64: length d, mean[j] = Σ_i samples[i][j] / n.
//
// Errors:
//   - ErrInvalidDimensions (empty), ErrDimensionMismatch (ragged rows).
//
// Complexity:
//   - Time O(n*d), Space O(d).
func SampleMean(samples [][]float64) ([]float64, error) {
	// Stage 1 (Validate): shape.
	n := len(samples)
	if n == 0 || len(samples[0]) == 0 {
		return nil, kernelErrorf(opSampleMean, ErrInvalidDimensions)
	}
	d := len(samples[0])

	// Stage 2 (Accumulate): fixed i→j order.
	mean := make([]float64, d)
	var i, j int
	for i = 0; i < n; i++ {
		if len(samples[i]) != d {
			return nil, fmt.Errorf("%s: row %d: %w", opSampleMean, i, ErrDimensionMismatch)
		}
		for j = 0; j < d; j++ {
			mean[j] += samples[i][j]
		}
	}
	invN := 1.0 / float64(n)
	for j = 0; j < d; j++ {
		mean[j] *= invN
	}

	return mean, nil
}

// SampleCovariance returns the unbiased sample covariance of the rows.
// MAIN DESCRIPTION:
//   - Cov[j,k] = Σ_i (x_ij - mean_j)(x_ik - mean_k) / (n-1), symmetric d×d.
//
// Implementation:
//   - Stage 1: validate n>=2 (sample denominator) and rectangular rows.
//   - Stage 2: compute means via SampleMean.
//   - Stage 3: accumulate centered outer products into the upper triangle,
//     then mirror into the lower triangle (exact symmetry by construction).
//
// Behavior highlights:
//   - Result is positive semi-definite on well-formed data (modulo FP noise);
//     pair with Cholesky's tolerance when feeding it back into a sampler.
//
// Inputs:
//   - samples: n>=2 rows of identical length d.
//
// Returns:
//   - *Dense: d×d covariance matrix.
//
// Errors:
//   - ErrInvalidDimensions (empty), ErrDimensionMismatch (ragged or n<2).
//
// Determinism:
//   - Fixed i→j→k accumulation; symmetric fill.
//
// Complexity:
//   - Time O(n*d^2), Space O(d^2).
func SampleCovariance(samples [][]float64) (*Dense, error) {
	// Stage 1 (Validate): sample covariance needs at least two observations.
	n := len(samples)
	if n == 0 || len(samples[0]) == 0 {
		return nil, kernelErrorf(opSampleCovariance, ErrInvalidDimensions)
	}
	if n < 2 {
		return nil, kernelErrorf(opSampleCovariance, ErrDimensionMismatch)
	}
	d := len(samples[0])

	// Stage 2 (Means): one pass; also verifies rectangularity.
	mean, err := SampleMean(samples)
	if err != nil {
		return nil, kernelErrorf(opSampleCovariance, err)
	}

	// Stage 3 (Accumulate): centered cross-products, upper triangle first.
	cov, err := NewDense(d, d)
	if err != nil {
		return nil, kernelErrorf(opSampleCovariance, err)
	}
	inv := 1.0 / float64(n-1)
	var i, j, k int
	var cj float64
	for i = 0; i < n; i++ {
		for j = 0; j < d; j++ {
			cj = samples[i][j] - mean[j]
			for k = j; k < d; k++ {
				cov.data[j*d+k] += cj * (samples[i][k] - mean[k])
			}
		}
	}
	for j = 0; j < d; j++ {
		for k = j; k < d; k++ {
			cov.data[j*d+k] *= inv
			cov.data[k*d+j] = cov.data[j*d+k] // mirror for exact symmetry
		}
	}

	return cov, nil
}
