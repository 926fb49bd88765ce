// Package randvec - sentinel error set.
// All samplers return these sentinels (or wrap linalg structural errors such
// as ErrNotPSD); tests match via errors.Is. No sampler panics on user input.
package randvec

import "errors"

var (
	// ErrEmptyMean indicates that the provided mean vector has length zero.
	ErrEmptyMean = errors.New("randvec: mean vector is empty")

	// ErrNonFiniteMean indicates a NaN or ±Inf entry in the mean vector.
	ErrNonFiniteMean = errors.New("randvec: mean vector contains NaN or Inf")

	// ErrDimensionMismatch indicates that the mean length and the covariance
	// dimension differ.
	ErrDimensionMismatch = errors.New("randvec: mean length and covariance size differ")

	// ErrBadSampleCount indicates a non-positive requested sample count.
	ErrBadSampleCount = errors.New("randvec: sample count must be > 0")
)
