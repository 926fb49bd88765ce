// Package linalg provides the small dense linear-algebra core used by the
// robust-optimization packages: row-major matrices, vector kernels, a
// PSD-tolerant Cholesky factorization, and sample statistics.
//
// The linalg package provides:
//
//   - Dense: a cache-friendly row-major matrix with bounds-checked At/Set
//     and strict fail-fast construction (no NaN/Inf ingestion).
//   - Kernels: Dot, MatVec, QuadForm with deterministic loop orders.
//   - Cholesky: lower-triangular factorization that tolerates PSD-degenerate
//     inputs (zero pivots) and rejects indefinite ones (ErrNotPSD).
//   - SampleMean / SampleCovariance: empirical moments of a sample matrix.
//   - Validators: ValidateVector, ValidateSquare, ValidateSymmetric,
//     ValidateCovariance - the shared entry contract for covariance inputs
//     used by every downstream consumer.
//
// All functions return sentinel errors (errors.go) and never panic on user
// input. Loops are fixed-order; results are deterministic for fixed inputs.
package linalg
