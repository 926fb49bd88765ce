// Package randvec provides deterministic random-vector samplers for
// stochastic model evaluation, chiefly the correlated multivariate Gaussian.
//
// 🎲 What lives here?
//
//	A Sampler draws batches of d-dimensional vectors from a nominal
//	distribution. The Gaussian sampler transforms i.i.d. standard normals
//	through the Cholesky factor of a covariance matrix:
//
//	    x = mean + L·z,   L·Lᵀ = Σ,   z ~ N(0, I)
//
//	Rank-deficient covariances are legal: degenerate directions simply
//	sample with zero spread (see linalg.Cholesky).
//
// ✨ Key properties:
//   - Determinism: same seed ⇒ identical samples across platforms.
//   - Explicit seeding only: WithSeed / WithRand; no time-based sources.
//   - Substreams: DeriveSeed mixes (parent, stream) into independent seeds
//     for parallel workers and batch runs.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/robust/randvec"
//
//	cov, _ := linalg.FromRows([][]float64{{1, 0.3}, {0.3, 2}})
//	g, err := randvec.NewGaussian([]float64{0, 0}, cov, randvec.WithSeed(42))
//	if err != nil { ... }
//	xs, err := g.Sample(10_000) // 10k draws, reproducible
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; do not share one Sampler across
//     goroutines. Create per-worker samplers with seeds from DeriveSeed.
package randvec
