// Package randvec - functional options for sampler construction.
//
// Design:
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - Options fields are unexported; public constructors consume ...Option.
//   - Option constructors panic ONLY on programmer error (nil RNG).
package randvec

import "math/rand"

// panicNilRand is the stable message for the WithRand(nil) programmer error.
const panicNilRand = "randvec: WithRand(nil)"

// Option mutates internal sampler options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	seed int64      // used when rng == nil; 0 ⇒ defaultSeed policy
	rng  *rand.Rand // explicit generator; wins over seed when set
}

// WithSeed selects a deterministic seed for the sampler's private RNG.
// Policy: seed==0 ⇒ the fixed default seed (stable reproducible runs).
//
// Prefer WithSeed over WithRand for reproducible experiments.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithRand provides an explicit RNG for the sampler.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}
	return func(o *options) { o.rng = r }
}

// gatherOptions applies user setters over defaults and resolves the final RNG.
// Last-writer-wins semantics; an explicit RNG overrides any seed.
//
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) *rand.Rand {
	o := options{seed: 0, rng: nil}
	for _, set := range user {
		set(&o)
	}
	if o.rng != nil {
		return o.rng
	}
	return fromSeed(o.seed)
}
