// SPDX-License-Identifier: MIT

// Package kldual - batch solving over a bounded worker pool.
//
// Purpose:
//   - Run many independent worst-case solves (candidate decisions, η
//     frontiers, stress grids) concurrently. Solves share no mutable state,
//     so the batch is embarrassingly parallel.
//   - Keep results deterministic regardless of scheduling: worker i solves
//     specs[i] with a seed derived from (base seed, i), so the outcome is
//     identical for any worker count, including 1.
package kldual

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/robust/randvec"
)

const opSolveBatch = "SolveBatch"

// SolveBatch solves every spec in specs and returns results indexed 1:1
// with the input. The options apply to every solve; Monte Carlo seeds are
// per-index substreams of WithSeed's base via randvec.DeriveSeed.
//
// Concurrency: at most WithWorkers(n) solves run at once (default
// min(GOMAXPROCS, DefaultBatchWorkers)). The first failing solve cancels
// the group; workers observe cancellation between solves, not inside one
// (a single solve is CPU-bound and brief). A nil result slice is returned
// on any error.
//
// WithSampler is rejected with ErrBatchSampler: samplers are not
// goroutine-safe, and sharing one across workers would race. Per-worker
// Gaussian samplers are constructed internally instead.
//
// An empty specs slice is a no-op returning (nil, nil).
//
// Complexity: Σ cost(Solve) work, wall time divided by the pool size.
func SolveBatch(ctx context.Context, specs []ModelSpec, opts ...Option) ([]SolverResult, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	o := gatherOptions(opts...)
	if o.sampler != nil {
		return nil, fmt.Errorf("%s: %w", opSolveBatch, ErrBatchSampler)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers(o.workers))

	out := make([]SolverResult, len(specs))
	for i := range specs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			// Worker-private options: same configuration, substream seed.
			wo := o
			wo.seed = randvec.DeriveSeed(o.seed, uint64(i))

			res, err := solveWith(specs[i], wo)
			if err != nil {
				return fmt.Errorf("%s: spec %d: %w", opSolveBatch, i, err)
			}
			out[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// batchWorkers resolves the effective pool size: an explicit WithWorkers
// wins, otherwise min(GOMAXPROCS, DefaultBatchWorkers), floored at 1.
func batchWorkers(requested int) int {
	if requested > 0 {
		return requested
	}

	w := runtime.GOMAXPROCS(0)
	if w > DefaultBatchWorkers {
		w = DefaultBatchWorkers
	}
	if w < 1 {
		w = 1
	}

	return w
}
