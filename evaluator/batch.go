package evaluator

import (
	"context"
	"time"

	"github.com/hupe1980/hermes/distance"
	"github.com/hupe1980/hermes/featurevector"
	"golang.org/x/sync/errgroup"
)

// batchCheckInterval is how many candidates a worker scores between context checks.
const batchCheckInterval = 256

// Batch returns the distance from query to every candidate, in candidate order.
//
// Candidates are split into contiguous ranges, one per worker; every worker
// owns its own distance.Function, so no metric state is shared. The query and
// candidates must not be mutated while Batch runs. The first error cancels the
// remaining work.
func Batch(ctx context.Context, m distance.Metric, query *featurevector.Vector, candidates []*featurevector.Vector, optFns ...Option) ([]float64, error) {
	o := applyOptions(optFns)
	start := time.Now()

	out, err := batch(ctx, m, query, candidates, o.concurrency)

	failed := 0
	if err != nil {
		failed = len(candidates)
	}
	o.metrics.RecordBatch("distance", len(candidates), failed, time.Since(start))
	o.logger.LogBatch(ctx, "distance", len(candidates), failed)

	if err != nil {
		return nil, err
	}
	return out, nil
}

func batch(ctx context.Context, m distance.Metric, query *featurevector.Vector, candidates []*featurevector.Vector, workers int) ([]float64, error) {
	if !m.Implemented() {
		return nil, &distance.ErrInvalidMetric{Metric: m}
	}

	out := make([]float64, len(candidates))
	if len(candidates) == 0 {
		return out, nil
	}

	workers = min(workers, len(candidates))
	chunk := (len(candidates) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(candidates); lo += chunk {
		hi := min(lo+chunk, len(candidates))
		g.Go(func() error {
			f, err := distance.New(m)
			if err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				if (i-lo)%batchCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				d, err := f.Distance(query, candidates[i])
				if err != nil {
					return err
				}
				out[i] = d
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
