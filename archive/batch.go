package archive

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hupe1980/hermes/featurevector"
	"golang.org/x/sync/errgroup"
)

// SaveAll stores every vector with bounded concurrency.
// Duplicate ids are rejected with featurevector.ErrDuplicateID before anything
// is written. The first error cancels outstanding saves; vectors already
// written stay in the store.
func (a *Archive) SaveAll(ctx context.Context, vectors []*featurevector.Vector) error {
	seen := make(map[uint32]struct{}, len(vectors))
	for _, v := range vectors {
		if v == nil {
			return ErrNilVector
		}
		if _, dup := seen[v.ID()]; dup {
			return fmt.Errorf("%w: %d", featurevector.ErrDuplicateID, v.ID())
		}
		seen[v.ID()] = struct{}{}
	}

	start := time.Now()
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.concurrency)
	for _, v := range vectors {
		g.Go(func() error {
			size := int64(v.SerializedSize())
			if err := a.opts.controller.AcquireMemory(gctx, size); err != nil {
				failed.Add(1)
				return err
			}
			defer a.opts.controller.ReleaseMemory(size)

			if err := a.Save(gctx, v); err != nil {
				failed.Add(1)
				return err
			}
			return nil
		})
	}
	err := g.Wait()

	a.opts.metrics.RecordBatch("save", len(vectors), int(failed.Load()), time.Since(start))
	a.opts.logger.LogBatch(ctx, "save", len(vectors), int(failed.Load()))
	return err
}

// LoadAll reads the vectors for ids, returned in the order of ids.
func (a *Archive) LoadAll(ctx context.Context, ids []uint32) ([]*featurevector.Vector, error) {
	start := time.Now()
	var failed atomic.Int64
	out := make([]*featurevector.Vector, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			v, err := a.Load(gctx, id)
			if err != nil {
				failed.Add(1)
				return err
			}
			out[i] = v
			return nil
		})
	}
	err := g.Wait()

	a.opts.metrics.RecordBatch("load", len(ids), int(failed.Load()), time.Since(start))
	a.opts.logger.LogBatch(ctx, "load", len(ids), int(failed.Load()))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadList reads every indexed vector into a featurevector.List ordered by id.
func (a *Archive) LoadList(ctx context.Context) (*featurevector.List, error) {
	vectors, err := a.LoadAll(ctx, a.IDs().ToArray())
	if err != nil {
		return nil, err
	}
	return featurevector.NewList(vectors...)
}
