package evaluator

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/hermes"
	"github.com/hupe1980/hermes/distance"
	"github.com/hupe1980/hermes/featurevector"
	"github.com/hupe1980/hermes/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchMatchesSequential(t *testing.T) {
	rng := testutil.NewRNG(42)
	query := rng.FeatureVector(0, 32)
	candidates := rng.FeatureVectors(1000, 32)

	for _, m := range []distance.Metric{distance.MetricEuclidean, distance.MetricCityBlock, distance.MetricChebyshev, distance.MetricCanberra} {
		t.Run(m.String(), func(t *testing.T) {
			got, err := Batch(context.Background(), m, query, candidates, WithConcurrency(7))
			require.NoError(t, err)
			require.Len(t, got, len(candidates))

			ev := New(m)
			for i, c := range candidates {
				want, err := ev.Evaluate(query, c)
				require.NoError(t, err)
				assert.InDelta(t, want, got[i], 1e-12)
			}
		})
	}
}

func TestBatchEmpty(t *testing.T) {
	got, err := Batch(context.Background(), distance.MetricEuclidean, vec(1), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBatchUnsupportedMetric(t *testing.T) {
	_, err := Batch(context.Background(), distance.MetricJeffrey, vec(1), []*featurevector.Vector{vec(2)})
	assert.True(t, errors.Is(err, distance.ErrUnsupportedMetric))
}

func TestBatchLengthMismatch(t *testing.T) {
	candidates := []*featurevector.Vector{vec(1, 2), vec(1, 2), vec(1)}
	mc := &hermes.BasicMetricsCollector{}

	_, err := Batch(context.Background(), distance.MetricEuclidean, vec(0, 0), candidates,
		WithConcurrency(2), WithMetricsCollector(mc))
	require.ErrorIs(t, err, distance.ErrLengthMismatch)

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.BatchCount)
	assert.Equal(t, int64(3), stats.BatchItems)
	assert.Equal(t, int64(3), stats.BatchFailed)
}

func TestBatchCanceled(t *testing.T) {
	rng := testutil.NewRNG(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Batch(ctx, distance.MetricEuclidean, rng.FeatureVector(0, 4), rng.FeatureVectors(10, 4))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchRankingMatchesExactTopK(t *testing.T) {
	rng := testutil.NewRNG(3)
	query := rng.FeatureVector(1000, 8)
	candidates := rng.FeatureVectors(200, 8)

	dists, err := Batch(context.Background(), distance.MetricCityBlock, query, candidates)
	require.NoError(t, err)

	want, err := testutil.ExactTopK(query, candidates, 5, distance.NewManhattan())
	require.NoError(t, err)
	require.Len(t, want, 5)

	for _, r := range want {
		assert.InDelta(t, r.Distance, dists[r.ID], 1e-12)
	}
	// No candidate outside the top 5 is strictly closer than the 5th result
	worst := want[len(want)-1].Distance
	inTop := make(map[uint32]bool)
	for _, r := range want {
		inTop[r.ID] = true
	}
	for i, d := range dists {
		if !inTop[candidates[i].ID()] {
			assert.GreaterOrEqual(t, d, worst)
		}
	}
}
