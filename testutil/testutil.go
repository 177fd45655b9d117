package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/hermes/featurevector"
)

// SearchResult is one ranked candidate.
type SearchResult struct {
	ID       uint32
	Distance float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	_, _ = r.rand.Read(b)
	return b
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// FeatureVector returns a vector with the given id and dim values in [-1, 1).
func (r *RNG) FeatureVector(id uint32, dim int) *featurevector.Vector {
	data := make([]float64, dim)
	r.FillUniformRange(data, -1, 1)
	return featurevector.New(id, data)
}

// FeatureVectors returns num vectors of the given dimension with ids 0..num-1.
func (r *RNG) FeatureVectors(num, dim int) []*featurevector.Vector {
	out := make([]*featurevector.Vector, num)
	for i := range out {
		out[i] = r.FeatureVector(uint32(i), dim)
	}
	return out
}

// Scorer is the subset of distance.Function used for ground truth ranking.
type Scorer interface {
	Distance(a, b *featurevector.Vector) (float64, error)
}

// ExactTopK ranks candidates by distance to query and returns the k closest.
// Ties are broken by ascending id.
func ExactTopK(query *featurevector.Vector, candidates []*featurevector.Vector, k int, d Scorer) ([]SearchResult, error) {
	results := make([]SearchResult, 0, len(candidates))
	for _, c := range candidates {
		dist, err := d.Distance(query, c)
		if err != nil {
			return nil, err
		}
		results = append(results, SearchResult{ID: c.ID(), Distance: dist})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance == results[j].Distance {
			return results[i].ID < results[j].ID
		}
		return results[i].Distance < results[j].Distance
	})

	if k < len(results) {
		results = results[:k]
	}
	return results, nil
}
