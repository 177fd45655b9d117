// Package hermes is a small toolkit for similarity search building blocks.
//
// It is meant to be embedded in metric access methods (M-trees, slim-trees,
// pivot tables) that need a uniform way to hold identified vectors and to
// score their dissimilarity without knowing which metric is in use.
//
// # Packages
//
//   - featurevector: the identified vector container and its byte layout
//   - codec: base64 (vector alphabet), hex and block compression
//   - distance: Euclidean, CityBlock, Chebyshev and Canberra metrics
//   - evaluator: runtime dispatch by metric code with call statistics
//   - archive, blobstore: one-blob-per-vector persistence collaborators
//
// This package holds the ambient pieces shared by the others: structured
// logging, the metrics collector interface, and re-exported sentinel errors.
//
// # Quick Start
//
//	a := featurevector.New(1, []float64{0, 0})
//	b := featurevector.New(2, []float64{3, 4})
//
//	ev := evaluator.New(distance.MetricEuclidean)
//	d, _ := ev.Evaluate(a, b) // 5
//
//	tok := a.MarshalBase64()
//
// # Concurrency
//
// Vectors, distance functions and evaluators are single-goroutine objects.
// Give each goroutine its own instances, or use evaluator.Batch which does so
// internally.
package hermes
