// Package distance provides the interchangeable dissimilarity metrics used to
// compare feature vectors.
//
// # Supported Metrics
//
//   - MetricEuclidean: sqrt(sum((a[i]-b[i])^2))
//   - MetricCityBlock: sum(|a[i]-b[i]|), also known as Manhattan
//   - MetricChebyshev: max(|a[i]-b[i]|)
//   - MetricCanberra:  sum(|a[i]-b[i]| / (|a[i]|+|b[i]|)), a zero denominator counts as 1
//
// MetricJeffrey, MetricBrayCurtis and MetricChiSquare are reserved codes.
// Asking New for them yields ErrUnsupportedMetric.
//
// Every Function counts its successful evaluations. Counters are per instance
// and unsynchronized; share an instance between goroutines only with external
// locking.
//
// # Usage
//
//	d, _ := distance.New(distance.MetricEuclidean)
//	dist, err := d.Distance(a, b)
//	calls := d.Count()
package distance
