package distance

import (
	"math"

	"github.com/hupe1980/hermes/featurevector"
	"gonum.org/v1/gonum/floats"
)

// Euclidean is the L2 distance sqrt(sum((a-b)^2)).
//
// The squares are summed without rescaling, so very large differences
// overflow to +Inf.
type Euclidean struct{ counter }

// NewEuclidean returns a Euclidean distance with a zero counter.
func NewEuclidean() *Euclidean { return &Euclidean{} }

// Distance implements Function.
func (d *Euclidean) Distance(a, b *featurevector.Vector) (float64, error) {
	if err := checkLength(a, b); err != nil {
		return 0, err
	}
	bv := b.Values()
	var sum float64
	for i, ai := range a.Values() {
		diff := ai - bv[i]
		sum += diff * diff
	}
	d.inc()
	return math.Sqrt(sum), nil
}

// Metric implements Function.
func (*Euclidean) Metric() Metric { return MetricEuclidean }

// Manhattan is the L1 (city block) distance.
type Manhattan struct{ counter }

// NewManhattan returns a Manhattan distance with a zero counter.
func NewManhattan() *Manhattan { return &Manhattan{} }

// Distance implements Function.
func (d *Manhattan) Distance(a, b *featurevector.Vector) (float64, error) {
	if err := checkLength(a, b); err != nil {
		return 0, err
	}
	dist := floats.Distance(a.Values(), b.Values(), 1)
	d.inc()
	return dist, nil
}

// Metric implements Function.
func (*Manhattan) Metric() Metric { return MetricCityBlock }

// Chebyshev is the L-infinity distance.
type Chebyshev struct{ counter }

// NewChebyshev returns a Chebyshev distance with a zero counter.
func NewChebyshev() *Chebyshev { return &Chebyshev{} }

// Distance implements Function.
func (d *Chebyshev) Distance(a, b *featurevector.Vector) (float64, error) {
	if err := checkLength(a, b); err != nil {
		return 0, err
	}
	// Running maximum starts at 0, so an empty pair scores 0.
	dist := floats.Distance(a.Values(), b.Values(), math.Inf(1))
	d.inc()
	return dist, nil
}

// Metric implements Function.
func (*Chebyshev) Metric() Metric { return MetricChebyshev }

// Canberra is the weighted L1 distance sum(|a-b| / (|a|+|b|)).
type Canberra struct{ counter }

// NewCanberra returns a Canberra distance with a zero counter.
func NewCanberra() *Canberra { return &Canberra{} }

// Distance implements Function.
func (d *Canberra) Distance(a, b *featurevector.Vector) (float64, error) {
	if err := checkLength(a, b); err != nil {
		return 0, err
	}
	bv := b.Values()
	var sum float64
	for i, ai := range a.Values() {
		bi := bv[i]
		den := math.Abs(ai) + math.Abs(bi)
		if den == 0 {
			den = 1
		}
		sum += math.Abs(ai-bi) / den
	}
	d.inc()
	return sum, nil
}

// Metric implements Function.
func (*Canberra) Metric() Metric { return MetricCanberra }

var (
	_ Function = (*Euclidean)(nil)
	_ Function = (*Manhattan)(nil)
	_ Function = (*Chebyshev)(nil)
	_ Function = (*Canberra)(nil)
)
