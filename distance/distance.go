package distance

import (
	"fmt"
	"strings"

	"github.com/hupe1980/hermes/featurevector"
)

// Metric is the numeric type code selecting a distance function.
type Metric uint16

const (
	MetricEuclidean  Metric = 1
	MetricCityBlock  Metric = 2
	MetricChebyshev  Metric = 3
	MetricJeffrey    Metric = 4
	MetricCanberra   Metric = 5
	MetricBrayCurtis Metric = 6
	MetricChiSquare  Metric = 7
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricCityBlock:
		return "CityBlock"
	case MetricChebyshev:
		return "Chebyshev"
	case MetricJeffrey:
		return "Jeffrey"
	case MetricCanberra:
		return "Canberra"
	case MetricBrayCurtis:
		return "BrayCurtis"
	case MetricChiSquare:
		return "ChiSquare"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Implemented reports whether New can build a Function for m.
func (m Metric) Implemented() bool {
	switch m {
	case MetricEuclidean, MetricCityBlock, MetricChebyshev, MetricCanberra:
		return true
	default:
		return false
	}
}

// ParseMetric maps a case-insensitive name to its Metric code.
// "manhattan" and "l1" are accepted for CityBlock, "l2" for Euclidean and
// "linf" for Chebyshev.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "euclidean", "l2":
		return MetricEuclidean, nil
	case "cityblock", "manhattan", "l1":
		return MetricCityBlock, nil
	case "chebyshev", "linf":
		return MetricChebyshev, nil
	case "jeffrey":
		return MetricJeffrey, nil
	case "canberra":
		return MetricCanberra, nil
	case "braycurtis":
		return MetricBrayCurtis, nil
	case "chisquare":
		return MetricChiSquare, nil
	default:
		return 0, fmt.Errorf("unknown metric name %q", name)
	}
}

// Function computes the dissimilarity of two equal-length feature vectors.
type Function interface {
	// Distance fails with ErrLengthMismatch when the lengths differ. Only
	// successful calls advance the counter.
	Distance(a, b *featurevector.Vector) (float64, error)
	// Count returns the number of successful Distance calls.
	Count() uint64
	// ResetCount sets the counter back to 0.
	ResetCount()
	// Metric returns the type code of the function.
	Metric() Metric
}

// New returns a fresh Function for the given metric.
func New(m Metric) (Function, error) {
	switch m {
	case MetricEuclidean:
		return NewEuclidean(), nil
	case MetricCityBlock:
		return NewManhattan(), nil
	case MetricChebyshev:
		return NewChebyshev(), nil
	case MetricCanberra:
		return NewCanberra(), nil
	default:
		return nil, &ErrInvalidMetric{Metric: m}
	}
}

type counter struct {
	n uint64
}

// Count returns the number of successful Distance calls.
func (c *counter) Count() uint64 { return c.n }

// ResetCount sets the counter back to 0.
func (c *counter) ResetCount() { c.n = 0 }

func (c *counter) inc() { c.n++ }

func checkLength(a, b *featurevector.Vector) error {
	if a.Len() != b.Len() {
		return &ErrDimensionMismatch{Expected: a.Len(), Actual: b.Len()}
	}
	return nil
}
