package distance

import (
	"math"
	"testing"

	"github.com/hupe1980/hermes/featurevector"
	"github.com/hupe1980/hermes/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(values ...float64) *featurevector.Vector {
	return featurevector.New(0, values)
}

func allFunctions() []Function {
	return []Function{NewEuclidean(), NewManhattan(), NewChebyshev(), NewCanberra()}
}

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *featurevector.Vector
		expected float64
	}{
		{"Pythagoras", vec(0, 0), vec(3, 4), 5},
		{"Identical", vec(1, 2, 3), vec(1, 2, 3), 0},
		{"Mixed", vec(1, -1), vec(-1, 1), math.Sqrt(8)},
		{"Empty", vec(), vec(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewEuclidean().Distance(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestEuclideanSumThenSqrt(t *testing.T) {
	rng := testutil.NewRNG(42)
	d := NewEuclidean()

	for i := range 2000 {
		a := rng.FeatureVector(uint32(i), 5)
		b := rng.FeatureVector(uint32(i), 5)

		var sum float64
		for j := range a.Len() {
			diff := a.At(j) - b.At(j)
			sum += diff * diff
		}

		got, err := d.Distance(a, b)
		require.NoError(t, err)
		require.Equal(t, math.Sqrt(sum), got, "pair %d", i)
	}

	t.Run("Overflow", func(t *testing.T) {
		got, err := d.Distance(vec(1e200, 1e200), vec(0, 0))
		require.NoError(t, err)
		assert.True(t, math.IsInf(got, 1), "got %v", got)
	})
}

func TestManhattan(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *featurevector.Vector
		expected float64
	}{
		{"Simple", vec(1, 2, 3), vec(4, 2, 0), 6},
		{"Negative", vec(-1, -2), vec(1, 2), 6},
		{"Empty", vec(), vec(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewManhattan().Distance(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestChebyshev(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *featurevector.Vector
		expected float64
	}{
		{"Simple", vec(1, 5, 2), vec(3, 1, 2), 4},
		{"Zero", vec(7, 7), vec(7, 7), 0},
		{"Empty", vec(), vec(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewChebyshev().Distance(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestCanberra(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *featurevector.Vector
		expected float64
	}{
		{"AllZero", vec(0, 0), vec(0, 0), 0},
		{"Simple", vec(1, 2), vec(3, 2), 0.5},
		{"OneSideZero", vec(0, 4), vec(2, 0), 2},
		{"Signed", vec(-1), vec(1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCanberra().Distance(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestProperties(t *testing.T) {
	rng := testutil.NewRNG(7)

	for _, d := range allFunctions() {
		t.Run(d.Metric().String(), func(t *testing.T) {
			for i := 0; i < 50; i++ {
				dim := 1 + rng.Intn(32)
				a := rng.FeatureVector(uint32(i), dim)
				b := rng.FeatureVector(uint32(i+1), dim)

				ab, err := d.Distance(a, b)
				require.NoError(t, err)
				ba, err := d.Distance(b, a)
				require.NoError(t, err)
				assert.Equal(t, ab, ba, "symmetry")
				assert.GreaterOrEqual(t, ab, 0.0)

				aa, err := d.Distance(a, a)
				require.NoError(t, err)
				assert.Equal(t, 0.0, aa, "identity")
			}
			assert.Equal(t, uint64(150), d.Count())
		})
	}
}

func TestLengthMismatch(t *testing.T) {
	for _, d := range allFunctions() {
		t.Run(d.Metric().String(), func(t *testing.T) {
			_, err := d.Distance(vec(1, 2), vec(1, 2))
			require.NoError(t, err)

			got, err := d.Distance(vec(1, 2), vec(1, 2, 3))
			assert.ErrorIs(t, err, ErrLengthMismatch)
			assert.Zero(t, got)
			assert.Equal(t, uint64(1), d.Count(), "failed call must not count")

			var dm *ErrDimensionMismatch
			require.ErrorAs(t, err, &dm)
			assert.Equal(t, 2, dm.Expected)
			assert.Equal(t, 3, dm.Actual)
		})
	}
}

func TestCounter(t *testing.T) {
	a, b := NewEuclidean(), NewEuclidean()
	for i := 0; i < 3; i++ {
		_, err := a.Distance(vec(1), vec(2))
		require.NoError(t, err)
	}
	assert.Equal(t, uint64(3), a.Count())
	assert.Equal(t, uint64(0), b.Count(), "counters are per instance")

	a.ResetCount()
	assert.Equal(t, uint64(0), a.Count())

	var zero Manhattan
	_, err := zero.Distance(vec(1), vec(2))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), zero.Count())
}

func TestMetric(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "Euclidean", MetricEuclidean.String())
		assert.Equal(t, "CityBlock", MetricCityBlock.String())
		assert.Equal(t, "Chebyshev", MetricChebyshev.String())
		assert.Equal(t, "Jeffrey", MetricJeffrey.String())
		assert.Equal(t, "Canberra", MetricCanberra.String())
		assert.Equal(t, "BrayCurtis", MetricBrayCurtis.String())
		assert.Equal(t, "ChiSquare", MetricChiSquare.String())
		assert.Equal(t, "Unknown(99)", Metric(99).String())
	})

	t.Run("New", func(t *testing.T) {
		for _, m := range []Metric{MetricEuclidean, MetricCityBlock, MetricChebyshev, MetricCanberra} {
			f, err := New(m)
			require.NoError(t, err)
			assert.Equal(t, m, f.Metric())
			assert.True(t, m.Implemented())
		}

		for _, m := range []Metric{0, MetricJeffrey, MetricBrayCurtis, MetricChiSquare, 99} {
			_, err := New(m)
			assert.ErrorIs(t, err, ErrUnsupportedMetric, "metric %v", m)
			assert.False(t, m.Implemented())

			var im *ErrInvalidMetric
			require.ErrorAs(t, err, &im)
			assert.Equal(t, m, im.Metric)
		}
	})

	t.Run("Parse", func(t *testing.T) {
		cases := map[string]Metric{
			"euclidean": MetricEuclidean,
			"Manhattan": MetricCityBlock,
			"cityblock": MetricCityBlock,
			"LINF":      MetricChebyshev,
			"canberra":  MetricCanberra,
			"chisquare": MetricChiSquare,
		}
		for name, want := range cases {
			got, err := ParseMetric(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}

		_, err := ParseMetric("cosine")
		assert.Error(t, err)
	})
}
