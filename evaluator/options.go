package evaluator

import (
	"runtime"

	"github.com/hupe1980/hermes"
)

// InstancePolicy controls how an Evaluator obtains distance functions.
type InstancePolicy int

const (
	// PersistentMetrics keeps one Function per metric code for the lifetime of
	// the Evaluator.
	PersistentMetrics InstancePolicy = iota
	// FreshPerCall builds a new Function for every Evaluate call.
	FreshPerCall
)

func (p InstancePolicy) String() string {
	switch p {
	case PersistentMetrics:
		return "persistent"
	case FreshPerCall:
		return "fresh"
	default:
		return "unknown"
	}
}

type options struct {
	logger      *hermes.Logger
	metrics     hermes.MetricsCollector
	policy      InstancePolicy
	concurrency int
}

// Option configures an Evaluator or a Batch call.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:      hermes.NoopLogger(),
		metrics:     hermes.NoopMetricsCollector{},
		policy:      PersistentMetrics,
		concurrency: runtime.GOMAXPROCS(0),
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *hermes.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = hermes.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, a no-op collector is used.
func WithMetricsCollector(c hermes.MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = hermes.NoopMetricsCollector{}
		}
		o.metrics = c
	}
}

// WithInstancePolicy selects how distance functions are instantiated.
func WithInstancePolicy(p InstancePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithConcurrency bounds the number of workers used by Batch.
// Values <= 0 fall back to GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.concurrency = n
	}
}
