package evaluator

import (
	"context"
	"time"

	"github.com/hupe1980/hermes/distance"
	"github.com/hupe1980/hermes/featurevector"
)

// Evaluator computes distances with the metric selected by its type code.
// It is not safe for concurrent use.
type Evaluator struct {
	metric distance.Metric
	count  uint64
	opts   options

	functions map[distance.Metric]distance.Function
	last      distance.Function
}

// New creates an Evaluator dispatching to m.
// Unsupported codes are accepted here and reported by Evaluate.
func New(m distance.Metric, optFns ...Option) *Evaluator {
	return &Evaluator{
		metric:    m,
		opts:      applyOptions(optFns),
		functions: make(map[distance.Metric]distance.Function),
	}
}

// Evaluate returns the distance between a and b under the configured metric.
//
// The evaluator counter advances on every call, including failed ones. Errors
// are ErrUnsupportedMetric for reserved codes and ErrLengthMismatch for vectors
// of different length.
func (e *Evaluator) Evaluate(a, b *featurevector.Vector) (float64, error) {
	e.count++

	start := time.Now()
	d, err := e.evaluate(a, b)
	e.opts.metrics.RecordEvaluate(e.metric, time.Since(start), err)
	e.opts.logger.LogEvaluate(context.Background(), e.metric, a.Len(), err)
	if err != nil {
		return 0, err
	}
	return d, nil
}

func (e *Evaluator) evaluate(a, b *featurevector.Vector) (float64, error) {
	f, err := e.function()
	if err != nil {
		return 0, err
	}
	e.last = f
	return f.Distance(a, b)
}

func (e *Evaluator) function() (distance.Function, error) {
	if e.opts.policy == FreshPerCall {
		return distance.New(e.metric)
	}
	if f, ok := e.functions[e.metric]; ok {
		return f, nil
	}
	f, err := distance.New(e.metric)
	if err != nil {
		return nil, err
	}
	e.functions[e.metric] = f
	return f, nil
}

// SetType selects the metric for subsequent Evaluate calls.
func (e *Evaluator) SetType(m distance.Metric) {
	e.metric = m
}

// Type returns the configured metric code.
func (e *Evaluator) Type() distance.Metric {
	return e.metric
}

// Policy returns the instance policy.
func (e *Evaluator) Policy() InstancePolicy {
	return e.opts.policy
}

// Count returns the number of Evaluate calls since creation or the last reset.
func (e *Evaluator) Count() uint64 {
	return e.count
}

// ResetCount sets the evaluator counter back to 0. Metric counters are not
// touched; see ResetMetricCounts.
func (e *Evaluator) ResetCount() {
	e.count = 0
}

// ResetMetricCounts resets the counters of all retained distance functions.
func (e *Evaluator) ResetMetricCounts() {
	for _, f := range e.functions {
		f.ResetCount()
	}
	if e.last != nil {
		e.last.ResetCount()
	}
}

// Metric returns the distance function the next Evaluate call would use.
// Under FreshPerCall every call returns a new, unused instance.
func (e *Evaluator) Metric() (distance.Function, error) {
	return e.function()
}

// LastMetric returns the distance function used by the most recent Evaluate
// call that reached a metric, or nil.
func (e *Evaluator) LastMetric() distance.Function {
	return e.last
}
