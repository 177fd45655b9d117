// Package evaluator dispatches distance computations by metric code.
//
// An Evaluator holds a distance.Metric selector and its own call counter. The
// counter advances on every Evaluate, independently of the counter of the
// distance.Function that does the work, so callers can observe both the
// dispatcher-level and the metric-level call count.
//
// By default the Evaluator keeps one long-lived Function per metric code, so
// metric counters accumulate across calls. WithInstancePolicy(FreshPerCall)
// builds a new Function for every call instead; LastMetric then exposes that
// short-lived instance.
//
//	ev := evaluator.New(distance.MetricEuclidean)
//	d, err := ev.Evaluate(a, b)
//	ev.SetType(distance.MetricCanberra) // applies to the next call
package evaluator
