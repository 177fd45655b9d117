package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/hermes/distance"
	"github.com/hupe1980/hermes/evaluator"
)

// implementedMetrics lists the metric codes with an implementation, in code order.
var implementedMetrics = []distance.Metric{
	distance.MetricEuclidean,
	distance.MetricCityBlock,
	distance.MetricChebyshev,
	distance.MetricCanberra,
}

func parseMetrics(name string) ([]distance.Metric, error) {
	if strings.EqualFold(name, "all") {
		return implementedMetrics, nil
	}
	m, err := distance.ParseMetric(name)
	if err != nil {
		return nil, err
	}
	return []distance.Metric{m}, nil
}

func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}

func newDistanceCommand(a *app) *cobra.Command {
	var (
		metric string
		format string
	)

	cmd := &cobra.Command{
		Use:   "distance [flags] A B",
		Short: "Compute the distance between two vectors",
		Long: `Compute the distance between two vectors.

Vectors are comma separated number lists, or tokens produced by
'hermes encode' when --format is base64 or hex. Use --metric all to print
every implemented metric.`,
		Example: `  hermes distance 0,0 3,4
  hermes distance --metric canberra 1,2 2,4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics, err := parseMetrics(metric)
			if err != nil {
				return err
			}
			x, err := parseVector(args[0], format)
			if err != nil {
				return fmt.Errorf("first vector: %w", err)
			}
			y, err := parseVector(args[1], format)
			if err != nil {
				return fmt.Errorf("second vector: %w", err)
			}

			ev := evaluator.New(metrics[0], evaluator.WithLogger(a.logger))
			out := cmd.OutOrStdout()
			for _, m := range metrics {
				ev.SetType(m)
				d, err := ev.Evaluate(x, y)
				if err != nil {
					return err
				}
				if len(metrics) == 1 {
					fmt.Fprintln(out, formatDistance(d))
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", m, formatDistance(d))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&metric, "metric", "m", "euclidean", "distance metric (euclidean|manhattan|chebyshev|canberra|all)")
	cmd.Flags().StringVarP(&format, "format", "f", formatList, "argument format (list|base64|hex)")
	return cmd
}
