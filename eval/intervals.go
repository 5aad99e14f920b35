package eval

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ConfidenceInterval is a Student-t interval around a sample mean.
type ConfidenceInterval struct {
	Mean          float64
	Lower         float64
	Upper         float64
	MarginOfError float64 // (Upper - Lower) / 2
}

// ConfidenceIntervals computes a Student-t confidence interval for every
// (policy, metric) pair with at least 2 scenario samples. Pairs with fewer
// samples are omitted, not zero-filled: an absent entry means "not enough
// data", which is a different statement than "the interval is [0, 0]".
// confidence must lie in (0, 1), e.g. 0.95.
func ConfidenceIntervals(table *ResultsTable, confidence float64) (map[string]map[MetricKey]ConfidenceInterval, error) {
	if confidence <= 0 || confidence >= 1 {
		return nil, fmt.Errorf("confidence intervals: confidence must be in (0, 1), got %v", confidence)
	}

	out := make(map[string]map[MetricKey]ConfidenceInterval)
	for _, policy := range table.Policies() {
		for _, key := range AllMetricKeys {
			samples := table.Samples(policy, key)
			if len(samples) < 2 {
				logrus.Debugf("confidence intervals: policy %q metric %q has %d sample(s), omitting", policy, key, len(samples))
				continue
			}

			n := float64(len(samples))
			mean := stat.Mean(samples, nil)
			stdErr := stat.StdDev(samples, nil) / math.Sqrt(n)
			tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 1}
			critical := tDist.Quantile(1 - (1-confidence)/2)

			if out[policy] == nil {
				out[policy] = make(map[MetricKey]ConfidenceInterval)
			}
			lower := mean - critical*stdErr
			upper := mean + critical*stdErr
			out[policy][key] = ConfidenceInterval{
				Mean:          mean,
				Lower:         lower,
				Upper:         upper,
				MarginOfError: (upper - lower) / 2,
			}
		}
	}
	return out, nil
}
