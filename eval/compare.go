package eval

import (
	"fmt"
	"sort"
)

// MetricComparison describes how one metric moved between a baseline and a
// candidate policy.
type MetricComparison struct {
	Baseline       float64
	Policy         float64
	AbsoluteChange float64
	PercentChange  float64
	IsImprovement  bool
}

// percentChange computes the relative change of value versus base as a
// percentage. Zero baselines follow a fixed edge rule instead of dividing:
// 0 -> 0 is a 0% change, 0 -> nonzero is reported as 100%.
func percentChange(base, value float64) float64 {
	if base != 0 {
		return (value - base) / base * 100
	}
	if value == 0 {
		return 0
	}
	return 100
}

// ComparePolicies compares a candidate policy's metrics against a baseline,
// metric by metric. IsImprovement is keyed to each metric's fixed direction;
// an unchanged metric is never an improvement.
func ComparePolicies(baseline, policy MetricSet) map[MetricKey]MetricComparison {
	comparison := make(map[MetricKey]MetricComparison, len(AllMetricKeys))

	for _, key := range AllMetricKeys {
		base, _ := baseline.Value(key)
		val, _ := policy.Value(key)
		change := val - base

		improved := false
		switch MetricDirection(key) {
		case Minimize:
			improved = change < 0
		case Maximize:
			improved = change > 0
		}

		comparison[key] = MetricComparison{
			Baseline:       base,
			Policy:         val,
			AbsoluteChange: change,
			PercentChange:  percentChange(base, val),
			IsImprovement:  improved,
		}
	}

	return comparison
}

// singleMetricObjectives maps the short objective names accepted by
// BestPolicy onto metric keys.
var singleMetricObjectives = map[string]MetricKey{
	"delay":      MetricAverageDelay,
	"emissions":  MetricCO2Emissions,
	"throughput": MetricThroughput,
	"speed":      MetricAverageSpeed,
}

// BestPolicy selects the best-performing policy for the given objective.
// "composite" ranks by CompositeScore descending; the single-metric
// objectives (delay, emissions, throughput, speed) rank by the raw metric
// with its fixed direction. An empty input returns "" with no error (the
// defined no-policies outcome); an unknown objective is malformed input and
// returns a descriptive error. Ties break toward the lexicographically
// smaller policy name so selection is deterministic.
func BestPolicy(metricsByPolicy map[string]MetricSet, objective string) (string, error) {
	if len(metricsByPolicy) == 0 {
		return "", nil
	}

	names := make([]string, 0, len(metricsByPolicy))
	for name := range metricsByPolicy {
		names = append(names, name)
	}
	sort.Strings(names)

	if objective == "composite" {
		best, bestScore := "", -1.0
		for _, name := range names {
			if score := CompositeScore(metricsByPolicy[name], nil); score > bestScore {
				best, bestScore = name, score
			}
		}
		return best, nil
	}

	key, ok := singleMetricObjectives[objective]
	if !ok {
		return "", fmt.Errorf("unknown objective %q: want composite, delay, emissions, throughput or speed", objective)
	}

	best := ""
	bestValue := 0.0
	for i, name := range names {
		value, _ := metricsByPolicy[name].Value(key)
		if i == 0 {
			best, bestValue = name, value
			continue
		}
		if MetricDirection(key) == Minimize && value < bestValue ||
			MetricDirection(key) == Maximize && value > bestValue {
			best, bestValue = name, value
		}
	}
	return best, nil
}
