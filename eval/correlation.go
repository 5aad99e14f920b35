package eval

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix holds pairwise Pearson correlations over the metric
// keys that had enough pooled samples. Keys preserves AllMetricKeys order.
type CorrelationMatrix struct {
	Keys   []MetricKey
	values map[MetricKey]map[MetricKey]float64
}

// At returns the correlation between two metrics. The second return is
// false when either metric was excluded from the matrix.
func (c CorrelationMatrix) At(a, b MetricKey) (float64, bool) {
	row, ok := c.values[a]
	if !ok {
		return 0, false
	}
	r, ok := row[b]
	return r, ok
}

// CorrelationPair is one off-diagonal matrix entry, used for report
// filtering.
type CorrelationPair struct {
	A, B MetricKey
	R    float64
}

// StrongPairs returns the upper-triangle pairs with |r| > threshold, in
// Keys order.
func (c CorrelationMatrix) StrongPairs(threshold float64) []CorrelationPair {
	var pairs []CorrelationPair
	for i := 0; i < len(c.Keys); i++ {
		for j := i + 1; j < len(c.Keys); j++ {
			r, ok := c.At(c.Keys[i], c.Keys[j])
			if ok && (r > threshold || r < -threshold) {
				pairs = append(pairs, CorrelationPair{A: c.Keys[i], B: c.Keys[j], R: r})
			}
		}
	}
	return pairs
}

// ComputeCorrelationMatrix flattens every (policy, scenario) MetricSet into
// one pooled sample set, ignoring policy grouping, and computes pairwise
// Pearson correlation across all metric keys. Keys observed in fewer than 2
// pooled samples are excluded rather than reported with a fabricated
// coefficient.
func ComputeCorrelationMatrix(table *ResultsTable) CorrelationMatrix {
	columns := make(map[MetricKey][]float64, len(AllMetricKeys))
	for _, policy := range table.Policies() {
		for _, sc := range table.Scenarios(policy) {
			entry, _ := table.Get(policy, sc)
			for _, key := range AllMetricKeys {
				v, _ := entry.Metrics.Value(key)
				columns[key] = append(columns[key], v)
			}
		}
	}

	matrix := CorrelationMatrix{values: make(map[MetricKey]map[MetricKey]float64)}
	for _, key := range AllMetricKeys {
		if len(columns[key]) < 2 {
			logrus.Debugf("correlation: metric %q has %d pooled sample(s), excluding", key, len(columns[key]))
			continue
		}
		matrix.Keys = append(matrix.Keys, key)
	}

	for _, a := range matrix.Keys {
		matrix.values[a] = make(map[MetricKey]float64, len(matrix.Keys))
		for _, b := range matrix.Keys {
			matrix.values[a][b] = stat.Correlation(columns[a], columns[b], nil)
		}
	}
	return matrix
}
