package eval

import "math"

// Assumed operating ranges used to normalize raw metrics onto a 0-100
// sub-score. Values outside a range saturate at the range edge: this is a
// deliberate ceiling/floor so extreme outliers cannot distort the composite,
// not a bug. The ranges are fixed contract values shared with report text.
const (
	DelayRangeMax      = 300.0  // seconds
	ThroughputRangeMax = 2000.0 // vehicles/hour
	EmissionsRangeMax  = 1000.0 // kilograms
	SpeedRangeMax      = 60.0   // km/h
)

// DefaultWeights returns the equal weighting over the four scored metrics.
// Travel time is tracked but not part of the composite.
func DefaultWeights() map[MetricKey]float64 {
	return map[MetricKey]float64{
		MetricAverageDelay: 0.25,
		MetricThroughput:   0.25,
		MetricCO2Emissions: 0.25,
		MetricAverageSpeed: 0.25,
	}
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// subScore normalizes one metric to [0, 100] with direction respected:
// lower-is-better metrics invert so that a higher sub-score is always better.
func subScore(key MetricKey, value float64) float64 {
	switch key {
	case MetricAverageDelay:
		delay := clamp(value, 0, DelayRangeMax)
		return (DelayRangeMax - delay) / DelayRangeMax * 100
	case MetricThroughput:
		throughput := clamp(value, 0, ThroughputRangeMax)
		return throughput / ThroughputRangeMax * 100
	case MetricCO2Emissions:
		emissions := clamp(value, 0, EmissionsRangeMax)
		return (EmissionsRangeMax - emissions) / EmissionsRangeMax * 100
	case MetricAverageSpeed:
		speed := clamp(value, 0, SpeedRangeMax)
		return speed / SpeedRangeMax * 100
	default:
		return 0
	}
}

// CompositeScore aggregates a MetricSet into a single bounded [0, 100]
// score, higher is better. A nil weights map selects DefaultWeights. Weights
// for metrics without a normalization range contribute nothing. The result
// is rounded to 2 decimals.
func CompositeScore(m MetricSet, weights map[MetricKey]float64) float64 {
	if weights == nil {
		weights = DefaultWeights()
	}

	score := 0.0
	for key, weight := range weights {
		value, ok := m.Value(key)
		if !ok {
			continue
		}
		score += subScore(key, value) * weight
	}

	return math.Round(score*100) / 100
}
