package eval

import (
	"github.com/sirupsen/logrus"
)

// MetricKey names one of the fixed performance metrics.
type MetricKey string

const (
	MetricAverageDelay    MetricKey = "average_delay"     // seconds
	MetricThroughput      MetricKey = "throughput"        // vehicles/hour
	MetricCO2Emissions    MetricKey = "co2_emissions"     // kilograms
	MetricAverageSpeed    MetricKey = "average_speed"     // km/h
	MetricTotalTravelTime MetricKey = "total_travel_time" // hours
)

// AllMetricKeys lists every metric in canonical presentation order.
var AllMetricKeys = []MetricKey{
	MetricAverageDelay,
	MetricThroughput,
	MetricCO2Emissions,
	MetricAverageSpeed,
	MetricTotalTravelTime,
}

// Direction states whether lower or higher values of a metric are better.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// MetricDirection returns the fixed optimization direction for a metric.
// Delay, emissions and travel time are minimized; throughput and speed are
// maximized.
func MetricDirection(key MetricKey) Direction {
	switch key {
	case MetricThroughput, MetricAverageSpeed:
		return Maximize
	default:
		return Minimize
	}
}

// Fixed unit-conversion constants. These are contractual, not configurable:
// downstream comparisons assume metrics are always expressed in the same
// units regardless of which simulator produced the batch.
const (
	DefaultDuration  = 3600.0 // seconds, used when a batch carries none
	SecondsPerHour   = 3600.0
	GramsPerKilogram = 1000.0
	MetersPerKm      = 1000.0
	MSToKmh          = 3.6  // m/s -> km/h
	EmissionsKgPerKm = 0.12 // fleet-average CO2 estimate when only distance is known
)

// MetricSet holds the aggregate metrics for one (policy, scenario) run.
// Every metric is always present; 0 is the defined value for "no data".
type MetricSet struct {
	AverageDelay    float64 // seconds
	Throughput      float64 // vehicles/hour
	CO2Emissions    float64 // kilograms
	AverageSpeed    float64 // km/h
	TotalTravelTime float64 // hours
}

// Value returns the metric named by key. The second return is false for an
// unknown key.
func (m MetricSet) Value(key MetricKey) (float64, bool) {
	switch key {
	case MetricAverageDelay:
		return m.AverageDelay, true
	case MetricThroughput:
		return m.Throughput, true
	case MetricCO2Emissions:
		return m.CO2Emissions, true
	case MetricAverageSpeed:
		return m.AverageSpeed, true
	case MetricTotalTravelTime:
		return m.TotalTravelTime, true
	default:
		return 0, false
	}
}

// ComputeMetrics reduces a simulation batch into the fixed MetricSet.
// An empty batch is a defined outcome ("no traffic"), not an error, and
// yields the all-zero MetricSet. Fields the simulator did not populate
// default to 0, except emissions, which fall back to a distance-based
// estimate when distance is available.
func ComputeMetrics(batch SimulationBatch) MetricSet {
	if len(batch.Vehicles) == 0 {
		logrus.Debugf("metrics: empty batch %q, returning zero metrics", batch.RunID)
		return MetricSet{}
	}

	duration := batch.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}

	var m MetricSet

	if batch.Fields.Delay {
		sum := 0.0
		for _, v := range batch.Vehicles {
			sum += v.Delay
		}
		m.AverageDelay = sum / float64(len(batch.Vehicles))
	}

	completed := 0
	for _, v := range batch.Vehicles {
		if v.Completed {
			completed++
		}
	}
	m.Throughput = float64(completed) / duration * SecondsPerHour

	switch {
	case batch.Fields.Emissions:
		sum := 0.0
		for _, v := range batch.Vehicles {
			sum += v.Emissions
		}
		m.CO2Emissions = sum / GramsPerKilogram
	case batch.Fields.Distance:
		sum := 0.0
		for _, v := range batch.Vehicles {
			sum += v.Distance
		}
		m.CO2Emissions = sum / MetersPerKm * EmissionsKgPerKm
	}

	if batch.Fields.Speed {
		sum := 0.0
		for _, v := range batch.Vehicles {
			sum += v.Speed
		}
		m.AverageSpeed = sum / float64(len(batch.Vehicles)) * MSToKmh
	}

	if batch.Fields.TravelTime {
		sum := 0.0
		for _, v := range batch.Vehicles {
			sum += v.TravelTime
		}
		m.TotalTravelTime = sum / SecondsPerHour
	}

	return m
}
