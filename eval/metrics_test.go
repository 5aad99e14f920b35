package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMetrics_EmptyBatchIsAllZero(t *testing.T) {
	// An empty batch means "no traffic", not "failure".
	got := ComputeMetrics(SimulationBatch{Duration: 3600, Fields: AllFields()})
	assert.Equal(t, MetricSet{}, got)
}

func TestComputeMetrics_UnitConversions(t *testing.T) {
	batch := SimulationBatch{
		Vehicles: []VehicleRecord{
			{Delay: 10, Speed: 10, TravelTime: 1800, Distance: 1000, Emissions: 1500, Completed: true},
			{Delay: 20, Speed: 10, TravelTime: 1800, Distance: 2000, Emissions: 500, Completed: true},
		},
		Duration: 1800,
		Fields:   AllFields(),
	}
	got := ComputeMetrics(batch)

	assert.InDelta(t, 15.0, got.AverageDelay, 1e-9, "mean of per-vehicle delays")
	assert.InDelta(t, 4.0, got.Throughput, 1e-9, "2 completed / 1800s x 3600")
	assert.InDelta(t, 2.0, got.CO2Emissions, 1e-9, "2000g / 1000 = 2kg")
	assert.InDelta(t, 36.0, got.AverageSpeed, 1e-9, "10 m/s x 3.6")
	assert.InDelta(t, 1.0, got.TotalTravelTime, 1e-9, "3600s / 3600 = 1h")
}

func TestComputeMetrics_EmissionsFallbackToDistanceEstimate(t *testing.T) {
	batch := SimulationBatch{
		Vehicles: []VehicleRecord{
			{Distance: 1000, Completed: true},
			{Distance: 2000, Completed: true},
		},
		Duration: 3600,
		Fields:   FieldPresence{Distance: true},
	}
	got := ComputeMetrics(batch)
	// 3 km x 0.12 kg/km
	assert.InDelta(t, 0.36, got.CO2Emissions, 1e-9)
}

func TestComputeMetrics_AbsentFieldsDefaultToZero(t *testing.T) {
	batch := SimulationBatch{
		Vehicles: []VehicleRecord{{Completed: true}},
		Duration: 3600,
	}
	got := ComputeMetrics(batch)
	assert.Zero(t, got.AverageDelay)
	assert.Zero(t, got.CO2Emissions)
	assert.Zero(t, got.AverageSpeed)
	assert.Zero(t, got.TotalTravelTime)
	assert.InDelta(t, 1.0, got.Throughput, 1e-9, "throughput is always computable")
}

func TestComputeMetrics_DurationDefaultsToOneHour(t *testing.T) {
	batch := SimulationBatch{
		Vehicles: []VehicleRecord{{Completed: true}, {Completed: true}},
		Fields:   AllFields(),
	}
	got := ComputeMetrics(batch)
	assert.InDelta(t, 2.0, got.Throughput, 1e-9)
}

func TestComputeMetrics_OnlyCompletedVehiclesCountForThroughput(t *testing.T) {
	batch := SimulationBatch{
		Vehicles: []VehicleRecord{
			{Completed: true},
			{Completed: false},
			{Completed: true},
		},
		Duration: 3600,
		Fields:   AllFields(),
	}
	got := ComputeMetrics(batch)
	assert.InDelta(t, 2.0, got.Throughput, 1e-9)
}

func TestComputeMetrics_NonNegativeForNonNegativeInput(t *testing.T) {
	batch := SimulationBatch{
		Vehicles: []VehicleRecord{
			{Delay: 5, Speed: 3, TravelTime: 100, Distance: 700, Emissions: 80, Completed: true},
		},
		Duration: 600,
		Fields:   AllFields(),
	}
	got := ComputeMetrics(batch)
	for _, key := range AllMetricKeys {
		v, ok := got.Value(key)
		assert.True(t, ok)
		assert.GreaterOrEqual(t, v, 0.0, "metric %s", key)
	}
}

func TestMetricSet_ValueUnknownKey(t *testing.T) {
	_, ok := MetricSet{}.Value("no_such_metric")
	assert.False(t, ok)
}

func TestMetricDirection(t *testing.T) {
	assert.Equal(t, Minimize, MetricDirection(MetricAverageDelay))
	assert.Equal(t, Minimize, MetricDirection(MetricCO2Emissions))
	assert.Equal(t, Minimize, MetricDirection(MetricTotalTravelTime))
	assert.Equal(t, Maximize, MetricDirection(MetricThroughput))
	assert.Equal(t, Maximize, MetricDirection(MetricAverageSpeed))
}
