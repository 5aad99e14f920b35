package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trafficgen/trafficgen/eval"
	"github.com/trafficgen/trafficgen/eval/scenario"
)

func baselineScenario(t *testing.T) scenario.Scenario {
	t.Helper()
	sc, err := scenario.DefaultCatalog().Get("baseline")
	require.NoError(t, err)
	return sc
}

func TestGenerator_BatchShape(t *testing.T) {
	g := NewGenerator(42)
	batch := g.Run(Policy{Name: "p1", Type: "Signal Timing Optimization"}, baselineScenario(t), 3600)

	assert.NotEmpty(t, batch.RunID)
	assert.NotEmpty(t, batch.Vehicles)
	assert.Equal(t, eval.AllFields(), batch.Fields)
	assert.InDelta(t, 3600.0, batch.Duration, 1e-9)

	for _, v := range batch.Vehicles {
		assert.True(t, v.Completed)
		assert.GreaterOrEqual(t, v.Delay, 0.0)
		assert.GreaterOrEqual(t, v.Speed, 0.0)
		assert.GreaterOrEqual(t, v.TravelTime, 0.0)
		assert.GreaterOrEqual(t, v.Distance, 500.0)
		assert.LessOrEqual(t, v.Distance, 2000.0)
		assert.Greater(t, v.Emissions, 0.0)
	}
}

func TestGenerator_DeterministicPerSeedAndRun(t *testing.T) {
	p := Policy{Name: "p1", Type: "Road Pricing Strategy"}
	sc := baselineScenario(t)

	a := NewGenerator(7).Run(p, sc, 3600)
	b := NewGenerator(7).Run(p, sc, 3600)

	assert.Equal(t, a.Vehicles, b.Vehicles, "same seed, policy and scenario reproduce the batch")
	assert.NotEqual(t, a.RunID, b.RunID, "run IDs are unique per invocation")

	c := NewGenerator(8).Run(p, sc, 3600)
	assert.NotEqual(t, a.Vehicles, c.Vehicles, "different seed, different batch")
}

func TestGenerator_RunsAreOrderIndependent(t *testing.T) {
	sc := baselineScenario(t)
	p1 := Policy{Name: "p1", Type: "Lane Management"}
	p2 := Policy{Name: "p2", Type: "Lane Management"}

	g1 := NewGenerator(7)
	first := g1.Run(p1, sc, 3600)
	_ = g1.Run(p2, sc, 3600)

	g2 := NewGenerator(7)
	_ = g2.Run(p2, sc, 3600)
	second := g2.Run(p1, sc, 3600)

	assert.Equal(t, first.Vehicles, second.Vehicles, "each run has its own derived RNG stream")
}

func TestGenerator_ClimateStressDegradesPerformance(t *testing.T) {
	p := Policy{Name: "p1", Type: "Lane Management"}
	catalog := scenario.DefaultCatalog()
	baseline, err := catalog.Get("baseline")
	require.NoError(t, err)
	extreme, err := catalog.Get("extreme")
	require.NoError(t, err)

	g := NewGenerator(42)
	calm := eval.ComputeMetrics(g.Run(p, baseline, 3600))
	stressed := eval.ComputeMetrics(g.Run(p, extreme, 3600))

	assert.Greater(t, stressed.AverageDelay, calm.AverageDelay)
	assert.Less(t, stressed.Throughput, calm.Throughput)
	assert.Less(t, stressed.AverageSpeed, calm.AverageSpeed)
	assert.Greater(t, stressed.CO2Emissions, calm.CO2Emissions)
}

func TestGenerator_PolicyEffects(t *testing.T) {
	sc := baselineScenario(t)
	g := NewGenerator(42)

	none := eval.ComputeMetrics(g.Run(Policy{Name: "none", Type: "Lane Management"}, sc, 3600))
	signal := eval.ComputeMetrics(g.Run(Policy{Name: "sig", Type: "Signal Timing Optimization"}, sc, 3600))
	access := eval.ComputeMetrics(g.Run(Policy{Name: "acc", Type: "Access Restriction"}, sc, 3600))

	assert.Less(t, signal.AverageDelay, none.AverageDelay, "signal optimization cuts delay")
	assert.Greater(t, signal.Throughput, none.Throughput)
	assert.Less(t, access.Throughput, none.Throughput, "access restriction cuts volume")
	assert.Less(t, access.AverageDelay, none.AverageDelay)
}

func TestGenerator_ShortDurationScalesVehicleCount(t *testing.T) {
	p := Policy{Name: "p1", Type: "Lane Management"}
	sc := baselineScenario(t)
	g := NewGenerator(42)

	hour := g.Run(p, sc, 3600)
	tenMinutes := g.Run(p, sc, 600)

	assert.Greater(t, len(hour.Vehicles), len(tenMinutes.Vehicles))
	assert.Greater(t, len(tenMinutes.Vehicles), 0)
}
