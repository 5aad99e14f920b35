// Package synth generates synthetic per-vehicle simulation batches. It
// stands in for a real traffic microsimulation: the produced batches follow
// the SimulationBatch contract, so the evaluation engines cannot tell the
// difference. Generation is deterministic per (seed, policy, scenario),
// independent of run order.
package synth

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/trafficgen/trafficgen/eval"
	"github.com/trafficgen/trafficgen/eval/scenario"
)

// PolicyTypes lists the supported traffic-management policy families.
// Policy effects are keyed on substrings of the type name (Signal, Pricing,
// Speed, Access); Lane Management currently has no modeled effect.
var PolicyTypes = []string{
	"Signal Timing Optimization",
	"Road Pricing Strategy",
	"Access Restriction",
	"Speed Management",
	"Lane Management",
}

// Policy identifies one candidate policy to simulate.
type Policy struct {
	Name string
	Type string // one of PolicyTypes (matched by substring)
}

// Baseline traffic conditions before climate stress and policy effects.
const (
	baseDelaySeconds    = 45.0
	baseThroughputVehH  = 1200.0
	baseEmissionsKg     = 450.0
	baseSpeedKmh        = 35.0
	baseTravelTimeHours = 1.5
)

// Generator produces synthetic batches from a master seed. Each
// (policy, scenario) pair derives its own RNG stream, so adding or
// reordering runs never perturbs the others.
type Generator struct {
	seed int64
}

// NewGenerator creates a Generator with the given master seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed}
}

// derivedSeed isolates a run's RNG stream: master seed XOR a hash of the
// (policy, scenario) identity.
func (g *Generator) derivedSeed(policyName, scenarioKey string) int64 {
	h := fnv.New64a()
	h.Write([]byte(policyName + "/" + scenarioKey))
	return g.seed ^ int64(h.Sum64())
}

// Run simulates one policy under one climate scenario for the given
// duration (seconds; <= 0 selects the default hour) and returns the
// per-vehicle batch. The model is intentionally coarse: climate stress
// scales the baseline conditions, the policy family applies fixed
// adjustment factors, and per-vehicle outcomes are sampled around the
// adjusted baselines.
func (g *Generator) Run(p Policy, sc scenario.Scenario, duration float64) eval.SimulationBatch {
	if duration <= 0 {
		duration = eval.DefaultDuration
	}
	rng := rand.New(rand.NewSource(g.derivedSeed(p.Name, sc.Key)))

	delay := baseDelaySeconds * (1 + sc.CapacityReduction)
	throughput := baseThroughputVehH * (1 - sc.CapacityReduction*0.5)
	emissions := baseEmissionsKg * sc.EmissionFactor
	speed := sc.ApplyEfficiencyLoss(baseSpeedKmh)
	travelTime := baseTravelTimeHours * (1 + sc.EfficiencyLoss)

	switch {
	case strings.Contains(p.Type, "Signal"):
		delay *= 0.85
		throughput *= 1.10
	case strings.Contains(p.Type, "Pricing"):
		delay *= 0.75
		throughput *= 0.90
		emissions *= 0.85
	case strings.Contains(p.Type, "Speed"):
		speed *= 0.95
		emissions *= 0.90
	case strings.Contains(p.Type, "Access"):
		throughput *= 0.80
		delay *= 0.70
		emissions *= 0.75
	}

	// ±5% run-to-run variation on the vehicle count.
	randomFactor := 0.95 + 0.1*rng.Float64()
	numVehicles := int(throughput * (duration / eval.SecondsPerHour) * randomFactor)
	if numVehicles < 1 {
		numVehicles = 1
	}

	// Per-vehicle emission draws are scaled so the batch-level total tracks
	// the climate- and policy-adjusted target.
	emissionScale := emissions / baseEmissionsKg

	vehicles := make([]eval.VehicleRecord, 0, numVehicles)
	meanTravelTime := travelTime * eval.SecondsPerHour / float64(numVehicles)
	for i := 0; i < numVehicles; i++ {
		vehicles = append(vehicles, eval.VehicleRecord{
			ID:         fmt.Sprintf("veh_%d", i),
			Delay:      math.Max(0, rng.NormFloat64()*delay*0.3+delay),
			Speed:      math.Max(0, rng.NormFloat64()*2+speed/eval.MSToKmh),
			TravelTime: math.Max(0, rng.NormFloat64()*30+meanTravelTime),
			Distance:   500 + rng.Float64()*1500,
			Emissions:  (50 + rng.Float64()*150) * emissionScale,
			Completed:  true,
		})
	}

	batch := eval.SimulationBatch{
		RunID:    uuid.NewString(),
		Vehicles: vehicles,
		Duration: duration,
		Fields:   eval.AllFields(),
	}
	logrus.Debugf("synth: policy %q scenario %q generated %d vehicles (run %s)",
		p.Name, sc.Key, len(vehicles), batch.RunID)
	return batch
}
