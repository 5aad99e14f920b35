// Pure data types for per-vehicle simulation output. This file has no
// dependencies on the engines — it stores what the simulation collaborator
// produced, nothing more.

package eval

// VehicleRecord captures one simulated vehicle's outcome. All numeric fields
// are non-negative in well-formed input; units are the simulator's native
// ones (seconds, m/s, meters, grams) and are converted by ComputeMetrics.
type VehicleRecord struct {
	ID         string
	Delay      float64 // seconds
	Speed      float64 // m/s
	TravelTime float64 // seconds
	Distance   float64 // meters
	Emissions  float64 // grams CO2
	Completed  bool
}

// FieldPresence declares which optional VehicleRecord fields the producing
// simulator actually populated for a batch. Absence is per-batch, not
// per-vehicle: a simulator either instruments a quantity or it does not.
type FieldPresence struct {
	Delay      bool
	Speed      bool
	TravelTime bool
	Distance   bool
	Emissions  bool
}

// AllFields reports every optional field as present.
func AllFields() FieldPresence {
	return FieldPresence{Delay: true, Speed: true, TravelTime: true, Distance: true, Emissions: true}
}

// SimulationBatch is one (policy, scenario) run's worth of vehicle records
// plus the simulation duration they were collected over.
type SimulationBatch struct {
	RunID    string
	Vehicles []VehicleRecord
	Duration float64 // seconds; values <= 0 fall back to DefaultDuration
	Fields   FieldPresence
}
