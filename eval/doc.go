// Package eval provides the core evaluation engines for comparing
// traffic-management policies under climate stress.
//
// # Reading Guide
//
// Start with these three files to understand the evaluation pipeline:
//   - record.go: VehicleRecord batches produced by the simulation collaborator
//   - metrics.go: reduction of a batch into the fixed MetricSet
//   - table.go: the append-only ResultsTable (policy × scenario × metrics)
//
// # Architecture
//
// Three engines read the ResultsTable and return independent result values:
//   - MetricsEngine: metrics.go, composite.go, compare.go
//   - DominanceAnalyzer: dominance.go (Pareto frontier, dense dominance
//     ranks, hypervolume proxy)
//   - StatisticalEngine: anova.go, intervals.go, correlation.go,
//     sensitivity.go
//
// report.go serializes engine outputs into human-readable text; it computes
// nothing new.
//
// All engines are pure functions over their inputs: no shared mutable state,
// no I/O, safe for concurrent use as long as each invocation receives its
// own ResultsTable snapshot (see ResultsTable.Snapshot).
//
// Missing-data policy differs deliberately between engines: metric reduction
// defaults absent fields to 0, statistical routines omit pairs with fewer
// than 2 samples, and structurally malformed input (e.g. ANOVA with a single
// policy group) returns a descriptive error. Callers must not conflate the
// three.
//
// Sub-packages:
//   - eval/scenario/: climate stress scenario catalog and YAML overrides
//   - eval/synth/: deterministic synthetic batch generation (stand-in for a
//     real microsimulation)
package eval
