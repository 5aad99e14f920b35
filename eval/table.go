package eval

import (
	"fmt"
)

// ScenarioResult is one (policy, scenario) entry: the reduced metrics plus
// opaque metadata carried for presentation layers. The engines never
// interpret Meta.
type ScenarioResult struct {
	Metrics MetricSet
	Meta    map[string]string
}

// ResultsTable is the single source of truth for evaluated runs: policy ->
// scenario -> ScenarioResult. It is append-only: an entry, once written, is
// never replaced. Insertion order of policies and scenarios is preserved for
// presentation; algorithms do not depend on it.
//
// Not safe for concurrent mutation. Producers must finish writing an entry
// before any engine reads it; hand engines a Snapshot when the producing
// loop is still running.
type ResultsTable struct {
	policyOrder   []string
	scenarioOrder map[string][]string
	entries       map[string]map[string]ScenarioResult
}

// NewResultsTable creates an empty table.
func NewResultsTable() *ResultsTable {
	return &ResultsTable{
		scenarioOrder: make(map[string][]string),
		entries:       make(map[string]map[string]ScenarioResult),
	}
}

// Add appends the result of one (policy, scenario) run. Re-adding an
// existing pair is an error: results are immutable once published.
func (t *ResultsTable) Add(policy, scenarioName string, metrics MetricSet, meta map[string]string) error {
	if policy == "" {
		return fmt.Errorf("results table: empty policy name")
	}
	if scenarioName == "" {
		return fmt.Errorf("results table: empty scenario name for policy %q", policy)
	}

	scenarios, ok := t.entries[policy]
	if !ok {
		scenarios = make(map[string]ScenarioResult)
		t.entries[policy] = scenarios
		t.policyOrder = append(t.policyOrder, policy)
	}
	if _, exists := scenarios[scenarioName]; exists {
		return fmt.Errorf("results table: entry for policy %q scenario %q already exists", policy, scenarioName)
	}

	var metaCopy map[string]string
	if meta != nil {
		metaCopy = make(map[string]string, len(meta))
		for k, v := range meta {
			metaCopy[k] = v
		}
	}

	scenarios[scenarioName] = ScenarioResult{Metrics: metrics, Meta: metaCopy}
	t.scenarioOrder[policy] = append(t.scenarioOrder[policy], scenarioName)
	return nil
}

// Policies returns the policy names in insertion order.
func (t *ResultsTable) Policies() []string {
	out := make([]string, len(t.policyOrder))
	copy(out, t.policyOrder)
	return out
}

// Scenarios returns the scenario names recorded for a policy, in insertion
// order.
func (t *ResultsTable) Scenarios(policy string) []string {
	order := t.scenarioOrder[policy]
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Get returns the entry for a (policy, scenario) pair.
func (t *ResultsTable) Get(policy, scenarioName string) (ScenarioResult, bool) {
	res, ok := t.entries[policy][scenarioName]
	return res, ok
}

// Len returns the number of policies in the table.
func (t *ResultsTable) Len() int {
	return len(t.policyOrder)
}

// Samples returns the per-scenario values of one metric for a policy, in
// scenario insertion order. These are the group samples used by the
// statistical engine.
func (t *ResultsTable) Samples(policy string, key MetricKey) []float64 {
	order := t.scenarioOrder[policy]
	samples := make([]float64, 0, len(order))
	for _, sc := range order {
		v, _ := t.entries[policy][sc].Metrics.Value(key)
		samples = append(samples, v)
	}
	return samples
}

// MeanMetrics aggregates a policy's metrics as the mean across its
// scenarios. A policy with no recorded scenarios is malformed input.
func (t *ResultsTable) MeanMetrics(policy string) (MetricSet, error) {
	order := t.scenarioOrder[policy]
	if len(order) == 0 {
		return MetricSet{}, fmt.Errorf("results table: no scenarios recorded for policy %q", policy)
	}

	var mean MetricSet
	n := float64(len(order))
	for _, sc := range order {
		m := t.entries[policy][sc].Metrics
		mean.AverageDelay += m.AverageDelay / n
		mean.Throughput += m.Throughput / n
		mean.CO2Emissions += m.CO2Emissions / n
		mean.AverageSpeed += m.AverageSpeed / n
		mean.TotalTravelTime += m.TotalTravelTime / n
	}
	return mean, nil
}

// MetricsByPolicy returns each policy's mean MetricSet across scenarios,
// the form consumed by the dominance analyzer and best-policy selection.
func (t *ResultsTable) MetricsByPolicy() map[string]MetricSet {
	out := make(map[string]MetricSet, len(t.policyOrder))
	for _, policy := range t.policyOrder {
		mean, err := t.MeanMetrics(policy)
		if err != nil {
			continue // unreachable: Add never records a policy without a scenario
		}
		out[policy] = mean
	}
	return out
}

// Snapshot returns an independent deep copy of the table. Engines reading
// concurrently with a producing loop must read from a snapshot.
func (t *ResultsTable) Snapshot() *ResultsTable {
	snap := NewResultsTable()
	for _, policy := range t.policyOrder {
		for _, sc := range t.scenarioOrder[policy] {
			entry := t.entries[policy][sc]
			// Add copies Meta; error impossible on a fresh table.
			_ = snap.Add(policy, sc, entry.Metrics, entry.Meta)
		}
	}
	return snap
}
