package eval

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Objectives is the fixed objective list for dominance analysis. Delay and
// emissions are minimized, throughput and speed maximized. Travel time is
// excluded: it is near-collinear with delay and would double-count it.
var Objectives = []MetricKey{
	MetricAverageDelay,
	MetricCO2Emissions,
	MetricThroughput,
	MetricAverageSpeed,
}

// ParetoResult bundles the outputs of a full dominance analysis.
type ParetoResult struct {
	Frontier    []string       // non-dominated policies, sorted by name
	Ranks       map[string]int // dense dominance rank, 1 = best tier
	Hypervolume float64        // coverage proxy, see Hypervolume
}

// objectiveVector projects a MetricSet onto the objective space. Maximize
// objectives are sign-flipped so that a single "all <=, one <" rule decides
// dominance for every component.
func objectiveVector(m MetricSet) []float64 {
	vec := make([]float64, len(Objectives))
	for i, obj := range Objectives {
		v, _ := m.Value(obj)
		if MetricDirection(obj) == Maximize {
			v = -v
		}
		vec[i] = v
	}
	return vec
}

// dominates reports whether flipped-objective vector a dominates b: every
// component of a is <= the corresponding component of b and at least one is
// strictly smaller. Equal vectors dominate neither way.
func dominates(a, b []float64) bool {
	strict := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strict = true
		}
	}
	return strict
}

// sortedObjectiveVectors materializes the transient objective vectors for a
// policy set, with policy names sorted for deterministic iteration.
func sortedObjectiveVectors(metricsByPolicy map[string]MetricSet) ([]string, map[string][]float64) {
	names := make([]string, 0, len(metricsByPolicy))
	vectors := make(map[string][]float64, len(metricsByPolicy))
	for name, m := range metricsByPolicy {
		names = append(names, name)
		vectors[name] = objectiveVector(m)
	}
	sort.Strings(names)
	return names, vectors
}

// ParetoFrontier returns the non-dominated policies, sorted by name. The
// frontier is never empty for a non-empty input: a policy nobody dominates
// always exists. O(n^2) pairwise comparison; policy counts in this domain
// are tens, not thousands, so nothing cleverer is warranted.
func ParetoFrontier(metricsByPolicy map[string]MetricSet) []string {
	names, vectors := sortedObjectiveVectors(metricsByPolicy)

	frontier := make([]string, 0, len(names))
	for _, candidate := range names {
		dominated := false
		for _, other := range names {
			if other == candidate {
				continue
			}
			if dominates(vectors[other], vectors[candidate]) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, candidate)
		}
	}
	return frontier
}

// DominanceCounts returns, per policy, how many other policies dominate it.
// Pareto-optimal policies count 0.
func DominanceCounts(metricsByPolicy map[string]MetricSet) map[string]int {
	names, vectors := sortedObjectiveVectors(metricsByPolicy)

	counts := make(map[string]int, len(names))
	for _, candidate := range names {
		counts[candidate] = 0
		for _, other := range names {
			if other != candidate && dominates(vectors[other], vectors[candidate]) {
				counts[candidate]++
			}
		}
	}
	return counts
}

// DominanceRanks assigns dense ranks from dominance counts: rank 1 is the
// lowest count, and the rank increments only when the count strictly
// increases, so equal counts share a rank and no rank numbers are skipped
// by ties.
func DominanceRanks(metricsByPolicy map[string]MetricSet) map[string]int {
	counts := DominanceCounts(metricsByPolicy)

	type entry struct {
		name  string
		count int
	}
	sorted := make([]entry, 0, len(counts))
	for name, count := range counts {
		sorted = append(sorted, entry{name, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count < sorted[j].count
		}
		return sorted[i].name < sorted[j].name
	})

	ranks := make(map[string]int, len(sorted))
	rank := 1
	for i, e := range sorted {
		if i > 0 && e.count > sorted[i-1].count {
			rank++
		}
		ranks[e.name] = rank
	}
	return ranks
}

// ReferencePoint computes the conventional hypervolume reference point over
// the raw (unflipped) objective values: worst observed x 1.1 for minimize
// objectives, best-case floor x 0.9 for maximize ones. Returned in
// Objectives order. Hypervolume accepts but does not use it; the helper
// exists so callers keep the documented formula.
func ReferencePoint(metricsByPolicy map[string]MetricSet) []float64 {
	ref := make([]float64, len(Objectives))
	if len(metricsByPolicy) == 0 {
		return ref
	}

	for i, obj := range Objectives {
		values := make([]float64, 0, len(metricsByPolicy))
		for _, m := range metricsByPolicy {
			v, _ := m.Value(obj)
			values = append(values, v)
		}
		if MetricDirection(obj) == Minimize {
			ref[i] = floats.Max(values) * 1.1
		} else {
			ref[i] = floats.Min(values) * 0.9
		}
	}
	return ref
}

// Hypervolume estimates frontier quality as the fraction of evaluated
// policies that are Pareto-optimal. This is a coverage proxy, not a
// geometric hypervolume: the reference point is accepted for interface
// compatibility and ignored. Downstream report text assumes exactly this
// scale; do not upgrade the proxy to a true hypervolume without changing
// the consumers.
func Hypervolume(metricsByPolicy map[string]MetricSet, reference []float64) float64 {
	_ = reference
	if len(metricsByPolicy) == 0 {
		return 0
	}
	frontier := ParetoFrontier(metricsByPolicy)
	return float64(len(frontier)) / float64(len(metricsByPolicy))
}

// AnalyzeDominance runs the full dominance analysis in one pass. The result
// is recomputed from scratch on every call; there are no incremental update
// semantics.
func AnalyzeDominance(metricsByPolicy map[string]MetricSet) ParetoResult {
	return ParetoResult{
		Frontier:    ParetoFrontier(metricsByPolicy),
		Ranks:       DominanceRanks(metricsByPolicy),
		Hypervolume: Hypervolume(metricsByPolicy, ReferencePoint(metricsByPolicy)),
	}
}
