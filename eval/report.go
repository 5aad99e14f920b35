// Report text generators. Everything here is a deterministic serialization
// of already-computed engine output: no randomness, no I/O, no new math.

package eval

import (
	"fmt"
	"sort"
	"strings"
)

// StrongCorrelationThreshold filters the correlation section of the
// statistical report to |r| above this value.
const StrongCorrelationThreshold = 0.7

// metricTitle renders a metric key for report headings, e.g.
// "average_delay" -> "Average Delay".
func metricTitle(key MetricKey) string {
	words := strings.Split(string(key), "_")
	for i, w := range words {
		if w == "co2" {
			words[i] = "CO2"
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// OptimizationReport renders the full dominance analysis as markdown text:
// summary counts, the Pareto frontier with each member's objective values,
// and the top 5 policies by dominance rank.
func OptimizationReport(metricsByPolicy map[string]MetricSet) string {
	result := AnalyzeDominance(metricsByPolicy)

	var b strings.Builder
	b.WriteString("# Multi-Objective Optimization Report\n\n")

	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- **Total Policies Evaluated:** %d\n", len(metricsByPolicy))
	fmt.Fprintf(&b, "- **Pareto Optimal Policies:** %d\n", len(result.Frontier))
	fmt.Fprintf(&b, "- **Solution Quality (Hypervolume):** %.3f\n\n", result.Hypervolume)

	b.WriteString("## Pareto Frontier\n")
	b.WriteString("These policies are non-dominated (cannot improve one objective without worsening another):\n\n")
	for i, policy := range result.Frontier {
		m := metricsByPolicy[policy]
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, policy)
		fmt.Fprintf(&b, "   - Delay: %.1fs\n", m.AverageDelay)
		fmt.Fprintf(&b, "   - Throughput: %.0f veh/h\n", m.Throughput)
		fmt.Fprintf(&b, "   - CO2: %.2f kg\n", m.CO2Emissions)
		fmt.Fprintf(&b, "   - Speed: %.1f km/h\n\n", m.AverageSpeed)
	}

	b.WriteString("## Policy Rankings\n")
	b.WriteString("Ranked by dominance (lower rank = better):\n\n")
	type ranked struct {
		name string
		rank int
	}
	order := make([]ranked, 0, len(result.Ranks))
	for name, rank := range result.Ranks {
		order = append(order, ranked{name, rank})
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].rank != order[j].rank {
			return order[i].rank < order[j].rank
		}
		return order[i].name < order[j].name
	})
	top := order
	if len(top) > 5 {
		top = top[:5]
	}
	for _, e := range top {
		fmt.Fprintf(&b, "- **Rank %d:** %s\n", e.rank, e.name)
	}

	return b.String()
}

// StatisticalReport renders ANOVA outcomes, 95% confidence intervals per
// policy, and the strong metric correlations as markdown text. A nil anova
// map means "run it here"; the table must then satisfy OneWayANOVA's input
// requirements.
func StatisticalReport(table *ResultsTable, anova map[MetricKey]AnovaResult) (string, error) {
	if anova == nil {
		var err error
		anova, err = OneWayANOVA(table)
		if err != nil {
			return "", fmt.Errorf("statistical report: %w", err)
		}
	}

	var b strings.Builder
	b.WriteString("# Statistical Analysis Report\n\n")

	b.WriteString("## Analysis of Variance (ANOVA)\n\n")
	b.WriteString("Testing if policies have significantly different performance:\n\n")
	for _, key := range AnovaMetrics {
		result, ok := anova[key]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "### %s\n", metricTitle(key))
		fmt.Fprintf(&b, "- **F-statistic:** %.3f\n", result.FStatistic)
		fmt.Fprintf(&b, "- **P-value:** %.4f\n", result.PValue)
		fmt.Fprintf(&b, "- **Result:** %s\n\n", result.Interpretation)
	}

	intervals, err := ConfidenceIntervals(table, 0.95)
	if err != nil {
		return "", fmt.Errorf("statistical report: %w", err)
	}

	b.WriteString("## Confidence Intervals (95%)\n\n")
	for _, policy := range table.Policies() {
		metrics, ok := intervals[policy]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "### %s\n", policy)
		for _, key := range AllMetricKeys {
			ci, ok := metrics[key]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "- **%s:** %.2f [%.2f, %.2f] (±%.2f)\n", key, ci.Mean, ci.Lower, ci.Upper, ci.MarginOfError)
		}
		b.WriteString("\n")
	}

	matrix := ComputeCorrelationMatrix(table)
	b.WriteString("## Metric Correlations\n\n")
	b.WriteString("Strong correlations (|r| > 0.7):\n\n")
	for _, pair := range matrix.StrongPairs(StrongCorrelationThreshold) {
		fmt.Fprintf(&b, "- **%s** <-> **%s:** r = %.3f\n", pair.A, pair.B, pair.R)
	}

	return b.String(), nil
}

// SummaryHeader is the column header row matching SummaryRows.
var SummaryHeader = []string{
	"Policy", "Scenario", "Avg Delay (s)", "Throughput (veh/h)",
	"CO2 (kg)", "Avg Speed (km/h)", "Total Travel Time (h)", "Score",
}

// SummaryRows formats every (policy, scenario) entry of the table as one
// row of display strings, in table insertion order, with the composite
// score appended. Intended for tabular export; contains no engine logic
// beyond CompositeScore.
func SummaryRows(table *ResultsTable) [][]string {
	var rows [][]string
	for _, policy := range table.Policies() {
		for _, sc := range table.Scenarios(policy) {
			entry, _ := table.Get(policy, sc)
			m := entry.Metrics
			rows = append(rows, []string{
				policy,
				sc,
				fmt.Sprintf("%.1f", m.AverageDelay),
				fmt.Sprintf("%.0f", m.Throughput),
				fmt.Sprintf("%.2f", m.CO2Emissions),
				fmt.Sprintf("%.1f", m.AverageSpeed),
				fmt.Sprintf("%.2f", m.TotalTravelTime),
				fmt.Sprintf("%.1f", CompositeScore(m, nil)),
			})
		}
	}
	return rows
}
