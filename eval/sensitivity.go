package eval

import (
	"sort"
	"strings"
)

// SensitivityRow records the modeled impact of one (parameter, factor)
// variation on the headline metrics, as percent change versus baseline.
type SensitivityRow struct {
	Parameter           string
	Factor              float64
	DelayChangePct      float64
	ThroughputChangePct float64
	EmissionsChangePct  float64
}

// applyParameterVariation applies the keyword-triggered adjustment model to
// a copy of the baseline metrics. The substring rules and scaling formulas
// are fixed: parameters mentioning signal/timing shift delay and
// throughput, speed parameters shift speed and emissions, capacity
// parameters shift throughput and delay inversely. A parameter matching no
// keyword leaves the metrics unchanged.
func applyParameterVariation(base MetricSet, parameter string, factor float64) MetricSet {
	varied := base
	name := strings.ToLower(parameter)

	switch {
	case strings.Contains(name, "signal") || strings.Contains(name, "timing"):
		varied.AverageDelay *= 1 + (factor-1)*0.5
		varied.Throughput *= 1 - (factor-1)*0.3
	case strings.Contains(name, "speed"):
		varied.AverageSpeed *= factor
		varied.CO2Emissions *= 1 + (factor-1)*0.4
	case strings.Contains(name, "capacity"):
		varied.Throughput *= factor
		varied.AverageDelay *= 1 / factor
	}
	return varied
}

// SensitivityAnalysis tabulates, for every (parameter, variation factor)
// pair, the modeled percent change in delay, throughput and emissions. This
// is a declared simplification driven by parameter-name keywords, not a
// real sensitivity model; it exists so what-if tables in reports are cheap
// and reproducible. Parameters are processed in sorted order, factors in
// the order given.
func SensitivityAnalysis(base MetricSet, variations map[string][]float64) []SensitivityRow {
	parameters := make([]string, 0, len(variations))
	for p := range variations {
		parameters = append(parameters, p)
	}
	sort.Strings(parameters)

	var rows []SensitivityRow
	for _, parameter := range parameters {
		for _, factor := range variations[parameter] {
			varied := applyParameterVariation(base, parameter, factor)
			rows = append(rows, SensitivityRow{
				Parameter:           parameter,
				Factor:              factor,
				DelayChangePct:      percentChange(base.AverageDelay, varied.AverageDelay),
				ThroughputChangePct: percentChange(base.Throughput, varied.Throughput),
				EmissionsChangePct:  percentChange(base.CO2Emissions, varied.CO2Emissions),
			})
		}
	}
	return rows
}
