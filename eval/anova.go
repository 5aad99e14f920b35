package eval

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SignificanceLevel is the fixed alpha for all hypothesis tests.
const SignificanceLevel = 0.05

// AnovaMetrics lists the metrics hypothesis-tested by OneWayANOVA: the four
// dominance objectives. Travel time is aggregated and reported but not
// tested.
var AnovaMetrics = Objectives

// AnovaResult is the outcome of a one-way ANOVA for a single metric.
type AnovaResult struct {
	FStatistic     float64
	PValue         float64
	Significant    bool // exactly PValue < SignificanceLevel
	Interpretation string
}

// interpretPValue maps a p-value onto the fixed interpretation tiers. The
// wording is contractual: report consumers match on it.
func interpretPValue(p float64) string {
	switch {
	case p < 0.001:
		return "Highly significant difference between policies (p < 0.001)"
	case p < 0.01:
		return "Very significant difference between policies (p < 0.01)"
	case p < 0.05:
		return "Significant difference between policies (p < 0.05)"
	default:
		return "No significant difference between policies (p >= 0.05)"
	}
}

// oneWayF computes the classic sum-of-squares F statistic and p-value over
// sample groups. Groups with zero within-group variance are handled
// explicitly: identical group means give F = 0, otherwise F diverges and
// the p-value is 0.
func oneWayF(groups [][]float64) (fStat, pValue float64, err error) {
	k := len(groups)
	n := 0
	grandSum := 0.0
	for _, g := range groups {
		n += len(g)
		for _, v := range g {
			grandSum += v
		}
	}
	if n-k < 1 {
		return 0, 0, fmt.Errorf("within-group degrees of freedom is %d: need more than one sample in some group", n-k)
	}
	grandMean := grandSum / float64(n)

	ssBetween, ssWithin := 0.0, 0.0
	for _, g := range groups {
		groupMean := stat.Mean(g, nil)
		ssBetween += float64(len(g)) * (groupMean - grandMean) * (groupMean - grandMean)
		for _, v := range g {
			ssWithin += (v - groupMean) * (v - groupMean)
		}
	}

	dfBetween := float64(k - 1)
	dfWithin := float64(n - k)
	msBetween := ssBetween / dfBetween
	msWithin := ssWithin / dfWithin

	if msWithin == 0 {
		if msBetween == 0 {
			return 0, 1, nil
		}
		return math.Inf(1), 0, nil
	}

	fStat = msBetween / msWithin
	fDist := distuv.F{D1: dfBetween, D2: dfWithin}
	return fStat, fDist.Survival(fStat), nil
}

// OneWayANOVA tests, per metric, whether the policies' per-scenario samples
// come from populations with equal means. Each policy is one group; its
// samples are the metric values across its evaluated scenarios. Fewer than
// two policy groups, or a policy with no samples, is malformed input and
// returns a descriptive error rather than a defaulted result.
func OneWayANOVA(table *ResultsTable) (map[MetricKey]AnovaResult, error) {
	policies := table.Policies()
	if len(policies) < 2 {
		return nil, fmt.Errorf("anova: need at least 2 policy groups, got %d", len(policies))
	}
	for _, policy := range policies {
		if len(table.Scenarios(policy)) == 0 {
			return nil, fmt.Errorf("anova: policy %q has no scenario samples", policy)
		}
	}

	results := make(map[MetricKey]AnovaResult, len(AnovaMetrics))
	for _, key := range AnovaMetrics {
		groups := make([][]float64, 0, len(policies))
		for _, policy := range policies {
			groups = append(groups, table.Samples(policy, key))
		}

		fStat, pValue, err := oneWayF(groups)
		if err != nil {
			return nil, fmt.Errorf("anova: metric %q: %w", key, err)
		}

		results[key] = AnovaResult{
			FStatistic:     fStat,
			PValue:         pValue,
			Significant:    pValue < SignificanceLevel,
			Interpretation: interpretPValue(pValue),
		}
	}
	return results, nil
}
