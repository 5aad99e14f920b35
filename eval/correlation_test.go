package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// correlationTable pools 4 runs where emissions track delay perfectly and
// speed moves exactly opposite.
func correlationTable(t *testing.T) *ResultsTable {
	t.Helper()
	table := NewResultsTable()
	delays := []float64{10, 20, 30, 40}
	policies := []string{"p1", "p1", "p2", "p2"}
	scenarios := []string{"s1", "s2", "s1", "s2"}
	for i, d := range delays {
		m := MetricSet{AverageDelay: d, CO2Emissions: d * 10, AverageSpeed: 50 - d}
		require.NoError(t, table.Add(policies[i], scenarios[i], m, nil))
	}
	return table
}

func TestComputeCorrelationMatrix_PerfectCorrelations(t *testing.T) {
	matrix := ComputeCorrelationMatrix(correlationTable(t))

	r, ok := matrix.At(MetricAverageDelay, MetricCO2Emissions)
	require.True(t, ok)
	assert.InDelta(t, 1.0, r, 1e-9)

	r, ok = matrix.At(MetricAverageDelay, MetricAverageSpeed)
	require.True(t, ok)
	assert.InDelta(t, -1.0, r, 1e-9)
}

func TestComputeCorrelationMatrix_SelfCorrelationIsOne(t *testing.T) {
	matrix := ComputeCorrelationMatrix(correlationTable(t))
	r, ok := matrix.At(MetricAverageDelay, MetricAverageDelay)
	require.True(t, ok)
	assert.InDelta(t, 1.0, r, 1e-9)
}

func TestComputeCorrelationMatrix_PoolsAcrossPolicies(t *testing.T) {
	// Grouping is deliberately ignored: all (policy, scenario) samples land
	// in one pool, so the matrix covers every key with >= 2 samples.
	matrix := ComputeCorrelationMatrix(correlationTable(t))
	assert.Equal(t, AllMetricKeys, matrix.Keys)
}

func TestComputeCorrelationMatrix_TooFewSamplesExcluded(t *testing.T) {
	table := NewResultsTable()
	require.NoError(t, table.Add("p1", "s1", MetricSet{AverageDelay: 10}, nil))

	matrix := ComputeCorrelationMatrix(table)
	assert.Empty(t, matrix.Keys, "a single pooled sample supports no correlations")
	_, ok := matrix.At(MetricAverageDelay, MetricThroughput)
	assert.False(t, ok)
}

func TestStrongPairs_FiltersByAbsoluteValue(t *testing.T) {
	matrix := ComputeCorrelationMatrix(correlationTable(t))
	pairs := matrix.StrongPairs(StrongCorrelationThreshold)

	require.NotEmpty(t, pairs)
	for _, pair := range pairs {
		assert.NotEqual(t, pair.A, pair.B, "diagonal excluded")
		assert.Greater(t, pair.R*pair.R, StrongCorrelationThreshold*StrongCorrelationThreshold)
	}
}
