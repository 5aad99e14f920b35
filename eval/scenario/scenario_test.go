package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_FourStressLevels(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, []string{"baseline", "moderate", "severe", "extreme"}, c.Names())

	baseline, err := c.Get("baseline")
	require.NoError(t, err)
	assert.Zero(t, baseline.CapacityReduction)
	assert.Zero(t, baseline.EfficiencyLoss)
	assert.InDelta(t, 1.0, baseline.EmissionFactor, 1e-9)

	extreme, err := c.Get("extreme")
	require.NoError(t, err)
	assert.InDelta(t, 0.45, extreme.CapacityReduction, 1e-9)
	assert.InDelta(t, 0.35, extreme.EfficiencyLoss, 1e-9)
	assert.InDelta(t, 1.50, extreme.EmissionFactor, 1e-9)
}

func TestCatalog_GetUnknownListsAvailable(t *testing.T) {
	_, err := DefaultCatalog().Get("apocalyptic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apocalyptic")
	assert.Contains(t, err.Error(), "baseline, moderate, severe, extreme")
}

func TestCatalog_AddRejectsDuplicates(t *testing.T) {
	c := DefaultCatalog()
	err := c.Add(Scenario{Key: "baseline", Name: "again", EmissionFactor: 1})
	require.Error(t, err)
}

func TestScenario_Validate(t *testing.T) {
	valid := Scenario{Key: "k", Name: "n", CapacityReduction: 0.5, EfficiencyLoss: 0.5, EmissionFactor: 1.2}
	assert.NoError(t, valid.Validate())

	cases := []Scenario{
		{Name: "no key", EmissionFactor: 1},
		{Key: "k", CapacityReduction: 1.0, EmissionFactor: 1},
		{Key: "k", CapacityReduction: -0.1, EmissionFactor: 1},
		{Key: "k", EfficiencyLoss: 1.5, EmissionFactor: 1},
		{Key: "k", EmissionFactor: 0},
	}
	for i, s := range cases {
		assert.Error(t, s.Validate(), "case %d", i)
	}
}

func TestScenario_StressApplication(t *testing.T) {
	c := DefaultCatalog()
	severe, err := c.Get("severe")
	require.NoError(t, err)

	assert.InDelta(t, 700.0, severe.ApplyCapacityReduction(1000), 1e-9, "30% capacity loss")
	assert.InDelta(t, 40.0, severe.ApplyEfficiencyLoss(50), 1e-9, "20% efficiency loss")
}

func TestScenario_Summary(t *testing.T) {
	moderate, err := DefaultCatalog().Get("moderate")
	require.NoError(t, err)
	summary := moderate.Summary()

	assert.Contains(t, summary, "Moderate Climate Stress")
	assert.Contains(t, summary, "**Capacity Reduction**: 15%")
	assert.Contains(t, summary, "**Efficiency Loss**: 10%")
	assert.Contains(t, summary, "**Emission Factor**: 1.15x")
	assert.Contains(t, summary, "heat stress")
}

func TestCatalog_CompareAcrossScenarios(t *testing.T) {
	comparisons := DefaultCatalog().Compare(1000, "capacity")
	require.Len(t, comparisons, 4)

	baseline := comparisons["baseline"]
	assert.InDelta(t, 1000.0, baseline.AdjustedValue, 1e-9)
	assert.Zero(t, baseline.PercentChange)

	extreme := comparisons["extreme"]
	assert.InDelta(t, 550.0, extreme.AdjustedValue, 1e-9)
	assert.InDelta(t, -45.0, extreme.PercentChange, 1e-9)
}

func TestCatalog_CompareEmissionsAndUnknownQuantity(t *testing.T) {
	c := DefaultCatalog()

	emissions := c.Compare(100, "emissions")
	assert.InDelta(t, 130.0, emissions["severe"].AdjustedValue, 1e-9)

	// Unknown quantities pass the base value through unchanged.
	other := c.Compare(100, "noise")
	assert.InDelta(t, 100.0, other["severe"].AdjustedValue, 1e-9)
}

func TestCatalog_CompareZeroBaseHasZeroPercent(t *testing.T) {
	comparisons := DefaultCatalog().Compare(0, "capacity")
	assert.Zero(t, comparisons["extreme"].PercentChange)
}
