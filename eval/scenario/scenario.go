// Package scenario defines the climate stress scenarios applied to traffic
// simulations. A scenario scales road capacity, vehicle efficiency and
// emissions; the catalog ships four built-in stress levels and can be
// replaced or extended from a YAML file.
package scenario

import (
	"fmt"
	"strings"
)

// Scenario describes one climate stress level.
type Scenario struct {
	Key               string  `yaml:"key"`
	Name              string  `yaml:"name"`
	CapacityReduction float64 `yaml:"capacity_reduction"` // fraction of road capacity lost, [0, 1)
	EfficiencyLoss    float64 `yaml:"efficiency_loss"`    // fraction of vehicle efficiency lost, [0, 1)
	EmissionFactor    float64 `yaml:"emission_factor"`    // emissions multiplier, > 0
	Description       string  `yaml:"description"`
}

// Validate checks the scenario's fields are internally consistent.
func (s Scenario) Validate() error {
	if s.Key == "" {
		return fmt.Errorf("scenario %q: empty key", s.Name)
	}
	if s.CapacityReduction < 0 || s.CapacityReduction >= 1 {
		return fmt.Errorf("scenario %q: capacity_reduction %v outside [0, 1)", s.Key, s.CapacityReduction)
	}
	if s.EfficiencyLoss < 0 || s.EfficiencyLoss >= 1 {
		return fmt.Errorf("scenario %q: efficiency_loss %v outside [0, 1)", s.Key, s.EfficiencyLoss)
	}
	if s.EmissionFactor <= 0 {
		return fmt.Errorf("scenario %q: emission_factor %v must be > 0", s.Key, s.EmissionFactor)
	}
	return nil
}

// ApplyCapacityReduction scales a base road capacity (vehicles/hour) down
// by the scenario's capacity loss.
func (s Scenario) ApplyCapacityReduction(baseCapacity float64) float64 {
	return baseCapacity * (1 - s.CapacityReduction)
}

// ApplyEfficiencyLoss scales a base vehicle speed (km/h) down by the
// scenario's efficiency loss.
func (s Scenario) ApplyEfficiencyLoss(baseSpeed float64) float64 {
	return baseSpeed * (1 - s.EfficiencyLoss)
}

// Summary renders a human-readable description of the scenario's impacts.
func (s Scenario) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", s.Name)
	fmt.Fprintf(&b, "- **Capacity Reduction**: %.0f%%\n", s.CapacityReduction*100)
	fmt.Fprintf(&b, "- **Efficiency Loss**: %.0f%%\n", s.EfficiencyLoss*100)
	fmt.Fprintf(&b, "- **Emission Factor**: %.2fx\n", s.EmissionFactor)
	if s.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", s.Description)
	}
	return b.String()
}

// Catalog is an ordered, keyed collection of scenarios.
type Catalog struct {
	order []string
	byKey map[string]Scenario
}

// NewCatalog builds a catalog from scenarios in the given order.
func NewCatalog(scenarios ...Scenario) (*Catalog, error) {
	c := &Catalog{byKey: make(map[string]Scenario, len(scenarios))}
	for _, s := range scenarios {
		if err := c.Add(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends a validated scenario. Duplicate keys are rejected.
func (c *Catalog) Add(s Scenario) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, exists := c.byKey[s.Key]; exists {
		return fmt.Errorf("scenario %q already in catalog", s.Key)
	}
	c.byKey[s.Key] = s
	c.order = append(c.order, s.Key)
	return nil
}

// Get returns the scenario for a key. Unknown keys report the available
// alternatives so a caller can correct the input.
func (c *Catalog) Get(key string) (Scenario, error) {
	s, ok := c.byKey[key]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown scenario %q, available: %s", key, strings.Join(c.order, ", "))
	}
	return s, nil
}

// Names returns the scenario keys in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// All returns the scenarios in catalog order.
func (c *Catalog) All() []Scenario {
	out := make([]Scenario, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.byKey[key])
	}
	return out
}

// Comparison captures how one base value shifts under a scenario.
type Comparison struct {
	BaseValue     float64
	AdjustedValue float64
	Change        float64
	PercentChange float64
}

// Compare applies every catalog scenario to a base value of the named
// quantity ("capacity", "speed" or "emissions"; anything else passes the
// value through) and tabulates the shifts, keyed by scenario.
func (c *Catalog) Compare(baseValue float64, quantity string) map[string]Comparison {
	out := make(map[string]Comparison, len(c.order))
	for _, key := range c.order {
		s := c.byKey[key]
		adjusted := baseValue
		switch quantity {
		case "capacity":
			adjusted = s.ApplyCapacityReduction(baseValue)
		case "speed":
			adjusted = s.ApplyEfficiencyLoss(baseValue)
		case "emissions":
			adjusted = baseValue * s.EmissionFactor
		}
		pct := 0.0
		if baseValue != 0 {
			pct = (adjusted - baseValue) / baseValue * 100
		}
		out[key] = Comparison{
			BaseValue:     baseValue,
			AdjustedValue: adjusted,
			Change:        adjusted - baseValue,
			PercentChange: pct,
		}
	}
	return out
}

// DefaultCatalog returns the built-in climate stress levels.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		Scenario{
			Key:               "baseline",
			Name:              "Baseline (No Climate Stress)",
			CapacityReduction: 0.0,
			EfficiencyLoss:    0.0,
			EmissionFactor:    1.0,
			Description:       "No climate stress applied. Normal operating conditions.",
		},
		Scenario{
			Key:               "moderate",
			Name:              "Moderate Climate Stress",
			CapacityReduction: 0.15,
			EfficiencyLoss:    0.10,
			EmissionFactor:    1.15,
			Description:       "Moderate climate impacts: reduced road capacity due to heat stress, minor efficiency losses.",
		},
		Scenario{
			Key:               "severe",
			Name:              "Severe Climate Stress",
			CapacityReduction: 0.30,
			EfficiencyLoss:    0.20,
			EmissionFactor:    1.30,
			Description:       "Severe climate impacts: significant capacity constraints, notable efficiency degradation.",
		},
		Scenario{
			Key:               "extreme",
			Name:              "Extreme Climate Stress",
			CapacityReduction: 0.45,
			EfficiencyLoss:    0.35,
			EmissionFactor:    1.50,
			Description:       "Extreme climate impacts: major infrastructure stress, substantial performance degradation.",
		},
	)
	if err != nil {
		panic(err) // built-in catalog is statically valid
	}
	return c
}
