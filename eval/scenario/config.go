package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML shape of a scenario override file:
//
//	scenarios:
//	  - key: heatwave
//	    name: Prolonged Heatwave
//	    capacity_reduction: 0.25
//	    efficiency_loss: 0.15
//	    emission_factor: 1.2
type catalogFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads a scenario catalog from a YAML file. The file fully replaces
// the built-in catalog; callers wanting the defaults plus extras list the
// defaults in the file too. Every scenario is validated on load.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario config: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scenario config: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario config %s: no scenarios defined", path)
	}

	c, err := NewCatalog(file.Scenarios...)
	if err != nil {
		return nil, fmt.Errorf("scenario config %s: %w", path, err)
	}
	return c, nil
}
