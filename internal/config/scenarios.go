package config

import (
	"fmt"
	"os"

	"powergas-profit/internal/model"

	"gopkg.in/yaml.v3"
)

// ScenariosFile is the on-disk shape (YAML) of a what-if scenario set.
// When base_trip is present each scenario's trip is an overlay on it, so a
// set of sourcing alternatives only spells out the fields that differ.
type ScenariosFile struct {
	BaseTrip  *TripConfig      `yaml:"base_trip"`
	Scenarios []ScenarioConfig `yaml:"scenarios"`
}

// ScenarioConfig is one named alternative.
type ScenarioConfig struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Trip        TripConfig `yaml:"trip"`
}

// LoadScenarios reads a scenario set and resolves every entry to full trip
// inputs. A scenario missing a mandatory field fails the load, tagged with
// the scenario's name.
func LoadScenarios(path string) ([]model.ScenarioEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f ScenariosFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}

	entries := make([]model.ScenarioEntry, 0, len(f.Scenarios))
	for _, sc := range f.Scenarios {
		tc := sc.Trip
		if f.BaseTrip != nil {
			tc = MergeTrip(*f.BaseTrip, sc.Trip)
		}
		trip, err := tc.ToModel()
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		entries = append(entries, model.ScenarioEntry{
			Name:        sc.Name,
			Description: sc.Description,
			Trip:        trip,
		})
	}
	return entries, nil
}
