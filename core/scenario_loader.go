// core/scenario_loader.go
package core

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signalsfoundry/tni-rendezvous/catalog"
	"github.com/signalsfoundry/tni-rendezvous/model"
)

// ScenarioSet is a small summary of what was loaded from JSON. It's mainly
// useful for logging from main().
type ScenarioSet struct {
	ScenarioIDs []string
	Fleet       model.FleetParams
}

// internal JSON shapes, kept unexported so we're free to evolve them.
type scenarioFileJSON struct {
	Scenarios []scenarioJSON     `json:"scenarios"`
	Fleet     *model.FleetParams `json:"fleet"`
}

type scenarioJSON struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Scenario model.Scenario `json:"scenario"`
}

// LoadScenarios reads a JSON scenario file from r, registers every
// scenario in the catalog, and returns a summary including the fleet
// parameters (defaults when the file omits them). Structural errors and
// catalog rejections (duplicates, invalid scenarios) fail the load: a
// partially loaded catalog is worse than no catalog.
func LoadScenarios(cat *catalog.Catalog, r io.Reader) (*ScenarioSet, error) {
	if cat == nil {
		return nil, fmt.Errorf("LoadScenarios: catalog is nil")
	}

	var payload scenarioFileJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadScenarios: decode failed: %w", err)
	}

	result := &ScenarioSet{
		ScenarioIDs: make([]string, 0, len(payload.Scenarios)),
		Fleet:       model.DefaultFleetParams(),
	}
	if payload.Fleet != nil {
		result.Fleet = *payload.Fleet
	}
	if err := result.Fleet.Validate(); err != nil {
		return nil, fmt.Errorf("LoadScenarios: fleet: %w", err)
	}

	for _, js := range payload.Scenarios {
		if js.ID == "" {
			return nil, fmt.Errorf("LoadScenarios: scenario with empty id")
		}
		if err := cat.Add(catalog.Entry{ID: js.ID, Name: js.Name, Scenario: js.Scenario}); err != nil {
			return nil, fmt.Errorf("LoadScenarios: %w", err)
		}
		result.ScenarioIDs = append(result.ScenarioIDs, js.ID)
	}

	return result, nil
}

// BuiltinScenarios fills the catalog with the four canonical mission
// profiles.
func BuiltinScenarios(cat *catalog.Catalog) error {
	builtins := []catalog.Entry{
		{
			ID:   "leo-depot",
			Name: "LEO Depot Refueling (50 km separation, coplanar)",
			Scenario: model.Scenario{
				Chaser:       model.OrbitState{AltitudeKm: 395},
				Target:       model.OrbitState{AltitudeKm: 400},
				SeparationKm: 50,
			},
		},
		{
			ID:   "extended-range",
			Name: "Extended Range Rendezvous (200 km, 40 km altitude diff)",
			Scenario: model.Scenario{
				Chaser:       model.OrbitState{AltitudeKm: 380},
				Target:       model.OrbitState{AltitudeKm: 420},
				SeparationKm: 200,
			},
		},
		{
			ID:   "inclined",
			Name: "Inclined Orbit Rendezvous (1° plane change required)",
			Scenario: model.Scenario{
				Chaser:             model.OrbitState{AltitudeKm: 400, InclinationDeg: 28.5},
				Target:             model.OrbitState{AltitudeKm: 400, InclinationDeg: 29.5},
				SeparationKm:       100,
				InclinationDiffDeg: 1.0,
			},
		},
		{
			ID:   "emergency",
			Name: "Emergency Rendezvous (300 km, 100 km altitude diff)",
			Scenario: model.Scenario{
				Chaser:       model.OrbitState{AltitudeKm: 350},
				Target:       model.OrbitState{AltitudeKm: 450},
				SeparationKm: 300,
			},
		},
	}

	for _, e := range builtins {
		if err := cat.Add(e); err != nil {
			return err
		}
	}
	return nil
}
