package core

import (
	"errors"
	"math"
	"testing"

	"github.com/signalsfoundry/tni-rendezvous/model"
)

func testProjector(t *testing.T) *Projector {
	t.Helper()
	p, err := NewProjector(model.DefaultFleetParams())
	if err != nil {
		t.Fatalf("NewProjector() error: %v", err)
	}
	return p
}

func TestProjectorRejectsBadFleet(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.FleetParams)
	}{
		{"zero dry mass", func(f *model.FleetParams) { f.DryMassKg = 0 }},
		{"negative dry mass", func(f *model.FleetParams) { f.DryMassKg = -1 }},
		{"zero isp", func(f *model.FleetParams) { f.IspS = 0 }},
		{"negative isp", func(f *model.FleetParams) { f.IspS = -380 }},
		{"negative missions", func(f *model.FleetParams) { f.MissionsPerYear = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fleet := model.DefaultFleetParams()
			tc.mutate(&fleet)
			if _, err := NewProjector(fleet); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("NewProjector() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestMissionImpactZeroSavings(t *testing.T) {
	p := testProjector(t)
	impact, err := p.MissionImpact(0)
	if err != nil {
		t.Fatalf("MissionImpact(0) error: %v", err)
	}
	if impact.PropellantSavedKg != 0 || impact.PayloadValueUSD != 0 || impact.ExtraSatellites != 0 {
		t.Errorf("zero savings should project zero impact, got %+v", impact)
	}
}

func TestMissionImpactKnownValue(t *testing.T) {
	p := testProjector(t)
	impact, err := p.MissionImpact(30)
	if err != nil {
		t.Fatalf("MissionImpact(30) error: %v", err)
	}

	wantProp := PropellantMass(30, 100000, 380)
	if math.Abs(impact.PropellantSavedKg-wantProp) > 1e-9 {
		t.Errorf("propellant = %v, want %v", impact.PropellantSavedKg, wantProp)
	}
	if math.Abs(impact.PropellantCostUSD-wantProp*0.50) > 1e-9 {
		t.Errorf("cost = %v, want %v", impact.PropellantCostUSD, wantProp*0.50)
	}
	if impact.PayloadGainKg != impact.PropellantSavedKg {
		t.Errorf("payload gain %v should equal propellant saved %v", impact.PayloadGainKg, impact.PropellantSavedKg)
	}
	if math.Abs(impact.PayloadValueUSD-wantProp*2940) > 1e-6 {
		t.Errorf("payload value = %v, want %v", impact.PayloadValueUSD, wantProp*2940)
	}
	if want := int(wantProp / 260); impact.ExtraSatellites != want {
		t.Errorf("extra satellites = %v, want %v", impact.ExtraSatellites, want)
	}
}

func TestMissionImpactRejectsNegativeSavings(t *testing.T) {
	p := testProjector(t)
	if _, err := p.MissionImpact(-1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("MissionImpact(-1) error = %v, want ErrInvalidInput", err)
	}
}

func TestFleetImpactScalesWithMissions(t *testing.T) {
	p := testProjector(t)
	mission, err := p.MissionImpact(30)
	if err != nil {
		t.Fatalf("MissionImpact(30) error: %v", err)
	}
	fleet, err := p.FleetImpact(30)
	if err != nil {
		t.Fatalf("FleetImpact(30) error: %v", err)
	}

	if want := mission.PropellantSavedKg * 100; math.Abs(fleet.PropellantSavedKg-want) > 1e-6 {
		t.Errorf("annual propellant = %v, want %v", fleet.PropellantSavedKg, want)
	}
	if want := 30.0 * 100; fleet.DeltaVSavedMS != want {
		t.Errorf("annual delta-v = %v, want %v", fleet.DeltaVSavedMS, want)
	}
	wantSats := int(mission.PropellantSavedKg * 100 / 260)
	if fleet.ExtraSatellites != wantSats {
		t.Errorf("annual satellites = %v, want %v", fleet.ExtraSatellites, wantSats)
	}
	if want := float64(wantSats) / 60; math.Abs(fleet.EquivalentLaunches-want) > 1e-9 {
		t.Errorf("equivalent launches = %v, want %v", fleet.EquivalentLaunches, want)
	}
}
