package core

import (
	"fmt"

	"github.com/signalsfoundry/tni-rendezvous/model"
)

// Projector converts delta-v savings into propellant, cost, and payload
// figures for a fleet. It is a pure consumer of the rendezvous model and
// simulator outputs: no internal state, no side effects.
type Projector struct {
	Fleet model.FleetParams
}

// NewProjector validates the fleet parameters once so every projection can
// assume a usable rocket equation.
func NewProjector(fleet model.FleetParams) (*Projector, error) {
	if err := fleet.Validate(); err != nil {
		return nil, fmt.Errorf("%w: economic projector: %v", ErrInvalidInput, err)
	}
	return &Projector{Fleet: fleet}, nil
}

// MissionImpact is the per-mission economic value of a delta-v saving.
// Payload capacity gain equals the propellant no longer carried.
type MissionImpact struct {
	DeltaVSavedMS     float64
	PropellantSavedKg float64
	PropellantCostUSD float64
	PayloadGainKg     float64
	PayloadValueUSD   float64
	ExtraSatellites   int
}

// FleetImpact aggregates mission impacts over a year of operations.
type FleetImpact struct {
	MissionsPerYear    int
	DeltaVSavedMS      float64
	PropellantSavedKg  float64
	PayloadGainKg      float64
	PayloadValueUSD    float64
	ExtraSatellites    int
	EquivalentLaunches float64
}

// MissionImpact projects the value of saving dvSavedMS on one rendezvous.
// Negative savings are rejected: they indicate the caller compared the
// strategies the wrong way round, not a priceable outcome.
func (p *Projector) MissionImpact(dvSavedMS float64) (MissionImpact, error) {
	if dvSavedMS < 0 {
		return MissionImpact{}, fmt.Errorf("%w: delta-v saved %.3f m/s is negative; it feeds the rocket-equation propellant saving", ErrInvalidInput, dvSavedMS)
	}

	propellantKg := PropellantMass(dvSavedMS, p.Fleet.DryMassKg, p.Fleet.IspS)

	return MissionImpact{
		DeltaVSavedMS:     dvSavedMS,
		PropellantSavedKg: propellantKg,
		PropellantCostUSD: propellantKg * p.Fleet.PropellantCostPerKg,
		PayloadGainKg:     propellantKg,
		PayloadValueUSD:   propellantKg * p.Fleet.PayloadValuePerKg,
		ExtraSatellites:   int(propellantKg / p.Fleet.SatelliteMassKg),
	}, nil
}

// FleetImpact projects a year of missions at the given average saving.
func (p *Projector) FleetImpact(avgDvSavedMS float64) (FleetImpact, error) {
	mission, err := p.MissionImpact(avgDvSavedMS)
	if err != nil {
		return FleetImpact{}, err
	}

	n := float64(p.Fleet.MissionsPerYear)
	annualPropellant := mission.PropellantSavedKg * n
	extraSats := int(annualPropellant / p.Fleet.SatelliteMassKg)

	return FleetImpact{
		MissionsPerYear:    p.Fleet.MissionsPerYear,
		DeltaVSavedMS:      avgDvSavedMS * n,
		PropellantSavedKg:  annualPropellant,
		PayloadGainKg:      annualPropellant,
		PayloadValueUSD:    annualPropellant * p.Fleet.PayloadValuePerKg,
		ExtraSatellites:    extraSats,
		EquivalentLaunches: float64(extraSats) / float64(p.Fleet.SatsPerLaunch),
	}, nil
}
