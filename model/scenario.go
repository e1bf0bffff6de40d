package model

import "fmt"

// Scenario is the immutable input for one rendezvous comparison: a chaser
// and target orbit, their along-track separation, and the plane difference.
type Scenario struct {
	Chaser             OrbitState `json:"chaser"`
	Target             OrbitState `json:"target"`
	SeparationKm       float64    `json:"separation_km"`
	InclinationDiffDeg float64    `json:"inclination_diff_deg"`
}

// Validate checks the scenario at the engine boundary. Separations below
// 1 km are NOT rejected: the final-approach formula clamps them to 1 km
// inside log10 on purpose. Negative values are rejected because they also
// feed the linear search and approach-correction terms.
func (s Scenario) Validate() error {
	if err := s.Chaser.Validate(); err != nil {
		return fmt.Errorf("chaser: %w", err)
	}
	if err := s.Target.Validate(); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	if s.SeparationKm < 0 {
		return fmt.Errorf("separation %.3f km is negative; it feeds the search, approach-correction and final-approach terms", s.SeparationKm)
	}
	if s.InclinationDiffDeg < 0 {
		return fmt.Errorf("inclination difference %.3f deg is negative; plane-change cost is defined for non-negative angles", s.InclinationDiffDeg)
	}
	return nil
}

// FleetParams carries the vehicle and fleet economics used by the
// projector. Cost constants default to typical figures for a methalox
// upper stage and rideshare payload pricing; all are injectable.
type FleetParams struct {
	DryMassKg       float64 `json:"dry_mass_kg"`
	IspS            float64 `json:"isp_s"`
	MissionsPerYear int     `json:"missions_per_year"`

	PropellantCostPerKg float64 `json:"propellant_cost_per_kg"`
	PayloadValuePerKg   float64 `json:"payload_value_per_kg"`
	SatelliteMassKg     float64 `json:"satellite_mass_kg"`
	SatsPerLaunch       int     `json:"sats_per_launch"`
}

// DefaultFleetParams returns the reference fleet: a 100 t dry-mass vehicle
// with a 380 s engine flying 100 missions a year.
func DefaultFleetParams() FleetParams {
	return FleetParams{
		DryMassKg:           100000,
		IspS:                380,
		MissionsPerYear:     100,
		PropellantCostPerKg: 0.50,
		PayloadValuePerKg:   2940,
		SatelliteMassKg:     260,
		SatsPerLaunch:       60,
	}
}

// Validate rejects fleet parameters that would make the rocket equation
// divide by zero or exponentiate garbage.
func (f FleetParams) Validate() error {
	if f.DryMassKg <= 0 {
		return fmt.Errorf("dry mass %.1f kg is not positive; it feeds the rocket-equation propellant mass", f.DryMassKg)
	}
	if f.IspS <= 0 {
		return fmt.Errorf("specific impulse %.1f s is not positive; it feeds the rocket-equation exhaust velocity", f.IspS)
	}
	if f.MissionsPerYear < 0 {
		return fmt.Errorf("missions per year %d is negative", f.MissionsPerYear)
	}
	return nil
}
