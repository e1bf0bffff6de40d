package model

import "fmt"

// OrbitState describes a circular orbit by its altitude above the body
// surface and its inclination. Radius and circular velocity are derived
// through core.Body so the gravitational model stays injectable.
type OrbitState struct {
	AltitudeKm     float64 `json:"altitude_km"`
	InclinationDeg float64 `json:"inclination_deg"`
}

// Validate rejects orbits that would produce a non-positive radius
// downstream. The radius is used as a divisor in every velocity formula,
// so a negative altitude must be caught here, not propagated as NaN.
func (o OrbitState) Validate() error {
	if o.AltitudeKm < 0 {
		return fmt.Errorf("orbit altitude %.3f km is negative; it feeds the orbital radius used by the velocity and transfer formulas", o.AltitudeKm)
	}
	return nil
}
