package core

import "math"

// Body holds the two-body gravitational parameters the engine needs. It is
// injected into the rendezvous model and the mesh rather than read from
// globals, so missions around other bodies reuse the same formulas.
type Body struct {
	// MuKm3S2 is the standard gravitational parameter, km^3/s^2.
	MuKm3S2 float64
	// RadiusKm is the mean body radius, km.
	RadiusKm float64
}

// EarthBody returns the parameters used by the stock mission profiles.
func EarthBody() Body {
	return Body{
		MuKm3S2:  398600.4418,
		RadiusKm: 6371.0,
	}
}

// OrbitRadiusKm converts an altitude above the surface to an orbital
// radius from the body centre.
func (b Body) OrbitRadiusKm(altitudeKm float64) float64 {
	return b.RadiusKm + altitudeKm
}

// CircularVelocityMS returns the circular orbital velocity at the given
// radius, in m/s. v = sqrt(mu / r), converted from km/s.
func (b Body) CircularVelocityMS(radiusKm float64) float64 {
	return math.Sqrt(b.MuKm3S2/radiusKm) * 1000.0
}
