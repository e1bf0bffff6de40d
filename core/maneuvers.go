package core

import "math"

// Standard gravity, m/s^2, used by the rocket equation.
const g0 = 9.80665

// phasingAltitudeOffsetKm is the fixed drop used by the phasing cycle.
const phasingAltitudeOffsetKm = 5.0

// This file is the maneuver cost library: closed-form delta-v formulas for
// the individual burns a rendezvous is composed of. Per the engine's
// propagation policy these functions assume valid inputs (positive radii,
// non-negative delta-v); validation happens at the RendezvousModel and
// Projector boundaries.

// HohmannTransfer returns the two burn magnitudes, in m/s, of a minimum
// energy transfer between circular orbits of radius r1Km and r2Km. Both
// burns are absolute values, so the result is direction-agnostic: raising
// and lowering between the same pair of radii cost the same total.
func HohmannTransfer(body Body, r1Km, r2Km float64) (dv1MS, dv2MS float64) {
	mu := body.MuKm3S2

	// First burn: leave the circular orbit at r1 onto the transfer ellipse.
	v1 := math.Sqrt(mu / r1Km)
	vTransfer1 := math.Sqrt(mu * (2/r1Km - 2/(r1Km+r2Km)))
	dv1MS = math.Abs(vTransfer1-v1) * 1000.0

	// Second burn: circularize at r2.
	v2 := math.Sqrt(mu / r2Km)
	vTransfer2 := math.Sqrt(mu * (2/r2Km - 2/(r1Km+r2Km)))
	dv2MS = math.Abs(v2-vTransfer2) * 1000.0

	return dv1MS, dv2MS
}

// PlaneChangeDV returns the single-burn cost, in m/s, of rotating the
// orbital plane by angleDeg at constant speed vMS: dv = 2 v sin(theta/2).
func PlaneChangeDV(vMS, angleDeg float64) float64 {
	angleRad := angleDeg * math.Pi / 180.0
	return 2 * vMS * math.Sin(angleRad/2)
}

// PhasingManeuverDV returns the cost, in m/s, of a phasing cycle at radius
// rKm: drop 5 km to a faster orbit, then raise back. The cost is the sum
// of the first burns of the two Hohmann legs.
//
// phaseAngleDeg is accepted but does not enter the cost: the model prices
// a fixed-offset cycle regardless of how far the target leads. This is a
// known simplification, kept so results stay comparable across runs;
// callers that need angle-dependent phasing must size the offset
// themselves.
func PhasingManeuverDV(body Body, rKm, phaseAngleDeg float64) float64 {
	_ = phaseAngleDeg

	r1 := rKm
	r2 := rKm - phasingAltitudeOffsetKm

	dvDown, _ := HohmannTransfer(body, r1, r2)
	dvUp, _ := HohmannTransfer(body, r2, r1)

	return dvDown + dvUp
}

// PropellantMass returns the propellant, in kg, a vehicle of the given dry
// mass burns to produce dvMS with an engine of the given specific impulse.
// Tsiolkovsky: m_initial = m_dry / exp(-dv/ve), propellant is the
// difference. Returns exactly 0 for dv = 0.
func PropellantMass(dvMS, dryMassKg, ispS float64) float64 {
	ve := ispS * g0
	massRatio := math.Exp(-dvMS / ve)
	initialMass := dryMassKg / massRatio
	return initialMass - dryMassKg
}
