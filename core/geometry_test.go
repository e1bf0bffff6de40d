package core

import (
	"math"
	"testing"
)

func TestHasLineOfSight_NoObstruction(t *testing.T) {
	// Two nodes high and on the same side of the body, separated in Y.
	// The segment between them stays at x ≈ 8000 km, well outside Earth.
	posA := Vec3{X: 8000, Y: 0, Z: 0}
	posB := Vec3{X: 8000, Y: 1000, Z: 0}

	if !hasLineOfSight(posA, posB, EarthBody().RadiusKm) {
		t.Errorf("expected LoS between two high nodes on same side of the body")
	}
}

func TestHasLineOfSight_Obstructed(t *testing.T) {
	// Two points on opposite sides: the chord passes through the body.
	posA := Vec3{X: 7000, Y: 0, Z: 0}
	posB := Vec3{X: -7000, Y: 0, Z: 0}

	if hasLineOfSight(posA, posB, EarthBody().RadiusKm) {
		t.Errorf("expected LoS to be blocked by the body")
	}
}

func TestHasLineOfSight_GrazingDependsOnRadius(t *testing.T) {
	// An antipodal chord at 7000 km clears a 6371 km sphere only if we
	// shrink the body below the chord's closest approach.
	posA := Vec3{X: 7000, Y: 20000, Z: 0}
	posB := Vec3{X: 7000, Y: -20000, Z: 0}

	if !hasLineOfSight(posA, posB, 6371) {
		t.Errorf("chord at x=7000 km should clear a 6371 km body")
	}
	if hasLineOfSight(posA, posB, 7500) {
		t.Errorf("chord at x=7000 km should be blocked by a 7500 km body")
	}
}

func TestHasLineOfSight_SamePoint(t *testing.T) {
	outside := Vec3{X: 8000, Y: 0, Z: 0}
	if !hasLineOfSight(outside, outside, 6371) {
		t.Errorf("coincident point outside the body should count as visible")
	}

	inside := Vec3{X: 1000, Y: 0, Z: 0}
	if hasLineOfSight(inside, inside, 6371) {
		t.Errorf("coincident point inside the body should count as blocked")
	}
}

func TestVec3Operations(t *testing.T) {
	a := Vec3{X: 3, Y: 4, Z: 0}
	b := Vec3{X: 0, Y: 4, Z: 0}

	if got := a.Norm(); got != 5 {
		t.Errorf("Norm() = %v, want 5", got)
	}
	if got := a.Sub(b); got != (Vec3{X: 3}) {
		t.Errorf("Sub() = %+v, want {3 0 0}", got)
	}
	if got := a.Dot(b); got != 16 {
		t.Errorf("Dot() = %v, want 16", got)
	}
	if got := a.DistanceTo(b); math.Abs(got-3) > 1e-12 {
		t.Errorf("DistanceTo() = %v, want 3", got)
	}
}
