package core

import "math"

// Vec3 is an ECI-style position vector in kilometres.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Norm returns the Euclidean norm of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DistanceTo returns the straight-line distance between two points.
func (v Vec3) DistanceTo(other Vec3) float64 {
	return v.Sub(other).Norm()
}

// hasLineOfSight checks whether the straight segment between p1 and p2
// clears the body sphere of the given radius (centred at the origin). If
// the segment dips inside the sphere the body blocks the laser link.
func hasLineOfSight(p1, p2 Vec3, bodyRadiusKm float64) bool {
	v := p2.Sub(p1)
	a := v.Dot(v)
	if a == 0 {
		// Same point: clear if it sits outside the body.
		return p1.Dot(p1) > bodyRadiusKm*bodyRadiusKm
	}

	// Closest point on the segment to the body centre:
	// t* minimises |p1 + t v|^2 over t, clamped to the segment.
	t := -p1.Dot(v) / a
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := Vec3{
		X: p1.X + v.X*t,
		Y: p1.Y + v.Y*t,
		Z: p1.Z + v.Z*t,
	}

	return closest.Dot(closest) > bodyRadiusKm*bodyRadiusKm
}
