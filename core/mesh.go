package core

import (
	"math"
	"sort"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
)

// Reference mesh geometry: an 18-node ring at Starlink altitude, nodes
// staggered by 0.3 rad on alternating slots, each advancing at a fixed
// angular rate.
const (
	DefaultMeshNodes      = 18
	DefaultMeshAltitudeKm = 550.0
	meshOmegaRadS         = 0.0011
	meshStaggerRad        = 0.3
)

// NodeMotion yields a mesh node's position at a simulation time.
type NodeMotion interface {
	PositionAt(simTime time.Time) Vec3
}

// CircularNodeMotion moves a node on an analytic circular orbit in the
// reference plane. Good enough for link-geometry estimates; use
// SGP4NodeMotion when real ephemerides are available.
type CircularNodeMotion struct {
	RadiusKm  float64
	PhaseRad  float64
	OmegaRadS float64
	Epoch     time.Time
}

// PositionAt returns the node position after propagating the phase from
// the epoch.
func (m *CircularNodeMotion) PositionAt(simTime time.Time) Vec3 {
	angle := m.PhaseRad + m.OmegaRadS*simTime.Sub(m.Epoch).Seconds()
	return Vec3{
		X: m.RadiusKm * math.Cos(angle),
		Y: m.RadiusKm * math.Sin(angle),
	}
}

// SGP4NodeMotion propagates a node from TLE lines.
type SGP4NodeMotion struct {
	sat satellite.Satellite
}

// NewSGP4NodeMotion builds an SGP4 propagator from the two TLE lines.
func NewSGP4NodeMotion(line1, line2 string) *SGP4NodeMotion {
	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)
	return &SGP4NodeMotion{sat: sat}
}

// PositionAt propagates the node to simTime. go-satellite works in ECI
// kilometres, which is what the mesh geometry wants.
func (m *SGP4NodeMotion) PositionAt(simTime time.Time) Vec3 {
	year, month, day := simTime.Date()
	hour, minute, sec := simTime.Clock()
	pos, _ := satellite.Propagate(m.sat, year, int(month), day, hour, minute, sec)
	return Vec3{X: pos.X, Y: pos.Y, Z: pos.Z}
}

// MeshNode is one navigation node of the laser mesh.
type MeshNode struct {
	ID     int
	Motion NodeMotion
}

// NavMesh is the constellation of transient navigation nodes a vehicle
// can range against during insertion.
type NavMesh struct {
	Body  Body
	Nodes []MeshNode
}

// NewRingMesh builds the reference ring constellation: n nodes evenly
// spread at the given altitude, alternating slots staggered ahead.
func NewRingMesh(body Body, n int, altitudeKm float64, epoch time.Time) *NavMesh {
	radius := body.OrbitRadiusKm(altitudeKm)
	nodes := make([]MeshNode, 0, n)
	for i := 0; i < n; i++ {
		phase := (float64(i)/float64(n))*2*math.Pi + float64(i%2)*meshStaggerRad
		nodes = append(nodes, MeshNode{
			ID: i,
			Motion: &CircularNodeMotion{
				RadiusKm:  radius,
				PhaseRad:  phase,
				OmegaRadS: meshOmegaRadS,
				Epoch:     epoch,
			},
		})
	}
	return &NavMesh{Body: body, Nodes: nodes}
}

// VisibleNode is a mesh node the vehicle currently has line of sight to.
type VisibleNode struct {
	ID       int
	Position Vec3
	RangeKm  float64
}

// VisibleFrom returns the mesh nodes visible from pos at simTime, nearest
// first. Nodes behind the body limb are excluded.
func (m *NavMesh) VisibleFrom(pos Vec3, simTime time.Time) []VisibleNode {
	visible := make([]VisibleNode, 0, len(m.Nodes))
	for _, node := range m.Nodes {
		np := node.Motion.PositionAt(simTime)
		if !hasLineOfSight(pos, np, m.Body.RadiusKm) {
			continue
		}
		visible = append(visible, VisibleNode{
			ID:       node.ID,
			Position: np,
			RangeKm:  pos.DistanceTo(np),
		})
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i].RangeKm < visible[j].RangeKm })
	return visible
}

// VehiclePosition places the vehicle on its simple display orbit: radius
// from the current altitude, angle advancing at 0.02 rad per simulated
// second. It exists for the mesh-visibility report, not for trajectory
// work.
func VehiclePosition(body Body, altitudeKm, tS float64) Vec3 {
	r := body.OrbitRadiusKm(altitudeKm)
	angle := tS * 0.02
	return Vec3{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}
