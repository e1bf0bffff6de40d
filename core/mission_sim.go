package core

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/signalsfoundry/tni-rendezvous/internal/logging"
	"github.com/signalsfoundry/tni-rendezvous/model"
)

// Baseline navigation precision before the mesh is up, and the floors the
// laser links decay the errors toward.
const (
	baselinePositionErrorM  = 25.0
	baselineVelocityErrorMS = 0.15
	positionErrorFloorM     = 0.03
	velocityErrorFloorMS    = 0.003

	// Exponential decay time constants after link-up, seconds.
	positionDecayTauS = 9.0
	velocityDecayTauS = 7.0

	maxActiveLinks = 10
)

// Noise is the injectable randomness behind the jittered error readings.
// Float64 must return a uniform value in [0, 1). *rand.Rand satisfies it;
// tests substitute a deterministic source to assert exact bounds.
type Noise interface {
	Float64() float64
}

// MissionSimulator is the finite state machine driving the simulated
// insertion mission. It owns its MissionPhaseState exclusively: one
// external caller issues sequential Advance calls, and consumers read
// value copies via Snapshot. No locking: single writer, nothing shared.
type MissionSimulator struct {
	log   logging.Logger
	noise Noise

	state   model.MissionPhaseState
	running bool
}

// NewMissionSimulator builds a simulator at t = 0 in ASCENT with baseline
// errors. Nil noise gets a time-seeded source; nil log gets a noop.
func NewMissionSimulator(noise Noise, log logging.Logger) *MissionSimulator {
	if noise == nil {
		noise = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = logging.Noop()
	}
	s := &MissionSimulator{log: log, noise: noise}
	s.Reset()
	return s
}

// Reset returns the simulator to launch: t = 0, ASCENT, baseline errors.
// This is the only way a phase is ever revisited.
func (s *MissionSimulator) Reset() {
	s.state = model.MissionPhaseState{
		Phase:           model.PhaseAscent,
		PositionErrorM:  baselinePositionErrorM,
		VelocityErrorMS: baselineVelocityErrorMS,
	}
	s.running = true
}

// Running reports whether the mission is still advancing. It turns false
// once the terminal NOMINAL_ORBIT phase is reached.
func (s *MissionSimulator) Running() bool { return s.running }

// Snapshot returns a value copy of the current state for consumers.
func (s *MissionSimulator) Snapshot() model.MissionPhaseState { return s.state }

// Advance moves simulation time forward by dtS seconds and applies the
// formula of the phase the NEW time lands in; steps crossing a boundary
// are never blended across it. Zero or negative steps and calls after
// termination are no-ops.
func (s *MissionSimulator) Advance(dtS float64) {
	if !s.running || dtS <= 0 {
		return
	}

	s.state.TimeS += dtS
	t := s.state.TimeS

	phase := PhaseAt(t)
	prev := s.state.Phase
	s.state.Phase = phase

	switch phase {
	case model.PhaseAscent:
		// Powered ascent to the 200 km staging altitude. Navigation is
		// inertial/GPS only; errors hold at baseline.
		s.state.AltitudeKm = (t / 150) * 200
		s.state.TNIActive = false
		s.state.ActiveLinks = 0
		s.state.PositionErrorM = baselinePositionErrorM
		s.state.VelocityErrorMS = baselineVelocityErrorMS

	case model.PhaseTNIActivation:
		// Laser links come up one by one; precision converges
		// exponentially toward the mesh floor.
		sinceActivation := t - 150
		s.state.TNIActive = true
		s.state.ActiveLinks = min(maxActiveLinks, int(sinceActivation*0.5))
		s.state.PositionErrorM = math.Max(positionErrorFloorM, 20*math.Exp(-sinceActivation/positionDecayTauS))
		s.state.VelocityErrorMS = math.Max(velocityErrorFloorMS, baselineVelocityErrorMS*math.Exp(-sinceActivation/velocityDecayTauS))

	case model.PhaseOrbitalInsertion:
		// Errors sit on the floor with sensor jitter; savings are derived
		// from how far below baseline the position error sits. The
		// derivation deliberately ignores velocity error.
		s.state.AltitudeKm = 200 + (t-170)*0.91
		s.state.PositionErrorM = positionErrorFloorM + s.noise.Float64()*0.02
		s.state.VelocityErrorMS = 0.002 + s.noise.Float64()*0.001
		s.state.DeltaVSavedMS = 45 * (1 - s.state.PositionErrorM/baselinePositionErrorM)

	case model.PhaseTNIDisconnect:
		s.state.ActiveLinks = max(0, maxActiveLinks-int((t-290)*0.5))

	case model.PhaseNominalOrbit:
		s.running = false
	}

	if phase != prev {
		s.log.Info(context.Background(), "mission phase transition",
			logging.String("from", prev.String()),
			logging.String("to", phase.String()),
			logging.Float64("t_s", t),
		)
	}
}
