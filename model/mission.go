package model

// MissionPhase identifies one of the five flight phases of the simulated
// insertion mission. Phases are a pure function of simulation time; the
// window table lives in core.
type MissionPhase int

const (
	PhaseAscent MissionPhase = iota
	PhaseTNIActivation
	PhaseOrbitalInsertion
	PhaseTNIDisconnect
	PhaseNominalOrbit
)

func (p MissionPhase) String() string {
	switch p {
	case PhaseAscent:
		return "ASCENT"
	case PhaseTNIActivation:
		return "TNI_ACTIVATION"
	case PhaseOrbitalInsertion:
		return "ORBITAL_INSERTION"
	case PhaseTNIDisconnect:
		return "TNI_DISCONNECT"
	case PhaseNominalOrbit:
		return "NOMINAL_ORBIT"
	default:
		return "UNKNOWN"
	}
}

// MissionPhaseState is the simulator's mutable state. It is owned
// exclusively by core.MissionSimulator; consumers receive value copies via
// Snapshot() and must not expect writes to be visible to the simulator.
type MissionPhaseState struct {
	TimeS           float64      `json:"time_s"`
	Phase           MissionPhase `json:"phase"`
	AltitudeKm      float64      `json:"altitude_km"`
	PositionErrorM  float64      `json:"position_error_m"`
	VelocityErrorMS float64      `json:"velocity_error_m_s"`
	DeltaVSavedMS   float64      `json:"delta_v_saved_m_s"`
	ActiveLinks     int          `json:"active_link_count"`
	TNIActive       bool         `json:"tni_active"`
}
