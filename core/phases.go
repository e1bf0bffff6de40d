package core

import (
	"math"

	"github.com/signalsfoundry/tni-rendezvous/model"
)

// PhaseWindow is one half-open [StartS, EndS) slice of the mission
// timeline. The final window is open-ended (EndS = +Inf).
type PhaseWindow struct {
	Phase  model.MissionPhase
	StartS float64
	EndS   float64
}

// phaseTimeline is the sorted, non-overlapping partition of [0, inf) into
// mission phases. Phase is a pure function of time; nothing is skipped or
// revisited without an explicit reset. Keeping the timeline as data (rather
// than a conditional chain) lets the partition invariant be checked by a
// test.
var phaseTimeline = []PhaseWindow{
	{model.PhaseAscent, 0, 150},
	{model.PhaseTNIActivation, 150, 170},
	{model.PhaseOrbitalInsertion, 170, 290},
	{model.PhaseTNIDisconnect, 290, 310},
	{model.PhaseNominalOrbit, 310, math.Inf(1)},
}

// Timeline returns a copy of the phase partition, for display and tests.
func Timeline() []PhaseWindow {
	out := make([]PhaseWindow, len(phaseTimeline))
	copy(out, phaseTimeline)
	return out
}

// PhaseAt maps a simulation time to its phase. Times before launch clamp
// to the first window.
func PhaseAt(tS float64) model.MissionPhase {
	for _, w := range phaseTimeline {
		if tS < w.EndS {
			return w.Phase
		}
	}
	return phaseTimeline[len(phaseTimeline)-1].Phase
}

// validTimeline reports whether the windows are sorted, contiguous from 0,
// and end open-ended. Exercised by tests to pin the partition invariant.
func validTimeline(windows []PhaseWindow) bool {
	if len(windows) == 0 || windows[0].StartS != 0 {
		return false
	}
	for i, w := range windows {
		if w.EndS <= w.StartS {
			return false
		}
		if i > 0 && windows[i-1].EndS != w.StartS {
			return false
		}
	}
	return math.IsInf(windows[len(windows)-1].EndS, 1)
}
