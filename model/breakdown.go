package model

// Safety margin fractions applied on top of the six planned phases.
// Standard navigation carries conservative 22% margins; TNI's precision
// justifies 9%.
const (
	StandardSafetyFraction = 0.22
	TNISafetyFraction      = 0.09
)

// DeltaVBreakdown is a per-phase delta-v budget for one rendezvous, in m/s.
// All components are magnitudes (non-negative). SafetyMargin is always a
// fixed fraction of the sum of the other six components; use
// NewDeltaVBreakdown so it can never drift out of sync with them.
type DeltaVBreakdown struct {
	SearchAcquisition   float64 `json:"search_acquisition"`
	Transfer            float64 `json:"transfer"`
	PlaneChange         float64 `json:"plane_change"`
	ApproachCorrections float64 `json:"approach_corrections"`
	FinalApproach       float64 `json:"final_approach"`
	Docking             float64 `json:"docking"`
	SafetyMargin        float64 `json:"safety_margin"`
}

// NewDeltaVBreakdown assembles a breakdown from the six planned components
// and recomputes the safety margin as safetyFraction times their sum.
func NewDeltaVBreakdown(search, transfer, planeChange, approach, final, docking, safetyFraction float64) DeltaVBreakdown {
	planned := search + transfer + planeChange + approach + final + docking
	return DeltaVBreakdown{
		SearchAcquisition:   search,
		Transfer:            transfer,
		PlaneChange:         planeChange,
		ApproachCorrections: approach,
		FinalApproach:       final,
		Docking:             docking,
		SafetyMargin:        planned * safetyFraction,
	}
}

// Total returns the sum of all seven components.
func (b DeltaVBreakdown) Total() float64 {
	return b.SearchAcquisition +
		b.Transfer +
		b.PlaneChange +
		b.ApproachCorrections +
		b.FinalApproach +
		b.Docking +
		b.SafetyMargin
}
