package core

import (
	"context"
	"fmt"
	"math"

	"github.com/signalsfoundry/tni-rendezvous/internal/logging"
	"github.com/signalsfoundry/tni-rendezvous/model"
)

// RendezvousModel prices a full rendezvous under the two navigation
// strategies. It composes the maneuver cost library into per-phase
// breakdowns; all scenario validation happens here, at the boundary.
type RendezvousModel struct {
	Body Body
	Log  logging.Logger
}

// NewRendezvousModel builds a model for the given body. A nil logger is
// replaced with a noop.
func NewRendezvousModel(body Body, log logging.Logger) *RendezvousModel {
	if log == nil {
		log = logging.Noop()
	}
	return &RendezvousModel{Body: body, Log: log}
}

// Comparison holds both breakdowns for one scenario plus the derived
// savings of flying it with TNI instead of standard navigation.
type Comparison struct {
	Standard  model.DeltaVBreakdown
	TNI       model.DeltaVBreakdown
	SavingsMS float64
}

// SavingsPercent returns the savings as a fraction of the standard total,
// in percent. Zero standard total yields 0.
func (c Comparison) SavingsPercent() float64 {
	if c.Standard.Total() == 0 {
		return 0
	}
	return c.SavingsMS / c.Standard.Total() * 100
}

// Standard prices the scenario under conventional GPS/radio navigation.
func (m *RendezvousModel) Standard(sc model.Scenario) (model.DeltaVBreakdown, error) {
	if err := sc.Validate(); err != nil {
		return model.DeltaVBreakdown{}, fmt.Errorf("%w: standard rendezvous: %v", ErrInvalidInput, err)
	}

	// Search and acquisition: radio acquisition cost grows with range.
	search := 8.0 + (sc.SeparationKm/50)*2.0

	dv1, dv2 := HohmannTransfer(m.Body, m.Body.OrbitRadiusKm(sc.Chaser.AltitudeKm), m.Body.OrbitRadiusKm(sc.Target.AltitudeKm))
	transfer := dv1 + dv2

	planeChange := 0.0
	if sc.InclinationDiffDeg > 0 {
		targetV := m.Body.CircularVelocityMS(m.Body.OrbitRadiusKm(sc.Target.AltitudeKm))
		planeChange = PlaneChangeDV(targetV, sc.InclinationDiffDeg)
	}

	// Accumulated GPS-grade errors force multiple correction burns.
	approach := 6.0 + (sc.SeparationKm/100)*4.0

	final := 4.0 + 0.5*log10ClampedSeparation(sc.SeparationKm)

	docking := 3.0

	return model.NewDeltaVBreakdown(search, transfer, planeChange, approach, final, docking, model.StandardSafetyFraction), nil
}

// TNI prices the scenario under laser-mesh-assisted navigation. The mesh
// removes the search phase, tightens burn timing (transfer scaled 0.7),
// lets the plane change combine with other burns (scaled 0.85), and cuts
// corrections, approach and margins through precision.
func (m *RendezvousModel) TNI(sc model.Scenario) (model.DeltaVBreakdown, error) {
	if err := sc.Validate(); err != nil {
		return model.DeltaVBreakdown{}, fmt.Errorf("%w: TNI rendezvous: %v", ErrInvalidInput, err)
	}

	// Instant acquisition through the mesh; only attitude alignment.
	search := 1.5

	dv1, dv2 := HohmannTransfer(m.Body, m.Body.OrbitRadiusKm(sc.Chaser.AltitudeKm), m.Body.OrbitRadiusKm(sc.Target.AltitudeKm))
	transfer := (dv1 + dv2) * 0.7

	planeChange := 0.0
	if sc.InclinationDiffDeg > 0 {
		targetV := m.Body.CircularVelocityMS(m.Body.OrbitRadiusKm(sc.Target.AltitudeKm))
		planeChange = PlaneChangeDV(targetV, sc.InclinationDiffDeg) * 0.85
	}

	// Sub-30 cm precision: a single correction burn suffices.
	approach := 2.0 + (sc.SeparationKm/200)*1.0

	final := 1.5 + 0.2*log10ClampedSeparation(sc.SeparationKm)

	docking := 1.2

	return model.NewDeltaVBreakdown(search, transfer, planeChange, approach, final, docking, model.TNISafetyFraction), nil
}

// Compare prices the scenario under both strategies and derives the
// savings. Validation happens once up front so a single error names the
// bad input for both breakdowns.
func (m *RendezvousModel) Compare(ctx context.Context, sc model.Scenario) (Comparison, error) {
	if err := sc.Validate(); err != nil {
		return Comparison{}, fmt.Errorf("%w: rendezvous comparison: %v", ErrInvalidInput, err)
	}

	standard, err := m.Standard(sc)
	if err != nil {
		return Comparison{}, err
	}
	tni, err := m.TNI(sc)
	if err != nil {
		return Comparison{}, err
	}

	cmp := Comparison{
		Standard:  standard,
		TNI:       tni,
		SavingsMS: standard.Total() - tni.Total(),
	}

	m.Log.Debug(ctx, "compared rendezvous strategies",
		logging.Float64("separation_km", sc.SeparationKm),
		logging.Float64("standard_total_ms", standard.Total()),
		logging.Float64("tni_total_ms", tni.Total()),
		logging.Float64("savings_ms", cmp.SavingsMS),
	)

	return cmp, nil
}

// log10ClampedSeparation clamps separations below 1 km to 1 km before the
// log. This is intentional: the final-approach term is defined for any
// non-negative separation, and log10 of a sub-kilometre (or zero)
// separation would go negative or blow up. The clamp is the documented
// behaviour, not a silent default.
func log10ClampedSeparation(separationKm float64) float64 {
	return math.Log10(math.Max(1, separationKm))
}
