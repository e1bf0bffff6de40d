package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"

	"github.com/signalsfoundry/tni-rendezvous/model"
)

func TestRecordSnapshotUpdatesGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewMissionCollector(reg)
	if err != nil {
		t.Fatalf("NewMissionCollector: %v", err)
	}

	collector.RecordSnapshot(model.MissionPhaseState{
		TimeS:           200,
		Phase:           model.PhaseOrbitalInsertion,
		AltitudeKm:      227.3,
		PositionErrorM:  0.04,
		VelocityErrorMS: 0.0025,
		DeltaVSavedMS:   44.9,
		ActiveLinks:     10,
		TNIActive:       true,
	})
	collector.RecordSnapshot(model.MissionPhaseState{
		TimeS:      201,
		Phase:      model.PhaseOrbitalInsertion,
		AltitudeKm: 228.2,
	})

	if got := testutil.ToFloat64(collector.Advances); got != 2 {
		t.Fatalf("mission_advances_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.AltitudeKm); got != 228.2 {
		t.Fatalf("mission_altitude_km = %v, want 228.2", got)
	}
	if got := testutil.ToFloat64(collector.ActiveLinks); got != 0 {
		t.Fatalf("mission_active_links = %v, want 0 from the latest snapshot", got)
	}
}

func TestObserveEvalRecordsHistogramSamples(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewMissionCollector(reg)
	if err != nil {
		t.Fatalf("NewMissionCollector: %v", err)
	}

	collector.ObserveEval("leo-depot", 0.002)
	collector.ObserveEval("leo-depot", 0.004)
	collector.ObserveEval("inclined", 0.001)

	if count := histogramSampleCount(t, reg, "scenario_eval_duration_seconds", map[string]string{
		"scenario": "leo-depot",
	}); count != 2 {
		t.Fatalf("scenario_eval_duration_seconds sample_count = %d, want 2", count)
	}
}

func TestDuplicateRegistrationReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewMissionCollector(reg)
	if err != nil {
		t.Fatalf("NewMissionCollector: %v", err)
	}
	second, err := NewMissionCollector(reg)
	if err != nil {
		t.Fatalf("second NewMissionCollector: %v", err)
	}

	first.Advances.Inc()
	second.Advances.Inc()

	if got := testutil.ToFloat64(first.Advances); got != 2 {
		t.Fatalf("mission_advances_total = %v, want 2 across both handles", got)
	}
}

func TestMetricsHandlerExposesMissionMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewMissionCollector(reg)
	if err != nil {
		t.Fatalf("NewMissionCollector: %v", err)
	}
	collector.RecordSnapshot(model.MissionPhaseState{AltitudeKm: 550, ActiveLinks: 7})
	collector.ObserveEval("leo-depot", 0.01)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, metric := range []string{
		"mission_advances_total",
		"scenario_eval_duration_seconds",
		"mission_altitude_km",
		"mission_position_error_m",
		"mission_velocity_error_m_s",
		"mission_delta_v_saved_m_s",
		"mission_active_links",
	} {
		if !strings.Contains(body, metric) {
			t.Fatalf("expected %q in /metrics output", metric)
		}
	}
}

func histogramSampleCount(t *testing.T, gatherer prometheus.Gatherer, name string, labels map[string]string) uint64 {
	t.Helper()

	metrics, err := gatherer.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range metrics {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.Metric {
			if matchLabels(m.GetLabel(), labels) && m.GetHistogram() != nil {
				return m.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}

func matchLabels(got []*dto.LabelPair, want map[string]string) bool {
	if len(got) < len(want) {
		return false
	}
	matched := 0
	for _, lp := range got {
		if val, ok := want[lp.GetName()]; ok && val == lp.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}
