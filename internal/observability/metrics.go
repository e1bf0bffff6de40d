package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/signalsfoundry/tni-rendezvous/model"
)

// MissionCollector bundles Prometheus metrics for the mission simulation
// and scenario evaluation, and provides a ready-to-use /metrics handler.
type MissionCollector struct {
	gatherer prometheus.Gatherer

	Advances     prometheus.Counter
	EvalDuration *prometheus.HistogramVec

	AltitudeKm      prometheus.Gauge
	PositionErrorM  prometheus.Gauge
	VelocityErrorMS prometheus.Gauge
	DeltaVSavedMS   prometheus.Gauge
	ActiveLinks     prometheus.Gauge
}

// NewMissionCollector registers mission Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when nil.
func NewMissionCollector(reg prometheus.Registerer) (*MissionCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	advances, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mission_advances_total",
		Help: "Total number of simulator Advance calls applied.",
	}), "mission_advances_total")
	if err != nil {
		return nil, err
	}

	evalDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scenario_eval_duration_seconds",
		Help:    "Rendezvous scenario evaluation latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"scenario"})
	evalDuration, err = registerHistogramVec(reg, evalDuration, "scenario_eval_duration_seconds")
	if err != nil {
		return nil, err
	}

	altitude, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mission_altitude_km",
		Help: "Current simulated vehicle altitude in kilometres.",
	}), "mission_altitude_km")
	if err != nil {
		return nil, err
	}
	posErr, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mission_position_error_m",
		Help: "Current simulated position error in metres.",
	}), "mission_position_error_m")
	if err != nil {
		return nil, err
	}
	velErr, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mission_velocity_error_m_s",
		Help: "Current simulated velocity error in m/s.",
	}), "mission_velocity_error_m_s")
	if err != nil {
		return nil, err
	}
	dvSaved, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mission_delta_v_saved_m_s",
		Help: "Current derived delta-v saving in m/s.",
	}), "mission_delta_v_saved_m_s")
	if err != nil {
		return nil, err
	}
	links, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mission_active_links",
		Help: "Current number of active laser links.",
	}), "mission_active_links")
	if err != nil {
		return nil, err
	}

	return &MissionCollector{
		gatherer:        gatherer,
		Advances:        advances,
		EvalDuration:    evalDuration,
		AltitudeKm:      altitude,
		PositionErrorM:  posErr,
		VelocityErrorMS: velErr,
		DeltaVSavedMS:   dvSaved,
		ActiveLinks:     links,
	}, nil
}

// RecordSnapshot pushes a simulator snapshot into the gauges and counts
// the advance that produced it.
func (c *MissionCollector) RecordSnapshot(s model.MissionPhaseState) {
	if c == nil {
		return
	}
	c.Advances.Inc()
	c.AltitudeKm.Set(s.AltitudeKm)
	c.PositionErrorM.Set(s.PositionErrorM)
	c.VelocityErrorMS.Set(s.VelocityErrorMS)
	c.DeltaVSavedMS.Set(s.DeltaVSavedMS)
	c.ActiveLinks.Set(float64(s.ActiveLinks))
}

// ObserveEval records one scenario evaluation duration.
func (c *MissionCollector) ObserveEval(scenarioID string, seconds float64) {
	if c == nil || c.EvalDuration == nil {
		return
	}
	c.EvalDuration.WithLabelValues(scenarioID).Observe(seconds)
}

// Handler exposes a ready-to-use /metrics handler.
func (c *MissionCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
