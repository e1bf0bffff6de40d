package main

import (
	"context"
	"flag"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/signalsfoundry/tni-rendezvous/core"
	"github.com/signalsfoundry/tni-rendezvous/internal/logging"
	"github.com/signalsfoundry/tni-rendezvous/internal/observability"
	"github.com/signalsfoundry/tni-rendezvous/timectrl"
)

func main() {
	duration := flag.Duration("duration", 320*time.Second, "simulated mission time to cover")
	tick := flag.Duration("tick", 1*time.Second, "tick interval")
	speed := flag.Float64("speed", 1.0, "playback speed multiplier (0.25, 0.5, 1, 2, 4)")
	accelerated := flag.Bool("accelerated", true, "run in accelerated mode (vs real-time)")
	seed := flag.Int64("seed", 0, "jitter seed; 0 seeds from the clock")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus /metrics on this address when set")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	shutdown, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "tracing init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdown, log)

	collector, err := observability.NewMissionCollector(nil)
	if err != nil {
		log.Error(ctx, "metrics init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		go func() {
			log.Info(ctx, "serving metrics", logging.String("addr", *metricsAddr))
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Error(ctx, "metrics server stopped", logging.String("error", err.Error()))
			}
		}()
	}

	var noise core.Noise
	if *seed != 0 {
		noise = rand.New(rand.NewSource(*seed))
	}
	sim := core.NewMissionSimulator(noise, log)

	body := core.EarthBody()
	start := time.Now().UTC()
	mesh := core.NewRingMesh(body, core.DefaultMeshNodes, core.DefaultMeshAltitudeKm, start)

	mode := timectrl.RealTime
	wallTick := *tick
	if *accelerated {
		mode = timectrl.Accelerated
		// Accelerated mode keeps the same simulated step but a short wall tick.
		wallTick = 5 * time.Millisecond
	}
	tc := timectrl.NewTimeController(start, wallTick, mode)
	tc.SetSpeed(*speed * tick.Seconds() / wallTick.Seconds())

	tc.AddListener(func(simTime time.Time, dt time.Duration) {
		if !sim.Running() {
			return
		}
		sim.Advance(dt.Seconds())
		snap := sim.Snapshot()
		collector.RecordSnapshot(snap)

		vehicle := core.VehiclePosition(body, snap.AltitudeKm, snap.TimeS)
		visible := mesh.VisibleFrom(vehicle, simTime)

		log.Info(ctx, "mission tick",
			logging.Float64("t_s", snap.TimeS),
			logging.String("phase", snap.Phase.String()),
			logging.Float64("altitude_km", snap.AltitudeKm),
			logging.Float64("position_error_m", snap.PositionErrorM),
			logging.Float64("velocity_error_m_s", snap.VelocityErrorMS),
			logging.Float64("delta_v_saved_m_s", snap.DeltaVSavedMS),
			logging.Int("active_links", snap.ActiveLinks),
			logging.Int("mesh_visible_nodes", len(visible)),
		)
	})

	log.Info(ctx, "starting mission simulation",
		logging.Any("duration", *duration),
		logging.Any("tick", *tick),
		logging.Float64("speed", *speed),
	)

	done := tc.Start(*duration)
	<-done

	final := sim.Snapshot()
	log.Info(ctx, "mission simulation complete",
		logging.Float64("t_s", final.TimeS),
		logging.String("phase", final.Phase.String()),
		logging.Float64("delta_v_saved_m_s", final.DeltaVSavedMS),
	)
}
