package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/tni-rendezvous/catalog"
	"github.com/signalsfoundry/tni-rendezvous/core"
	"github.com/signalsfoundry/tni-rendezvous/internal/logging"
	"github.com/signalsfoundry/tni-rendezvous/internal/observability"
	"github.com/signalsfoundry/tni-rendezvous/model"
)

func main() {
	scenarioPath := flag.String("scenarios", "", "JSON scenario file; builtin profiles when empty")
	dryMass := flag.Float64("dry-mass", 0, "vehicle dry mass in kg (overrides scenario file / default)")
	isp := flag.Float64("isp", 0, "engine specific impulse in seconds (overrides)")
	missionsPerYear := flag.Int("missions-per-year", 0, "fleet missions per year (overrides)")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	shutdown, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "tracing init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdown, log)

	cat := catalog.New()
	fleet := model.DefaultFleetParams()

	if *scenarioPath != "" {
		f, err := os.Open(*scenarioPath)
		if err != nil {
			log.Error(ctx, "failed to open scenario file",
				logging.String("path", *scenarioPath),
				logging.String("error", err.Error()))
			os.Exit(1)
		}
		set, err := core.LoadScenarios(cat, f)
		f.Close()
		if err != nil {
			log.Error(ctx, "failed to load scenarios", logging.String("error", err.Error()))
			os.Exit(1)
		}
		fleet = set.Fleet
		log.Info(ctx, "loaded scenario file",
			logging.String("path", *scenarioPath),
			logging.Int("scenarios", len(set.ScenarioIDs)))
	} else if err := core.BuiltinScenarios(cat); err != nil {
		log.Error(ctx, "failed to register builtin scenarios", logging.String("error", err.Error()))
		os.Exit(1)
	}

	if *dryMass > 0 {
		fleet.DryMassKg = *dryMass
	}
	if *isp > 0 {
		fleet.IspS = *isp
	}
	if *missionsPerYear > 0 {
		fleet.MissionsPerYear = *missionsPerYear
	}

	projector, err := core.NewProjector(fleet)
	if err != nil {
		log.Error(ctx, "invalid fleet parameters", logging.String("error", err.Error()))
		os.Exit(1)
	}

	collector, err := observability.NewMissionCollector(nil)
	if err != nil {
		log.Error(ctx, "metrics init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}

	rv := core.NewRendezvousModel(core.EarthBody(), log)
	tracer := otel.Tracer("tni-report")

	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("%s\n", center(" TNI-R: COMPREHENSIVE DELTA-V ANALYSIS FOR ORBITAL RENDEZVOUS ", 80, "="))
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("\nFleet: dry mass %.0f kg, Isp %.0f s, %d missions/year\n",
		fleet.DryMassKg, fleet.IspS, fleet.MissionsPerYear)

	var sumStandard, sumTNI float64
	entries := cat.List()

	for _, entry := range entries {
		evalCtx, span := tracer.Start(ctx, "compare_scenario",
			trace.WithAttributes(attribute.String("scenario.id", entry.ID)))

		evalStart := time.Now()
		cmp, err := rv.Compare(evalCtx, entry.Scenario)
		collector.ObserveEval(entry.ID, time.Since(evalStart).Seconds())
		if err != nil {
			span.End()
			log.Error(evalCtx, "scenario evaluation failed",
				logging.String("scenario", entry.ID),
				logging.String("error", err.Error()))
			os.Exit(1)
		}
		span.End()

		printScenario(entry, cmp, projector)

		sumStandard += cmp.Standard.Total()
		sumTNI += cmp.TNI.Total()
	}

	if len(entries) > 0 {
		printFleetAnalysis(sumStandard, sumTNI, len(entries), projector)
	}
}

func printScenario(entry catalog.Entry, cmp core.Comparison, projector *core.Projector) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 80))
	fmt.Printf("SCENARIO: %s\n", entry.Name)
	fmt.Println(strings.Repeat("=", 80))

	fmt.Printf("\n%s\n", center("Standard GPS/Radio Navigation:", 80, "-"))
	printBreakdown(cmp.Standard, "Safety Margin (22%)")

	fmt.Printf("\n%s\n", center("TNI-R Laser-Guided Navigation:", 80, "-"))
	printBreakdown(cmp.TNI, "Safety Margin (9%)")

	fmt.Printf("\n%s\n", center("SAVINGS ANALYSIS:", 80, "-"))
	fmt.Printf("  Δv Saved:                 %8.2f m/s (%.1f%%)\n", cmp.SavingsMS, cmp.SavingsPercent())

	// Per-mission economics: the propellant gap between flying the full
	// standard budget and the full TNI budget.
	standardProp := core.PropellantMass(cmp.Standard.Total(), projector.Fleet.DryMassKg, projector.Fleet.IspS)
	tniProp := core.PropellantMass(cmp.TNI.Total(), projector.Fleet.DryMassKg, projector.Fleet.IspS)
	propSaved := standardProp - tniProp

	fmt.Printf("  Propellant Saved:         %8.0f kg\n", propSaved)
	fmt.Printf("  Direct Cost Saved:        $%8.2f (@$%.2f/kg)\n", propSaved*projector.Fleet.PropellantCostPerKg, projector.Fleet.PropellantCostPerKg)
	fmt.Printf("  Payload Capacity Gain:    %8.0f kg\n", propSaved)
	fmt.Printf("  Payload Value:            $%12.0f (@$%.0f/kg)\n", propSaved*projector.Fleet.PayloadValuePerKg, projector.Fleet.PayloadValuePerKg)
	if propSaved >= projector.Fleet.SatelliteMassKg {
		fmt.Printf("  Extra Satellites:         +%d satellites (@%.0fkg each)\n",
			int(propSaved/projector.Fleet.SatelliteMassKg), projector.Fleet.SatelliteMassKg)
	}
}

func printBreakdown(b model.DeltaVBreakdown, safetyLabel string) {
	fmt.Printf("  Search & Acquisition:     %8.2f m/s\n", b.SearchAcquisition)
	fmt.Printf("  Hohmann Transfer:         %8.2f m/s\n", b.Transfer)
	if b.PlaneChange > 0 {
		fmt.Printf("  Plane Change:             %8.2f m/s\n", b.PlaneChange)
	}
	fmt.Printf("  Approach Corrections:     %8.2f m/s\n", b.ApproachCorrections)
	fmt.Printf("  Final Approach:           %8.2f m/s\n", b.FinalApproach)
	fmt.Printf("  Docking Maneuver:         %8.2f m/s\n", b.Docking)
	fmt.Printf("  %-25s %8.2f m/s\n", safetyLabel+":", b.SafetyMargin)
	fmt.Printf("  %s\n", strings.Repeat("-", 40))
	fmt.Printf("  TOTAL:                    %8.2f m/s\n", b.Total())
}

func printFleetAnalysis(sumStandard, sumTNI float64, n int, projector *core.Projector) {
	avgStandard := sumStandard / float64(n)
	avgTNI := sumTNI / float64(n)
	avgSavings := avgStandard - avgTNI

	fmt.Printf("\n%s\n", strings.Repeat("=", 80))
	fmt.Printf("%s\n", center(fmt.Sprintf("FLEET-SCALE ANALYSIS (%d operations/year)", projector.Fleet.MissionsPerYear), 80, " "))
	fmt.Println(strings.Repeat("=", 80))

	fmt.Printf("\nAverage Δv per Mission:\n")
	fmt.Printf("  Standard:     %.2f m/s\n", avgStandard)
	fmt.Printf("  TNI-R:        %.2f m/s\n", avgTNI)
	fmt.Printf("  Savings:      %.2f m/s (%.1f%%)\n", avgSavings, avgSavings/avgStandard*100)

	impact, err := projector.FleetImpact(avgSavings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fleet projection failed: %v\n", err)
		return
	}

	fmt.Printf("\nAnnual Fleet Impact (%d missions/year):\n", impact.MissionsPerYear)
	fmt.Printf("  Total Δv Saved:           %.0f m/s\n", impact.DeltaVSavedMS)
	fmt.Printf("  Propellant Saved:         %.0f kg\n", impact.PropellantSavedKg)
	fmt.Printf("  Payload Capacity Gain:    %.0f kg\n", impact.PayloadGainKg)
	fmt.Printf("  Economic Value:           $%.0f\n", impact.PayloadValueUSD)
	fmt.Printf("  Extra Satellites:         +%d satellites/year\n", impact.ExtraSatellites)
	fmt.Printf("  Equivalent to:            %.1f extra launches/year\n", impact.EquivalentLaunches)
}

func center(s string, width int, pad string) string {
	if len(s) >= width {
		return s
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(pad, left) + s + strings.Repeat(pad, right)
}
