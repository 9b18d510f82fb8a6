package main

import (
	"flag"
	"fmt"
	"time"

	"powergas-profit/internal/compare"
	"powergas-profit/internal/config"
	"powergas-profit/internal/model"
	"powergas-profit/internal/profit"
	"powergas-profit/internal/report"

	"go.uber.org/zap"
)

// Demo:
// - Build the Ebedei reference trip plus a shorter-haul alternative
// - Compute the single-trip breakdown
// - Run a comparison to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML trip config (optional, replaces the built-in trip)")
	flag.Parse()

	trip := model.TripInputs{
		TripID:          "TRIP-001",
		MotherStation:   "Ebedei",
		DaughterStation: "Customer Location A",

		GasVolumeSCM: 5000,
		GasPriceSCM:  850,

		GasCostSCM:   450,
		PlantCostSCM: 120,
		GACostSCM:    80,

		TruckDepreciationHr:      2500,
		TruckInsuranceInterestHr: 1200,
		FuelCostHr:               3500,
		TruckTurnaroundHr:        12,

		FixedTruckingKm:    180,
		VariableTruckingKm: 45,
		RoundTripKm:        240,

		SkidDepreciationHr: 800,
		SkidTurnaroundHr:   14,
	}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		trip, err = cfg.Trip.ToModel()
		if err != nil {
			panic(err)
		}
	}

	res, err := profit.Compute(trip)
	if err != nil {
		panic(err)
	}
	fmt.Print(report.RenderTrip(res))

	// A closer Mother Station: same revenue side, shorter haul.
	alt := trip
	alt.TripID = "TRIP-002"
	alt.MotherStation = "Umutu"
	alt.RoundTripKm = 160
	alt.TruckTurnaroundHr = 8
	alt.SkidTurnaroundHr = 10

	rep, err := compare.Compare(zap.NewNop(), []model.ScenarioEntry{
		{Name: "Ebedei Sourcing", Description: "Current sourcing plant", Trip: trip},
		{Name: "Umutu Sourcing", Description: "Closer alternative plant", Trip: alt},
	}, compare.Options{})
	if err != nil {
		panic(err)
	}

	fmt.Print(report.RenderComparison(rep, time.Now()))
}
