package profit

import (
	"errors"
	"math"
	"testing"

	"powergas-profit/internal/model"
)

// ebedeiTrip is the reference dispatch-sheet trip used throughout.
func ebedeiTrip() model.TripInputs {
	return model.TripInputs{
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
}

func TestComputeEbedeiReference(t *testing.T) {
	res, err := Compute(ebedeiTrip())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if res.Revenue != 4250000 {
		t.Errorf("revenue: expected 4250000, got %v", res.Revenue)
	}
	if res.ProductionCost != 3250000 {
		t.Errorf("production: expected 3250000, got %v", res.ProductionCost)
	}
	if res.TruckExpense != 86400 {
		t.Errorf("truck expense: expected 86400, got %v", res.TruckExpense)
	}
	if res.TruckingCost != 54000 {
		t.Errorf("trucking: expected 54000, got %v", res.TruckingCost)
	}
	if res.SkidCost != 11200 {
		t.Errorf("skid: expected 11200, got %v", res.SkidCost)
	}
	if res.TotalCost != 3401600 {
		t.Errorf("total: expected 3401600, got %v", res.TotalCost)
	}
	if res.Profit != 848400 {
		t.Errorf("profit: expected 848400, got %v", res.Profit)
	}
	if !res.Margin.Defined {
		t.Fatal("margin should be defined")
	}
	if math.Abs(res.Margin.Pct-19.96235294117647) > 1e-9 {
		t.Errorf("margin: expected ~19.96, got %v", res.Margin.Pct)
	}
}

func TestComputeIdentities(t *testing.T) {
	trips := []model.TripInputs{
		ebedeiTrip(),
		func() model.TripInputs {
			tr := ebedeiTrip()
			tr.RoundTripKm = 160
			tr.TruckTurnaroundHr = 8
			return tr
		}(),
		func() model.TripInputs {
			tr := ebedeiTrip()
			tr.GasVolumeSCM = 0
			return tr
		}(),
	}
	for _, trip := range trips {
		res, err := Compute(trip)
		if err != nil {
			t.Fatalf("Compute: %v", err)
		}
		sum := res.ProductionCost + res.TruckExpense + res.TruckingCost + res.SkidCost
		if res.TotalCost != sum {
			t.Errorf("total_cost %v != component sum %v", res.TotalCost, sum)
		}
		if res.Profit != res.Revenue-res.TotalCost {
			t.Errorf("profit %v != revenue-total %v", res.Profit, res.Revenue-res.TotalCost)
		}
	}
}

func TestComputeZeroRevenueMargin(t *testing.T) {
	trip := ebedeiTrip()
	trip.GasVolumeSCM = 0

	res, err := Compute(trip)
	if err != nil {
		t.Fatalf("zero-volume trip must not fail: %v", err)
	}
	if res.Revenue != 0 {
		t.Errorf("expected zero revenue, got %v", res.Revenue)
	}
	if res.Margin.Defined {
		t.Error("margin must be the undefined sentinel when revenue is zero")
	}
	// Costs still accrue: production scales with volume but truck, trucking
	// and skid costs do not.
	if res.TotalCost != 86400+54000+11200 {
		t.Errorf("expected total 151600, got %v", res.TotalCost)
	}
}

func TestComputeDayRateTrucking(t *testing.T) {
	trip := ebedeiTrip()
	trip.Trucking = model.TruckingPerDay
	trip.TruckingDayRate = 95000
	trip.TripDays = 2

	res, err := Compute(trip)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if res.TruckingCost != 190000 {
		t.Errorf("expected day-rate trucking 190000, got %v", res.TruckingCost)
	}
}

func TestComputeRejectsNegativeInputs(t *testing.T) {
	trip := ebedeiTrip()
	trip.RoundTripKm = -5

	res, err := Compute(trip)
	var nnErr *model.NonNegativeError
	if !errors.As(err, &nnErr) {
		t.Fatalf("expected NonNegativeError, got %v", err)
	}
	if nnErr.Field != "round_trip_distance" {
		t.Errorf("expected round_trip_distance, got %q", nnErr.Field)
	}
	// Nothing is partially computed on failure.
	if res != (model.ProfitabilityResult{}) {
		t.Errorf("expected zero result on error, got %+v", res)
	}
}

func TestComputeRejectsUnknownTruckingModel(t *testing.T) {
	trip := ebedeiTrip()
	trip.Trucking = "per_tonne"

	_, err := Compute(trip)
	var vErr *model.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
