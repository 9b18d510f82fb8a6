package model

import (
	"errors"
	"testing"
)

func validTrip() TripInputs {
	return TripInputs{
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

func TestValidateAcceptsZeroRates(t *testing.T) {
	trip := validTrip()
	trip.GasVolumeSCM = 0
	trip.GasPriceSCM = 0
	trip.FuelCostHr = 0

	if err := trip.Validate(); err != nil {
		t.Fatalf("zero rates should be valid, got %v", err)
	}
}

func TestValidateNegativeFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*TripInputs)
	}{
		{"gas_volume", func(tr *TripInputs) { tr.GasVolumeSCM = -1 }},
		{"round_trip_distance", func(tr *TripInputs) { tr.RoundTripKm = -10 }},
		{"truck_turnaround_time", func(tr *TripInputs) { tr.TruckTurnaroundHr = -0.5 }},
		{"skid_turnaround_time", func(tr *TripInputs) { tr.SkidTurnaroundHr = -2 }},
	}
	for _, tc := range cases {
		trip := validTrip()
		tc.mutate(&trip)
		err := trip.Validate()
		var nnErr *NonNegativeError
		if !errors.As(err, &nnErr) {
			t.Fatalf("%s: expected NonNegativeError, got %v", tc.field, err)
		}
		if nnErr.Field != tc.field {
			t.Errorf("expected field %q, got %q", tc.field, nnErr.Field)
		}
	}
}

func TestValidateNegativeTripDays(t *testing.T) {
	trip := validTrip()
	trip.Trucking = TruckingPerDay
	trip.TruckingDayRate = 95000
	trip.TripDays = -1

	err := trip.Validate()
	var nnErr *NonNegativeError
	if !errors.As(err, &nnErr) {
		t.Fatalf("expected NonNegativeError, got %v", err)
	}
	if nnErr.Field != "trip_days" {
		t.Errorf("expected field trip_days, got %q", nnErr.Field)
	}
}

func TestValidateUnknownTruckingModel(t *testing.T) {
	trip := validTrip()
	trip.Trucking = "per_tonne"

	err := trip.Validate()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "trucking_model" {
		t.Errorf("expected field trucking_model, got %q", vErr.Field)
	}
}

func TestTruckingOrDefault(t *testing.T) {
	trip := validTrip()
	if got := trip.TruckingOrDefault(); got != TruckingPerKm {
		t.Errorf("expected per_km default, got %q", got)
	}
	trip.Trucking = TruckingPerDay
	if got := trip.TruckingOrDefault(); got != TruckingPerDay {
		t.Errorf("expected per_day, got %q", got)
	}
}

func TestComponentAccessor(t *testing.T) {
	res := ProfitabilityResult{
		ProductionCost: 1,
		TruckExpense:   2,
		TruckingCost:   3,
		SkidCost:       4,
	}
	want := map[CostComponent]float64{
		ComponentProduction:   1,
		ComponentTruckExpense: 2,
		ComponentTrucking:     3,
		ComponentSkid:         4,
	}
	for comp, v := range want {
		if got := res.Component(comp); got != v {
			t.Errorf("%s: expected %v, got %v", comp, v, got)
		}
	}
}
