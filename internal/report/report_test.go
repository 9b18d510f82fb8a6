package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"powergas-profit/internal/compare"
	"powergas-profit/internal/model"
)

func sampleReport(t *testing.T) *compare.Report {
	t.Helper()
	trip := model.TripInputs{
		TripID:          "TRIP-001",
		MotherStation:   "Ebedei",
		DaughterStation: "Customer Location A",
		GasVolumeSCM:    5000,
		GasPriceSCM:     850,
		GasCostSCM:      450,
		PlantCostSCM:    120,
		GACostSCM:       80,

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
	alt := trip
	alt.TripID = "TRIP-002"
	alt.MotherStation = "Umutu"
	alt.RoundTripKm = 160
	alt.TruckTurnaroundHr = 8

	rep, err := compare.Compare(nil, []model.ScenarioEntry{
		{Name: "Ebedei Sourcing", Description: "Current plant", Trip: trip},
		{Name: "Umutu Sourcing", Description: "Closer plant", Trip: alt},
	}, compare.Options{})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	return rep
}

func TestRenderComparisonSections(t *testing.T) {
	rep := sampleReport(t)
	text := RenderComparison(rep, time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC))

	for _, want := range []string{
		"POWERGAS PROFITABILITY COMPARISON REPORT",
		"Generated: 2026-08-24 12:00:00",
		"SUMMARY (Ranked by Profit)",
		"DETAILED BREAKDOWN",
		"COMPARATIVE ANALYSIS",
		"Best Scenario:  Umutu Sourcing",
		"Worst Scenario: Ebedei Sourcing",
		"Profit Difference:",
		"46800.00",
		"Biggest Cost Impact: Truck Expenses",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderTrip(t *testing.T) {
	rep := sampleReport(t)
	text := RenderTrip(rep.Worst.Result)

	for _, want := range []string{
		"Trip ID: TRIP-001",
		"Route: Ebedei -> Customer Location A",
		"Revenue: NGN 4250000.00",
		"Profit: NGN 848400.00",
		"Profit Margin: 19.96%",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestRenderUndefinedMargin(t *testing.T) {
	res := model.ProfitabilityResult{TripID: "TRIP-009", Margin: model.UndefinedMargin()}
	if !strings.Contains(RenderTrip(res), "Profit Margin: n/a") {
		t.Error("undefined margin should render as n/a")
	}
}

func TestWriteRankedCSV(t *testing.T) {
	rep := sampleReport(t)
	path := filepath.Join(t.TempDir(), "comparison.csv")

	if err := WriteRankedCSV(path, rep); err != nil {
		t.Fatalf("WriteRankedCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[1][1] != "Umutu Sourcing" {
		t.Errorf("rank 1 should be Umutu Sourcing, got %s", rows[1][1])
	}
	if rows[2][11] != "848400.00" {
		t.Errorf("expected worst profit 848400.00, got %s", rows[2][11])
	}
}
