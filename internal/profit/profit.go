package profit

import (
	"powergas-profit/internal/model"
)

// Compute maps one trip's inputs to its full profitability breakdown.
//
// Profit = (GV x GP) - [ (GC + PC + G&A) x GV + (TD + TIS + FC) x TTAT +
//
//	(FTC + VTC) x RTD + SD x STAT ]
//
// Each sub-total is computed on its own line so the breakdown stays
// auditable against the dispatch sheet. No rounding happens here; display
// rounding belongs to the renderer. On a validation failure nothing is
// computed and the zero result is returned with the error.
func Compute(trip model.TripInputs) (model.ProfitabilityResult, error) {
	if err := trip.Validate(); err != nil {
		return model.ProfitabilityResult{}, err
	}

	revenue := trip.GasVolumeSCM * trip.GasPriceSCM
	production := productionCost(trip)
	truckExp := truckExpense(trip)
	trucking := truckingCost(trip)
	skid := skidCost(trip)
	total := production + truckExp + trucking + skid
	profit := revenue - total

	return model.ProfitabilityResult{
		TripID:          trip.TripID,
		MotherStation:   trip.MotherStation,
		DaughterStation: trip.DaughterStation,
		Revenue:         revenue,
		ProductionCost:  production,
		TruckExpense:    truckExp,
		TruckingCost:    trucking,
		SkidCost:        skid,
		TotalCost:       total,
		Profit:          profit,
		Margin:          margin(profit, revenue),
	}, nil
}

// productionCost is (gas + plant + G&A) NGN/scm over the dispatched volume.
func productionCost(t model.TripInputs) float64 {
	perSCM := t.GasCostSCM + t.PlantCostSCM + t.GACostSCM
	return perSCM * t.GasVolumeSCM
}

// truckExpense is the hourly tractor cost over the truck turnaround.
func truckExpense(t model.TripInputs) float64 {
	perHr := t.TruckDepreciationHr + t.TruckInsuranceInterestHr + t.FuelCostHr
	return perHr * t.TruckTurnaroundHr
}

// truckingCost is the contractor charge, dispatched on the cost-model tag.
// Future contractor models plug in here without changing Compute's shape.
func truckingCost(t model.TripInputs) float64 {
	switch t.TruckingOrDefault() {
	case model.TruckingPerDay:
		return t.TruckingDayRate * t.TripDays
	default:
		perKm := t.FixedTruckingKm + t.VariableTruckingKm
		return perKm * t.RoundTripKm
	}
}

// skidCost is the trailer depreciation over the skid turnaround.
func skidCost(t model.TripInputs) float64 {
	return t.SkidDepreciationHr * t.SkidTurnaroundHr
}

// margin reports profit as a percentage of revenue. A zero-revenue trip has
// no margin; the sentinel keeps batch comparisons total instead of raising.
func margin(profit, revenue float64) model.Margin {
	if revenue > 0 {
		return model.DefinedMargin(profit / revenue * 100)
	}
	return model.UndefinedMargin()
}
