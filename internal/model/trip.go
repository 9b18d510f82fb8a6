package model

// TruckingModel selects how contractor trucking cost is charged.
// Keep these values stable; they appear in YAML configs and API requests.
type TruckingModel string

const (
	// TruckingPerKm charges (fixed + variable) NGN/km over the round trip.
	TruckingPerKm TruckingModel = "per_km"
	// TruckingPerDay charges a flat day rate over the trip duration.
	TruckingPerDay TruckingModel = "per_day"
)

// TripInputs is the full parameter set for one delivery trip from a
// Mother Station (dispatching plant) to a Daughter Station (customer).
// Units:
// - GasVolumeSCM: scm per trip
// - prices and per-scm costs: NGN/scm
// - truck and skid rates: NGN/hr
// - trucking rates: NGN/km (per_km) or NGN/day (per_day)
// - turnaround times: hours, distances: km
type TripInputs struct {
	TripID          string
	MotherStation   string
	DaughterStation string

	GasVolumeSCM float64
	GasPriceSCM  float64

	GasCostSCM   float64
	PlantCostSCM float64
	GACostSCM    float64

	TruckDepreciationHr      float64
	TruckInsuranceInterestHr float64
	FuelCostHr               float64
	TruckTurnaroundHr        float64

	Trucking           TruckingModel // empty means per_km
	FixedTruckingKm    float64
	VariableTruckingKm float64
	RoundTripKm        float64

	// Day-rate trucking parameters, used only when Trucking == per_day.
	TruckingDayRate float64
	TripDays        float64

	SkidDepreciationHr float64
	SkidTurnaroundHr   float64
}

// Label returns the identifier used to tag results and break ranking ties.
func (t TripInputs) Label() string {
	return t.TripID
}

// Validate enforces the structural invariants: volume, distance and
// turnaround times cannot be negative, and the trucking model tag must be
// known. Zero rates and prices are allowed; a free trip is still a trip.
func (t TripInputs) Validate() error {
	if t.GasVolumeSCM < 0 {
		return &NonNegativeError{Field: "gas_volume", Value: t.GasVolumeSCM}
	}
	if t.TruckTurnaroundHr < 0 {
		return &NonNegativeError{Field: "truck_turnaround_time", Value: t.TruckTurnaroundHr}
	}
	if t.SkidTurnaroundHr < 0 {
		return &NonNegativeError{Field: "skid_turnaround_time", Value: t.SkidTurnaroundHr}
	}
	switch t.TruckingOrDefault() {
	case TruckingPerKm:
		if t.RoundTripKm < 0 {
			return &NonNegativeError{Field: "round_trip_distance", Value: t.RoundTripKm}
		}
	case TruckingPerDay:
		if t.TripDays < 0 {
			return &NonNegativeError{Field: "trip_days", Value: t.TripDays}
		}
	default:
		return &ValidationError{Field: "trucking_model", Reason: "unknown model " + string(t.Trucking)}
	}
	return nil
}

// TruckingOrDefault resolves an unset trucking model tag to per_km.
func (t TripInputs) TruckingOrDefault() TruckingModel {
	if t.Trucking == "" {
		return TruckingPerKm
	}
	return t.Trucking
}
