package models

// TripPayload is the wire shape of one trip's parameters. Field names match
// the trip configuration files so API clients and config files stay
// interoperable. Numeric fields are pointers: a missing mandatory field is
// reported by name instead of silently reading as zero.
type TripPayload struct {
	TripID          string `json:"trip_id,omitempty"`
	MotherStation   string `json:"mother_station,omitempty"`
	DaughterStation string `json:"daughter_station,omitempty"`

	GasVolume *float64 `json:"gas_volume,omitempty"`
	GasPrice  *float64 `json:"gas_price,omitempty"`

	GasCost   *float64 `json:"gas_cost,omitempty"`
	PlantCost *float64 `json:"plant_cost,omitempty"`
	GACost    *float64 `json:"ga_cost,omitempty"`

	TruckDepreciation      *float64 `json:"truck_depreciation,omitempty"`
	TruckInsuranceInterest *float64 `json:"truck_insurance_interest,omitempty"`
	FuelCost               *float64 `json:"fuel_cost,omitempty"`
	TruckTurnaroundTime    *float64 `json:"truck_turnaround_time,omitempty"`

	TruckingModel        string   `json:"trucking_model,omitempty"`
	FixedTruckingCost    *float64 `json:"fixed_trucking_cost,omitempty"`
	VariableTruckingCost *float64 `json:"variable_trucking_cost,omitempty"`
	RoundTripDistance    *float64 `json:"round_trip_distance,omitempty"`
	TruckingDayRate      *float64 `json:"trucking_day_rate,omitempty"`
	TripDays             *float64 `json:"trip_days,omitempty"`

	SkidDepreciation   *float64 `json:"skid_depreciation,omitempty"`
	SkidTurnaroundTime *float64 `json:"skid_turnaround_time,omitempty"`
}

// TripRequest is the body for POST /api/v1/trip.
type TripRequest struct {
	Trip TripPayload `json:"trip" binding:"required"`
}

// ScenarioPayload is one what-if alternative in a comparison request.
// When base_trip is present on the request, Trip is an overlay onto it.
type ScenarioPayload struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description,omitempty"`
	Trip        TripPayload `json:"trip"`
}

// CompareRequest is the body for POST /api/v1/compare.
type CompareRequest struct {
	BaseTrip *TripPayload `json:"base_trip,omitempty"`
	// An empty scenario list is rejected by the comparator itself so the
	// error carries the EMPTY_SCENARIO_SET code instead of a bind failure.
	Scenarios []ScenarioPayload `json:"scenarios"`
	Options   CompareOptions    `json:"options,omitempty"`
}

// CompareOptions mirrors compare.Options on the wire.
type CompareOptions struct {
	// Lenient skips invalid scenarios (recorded in the response) instead of
	// rejecting the whole batch.
	Lenient bool `json:"lenient,omitempty"`
}
