package models

// CostsBreakdown groups the four cost components plus their sum.
type CostsBreakdown struct {
	ProductionCosts float64 `json:"production_costs"`
	TruckExpenses   float64 `json:"truck_expenses"`
	TruckingCosts   float64 `json:"trucking_costs"`
	SkidCosts       float64 `json:"skid_costs"`
	TotalCosts      float64 `json:"total_costs"`
}

// TripResult is the wire form of one trip's profitability breakdown.
// MarginPct is null for a zero-revenue trip.
type TripResult struct {
	TripID          string         `json:"trip_id"`
	MotherStation   string         `json:"mother_station"`
	DaughterStation string         `json:"daughter_station"`
	Revenue         float64        `json:"revenue"`
	CostsBreakdown  CostsBreakdown `json:"costs_breakdown"`
	Profit          float64        `json:"profit"`
	MarginPct       *float64       `json:"margin_pct"`
}

// TripResponse is the response for POST /api/v1/trip.
type TripResponse struct {
	Status string     `json:"status"`
	Result TripResult `json:"result"`
}

// RankedScenario is one row of the ranked comparison table.
type RankedScenario struct {
	Rank        int        `json:"rank"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Result      TripResult `json:"result"`
}

// ComponentRange is the max-min spread of one cost component.
type ComponentRange struct {
	Component string  `json:"component"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Range     float64 `json:"range"`
}

// SkippedScenario names a scenario excluded in lenient mode.
type SkippedScenario struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// CompareResponse is the response for POST /api/v1/compare. It carries the
// full ranked list plus the derived summary so clients never re-derive math.
type CompareResponse struct {
	Rankings []RankedScenario `json:"rankings"`

	BestScenario  string   `json:"best_scenario"`
	WorstScenario string   `json:"worst_scenario"`
	ProfitDiff    float64  `json:"profit_diff"`
	MarginDiff    *float64 `json:"margin_diff"`
	MarginPartial bool     `json:"margin_partial,omitempty"`

	ComponentRanges       []ComponentRange `json:"component_ranges"`
	DominantCostComponent string           `json:"dominant_cost_component"`

	Skipped []SkippedScenario `json:"skipped,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
