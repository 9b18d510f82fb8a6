package model

// Margin is a profit margin percentage that may be undefined.
// A zero-revenue trip has no meaningful margin; that is a legitimate
// business case (e.g. a repositioning run), not an arithmetic error, so it
// is carried as an explicit sentinel instead of NaN or a raised error.
type Margin struct {
	Pct     float64
	Defined bool
}

// DefinedMargin wraps a computed percentage.
func DefinedMargin(pct float64) Margin {
	return Margin{Pct: pct, Defined: true}
}

// UndefinedMargin is the zero-revenue sentinel.
func UndefinedMargin() Margin {
	return Margin{}
}

// ProfitabilityResult is the full cost/revenue breakdown for one trip.
// All amounts are NGN. It is created in one shot and never mutated; the
// only link back to its inputs is the trip label.
type ProfitabilityResult struct {
	TripID          string
	MotherStation   string
	DaughterStation string

	Revenue float64

	ProductionCost float64
	TruckExpense   float64
	TruckingCost   float64
	SkidCost       float64

	TotalCost float64
	Profit    float64
	Margin    Margin
}

// CostComponent names one of the four cost sub-totals.
type CostComponent string

const (
	ComponentProduction   CostComponent = "production_costs"
	ComponentTruckExpense CostComponent = "truck_expenses"
	ComponentTrucking     CostComponent = "trucking_costs"
	ComponentSkid         CostComponent = "skid_costs"
)

// CostComponents lists the four components in their fixed priority order.
// The order doubles as the tie-break when two component ranges are exactly
// equal during impact analysis.
var CostComponents = []CostComponent{
	ComponentProduction,
	ComponentTruckExpense,
	ComponentTrucking,
	ComponentSkid,
}

// Component returns the named cost sub-total.
func (r ProfitabilityResult) Component(c CostComponent) float64 {
	switch c {
	case ComponentProduction:
		return r.ProductionCost
	case ComponentTruckExpense:
		return r.TruckExpense
	case ComponentTrucking:
		return r.TruckingCost
	case ComponentSkid:
		return r.SkidCost
	}
	return 0
}
