package model

// ScenarioEntry is one named what-if alternative for the same customer
// delivery, typically varying the sourcing Mother Station.
type ScenarioEntry struct {
	Name        string
	Description string
	Trip        TripInputs
}
