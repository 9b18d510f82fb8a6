package model

import "fmt"

// ValidationError reports a required trip field that is absent or not
// usable as a number. It always names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("trip field %q is missing or not numeric", e.Field)
	}
	return fmt.Sprintf("trip field %q invalid: %s", e.Field, e.Reason)
}

// NonNegativeError reports a volume, distance or turnaround field that was
// given a negative value.
type NonNegativeError struct {
	Field string
	Value float64
}

func (e *NonNegativeError) Error() string {
	return fmt.Sprintf("trip field %q must be >= 0, got %v", e.Field, e.Value)
}
