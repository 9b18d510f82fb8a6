package compare

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyScenarioSet is returned when a comparison is requested with no
// scenarios at all.
var ErrEmptyScenarioSet = errors.New("scenario set is empty")

// ScenarioFailure ties a validation error to the scenario it came from.
type ScenarioFailure struct {
	Name string
	Err  error
}

// BatchError rejects a comparison because one or more scenarios failed
// validation. Every failing scenario is listed by name.
type BatchError struct {
	Failures []ScenarioFailure
}

func (e *BatchError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = fmt.Sprintf("%s: %v", f.Name, f.Err)
	}
	return fmt.Sprintf("%d invalid scenario(s): %s", len(e.Failures), strings.Join(parts, "; "))
}
