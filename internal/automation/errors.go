package automation

import (
	"errors"
	"fmt"
)

var ErrInvalidSweep = errors.New("automation: invalid sweep")

// StepError wraps an error with the scenario step that caused it.
type StepError struct {
	Step    int // 1-based
	Label   string
	Wrapped error
}

func (e *StepError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("step %d (%s): %v", e.Step, e.Label, e.Wrapped)
	}
	return fmt.Sprintf("step %d: %v", e.Step, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
