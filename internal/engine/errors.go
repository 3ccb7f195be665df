package engine

import "fmt"

// MandatoryUnsatisfiableError reports a mandatory course name with no available
// (non-excluded) offering. It is fatal to the run and surfaced before any
// enumeration work starts.
type MandatoryUnsatisfiableError struct {
	Course string
}

func (e *MandatoryUnsatisfiableError) Error() string {
	return fmt.Sprintf("mandatory course %q has no available offering", e.Course)
}

// InvalidParamsError reports a rejected evaluation parameter.
type InvalidParamsError struct {
	Field  string
	Reason string
}

func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}
