package schedule

import "fmt"

// ValidationError reports a problem with the input tables or configuration
// detected before any model is built. Nothing is solved when one is
// returned.
type ValidationError struct {
	Table  string // which input table, e.g. "availability"
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed in %s table: %s", e.Table, e.Reason)
}

// NewValidationError creates a ValidationError for the given table.
func NewValidationError(table, format string, args ...any) *ValidationError {
	return &ValidationError{Table: table, Reason: fmt.Sprintf(format, args...)}
}

// SolverUnavailableError means the configured engine cannot be invoked at
// all. This is a fatal configuration problem, never retried and never
// degraded into a partial result.
type SolverUnavailableError struct {
	Engine string
	Cause  error
}

func (e *SolverUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("solver engine %q unavailable: %v", e.Engine, e.Cause)
	}
	return fmt.Sprintf("solver engine %q unavailable", e.Engine)
}

func (e *SolverUnavailableError) Unwrap() error {
	return e.Cause
}

// DecodingError means the engine returned a variable value outside its
// declared domain, which indicates a contract mismatch between the model
// and the engine rather than a property of the instance.
type DecodingError struct {
	Variable string
	Value    float64
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("variable %s has value %g outside its domain", e.Variable, e.Value)
}
