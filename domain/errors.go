package domain

import "fmt"

// InvalidInputError reports an applicant field that fails validation.
// These are caller errors and are never retried.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// EvaluationError wraps any failure during a single applicant evaluation
// with the applicant's name for traceability.
type EvaluationError struct {
	ApplicantName string
	Err           error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("error evaluating applicant %s: %v", e.ApplicantName, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
