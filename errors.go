package studiolingo

import (
	"fmt"

	"github.com/studiolingo/studiolingo/entitlement"
)

// UnknownLanguageError indicates a code that is not present in the catalog.
type UnknownLanguageError struct {
	Code string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language code %q", e.Code)
}

// ProtectedLanguageError indicates a mutation attempt on a protected
// subscription entry.
type ProtectedLanguageError struct {
	Code string
}

func (e *ProtectedLanguageError) Error() string {
	return fmt.Sprintf("language %q is protected and cannot be removed", e.Code)
}

// CustomLanguageError indicates an invalid custom-language definition.
type CustomLanguageError struct {
	Reason CustomLanguageReason
	Code   string
}

// CustomLanguageReason classifies why a custom language was rejected.
type CustomLanguageReason string

const (
	// ReasonEmptyFields means code or name was blank after trimming.
	ReasonEmptyFields CustomLanguageReason = "empty_fields"
	// ReasonCodeTooLong means the code exceeded the 10-character limit.
	ReasonCodeTooLong CustomLanguageReason = "code_too_long"
	// ReasonAlreadyExists means the code is already subscribed.
	ReasonAlreadyExists CustomLanguageReason = "already_exists"
)

func (e *CustomLanguageError) Error() string {
	switch e.Reason {
	case ReasonEmptyFields:
		return "custom language: code and name must not be empty"
	case ReasonCodeTooLong:
		return fmt.Sprintf("custom language: code %q exceeds 10 characters", e.Code)
	case ReasonAlreadyExists:
		return fmt.Sprintf("custom language: %q is already subscribed", e.Code)
	}
	return fmt.Sprintf("custom language: invalid definition for %q", e.Code)
}

// BatchRunningError indicates Start was called while a previous run was
// still in flight. One controller drives one page; concurrent runs would
// fight over it.
type BatchRunningError struct{}

func (e *BatchRunningError) Error() string {
	return "batch: a run is already in progress"
}

// EmptyBatchError indicates Start was called with no target languages.
type EmptyBatchError struct{}

func (e *EmptyBatchError) Error() string {
	return "batch: no target languages selected"
}

// EntitlementDeniedError indicates the entitlement gate refused the feature
// before any job was created.
type EntitlementDeniedError struct {
	Feature string
	Status  entitlement.Status
	Message string
}

func (e *EntitlementDeniedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("feature %q not allowed: %s", e.Feature, e.Message)
	}
	return fmt.Sprintf("feature %q not allowed", e.Feature)
}

// StepError records which pipeline step failed for a job and why. Cause may
// be nil for locator failures, where absence of an element is the whole
// story.
type StepError struct {
	Step    Step
	Message string
	Cause   error
}

func (e *StepError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Step, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Step, e.Message)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// BatchAbortedError wraps the job error that forced a whole-batch abort.
// Remaining targets stay pending; they were never attempted.
type BatchAbortedError struct {
	Code  string // language whose job triggered the abort
	Cause error
}

func (e *BatchAbortedError) Error() string {
	return fmt.Sprintf("batch aborted at %q: %v", e.Code, e.Cause)
}

func (e *BatchAbortedError) Unwrap() error {
	return e.Cause
}
