package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every typed error in
// this package unwraps to exactly one of these.
var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrBusinessRuleViolated = errors.New("business rule violated")
	ErrInternal             = errors.New("internal error")
	ErrValueIsRequired      = errors.New("value is required")
	ErrValueIsInvalid       = errors.New("value is invalid")
)

// sanitize collapses newlines so that error messages stay single-line
// in structured logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates that a referenced entity does not exist.
// Code is a stable machine-readable identifier (e.g. ORDER_NOT_FOUND),
// ParamName names the reference that failed to resolve, ID is its value.
type ObjectNotFoundError struct {
	Code      string
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(code string, paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		Code:      code,
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// the underlying lookup failure.
func NewObjectNotFoundErrorWithCause(code string, paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		Code:      code,
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s not found (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s not found", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// BusinessRuleError indicates that an operation is not legal given the
// current state of the entity it targets. It is an expected, client-visible
// condition, not a system fault.
type BusinessRuleError struct {
	Code    string
	Message string
	Cause   error
}

// NewBusinessRuleError creates a BusinessRuleError without a cause.
func NewBusinessRuleError(code string, message string) *BusinessRuleError {
	return &BusinessRuleError{
		Code:    code,
		Message: message,
	}
}

// NewBusinessRuleErrorWithCause creates a BusinessRuleError wrapping the
// violation detail.
func NewBusinessRuleErrorWithCause(code string, message string, cause error) *BusinessRuleError {
	return &BusinessRuleError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func (e *BusinessRuleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrBusinessRuleViolated, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrBusinessRuleViolated, e.Message)
}

func (e *BusinessRuleError) Unwrap() error {
	return ErrBusinessRuleViolated
}

// InternalError wraps storage faults and any unanticipated failure at an
// operation boundary. Public operations never let a raw unexpected error
// escape; they return an InternalError carrying a stable code instead.
type InternalError struct {
	Code    string
	Message string
	Cause   error
}

// NewInternalError creates an InternalError without a cause.
func NewInternalError(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

// NewInternalErrorWithCause creates an InternalError wrapping the underlying
// failure for diagnostics.
func NewInternalErrorWithCause(code string, message string, cause error) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInternal, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInternal, e.Message)
}

func (e *InternalError) Unwrap() error {
	return ErrInternal
}

// ValueIsRequiredError indicates that a required value is missing or blank.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// the underlying failure.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value is invalid.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// the validation detail.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}
