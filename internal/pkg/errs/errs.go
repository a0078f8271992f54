package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is the sentinel for lookups of identifiers that do not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrConflict is the sentinel for attempts to create a resource whose
	// identifier already exists.
	ErrConflict = errors.New("resource already exists")

	// ErrInvalidRequest is the sentinel for malformed or policy-violating payloads.
	ErrInvalidRequest = errors.New("request is invalid")

	// ErrInvalidFilter is the sentinel for unsupported filter expressions.
	ErrInvalidFilter = errors.New("filter is invalid")

	// ErrInvalidFieldSelection is the sentinel for unsupported 'fields' selections.
	ErrInvalidFieldSelection = errors.New("field selection is invalid")

	// ErrInternal is the sentinel for broken caller contracts. Reaching it
	// means a programming error, not a client error.
	ErrInternal = errors.New("internal error")
)

func sanitize(value any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", value), "\n", " ")
}

// ObjectNotFoundError reports that a resource referenced by identifier is absent.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ConflictError reports an identifier collision on create.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrConflict, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, sanitize(e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidRequestError reports a payload that violates creation or patch policy.
type InvalidRequestError struct {
	Message string
	Cause   error
}

// NewInvalidRequestError creates an InvalidRequestError without a cause.
func NewInvalidRequestError(message string) *InvalidRequestError {
	return &InvalidRequestError{Message: message}
}

// NewInvalidRequestErrorWithCause creates an InvalidRequestError wrapping a cause.
func NewInvalidRequestErrorWithCause(message string, cause error) *InvalidRequestError {
	return &InvalidRequestError{Message: message, Cause: cause}
}

func (e *InvalidRequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidRequest, sanitize(e.Message), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRequest, sanitize(e.Message))
}

func (e *InvalidRequestError) Unwrap() error {
	return ErrInvalidRequest
}

// InvalidFilterError reports an unsupported filter key or value.
type InvalidFilterError struct {
	FilterKey string
	Message   string
}

// NewInvalidFilterError creates an InvalidFilterError for the given filter key.
func NewInvalidFilterError(filterKey, message string) *InvalidFilterError {
	return &InvalidFilterError{FilterKey: filterKey, Message: message}
}

func (e *InvalidFilterError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %s", ErrInvalidFilter, e.FilterKey, sanitize(e.Message))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidFilter, e.FilterKey)
}

func (e *InvalidFilterError) Unwrap() error {
	return ErrInvalidFilter
}

// InvalidFieldSelectionError reports an unsupported 'fields' selection.
type InvalidFieldSelectionError struct {
	Message string
}

// NewInvalidFieldSelectionError creates an InvalidFieldSelectionError.
func NewInvalidFieldSelectionError(message string) *InvalidFieldSelectionError {
	return &InvalidFieldSelectionError{Message: message}
}

func (e *InvalidFieldSelectionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidFieldSelection, sanitize(e.Message))
}

func (e *InvalidFieldSelectionError) Unwrap() error {
	return ErrInvalidFieldSelection
}

// InternalError reports a broken invariant inside the application, such as
// updating a record whose identifier was never stored.
type InternalError struct {
	Message string
	Cause   error
}

// NewInternalError creates an InternalError without a cause.
func NewInternalError(message string) *InternalError {
	return &InternalError{Message: message}
}

// NewInternalErrorWithCause creates an InternalError wrapping a cause.
func NewInternalErrorWithCause(message string, cause error) *InternalError {
	return &InternalError{Message: message, Cause: cause}
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInternal, sanitize(e.Message), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInternal, sanitize(e.Message))
}

func (e *InternalError) Unwrap() error {
	return ErrInternal
}
