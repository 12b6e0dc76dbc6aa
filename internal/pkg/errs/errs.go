package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValueIsRequired is the sentinel for missing required values.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid is the sentinel for invalid values.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange is the sentinel for values outside an allowed range.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrObjectNotFound is the sentinel for objects missing from storage.
	ErrObjectNotFound = errors.New("object not found")

	// ErrVersionConflict is the sentinel for optimistic-concurrency failures:
	// the stored version no longer matches the version the caller loaded.
	ErrVersionConflict = errors.New("version conflict")

	// ErrStoreUnavailable is the sentinel for transport or storage failures.
	// It is distinct from ErrObjectNotFound and ErrVersionConflict: the
	// operation could not be carried out at all.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is required: %s (cause: %s)", e.ParamName, e.Cause)
	}
	return fmt.Sprintf("value is required: %s", e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value is invalid.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", e.ParamName, e.Cause)
	}
	return fmt.Sprintf("value is invalid: %s", e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value lies outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the offending value and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError with an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v (cause: %s)",
			e.Value, e.ParamName, e.Min, e.Max, e.Cause)
	}
	return fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v",
		e.Value, e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that a referenced object does not exist in storage.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)", e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("object not found: %s", e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// VersionConflictError indicates that a conditional write lost against a
// concurrent writer: the stored version differs from the expected one.
type VersionConflictError struct {
	ID              any
	ExpectedVersion int64
	Cause           error
}

// NewVersionConflictError creates a VersionConflictError for the given object and expected version.
func NewVersionConflictError(id any, expectedVersion int64) *VersionConflictError {
	return &VersionConflictError{ID: id, ExpectedVersion: expectedVersion}
}

// NewVersionConflictErrorWithCause creates a VersionConflictError with an underlying cause.
func NewVersionConflictErrorWithCause(id any, expectedVersion int64, cause error) *VersionConflictError {
	return &VersionConflictError{ID: id, ExpectedVersion: expectedVersion, Cause: cause}
}

func (e *VersionConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("version conflict: ID is: %s, expected version is: %d (cause: %s)",
			e.ID, e.ExpectedVersion, e.Cause)
	}
	return fmt.Sprintf("version conflict: ID is: %s, expected version is: %d", e.ID, e.ExpectedVersion)
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}

// StoreUnavailableError indicates that the backing store could not serve an
// operation (transport failure or rejected write).
type StoreUnavailableError struct {
	Operation string
	Cause     error
}

// NewStoreUnavailableError creates a StoreUnavailableError for the given operation.
func NewStoreUnavailableError(operation string) *StoreUnavailableError {
	return &StoreUnavailableError{Operation: operation}
}

// NewStoreUnavailableErrorWithCause creates a StoreUnavailableError with an underlying cause.
func NewStoreUnavailableErrorWithCause(operation string, cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Operation: operation, Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store unavailable: %s (cause: %s)", e.Operation, e.Cause)
	}
	return fmt.Sprintf("store unavailable: %s", e.Operation)
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}
