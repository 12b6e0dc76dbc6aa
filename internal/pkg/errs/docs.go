// Package errs provides standardized error types for the orders service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the failure conditions the service
// distinguishes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value lies outside its allowed range
//   - ObjectNotFoundError: a referenced order does not exist
//   - VersionConflictError: a conditional write lost against a concurrent writer
//   - StoreUnavailableError: the backing store is unreachable or rejected a write
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify errors
//     with errors.Is regardless of which layer produced them
//
// Not-found, version-conflict, and store-unavailable are deliberately kept
// as three distinct sentinels: the HTTP boundary maps them to 404, 409, and
// 500 respectively, and conflating any two would hide real failures.
package errs
