// Package errs provides standardized error types for the service ordering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines one error type per expected failure class of the API:
//   - ObjectNotFoundError: a referenced identifier does not exist
//   - ConflictError: an identifier collision on create
//   - InvalidRequestError: a malformed or policy-violating payload
//   - InvalidFilterError: an unsupported query filter expression
//   - InvalidFieldSelectionError: an unsupported 'fields' selection
//   - InternalError: a broken caller contract (programming error)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Expected API conditions are modeled as returned error values rather than
// panics; the transport layer maps each sentinel onto its HTTP status code.
package errs
