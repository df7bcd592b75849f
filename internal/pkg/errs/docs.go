// Package errs provides standardized error types for the orders application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the three error categories a public operation may
// surface:
//   - ObjectNotFoundError: a referenced entity does not exist
//   - BusinessRuleError: the operation is illegal in the entity's current state
//   - InternalError: storage faults and any unanticipated failure, always
//     wrapped so raw errors never escape an operation boundary
//
// plus two validation errors used before an operation is invoked:
//   - ValueIsRequiredError: a required value is missing or blank
//   - ValueIsInvalidError: a value is present but invalid
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Errors that participate in the public contract additionally carry a stable
// machine-readable Code (e.g. ORDER_NOT_FOUND) that outer layers translate
// into transport-level statuses without parsing messages.
package errs
