// Package errs provides standardized error types for the marketplace core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package carries both generic validation errors and the domain taxonomy
// of the order lifecycle:
//   - ObjectNotFoundError: unknown order, menu item or restaurant id
//   - UnauthorizedError: actor lacks permission for a transition
//   - IllegalTransitionError: no edge from the current status, including race losses
//   - PricingIntegrityError: corrupt catalog pricing data
//   - VersionConflictError: optimistic concurrency failure on an aggregate
//   - ValueIsRequired/ValueIsInvalid/ValueIsOutOfRange: caller input errors
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrIllegalTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// No error is ever swallowed: every mutating operation in the core either
// fully applies or fully fails with one of these types surfaced to the caller.
package errs
