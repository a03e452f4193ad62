// Package errs provides standardized error types for the back-office service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - TransitionIsNotAllowedError: For when an order status change is not offered to the actor
//   - AccessDeniedError: For when an actor lacks the privilege for an action
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Adapters classify failures with errors.Is against the sentinels, so the HTTP layer
// can map every kind to a status code in a single place.
package errs
