// Package errs provides the standardized error types used across the
// application.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - an Error() method producing a single-line message
//   - an Unwrap() method returning the sentinel, so errors.Is can classify
//     any instance against its sentinel
//
// The types cover the recurring validation and lookup failures of the
// domain layer: missing values, invalid values, out-of-range values,
// missing objects, and invalid aggregate versions.
package errs
