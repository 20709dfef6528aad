// Package errs provides the standardized error types used across the order workflow
// service. Every type pairs a sentinel error with a struct carrying details, so callers
// can match with errors.Is and still render a precise message.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but malformed
//   - ValueIsOutOfRangeError: a value falls outside allowed bounds
//   - ObjectNotFoundError: a lookup found nothing
//
// Each type offers a constructor with and without a cause, an Error method and an
// Unwrap method returning its sentinel.
package errs
