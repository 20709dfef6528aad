// Package guard provides a marker that lets value objects and aggregates
// detect whether they were built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller supplies no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into commands, queries and domain objects. A zero value
// reports itself as not constructed, so a struct literal that skips the New* function
// fails validation.
//
//	type PhoneNumber struct {
//	    raw   string
//	    guard guard.ConstructorGuard
//	}
//
//	func (p PhoneNumber) Validate() error {
//	    return p.guard.Validate(ErrPhoneNumberNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner was not created through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
