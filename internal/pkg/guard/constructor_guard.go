// Package guard implements the constructor guard pattern used by domain
// objects and commands to reject zero-value instances that bypassed their
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether an object was created through its designated
// constructor. Embed it in a struct and set it with NewConstructorGuard inside
// the constructor; a zero-value struct then fails Validate.
//
// Example:
//
//	type AcceptJobCommand struct {
//	    jobID kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewAcceptJobCommand(jobID kernel.UUID) (AcceptJobCommand, error) {
//	    if err := jobID.Validate(); err != nil {
//	        return AcceptJobCommand{}, err
//	    }
//	    return AcceptJobCommand{jobID: jobID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AcceptJobCommand) Validate() error {
//	    return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created via its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
