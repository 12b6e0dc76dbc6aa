package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so that validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects, commands, and queries are only
// created through their designated constructor functions. A zero-value
// struct fails validation because the internal flag is never set.
//
// Example:
//
//	type RegisterOrderCommand struct {
//	    customerID string
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewRegisterOrderCommand(customerID string) (RegisterOrderCommand, error) {
//	    return RegisterOrderCommand{
//	        customerID: customerID,
//	        guard:      guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c RegisterOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns validationError for zero-value objects, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
