// Package guard provides a defensive construction check for commands and
// domain objects that must be created through their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// is a zero value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was built through its designated
// constructor or created as a zero value. Embedding a guard in a command lets
// handlers reject commands that skipped constructor validation.
//
// Example:
//
//	var ErrQueryIsNotConstructed = errors.New("Query must be created via NewQuery")
//
//	type Query struct {
//	    id    string
//	    guard ConstructorGuard
//	}
//
//	func NewQuery(id string) (Query, error) {
//	    if id == "" {
//	        return Query{}, errors.New("id is required")
//	    }
//	    return Query{id: id, guard: NewConstructorGuard()}, nil
//	}
//
//	func (q Query) Validate() error {
//	    return q.guard.Validate(ErrQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it in the
// constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built by its constructor,
// validationError otherwise. A nil validationError falls back to
// ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
