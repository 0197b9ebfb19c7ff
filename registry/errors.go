package registry

import "github.com/rotisserie/eris"

var (
	// ErrNotAnInterface is returned when a trait registration names a concrete
	// type instead of an interface type.
	ErrNotAnInterface = eris.New("trait must be an interface type")

	// ErrTraitNotRegistered is returned when a trait id or interface type is used
	// before being registered. This is distinct from a trait that is registered
	// but not present on a particular component.
	ErrTraitNotRegistered = eris.New("trait not registered")

	// ErrTypeNotRegistered is returned when an object type is used before being
	// registered.
	ErrTypeNotRegistered = eris.New("object type not registered")

	// ErrDoesNotImplement is returned when an implementation registration names a
	// (trait, object type) pair where the object type does not satisfy the
	// trait's interface. Rejecting the pair here is what keeps the vtable table
	// and the actual method sets from ever drifting apart.
	ErrDoesNotImplement = eris.New("object type does not implement trait")
)
