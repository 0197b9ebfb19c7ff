package types

import (
	"reflect"

	"github.com/rotisserie/eris"
)

// ErrSchemaMismatch is returned when a re-registered object type's schema
// diverges from the one recorded at first registration.
var ErrSchemaMismatch = eris.New("object type schema mismatch")

// TraitMetadata describes a registered trait: a Go interface type under a
// stable id.
type TraitMetadata interface {
	// SetID sets the TraitID of this trait. It must only be set once.
	SetID(TraitID) error
	// ID returns the TraitID of the trait.
	ID() TraitID
	// Name returns the trait's interface type name.
	Name() string
	// Type returns the reflect.Type of the trait interface.
	Type() reflect.Type
}
