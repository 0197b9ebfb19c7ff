package types

import "reflect"

// ObjectType is the interface that user-defined object structs implement so they
// can be registered and composed into components.
type ObjectType interface {
	// Name returns the canonical name of the object type.
	Name() string
}

// ObjectTypeMetadata wraps a user-defined object struct and provides the identity
// and reflection data the registry tracks for it.
type ObjectTypeMetadata interface {
	// SetID sets the TypeID of this object type. It must only be set once.
	SetID(TypeID) error
	// ID returns the TypeID of the object type.
	ID() TypeID
	// Type returns the reflect.Type of the underlying struct.
	Type() reflect.Type
	// GetSchema returns the JSON schema recorded at registration.
	GetSchema() []byte
	// ValidateAgainstSchema reports whether the recorded schema matches target.
	ValidateAgainstSchema(target []byte) error

	ObjectType
}
