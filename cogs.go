// Package cogs implements a runtime component-object model: a registry that
// groups heterogeneous objects into components and lets client code, holding
// only a component handle, discover and invoke any trait implemented by any
// object inside that component.
//
// Go values expose exactly one concrete method set; they do not compose. cogs
// substitutes for implementation inheritance by letting a component own several
// objects, each registered as implementing some set of trait interfaces, and by
// resolving a requested trait to whichever contained object implements it.
//
// The package-level functions here operate on a process-wide default registry,
// which is what most applications want: traits and object types are registered
// once at startup, components are built and handed to a store, and each turn
// fetches components by id and queries traits to drive behavior. Libraries that
// need isolated registration tables can build against their own
// registry.Registry and use the registry, component, and search packages
// directly.
package cogs

import (
	"github.com/cogworks/cogs/component"
	"github.com/cogworks/cogs/registry"
	"github.com/cogworks/cogs/search"
	"github.com/cogworks/cogs/store"
	"github.com/cogworks/cogs/types"
)

var defaultRegistry = registry.New()

// DefaultRegistry returns the registry the package-level functions operate on.
func DefaultRegistry() *registry.Registry {
	return defaultRegistry
}

// RegisterTrait registers the interface type T. Idempotent: repeat calls return
// the same metadata.
func RegisterTrait[T any]() (types.TraitMetadata, error) {
	return registry.RegisterTrait[T](defaultRegistry)
}

// MustRegisterTrait is like RegisterTrait but panics on error. Registration
// happens once per trait at startup, typically from an init function next to
// the interface declaration, where an error means the program is structurally
// wrong.
func MustRegisterTrait[T any]() types.TraitMetadata {
	meta, err := RegisterTrait[T]()
	if err != nil {
		panic(err)
	}
	return meta
}

// RegisterObjectType registers the concrete type T. Idempotent for the same Go
// type.
func RegisterObjectType[T types.ObjectType]() (types.ObjectTypeMetadata, error) {
	return registry.RegisterObjectType[T](defaultRegistry)
}

// MustRegisterObjectType is like RegisterObjectType but panics on error.
func MustRegisterObjectType[T types.ObjectType]() types.ObjectTypeMetadata {
	meta, err := RegisterObjectType[T]()
	if err != nil {
		panic(err)
	}
	return meta
}

// RegisterImpl records that object type O implements trait T. Keep the call
// next to the methods that satisfy T, so the registration and the
// implementation cannot drift apart.
func RegisterImpl[T any, O types.ObjectType]() error {
	return registry.RegisterImpl[T, O](defaultRegistry)
}

// MustRegisterImpl is like RegisterImpl but panics on error.
func MustRegisterImpl[T any, O types.ObjectType]() {
	if err := RegisterImpl[T, O](); err != nil {
		panic(err)
	}
}

// MustTraitID returns the id assigned to the trait interface T and panics if T
// was never registered. For the error-returning form, use registry.TraitID
// against DefaultRegistry.
func MustTraitID[T any]() types.TraitID {
	return registry.MustTraitID[T](defaultRegistry)
}

// NewComponent creates an empty component with a diagnostic label.
func NewComponent(label string) *component.Component {
	return component.New(label)
}

// AddObject appends obj to the component with the given normal and repeatable
// trait lists. See component.AddObject for the contract; misuse panics.
func AddObject(
	c *component.Component,
	obj types.ObjectType,
	normal []types.TraitID,
	repeatable []types.TraitID,
) *component.ObjectSlot {
	return component.AddObject(defaultRegistry, c, obj, normal, repeatable)
}

// NewStore creates an empty component store.
func NewStore(opts ...store.Option) *store.Store {
	return store.New(opts...)
}

// FindTrait returns the first implementation of trait T on the component, in
// slot insertion order. The boolean is false when no slot exposes T.
func FindTrait[T any](c *component.Component) (T, bool, error) {
	return search.Find[T](defaultRegistry, c)
}

// FindAllTraits returns every repeatable implementation of T on the component,
// in slot insertion order.
func FindAllTraits[T any](c *component.Component) ([]T, error) {
	return search.FindAll[T](defaultRegistry, c)
}

// HasTrait reports whether the component exposes T as a normal trait.
func HasTrait[T any](c *component.Component) bool {
	return search.Has[T](defaultRegistry, c)
}
