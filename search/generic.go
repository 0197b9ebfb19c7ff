package search

import (
	"github.com/cogworks/cogs/component"
	"github.com/cogworks/cogs/registry"
)

// Find returns the first implementation of the trait interface T on the
// component, typed. The boolean is false when no slot exposes T; the error is
// non-nil only for caller mistakes such as looking up a trait that was never
// registered.
func Find[T any](r *registry.Registry, c *component.Component) (T, bool, error) {
	var zero T
	id, err := registry.TraitID[T](r)
	if err != nil {
		return zero, false, err
	}
	ref, ok, err := New(r, c, id).First()
	if err != nil || !ok {
		return zero, false, err
	}
	return ref.(T), true, nil
}

// FindAll returns every repeatable implementation of T on the component, in
// slot insertion order.
func FindAll[T any](r *registry.Registry, c *component.Component) ([]T, error) {
	id, err := registry.TraitID[T](r)
	if err != nil {
		return nil, err
	}

	var out []T
	err = New(r, c, id).Each(func(ref any) bool {
		out = append(out, ref.(T))
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Has reports whether the component exposes T as a normal trait. An
// unregistered T simply reports false.
func Has[T any](r *registry.Registry, c *component.Component) bool {
	id, err := registry.TraitID[T](r)
	if err != nil {
		return false
	}
	ok, err := New(r, c, id).Has()
	return err == nil && ok
}
