// Package search implements trait lookup: given a component and a trait,
// produce a typed reference to a contained object implementing it, without the
// caller knowing which concrete object that is.
package search

import (
	"github.com/rotisserie/eris"

	"github.com/cogworks/cogs/component"
	"github.com/cogworks/cogs/registry"
	"github.com/cogworks/cogs/types"
)

// CallbackFn is invoked with each trait reference found by Each. Return false
// to stop the scan early.
type CallbackFn func(ref any) bool

// Search represents a trait lookup against one component. The result of every
// method is a pure function of the component's slot sequence and the registry:
// slots are scanned in insertion order and a slot matches when it lists the
// trait and the registry holds a vtable entry for (slot type, trait).
//
// First consults the slots' normal trait lists; Each, Count, and Iterator
// consult the repeatable lists. The two lists never interact.
type Search struct {
	reg   *registry.Registry
	comp  *component.Component
	trait types.TraitID
}

// New creates a lookup for trait on comp.
func New(reg *registry.Registry, comp *component.Component, trait types.TraitID) *Search {
	return &Search{
		reg:   reg,
		comp:  comp,
		trait: trait,
	}
}

// First returns a reference to the first object, in slot insertion order, whose
// slot lists the trait in its normal list. The second return is false when no
// slot matches: an expected outcome the caller handles, not an error. Looking
// up a trait id the registry never issued is a caller error and returns
// registry.ErrTraitNotRegistered.
func (s *Search) First() (any, bool, error) {
	if err := s.checkRegistered(); err != nil {
		return nil, false, err
	}
	for i := 0; i < s.comp.Len(); i++ {
		slot := s.comp.Slot(i)
		if !slot.ListsTrait(s.trait) {
			continue
		}
		ref, err := s.cast(slot)
		if err != nil {
			return nil, false, err
		}
		return ref, true, nil
	}
	return nil, false, nil
}

// Has reports whether First would find a match.
func (s *Search) Has() (bool, error) {
	if err := s.checkRegistered(); err != nil {
		return false, err
	}
	for i := 0; i < s.comp.Len(); i++ {
		if s.comp.Slot(i).ListsTrait(s.trait) {
			return true, nil
		}
	}
	return false, nil
}

// Each invokes callback with every repeatable implementation of the trait, in
// slot insertion order. Return false from the callback to stop early.
func (s *Search) Each(callback CallbackFn) error {
	if err := s.checkRegistered(); err != nil {
		return err
	}
	for i := 0; i < s.comp.Len(); i++ {
		slot := s.comp.Slot(i)
		if !slot.ListsRepeatable(s.trait) {
			continue
		}
		ref, err := s.cast(slot)
		if err != nil {
			return err
		}
		if !callback(ref) {
			return nil
		}
	}
	return nil
}

// Count returns the number of repeatable implementations of the trait.
func (s *Search) Count() (int, error) {
	count := 0
	err := s.Each(func(any) bool {
		count++
		return true
	})
	return count, err
}

// Iterator returns a fresh lazy iterator over the repeatable implementations of
// the trait. Each call starts a new scan, so two iterators obtained from the
// same Search yield identical sequences.
func (s *Search) Iterator() *TraitIterator {
	return &TraitIterator{search: s}
}

func (s *Search) checkRegistered() error {
	if _, ok := s.reg.TraitByID(s.trait); !ok {
		return eris.Wrapf(registry.ErrTraitNotRegistered, "trait id %d", s.trait)
	}
	return nil
}

// cast builds the typed reference for a slot that lists the trait. A listed
// trait without a vtable entry cannot happen through AddObject; seeing one
// means the registry and the component disagree about what the slot's type
// implements.
func (s *Search) cast(slot *component.ObjectSlot) (any, error) {
	caster, ok := s.reg.Caster(slot.TypeID(), s.trait)
	if !ok {
		return nil, eris.Errorf(
			"no vtable entry for trait id %d on object type %q; component %s was built against a different registry",
			s.trait, slot.TypeName(), s.comp,
		)
	}
	return caster(slot.Object()), nil
}
