package component

import (
	"github.com/cogworks/cogs/types"
)

// ObjectSlot owns one concrete object inside a component: a pointer to the
// heap-allocated value, the object's type id, and the ordered trait lists the
// object was added with. The pointer's address is fixed for the slot's lifetime;
// every trait reference produced by a lookup aliases it.
type ObjectSlot struct {
	obj        any
	typeID     types.TypeID
	typeName   string
	normal     []types.TraitID
	repeatable []types.TraitID
}

// Object returns the stored object pointer.
func (s *ObjectSlot) Object() any {
	return s.obj
}

// TypeID returns the id of the stored object's type.
func (s *ObjectSlot) TypeID() types.TypeID {
	return s.typeID
}

// TypeName returns the registered name of the stored object's type.
func (s *ObjectSlot) TypeName() string {
	return s.typeName
}

// ListsTrait reports whether the slot exposes the trait in its normal list.
func (s *ObjectSlot) ListsTrait(id types.TraitID) bool {
	for _, t := range s.normal {
		if t == id {
			return true
		}
	}
	return false
}

// ListsRepeatable reports whether the slot exposes the trait in its repeatable
// list.
func (s *ObjectSlot) ListsRepeatable(id types.TraitID) bool {
	for _, t := range s.repeatable {
		if t == id {
			return true
		}
	}
	return false
}

// Traits returns a copy of the slot's normal trait list, in the order the
// traits were declared.
func (s *ObjectSlot) Traits() []types.TraitID {
	out := make([]types.TraitID, len(s.normal))
	copy(out, s.normal)
	return out
}

// RepeatableTraits returns a copy of the slot's repeatable trait list.
func (s *ObjectSlot) RepeatableTraits() []types.TraitID {
	out := make([]types.TraitID, len(s.repeatable))
	copy(out, s.repeatable)
	return out
}
