package component

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/cogworks/cogs/codec"
	"github.com/cogworks/cogs/registry"
	"github.com/cogworks/cogs/types"
)

// Component is the unit of composition of the object model: an ordered sequence
// of object slots representing one logical entity. Clients interact with the
// contained objects only through their traits, resolved via the search package.
//
// Components are identity-compared by id, never structurally. A component is
// mutable while it is being built; handing it to a store seals its slot
// composition, which is what makes concurrent lookups on stored components safe
// without locks.
type Component struct {
	id     types.ComponentID
	label  string
	slots  []*ObjectSlot
	sealed bool
}

// New creates an empty component. The label is a human-readable diagnostic tag
// carried through logs; it plays no part in identity.
func New(label string) *Component {
	return &Component{
		id:    types.NextComponentID(),
		label: label,
	}
}

// ID returns the component's process-unique id.
func (c *Component) ID() types.ComponentID {
	return c.id
}

// Label returns the diagnostic label the component was created with.
func (c *Component) Label() string {
	return c.label
}

// Len returns the number of object slots.
func (c *Component) Len() int {
	return len(c.slots)
}

// Slot returns the i'th object slot in insertion order.
func (c *Component) Slot(i int) *ObjectSlot {
	return c.slots[i]
}

// Sealed reports whether the component's slot composition is frozen.
func (c *Component) Sealed() bool {
	return c.sealed
}

// Seal freezes the component's slot composition. Stores seal components when
// taking ownership; sealing is not reversible.
func (c *Component) Seal() {
	c.sealed = true
}

// String formats as label#id.
func (c *Component) String() string {
	return fmt.Sprintf("%s#%d", c.label, c.id)
}

// MarshalZerologObject emits the component's identity and slot layout.
func (c *Component) MarshalZerologObject(e *zerolog.Event) {
	arr := zerolog.Arr()
	for _, slot := range c.slots {
		arr = arr.Str(slot.TypeName())
	}
	e.Uint64("component_id", uint64(c.id)).
		Str("label", c.label).
		Array("objects", arr)
}

// slotDump is the shape of one slot in an Inspect report.
type slotDump struct {
	Type   string `json:"type"`
	Object any    `json:"object"`
}

// Inspect returns a JSON report of the component's slots in insertion order,
// with each object's current state. It is a diagnostic aid, not a persistence
// format.
func (c *Component) Inspect() ([]byte, error) {
	dump := make([]slotDump, 0, len(c.slots))
	for _, slot := range c.slots {
		dump = append(dump, slotDump{
			Type:   slot.TypeName(),
			Object: slot.Object(),
		})
	}
	return codec.Encode(dump)
}

// AddObject appends a slot holding obj to the component. The obj argument must
// be a pointer to a registered object type; the pointed-to value is owned by the
// slot from here on and its address is what trait references resolve to.
//
// The normal list holds the traits resolved by first-match lookups; the
// repeatable list holds traits that several slots in one component may all
// expose. Every listed trait must already have an implementation registered for
// obj's type. Violations are programming errors and panic with a diagnostic
// naming the offending type or trait, because proceeding would let a later
// lookup hand out a reference the registry cannot vouch for.
func AddObject(
	r *registry.Registry,
	c *Component,
	obj types.ObjectType,
	normal []types.TraitID,
	repeatable []types.TraitID,
) *ObjectSlot {
	if c.sealed {
		panic(fmt.Sprintf("cogs: cannot add object to sealed component %s", c))
	}

	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		panic(fmt.Sprintf("cogs: object added to component %s must be a non-nil pointer, got %T", c, obj))
	}

	objMeta, ok := r.TypeByReflect(rv.Type().Elem())
	if !ok {
		panic(fmt.Sprintf("cogs: object type %s is not registered", rv.Type().Elem()))
	}

	checkTraits(r, c, objMeta, normal)
	checkTraits(r, c, objMeta, repeatable)

	slot := &ObjectSlot{
		obj:        obj,
		typeID:     objMeta.ID(),
		typeName:   objMeta.Name(),
		normal:     append([]types.TraitID(nil), normal...),
		repeatable: append([]types.TraitID(nil), repeatable...),
	}
	c.slots = append(c.slots, slot)
	return slot
}

func checkTraits(r *registry.Registry, c *Component, objMeta types.ObjectTypeMetadata, traits []types.TraitID) {
	for _, id := range traits {
		traitMeta, ok := r.TraitByID(id)
		if !ok {
			panic(fmt.Sprintf("cogs: trait id %d listed for object %q on component %s is not registered",
				id, objMeta.Name(), c))
		}
		if !r.HasImpl(objMeta.ID(), id) {
			panic(fmt.Sprintf("cogs: no implementation registered for trait %q on object type %q (component %s)",
				traitMeta.Name(), objMeta.Name(), c))
		}
	}
}
