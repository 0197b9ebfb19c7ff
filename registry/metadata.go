package registry

import (
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"

	"github.com/cogworks/cogs/types"
)

// Interface guard
var _ types.ObjectTypeMetadata = (*objectTypeMetadata[types.ObjectType])(nil)

// objectTypeMetadata represents a registered concrete object type. It is used to
// identify the type when building components and resolving trait lookups.
type objectTypeMetadata[T types.ObjectType] struct {
	isIDSet bool
	id      types.TypeID
	objType reflect.Type
	name    string
	schema  []byte
}

// newObjectTypeMetadata reflects the identity metadata for the object type T.
func newObjectTypeMetadata[T types.ObjectType]() (types.ObjectTypeMetadata, error) {
	var t T
	objType := reflect.TypeOf(t)
	if objType == nil {
		return nil, eris.New("object type must be a concrete type, not an interface")
	}

	schema, err := jsonschema.ReflectFromType(objType).MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "object type must be json serializable")
	}

	return &objectTypeMetadata[T]{
		objType: objType,
		name:    t.Name(),
		schema:  schema,
	}, nil
}

func (m *objectTypeMetadata[T]) GetSchema() []byte {
	return m.schema
}

// SetID sets this object type's id. It must be unique across the registry.
func (m *objectTypeMetadata[T]) SetID(id types.TypeID) error {
	if m.isIDSet {
		// Object types are registered one time per registry. Tests commonly reuse
		// the same object type against multiple registries, so re-setting is
		// allowed as long as the id does not change.
		if id == m.id {
			return nil
		}
		return eris.Errorf("id for object type %q is already set to %v, cannot change to %v", m.name, m.id, id)
	}
	m.id = id
	m.isIDSet = true
	return nil
}

// String returns the object type name.
func (m *objectTypeMetadata[T]) String() string {
	return m.name
}

// Name returns the object type name.
func (m *objectTypeMetadata[T]) Name() string {
	return m.name
}

// ID returns the object type id.
func (m *objectTypeMetadata[T]) ID() types.TypeID {
	return m.id
}

// Type returns the reflect.Type of the underlying struct.
func (m *objectTypeMetadata[T]) Type() reflect.Type {
	return m.objType
}

func (m *objectTypeMetadata[T]) ValidateAgainstSchema(target []byte) error {
	diff, err := jsondiff.CompareJSON(m.schema, target)
	if err != nil {
		return eris.Wrap(err, "failed to compare object type schema")
	}

	if diff.String() != "" {
		return eris.Wrap(types.ErrSchemaMismatch, diff.String())
	}

	return nil
}

// Interface guard
var _ types.TraitMetadata = (*traitMetadata)(nil)

// traitMetadata represents a registered trait interface.
type traitMetadata struct {
	isIDSet   bool
	id        types.TraitID
	ifaceType reflect.Type
	name      string
}

// newTraitMetadata reflects the identity metadata for the trait interface T.
func newTraitMetadata[T any]() (*traitMetadata, error) {
	ifaceType := reflect.TypeOf((*T)(nil)).Elem()
	if ifaceType.Kind() != reflect.Interface {
		return nil, eris.Wrapf(ErrNotAnInterface, "%s", ifaceType.String())
	}

	name := ifaceType.Name()
	if name == "" {
		name = ifaceType.String()
	}

	return &traitMetadata{
		ifaceType: ifaceType,
		name:      name,
	}, nil
}

// SetID sets this trait's id. It must be unique across the registry.
func (m *traitMetadata) SetID(id types.TraitID) error {
	if m.isIDSet {
		if id == m.id {
			return nil
		}
		return eris.Errorf("id for trait %q is already set to %v, cannot change to %v", m.name, m.id, id)
	}
	m.id = id
	m.isIDSet = true
	return nil
}

// String returns the trait name.
func (m *traitMetadata) String() string {
	return m.name
}

// Name returns the trait name.
func (m *traitMetadata) Name() string {
	return m.name
}

// ID returns the trait id.
func (m *traitMetadata) ID() types.TraitID {
	return m.id
}

// Type returns the reflect.Type of the trait interface.
func (m *traitMetadata) Type() reflect.Type {
	return m.ifaceType
}
