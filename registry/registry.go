package registry

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/cogworks/cogs/types"
)

// Caster converts a stored object pointer into a trait interface value. A caster
// is recorded for a (TypeID, TraitID) pair only after the registry has proven
// that the concrete type satisfies the trait's interface, so invoking it on an
// object of the recorded type cannot fail.
type Caster func(obj any) any

type vtableKey struct {
	objType types.TypeID
	trait   types.TraitID
}

// Registry is the process-wide table of object types, traits, and the
// implementations connecting them. All lookups needed to reconstruct a typed
// trait reference from a type-erased object go through it.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	logger zerolog.Logger

	typesByRT   map[reflect.Type]types.ObjectTypeMetadata
	typesByName map[string]types.ObjectTypeMetadata
	typesByID   map[types.TypeID]types.ObjectTypeMetadata

	traitsByRT map[reflect.Type]types.TraitMetadata
	traitsByID map[types.TraitID]types.TraitMetadata

	vtables map[vtableKey]Caster

	nextTypeID  types.TypeID
	nextTraitID types.TraitID
}

// Option augments the creation of a Registry.
type Option func(r *Registry)

// WithLogger attaches a logger used for registration diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		logger:      zerolog.Nop(),
		typesByRT:   make(map[reflect.Type]types.ObjectTypeMetadata),
		typesByName: make(map[string]types.ObjectTypeMetadata),
		typesByID:   make(map[types.TypeID]types.ObjectTypeMetadata),
		traitsByRT:  make(map[reflect.Type]types.TraitMetadata),
		traitsByID:  make(map[types.TraitID]types.TraitMetadata),
		vtables:     make(map[vtableKey]Caster),
		nextTypeID:  1,
		nextTraitID: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterTrait registers the interface type T with the registry and returns its
// metadata. Registration is idempotent: repeat calls for the same interface type
// return the already-registered metadata with the same id.
func RegisterTrait[T any](r *Registry) (types.TraitMetadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ifaceType := reflect.TypeOf((*T)(nil)).Elem()
	if existing, ok := r.traitsByRT[ifaceType]; ok {
		return existing, nil
	}

	meta, err := newTraitMetadata[T]()
	if err != nil {
		return nil, err
	}
	if err := meta.SetID(r.nextTraitID); err != nil {
		return nil, err
	}

	r.traitsByRT[ifaceType] = meta
	r.traitsByID[meta.ID()] = meta
	r.nextTraitID++

	r.logger.Debug().
		Str("trait", meta.Name()).
		Int("trait_id", int(meta.ID())).
		Msg("registered trait")
	return meta, nil
}

// RegisterObjectType registers the concrete type T with the registry and returns
// its metadata. Registration is idempotent for the same Go type. Registering a
// different Go type under an already-used name fails; the error distinguishes a
// schema mismatch (the two types have different shapes) from a plain collision.
func RegisterObjectType[T types.ObjectType](r *Registry) (types.ObjectTypeMetadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var t T
	objType := reflect.TypeOf(t)
	if existing, ok := r.typesByRT[objType]; ok {
		return existing, nil
	}

	meta, err := newObjectTypeMetadata[T]()
	if err != nil {
		return nil, err
	}

	if prior, ok := r.typesByName[meta.Name()]; ok {
		if err := prior.ValidateAgainstSchema(meta.GetSchema()); err != nil {
			return nil, eris.Wrap(err,
				fmt.Sprintf("object type %q does not match the type already registered under that name", meta.Name()),
			)
		}
		return nil, eris.Errorf("object type %q is already registered", meta.Name())
	}

	if err := meta.SetID(r.nextTypeID); err != nil {
		return nil, err
	}
	r.typesByRT[objType] = meta
	r.typesByName[meta.Name()] = meta
	r.typesByID[meta.ID()] = meta
	r.nextTypeID++

	r.logger.Debug().
		Str("object_type", meta.Name()).
		Int("type_id", int(meta.ID())).
		Msg("registered object type")
	return meta, nil
}

// RegisterImpl records that the object type O implements the trait T, creating
// the vtable entry lookups use to build a typed reference to a stored *O. Both T
// and O must already be registered. The entry is created only after a checked
// interface assertion of *O against T, so an entry can never exist for a pair
// that does not hold in source code.
func RegisterImpl[T any, O types.ObjectType](r *Registry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ifaceType := reflect.TypeOf((*T)(nil)).Elem()
	traitMeta, ok := r.traitsByRT[ifaceType]
	if !ok {
		return eris.Wrapf(ErrTraitNotRegistered, "trait %s", ifaceType.String())
	}

	var o O
	objType := reflect.TypeOf(o)
	objMeta, ok := r.typesByRT[objType]
	if !ok {
		return eris.Wrapf(ErrTypeNotRegistered, "object type %s", objType.String())
	}

	if _, implements := any(&o).(T); !implements {
		return eris.Wrapf(ErrDoesNotImplement, "*%s does not implement %s", objMeta.Name(), traitMeta.Name())
	}

	key := vtableKey{objType: objMeta.ID(), trait: traitMeta.ID()}
	if _, exists := r.vtables[key]; exists {
		return nil
	}
	r.vtables[key] = func(obj any) any {
		return obj.(T)
	}

	r.logger.Debug().
		Str("object_type", objMeta.Name()).
		Str("trait", traitMeta.Name()).
		Msg("registered trait implementation")
	return nil
}

// TraitID returns the id assigned to the trait interface T.
func TraitID[T any](r *Registry) (types.TraitID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ifaceType := reflect.TypeOf((*T)(nil)).Elem()
	meta, ok := r.traitsByRT[ifaceType]
	if !ok {
		return 0, eris.Wrapf(ErrTraitNotRegistered, "trait %s", ifaceType.String())
	}
	return meta.ID(), nil
}

// MustTraitID is like TraitID but panics if the trait was never registered.
func MustTraitID[T any](r *Registry) types.TraitID {
	id, err := TraitID[T](r)
	if err != nil {
		panic(err)
	}
	return id
}

// TypeID returns the id assigned to the object type O.
func TypeID[O types.ObjectType](r *Registry) (types.TypeID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var o O
	meta, ok := r.typesByRT[reflect.TypeOf(o)]
	if !ok {
		return 0, eris.Wrapf(ErrTypeNotRegistered, "object type %s", reflect.TypeOf(o).String())
	}
	return meta.ID(), nil
}

// TraitByID returns the metadata for a registered trait id.
func (r *Registry) TraitByID(id types.TraitID) (types.TraitMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, ok := r.traitsByID[id]
	return meta, ok
}

// TypeByID returns the metadata for a registered object type id.
func (r *Registry) TypeByID(id types.TypeID) (types.ObjectTypeMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, ok := r.typesByID[id]
	return meta, ok
}

// TypeByReflect returns the metadata registered for the given Go type.
func (r *Registry) TypeByReflect(rt reflect.Type) (types.ObjectTypeMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, ok := r.typesByRT[rt]
	return meta, ok
}

// Caster returns the vtable entry for the given (object type, trait) pair.
func (r *Registry) Caster(objType types.TypeID, trait types.TraitID) (Caster, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	caster, ok := r.vtables[vtableKey{objType: objType, trait: trait}]
	return caster, ok
}

// HasImpl reports whether a vtable entry exists for the given pair.
func (r *Registry) HasImpl(objType types.TypeID, trait types.TraitID) bool {
	_, ok := r.Caster(objType, trait)
	return ok
}

// Traits returns all registered traits ordered by id.
func (r *Registry) Traits() []types.TraitMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	traits := make([]types.TraitMetadata, 0, len(r.traitsByID))
	for _, meta := range r.traitsByID {
		traits = append(traits, meta)
	}
	sort.Slice(traits, func(i, j int) bool { return traits[i].ID() < traits[j].ID() })
	return traits
}

// Types returns all registered object types ordered by id.
func (r *Registry) Types() []types.ObjectTypeMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	objTypes := make([]types.ObjectTypeMetadata, 0, len(r.typesByID))
	for _, meta := range r.typesByID {
		objTypes = append(objTypes, meta)
	}
	sort.Slice(objTypes, func(i, j int) bool { return objTypes[i].ID() < objTypes[j].ID() })
	return objTypes
}

// Fingerprint hashes the ordered registration tables. Two registries populated
// by the same registration sequence produce the same fingerprint, which makes
// drift between processes or test runs cheap to detect in logs.
func (r *Registry) Fingerprint() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	digest := xxhash.New()
	write := func(format string, args ...any) {
		// xxhash.Digest never returns a write error.
		_, _ = fmt.Fprintf(digest, format, args...)
	}

	ids := make([]vtableKey, 0, len(r.vtables))
	for key := range r.vtables {
		ids = append(ids, key)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].objType != ids[j].objType {
			return ids[i].objType < ids[j].objType
		}
		return ids[i].trait < ids[j].trait
	})

	for _, meta := range r.typeList() {
		write("type:%d:%s\n", meta.ID(), meta.Name())
	}
	for _, meta := range r.traitList() {
		write("trait:%d:%s\n", meta.ID(), meta.Name())
	}
	for _, key := range ids {
		write("impl:%d:%d\n", key.objType, key.trait)
	}
	return digest.Sum64()
}

// typeList is Types without locking, for callers that already hold mu.
func (r *Registry) typeList() []types.ObjectTypeMetadata {
	objTypes := make([]types.ObjectTypeMetadata, 0, len(r.typesByID))
	for _, meta := range r.typesByID {
		objTypes = append(objTypes, meta)
	}
	sort.Slice(objTypes, func(i, j int) bool { return objTypes[i].ID() < objTypes[j].ID() })
	return objTypes
}

// traitList is Traits without locking, for callers that already hold mu.
func (r *Registry) traitList() []types.TraitMetadata {
	traits := make([]types.TraitMetadata, 0, len(r.traitsByID))
	for _, meta := range r.traitsByID {
		traits = append(traits, meta)
	}
	sort.Slice(traits, func(i, j int) bool { return traits[i].ID() < traits[j].ID() })
	return traits
}
