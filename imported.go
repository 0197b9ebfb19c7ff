package cogs

import (
	"github.com/cogworks/cogs/component"
	"github.com/cogworks/cogs/registry"
	"github.com/cogworks/cogs/search"
	"github.com/cogworks/cogs/store"
	"github.com/cogworks/cogs/types"
)

type (
	// Component is an ordered collection of object slots representing one
	// logical entity.
	Component  = component.Component
	ObjectSlot = component.ObjectSlot
	Store      = store.Store
	Registry   = registry.Registry
	Search     = search.Search

	TypeID      = types.TypeID
	TraitID     = types.TraitID
	ComponentID = types.ComponentID
)

// BadComponentID is never issued to a live component.
const BadComponentID = types.BadComponentID

var (
	ErrTraitNotRegistered = registry.ErrTraitNotRegistered
	ErrTypeNotRegistered  = registry.ErrTypeNotRegistered
	ErrDoesNotImplement   = registry.ErrDoesNotImplement
)
