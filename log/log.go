// Package log provides zerolog event builders for the object model's runtime
// state: what is registered, and what a component or store currently holds.
package log

import (
	"github.com/rs/zerolog"

	"github.com/cogworks/cogs/component"
	"github.com/cogworks/cogs/registry"
	"github.com/cogworks/cogs/store"
	"github.com/cogworks/cogs/types"
)

func loadTypeIntoArrayLogger(meta types.ObjectTypeMetadata, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Int("type_id", int(meta.ID()))
	dictLogger = dictLogger.Str("type_name", meta.Name())
	return arrayLogger.Dict(dictLogger)
}

func loadTraitIntoArrayLogger(meta types.TraitMetadata, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Int("trait_id", int(meta.ID()))
	dictLogger = dictLogger.Str("trait_name", meta.Name())
	return arrayLogger.Dict(dictLogger)
}

func loadRegistryIntoEvent(event *zerolog.Event, reg *registry.Registry) *zerolog.Event {
	objTypes := reg.Types()
	traits := reg.Traits()
	event.Int("total_types", len(objTypes))
	typeArr := zerolog.Arr()
	for _, meta := range objTypes {
		typeArr = loadTypeIntoArrayLogger(meta, typeArr)
	}
	event.Array("types", typeArr)

	event.Int("total_traits", len(traits))
	traitArr := zerolog.Arr()
	for _, meta := range traits {
		traitArr = loadTraitIntoArrayLogger(meta, traitArr)
	}
	event.Array("traits", traitArr)
	return event.Uint64("fingerprint", reg.Fingerprint())
}

// Registry logs every registered object type and trait, plus the registry
// fingerprint.
func Registry(logger *zerolog.Logger, reg *registry.Registry, level zerolog.Level) {
	event := logger.WithLevel(level)
	event = loadRegistryIntoEvent(event, reg)
	event.Send()
}

// Component logs a component's identity and slot layout.
func Component(logger *zerolog.Logger, c *component.Component, level zerolog.Level) {
	event := logger.WithLevel(level)
	event.Object("component", c)
	event.Send()
}

// Store logs the store's instance id and every live component. Iteration order
// is the store's, so two reports from the same store may order entries
// differently.
func Store(logger *zerolog.Logger, s *store.Store, level zerolog.Level) {
	arr := zerolog.Arr()
	s.Each(func(c *component.Component) bool {
		arr = arr.Object(c)
		return true
	})
	event := logger.WithLevel(level)
	event.Str("store_id", s.ID()).
		Int("total_components", s.Len()).
		Array("components", arr)
	event.Send()
}

// CreateTraitLogger creates a sub logger with the entry {"trait": traitName},
// for code paths that act through a single capability.
func CreateTraitLogger(logger *zerolog.Logger, traitName string) *zerolog.Logger {
	subLogger := logger.With().Str("trait", traitName).Logger()
	return &subLogger
}
