package component_test

import (
	"testing"

	"github.com/cogworks/cogs/assert"
	"github.com/cogworks/cogs/codec"
	"github.com/cogworks/cogs/component"
	"github.com/cogworks/cogs/registry"
	"github.com/cogworks/cogs/types"
)

type Render interface {
	Glyph() rune
}

type Inspectable interface {
	Describe() string
}

type Wolf struct {
	Hunger int
}

func (Wolf) Name() string { return "wolf" }

func (w *Wolf) Glyph() rune { return 'w' }

func (w *Wolf) Describe() string { return "wolf" }

type Grass struct {
	Height int
}

func (Grass) Name() string { return "grass" }

func (g *Grass) Glyph() rune { return '|' }

func (g *Grass) Describe() string { return "grass" }

type unregistered struct{}

func (unregistered) Name() string { return "unregistered" }

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	_, err := registry.RegisterTrait[Render](reg)
	assert.NilError(t, err)
	_, err = registry.RegisterTrait[Inspectable](reg)
	assert.NilError(t, err)
	_, err = registry.RegisterObjectType[Wolf](reg)
	assert.NilError(t, err)
	_, err = registry.RegisterObjectType[Grass](reg)
	assert.NilError(t, err)
	assert.NilError(t, registry.RegisterImpl[Render, Wolf](reg))
	assert.NilError(t, registry.RegisterImpl[Render, Grass](reg))
	assert.NilError(t, registry.RegisterImpl[Inspectable, Wolf](reg))
	assert.NilError(t, registry.RegisterImpl[Inspectable, Grass](reg))
	return reg
}

func TestAddObjectAppendsSlotsInOrder(t *testing.T) {
	reg := newTestRegistry(t)
	render := registry.MustTraitID[Render](reg)

	c := component.New("meadow")
	component.AddObject(reg, c, &Grass{Height: 3}, []types.TraitID{render}, nil)
	component.AddObject(reg, c, &Wolf{Hunger: 10}, []types.TraitID{render}, nil)

	assert.Equal(t, c.Len(), 2)
	assert.Equal(t, c.Slot(0).TypeName(), "grass")
	assert.Equal(t, c.Slot(1).TypeName(), "wolf")
	assert.True(t, c.Slot(0).ListsTrait(render))
	assert.False(t, c.Slot(0).ListsRepeatable(render))
}

func TestAddObjectSharesOneObjectAcrossTraitViews(t *testing.T) {
	reg := newTestRegistry(t)
	render := registry.MustTraitID[Render](reg)
	inspect := registry.MustTraitID[Inspectable](reg)

	wolf := &Wolf{Hunger: 10}
	c := component.New("wolf")
	slot := component.AddObject(reg, c, wolf, []types.TraitID{render}, []types.TraitID{inspect})

	assert.Same(t, slot.Object(), wolf)
}

func TestAddObjectPanicsOnUnregisteredType(t *testing.T) {
	reg := newTestRegistry(t)
	c := component.New("bad")

	assert.Panics(t, func() {
		component.AddObject(reg, c, &unregistered{}, nil, nil)
	})
}

func TestAddObjectPanicsOnUnregisteredTrait(t *testing.T) {
	reg := newTestRegistry(t)
	c := component.New("bad")

	assert.Panics(t, func() {
		component.AddObject(reg, c, &Wolf{}, []types.TraitID{types.TraitID(999)}, nil)
	})
}

func TestAddObjectPanicsWithoutImplementation(t *testing.T) {
	reg := newTestRegistry(t)

	type Howl interface{ Howl() }
	_, err := registry.RegisterTrait[Howl](reg)
	assert.NilError(t, err)
	howl := registry.MustTraitID[Howl](reg)

	c := component.New("bad")
	assert.Panics(t, func() {
		component.AddObject(reg, c, &Wolf{}, []types.TraitID{howl}, nil)
	})
}

func TestAddObjectPanicsOnNonPointer(t *testing.T) {
	reg := newTestRegistry(t)
	c := component.New("bad")

	assert.Panics(t, func() {
		component.AddObject(reg, c, Wolf{}, nil, nil)
	})
}

func TestAddObjectPanicsOnSealedComponent(t *testing.T) {
	reg := newTestRegistry(t)
	c := component.New("sealed")
	c.Seal()

	assert.Panics(t, func() {
		component.AddObject(reg, c, &Wolf{}, nil, nil)
	})
}

func TestComponentIDsAreUnique(t *testing.T) {
	a := component.New("a")
	b := component.New("b")
	assert.Assert(t, a.ID() != b.ID())
}

func TestComponentStringCarriesLabelAndID(t *testing.T) {
	c := component.New("wolf")
	assert.Contains(t, c.String(), "wolf#")
}

func TestInspectReportsSlotsInOrder(t *testing.T) {
	reg := newTestRegistry(t)
	render := registry.MustTraitID[Render](reg)

	c := component.New("meadow")
	component.AddObject(reg, c, &Wolf{Hunger: 7}, []types.TraitID{render}, nil)
	component.AddObject(reg, c, &Grass{Height: 2}, []types.TraitID{render}, nil)

	bz, err := c.Inspect()
	assert.NilError(t, err)

	type entry struct {
		Type string `json:"type"`
	}
	report, err := codec.Decode[[]entry](bz)
	assert.NilError(t, err)
	assert.Len(t, report, 2)
	assert.Equal(t, report[0].Type, "wolf")
	assert.Equal(t, report[1].Type, "grass")
}
