package main

import (
	"testing"

	"github.com/cogworks/cogs"
	"github.com/cogworks/cogs/assert"
)

func TestRabbitEatsGrassThenReproduces(t *testing.T) {
	world, store := newTestWorld(t)

	addGrass(world, store, Pt(3, 3))
	rabbitID := addRabbit(world, store, Pt(3, 3))
	assert.NilError(t, store.Sync())

	rabbit, ok := store.Get(rabbitID)
	assert.True(t, ok)
	act := mustFindTrait[Action](rabbit)
	hunger := mustFindTrait[Hunger](rabbit)
	assert.Equal(t, hunger.Get(), rabbitInitialHunger)

	// A 25 percent bite takes the starting grass below zero height, so the
	// patch disappears and the rabbit is fed.
	ctx := &Context{World: world, Store: store, Loc: Pt(3, 3), ID: rabbitID}
	assert.Equal(t, act.Act(ctx), Alive)
	assert.NilError(t, store.Sync())
	assert.Equal(t, hunger.Get(), rabbitInitialHunger+rabbitEatDelta)
	assert.Len(t, world.Cell(Pt(3, 3)), 1)

	// Now below the reproduction threshold: the next act spawns a kit and
	// resets hunger.
	assert.Equal(t, act.Act(ctx), Alive)
	assert.NilError(t, store.Sync())
	assert.Equal(t, hunger.Get(), rabbitInitialHunger)
	assert.Equal(t, store.Len(), 2)
}

func TestWolfStarvesIntoSkeleton(t *testing.T) {
	world, store := newTestWorld(t)

	wolfID := addWolf(world, store, Pt(0, 0))
	assert.NilError(t, store.Sync())

	wolf, ok := store.Get(wolfID)
	assert.True(t, ok)
	act := mustFindTrait[Action](wolf)
	hunger := mustFindTrait[Hunger](wolf)
	hunger.Set(wolfMaxHunger - wolfBasalDelta)

	ctx := &Context{World: world, Store: store, Loc: Pt(0, 0), ID: wolfID}
	assert.Equal(t, act.Act(ctx), Dead)

	// The world's step loop removes dead actors; mirror that here.
	world.Remove(store, wolfID, Pt(0, 0))
	assert.NilError(t, store.Sync())

	assert.Equal(t, store.Len(), 1)
	skeleton := componentAt(t, world, store, Pt(0, 0), 0)
	assert.Equal(t, skeleton.Label(), "skeleton")
}

func TestAnimalComponentsShareHelperObjects(t *testing.T) {
	world, store := newTestWorld(t)

	wolfID := addWolf(world, store, Pt(1, 1))
	assert.NilError(t, store.Sync())
	wolf, ok := store.Get(wolfID)
	assert.True(t, ok)

	// The wolf object, the hunger tracker, and the mover each contribute a
	// repeatable Inspectable view, in slot order.
	views, err := cogs.FindAllTraits[Inspectable](wolf)
	assert.NilError(t, err)
	assert.Len(t, views, 3)
	assert.Contains(t, views[0].Inspect(), "wolf")
	assert.Contains(t, views[1].Inspect(), "hunger")
	assert.Contains(t, views[2].Inspect(), "mover")

	assert.True(t, cogs.HasTrait[Predator](wolf))
	assert.False(t, cogs.HasTrait[Prey](wolf))
}

func TestGrassSpreadsIntoOpenCells(t *testing.T) {
	world, store := newTestWorld(t)

	addGrass(world, store, Pt(5, 5))
	assert.NilError(t, store.Sync())

	grass := componentAt(t, world, store, Pt(5, 5), 0)
	fodder := mustFindTrait[Fodder](grass)
	assert.Equal(t, fodder.Height(), uint8(initialHeight))

	// Grass spreads into each open neighbor with 1 in 16 odds per tick, so a
	// few dozen ticks reliably produce at least one new patch.
	for i := 0; i < 50 && store.Len() == 1; i++ {
		assert.NilError(t, world.Step(store))
	}
	assert.True(t, store.Len() > 1)
}
