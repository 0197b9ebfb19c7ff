package main

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cogworks/cogs"
	"github.com/cogworks/cogs/assert"
)

func newTestWorld(t *testing.T) (*World, *cogs.Store) {
	t.Helper()
	registerAll()
	rng := rand.New(rand.NewSource(1))
	return NewWorld(10, 8, rng, 0, zerolog.Nop()), cogs.NewStore()
}

func TestWrapIsToroidal(t *testing.T) {
	world, _ := newTestWorld(t)

	assert.Equal(t, world.wrap(Pt(0, 0)), Pt(0, 0))
	assert.Equal(t, world.wrap(Pt(10, 8)), Pt(0, 0))
	assert.Equal(t, world.wrap(Pt(-1, -1)), Pt(9, 7))
	assert.Equal(t, world.wrap(Pt(23, -9)), Pt(3, 7))
}

func TestDistanceWrapsAroundEdges(t *testing.T) {
	world, _ := newTestWorld(t)

	assert.Equal(t, world.Distance2(Pt(0, 0), Pt(1, 0)), 1)
	assert.Equal(t, world.Distance2(Pt(0, 0), Pt(9, 0)), 1)
	assert.Equal(t, world.Distance2(Pt(0, 0), Pt(0, 7)), 1)
	assert.Equal(t, world.Distance2(Pt(2, 3), Pt(2, 3)), 0)
}

func TestCellTracksAddAndMove(t *testing.T) {
	world, store := newTestWorld(t)

	id := addRabbit(world, store, Pt(2, 2))
	assert.NilError(t, store.Sync())
	assert.Len(t, world.Cell(Pt(2, 2)), 1)

	world.MoveTo(id, Pt(2, 2), Pt(3, 2))
	assert.Len(t, world.Cell(Pt(2, 2)), 0)
	assert.Len(t, world.Cell(Pt(3, 2)), 1)

	// Moves wrap too.
	world.MoveTo(id, Pt(3, 2), Pt(13, 10))
	assert.Len(t, world.Cell(Pt(3, 2)), 1)
}

func TestSkeletonDecaysAway(t *testing.T) {
	world, store := newTestWorld(t)

	addSkeleton(world, store, Pt(1, 1))
	assert.NilError(t, store.Sync())

	for i := 0; i < skeletonLifetime-1; i++ {
		assert.NilError(t, world.Step(store))
		assert.Equal(t, store.Len(), 1)
	}
	assert.NilError(t, world.Step(store))
	assert.Equal(t, store.Len(), 0)
	assert.Len(t, world.Cell(Pt(1, 1)), 0)
}

func TestRenderReportsStabilizedWorld(t *testing.T) {
	world, store := newTestWorld(t)

	addGrass(world, store, Pt(0, 0))
	assert.NilError(t, store.Sync())

	var out bytes.Buffer
	cycle, err := world.RenderTo(store, &out)
	assert.NilError(t, err)
	assert.Equal(t, cycle, Dead)

	addRabbit(world, store, Pt(4, 4))
	assert.NilError(t, store.Sync())
	cycle, err = world.RenderTo(store, &out)
	assert.NilError(t, err)
	assert.Equal(t, cycle, Alive)
	assert.Contains(t, out.String(), "ticks: 0")
}

func TestWolfEatsRabbitInCell(t *testing.T) {
	world, store := newTestWorld(t)
	addWolf(world, store, Pt(5, 5))
	addRabbit(world, store, Pt(5, 5))
	assert.NilError(t, store.Sync())
	assert.Equal(t, store.Len(), 2)

	wolfComp := componentAt(t, world, store, Pt(5, 5), 0)
	act, ok, err := cogs.FindTrait[Action](wolfComp)
	assert.NilError(t, err)
	assert.True(t, ok)

	ctx := &Context{World: world, Store: store, Loc: Pt(5, 5), ID: wolfComp.ID()}
	assert.Equal(t, act.Act(ctx), Alive)
	assert.NilError(t, store.Sync())
	assert.Equal(t, store.Len(), 1)
	assert.Len(t, world.Cell(Pt(5, 5)), 1)
}

func componentAt(t *testing.T, world *World, store *cogs.Store, loc Point, index int) *cogs.Component {
	t.Helper()
	ids := world.Cell(loc)
	assert.True(t, index < len(ids))
	c, ok := store.Get(ids[index])
	assert.True(t, ok)
	return c
}
