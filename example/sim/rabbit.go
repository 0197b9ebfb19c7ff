// Animal that eats grass and is eaten by wolves.
package main

import (
	"fmt"
	"math"

	"github.com/fatih/color"

	"github.com/cogworks/cogs"
)

const rabbitVisionRadius = 4 // rabbits don't have great vision

const (
	rabbitMaxHunger     = 100
	rabbitInitialHunger = 50
	rabbitReproHunger   = 30
	rabbitEatDelta      = -25
	rabbitBasalDelta    = 3
)

type Rabbit struct {
	age int // ticks since birth
}

func (Rabbit) Name() string {
	return "rabbit"
}

func registerRabbit() {
	cogs.MustRegisterObjectType[Rabbit]()
	cogs.MustRegisterImpl[Action, Rabbit]()
	cogs.MustRegisterImpl[Render, Rabbit]()
	cogs.MustRegisterImpl[Animal, Rabbit]()
	cogs.MustRegisterImpl[Prey, Rabbit]()
	cogs.MustRegisterImpl[Inspectable, Rabbit]()
}

func addRabbit(world *World, store *cogs.Store, loc Point) cogs.ComponentID {
	c := cogs.NewComponent("rabbit")
	cogs.AddObject(c, &Rabbit{},
		[]cogs.TraitID{actionID, renderID, animalID, preyID},
		[]cogs.TraitID{inspectableID})
	cogs.AddObject(c, NewHungers(rabbitInitialHunger, rabbitMaxHunger),
		[]cogs.TraitID{hungerID},
		[]cogs.TraitID{inspectableID})
	cogs.AddObject(c, &Mover{},
		[]cogs.TraitID{moveableID},
		[]cogs.TraitID{inspectableID})
	world.AddBack(store, loc, c)
	return c.ID()
}

func (r *Rabbit) findGrass(ctx *Context) (cogs.ComponentID, bool) {
	for _, id := range ctx.World.Cell(ctx.Loc) {
		if componentHas[Fodder](ctx.Store, id) {
			return id, true
		}
	}
	return cogs.BadComponentID, false
}

func (r *Rabbit) moveTowardsGrass(ctx *Context) (Point, bool) {
	var dst Point
	found := false
	dist := math.MaxInt

	grassy := ctx.World.All(ctx.Loc, rabbitVisionRadius, func(pt Point) bool {
		for _, id := range ctx.World.Cell(pt) {
			if componentHas[Fodder](ctx.Store, id) {
				return true
			}
		}
		return false
	})
	for _, neighbor := range grassy {
		if d := ctx.World.Distance2(neighbor, ctx.Loc); d < dist {
			dst = neighbor
			dist = d
			found = true
		}
	}
	return dst, found
}

func (r *Rabbit) Act(ctx *Context) LifeCycle {
	r.age++
	hunger := mustFindTrait[Hunger](ctx.Self())
	mover := mustFindTrait[Moveable](ctx.Self())
	logger := ctx.World.Logger().With().
		Uint64("rabbit", uint64(ctx.ID)).
		Stringer("loc", ctx.Loc).
		Logger()

	// If we're not hungry then reproduce.
	if hunger.Get() <= rabbitReproHunger {
		hunger.Set(rabbitInitialHunger)
		newID := addRabbit(ctx.World, ctx.Store, ctx.Loc)
		logger.Info().
			Uint64("kit", uint64(newID)).
			Int("hunger", hunger.Get()).
			Msg("rabbit reproduced")
		return Alive
	}

	// If there is grass in the cell then eat some of it.
	if grassID, ok := r.findGrass(ctx); ok {
		grass, live := ctx.Store.Get(grassID)
		if !live {
			panic(fmt.Sprintf("grass %d is not live in the store", grassID))
		}
		fodder := mustFindTrait[Fodder](grass)
		fodder.Eat(&Context{World: ctx.World, Store: ctx.Store, Loc: ctx.Loc, ID: grassID}, 25)
		hunger.Adjust(rabbitEatDelta)
		logger.Info().Int("hunger", hunger.Get()).Msg("rabbit ate grass")
		return Alive
	}

	hunger.Adjust(rabbitBasalDelta)
	if hunger.Get() == rabbitMaxHunger {
		logger.Info().Msg("rabbit starved to death")
		addSkeleton(ctx.World, ctx.Store, ctx.Loc)
		return Dead
	}

	// Move closer to grass.
	if dst, ok := r.moveTowardsGrass(ctx); ok {
		if newLoc, ok := mover.MoveTowards(ctx.World, ctx.Loc, dst); ok {
			logger.Info().
				Stringer("to", newLoc).
				Stringer("towards", dst).
				Int("hunger", hunger.Get()).
				Msg("rabbit moved towards grass")
			ctx.World.MoveTo(ctx.ID, ctx.Loc, newLoc)
			return Alive
		}
	}

	// Random move.
	if newLoc, ok := mover.RandomMove(ctx); ok {
		logger.Info().
			Stringer("to", newLoc).
			Int("hunger", hunger.Get()).
			Msg("rabbit wandered")
		ctx.World.MoveTo(ctx.ID, ctx.Loc, newLoc)
		return Alive
	}

	logger.Info().Int("hunger", hunger.Get()).Msg("rabbit did nothing")
	return Alive
}

func (r *Rabbit) Render() Glyph {
	if r.age == 0 {
		return Glyph{Ch: 'r', Color: color.New(color.FgGreen)}
	}
	return Glyph{Ch: 'r'}
}

func (r *Rabbit) Inspect() string {
	return fmt.Sprintf("rabbit age=%d", r.age)
}

func (r *Rabbit) isAnimal() {}
func (r *Rabbit) isPrey()   {}

// mustFindTrait resolves a trait that the component is guaranteed to carry by
// construction.
func mustFindTrait[T any](c *cogs.Component) T {
	impl, ok, err := cogs.FindTrait[T](c)
	if err != nil {
		panic(err)
	}
	if !ok {
		panic(fmt.Sprintf("%s does not have a required trait", c))
	}
	return impl
}
