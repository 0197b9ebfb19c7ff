// Animal that hunts rabbits.
package main

import (
	"fmt"
	"math"

	"github.com/fatih/color"

	"github.com/cogworks/cogs"
)

const wolfVisionRadius = 8 // wolves see quite a bit better than rabbits

const (
	wolfMaxHunger     = 400
	wolfInitialHunger = 300
	wolfReproHunger   = 200
	wolfEatDelta      = -50
	wolfBasalDelta    = 5
)

type Wolf struct {
	age int // ticks since birth
}

func (Wolf) Name() string {
	return "wolf"
}

func registerWolf() {
	cogs.MustRegisterObjectType[Wolf]()
	cogs.MustRegisterImpl[Action, Wolf]()
	cogs.MustRegisterImpl[Render, Wolf]()
	cogs.MustRegisterImpl[Animal, Wolf]()
	cogs.MustRegisterImpl[Predator, Wolf]()
	cogs.MustRegisterImpl[Inspectable, Wolf]()
}

func addWolf(world *World, store *cogs.Store, loc Point) cogs.ComponentID {
	c := cogs.NewComponent("wolf")
	cogs.AddObject(c, &Wolf{},
		[]cogs.TraitID{actionID, renderID, animalID, predatorID},
		[]cogs.TraitID{inspectableID})
	cogs.AddObject(c, NewHungers(wolfInitialHunger, wolfMaxHunger),
		[]cogs.TraitID{hungerID},
		[]cogs.TraitID{inspectableID})
	cogs.AddObject(c, &Mover{},
		[]cogs.TraitID{moveableID},
		[]cogs.TraitID{inspectableID})
	world.AddBack(store, loc, c)
	return c.ID()
}

func (w *Wolf) findPrey(ctx *Context) (cogs.ComponentID, bool) {
	for _, id := range ctx.World.Cell(ctx.Loc) {
		if componentHas[Prey](ctx.Store, id) {
			return id, true
		}
	}
	return cogs.BadComponentID, false
}

func (w *Wolf) moveTowardsPrey(ctx *Context) (Point, bool) {
	var dst Point
	found := false
	dist := math.MaxInt

	hunted := ctx.World.All(ctx.Loc, wolfVisionRadius, func(pt Point) bool {
		for _, id := range ctx.World.Cell(pt) {
			if componentHas[Prey](ctx.Store, id) {
				return true
			}
		}
		return false
	})
	for _, neighbor := range hunted {
		if d := ctx.World.Distance2(neighbor, ctx.Loc); d < dist {
			dst = neighbor
			dist = d
			found = true
		}
	}
	return dst, found
}

func (w *Wolf) Act(ctx *Context) LifeCycle {
	w.age++
	hunger := mustFindTrait[Hunger](ctx.Self())
	mover := mustFindTrait[Moveable](ctx.Self())
	logger := ctx.World.Logger().With().
		Uint64("wolf", uint64(ctx.ID)).
		Stringer("loc", ctx.Loc).
		Logger()

	// If we're not hungry then reproduce.
	if hunger.Get() <= wolfReproHunger {
		hunger.Set(wolfInitialHunger)
		newID := addWolf(ctx.World, ctx.Store, ctx.Loc)
		logger.Info().
			Uint64("pup", uint64(newID)).
			Int("hunger", hunger.Get()).
			Msg("wolf reproduced")
		return Alive
	}

	// If there is prey in the cell then eat it.
	if preyID, ok := w.findPrey(ctx); ok {
		hunger.Adjust(wolfEatDelta)
		logger.Info().Int("hunger", hunger.Get()).Msg("wolf ate a rabbit")
		ctx.World.Remove(ctx.Store, preyID, ctx.Loc)
		return Alive
	}

	hunger.Adjust(wolfBasalDelta)
	if hunger.Get() == wolfMaxHunger {
		logger.Info().Msg("wolf starved to death")
		addSkeleton(ctx.World, ctx.Store, ctx.Loc)
		return Dead
	}

	// Move closer to prey.
	if dst, ok := w.moveTowardsPrey(ctx); ok {
		if newLoc, ok := mover.MoveTowards(ctx.World, ctx.Loc, dst); ok {
			logger.Info().
				Stringer("to", newLoc).
				Stringer("towards", dst).
				Int("hunger", hunger.Get()).
				Msg("wolf moved towards prey")
			ctx.World.MoveTo(ctx.ID, ctx.Loc, newLoc)
			return Alive
		}
	}

	// Random move.
	if newLoc, ok := mover.RandomMove(ctx); ok {
		logger.Info().
			Stringer("to", newLoc).
			Int("hunger", hunger.Get()).
			Msg("wolf wandered")
		ctx.World.MoveTo(ctx.ID, ctx.Loc, newLoc)
		return Alive
	}

	logger.Info().Int("hunger", hunger.Get()).Msg("wolf did nothing")
	return Alive
}

func (w *Wolf) Render() Glyph {
	if w.age == 0 {
		return Glyph{Ch: 'w', Color: color.New(color.FgGreen)}
	}
	return Glyph{Ch: 'w'}
}

func (w *Wolf) Inspect() string {
	return fmt.Sprintf("wolf age=%d", w.age)
}

func (w *Wolf) isAnimal()   {}
func (w *Wolf) isPredator() {}
