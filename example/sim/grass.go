// Fodder type that grows to cover the world but may also be eaten by rabbits.
package main

import (
	"fmt"

	"github.com/cogworks/cogs"
)

const (
	grassDelta    = 4 // amount by which grass grows each tick
	initialHeight = 48
	spreadHeight  = 48
)

type Grass struct {
	height uint8
}

func (Grass) Name() string {
	return "grass"
}

func registerGrass() {
	cogs.MustRegisterObjectType[Grass]()
	cogs.MustRegisterImpl[Action, Grass]()
	cogs.MustRegisterImpl[Render, Grass]()
	cogs.MustRegisterImpl[Fodder, Grass]()
	cogs.MustRegisterImpl[Inspectable, Grass]()
}

func addGrass(world *World, store *cogs.Store, loc Point) {
	c := cogs.NewComponent("grass")
	cogs.AddObject(c, &Grass{height: initialHeight},
		[]cogs.TraitID{actionID, renderID, fodderID},
		[]cogs.TraitID{inspectableID})
	world.AddFront(store, loc, c)
}

func spreadGrass(world *World, store *cogs.Store, loc Point) {
	c := cogs.NewComponent("grass")
	cogs.AddObject(c, &Grass{height: 1},
		[]cogs.TraitID{actionID, renderID, fodderID},
		[]cogs.TraitID{inspectableID})
	world.AddFront(store, loc, c)
}

func (g *Grass) Height() uint8 {
	return g.height
}

func (g *Grass) Eat(ctx *Context, percent int) {
	delta := uint8(percent * 255 / 100)
	if g.height <= delta {
		ctx.World.Logger().Debug().
			Stringer("loc", ctx.Loc).
			Msg("grass is now gone")
		ctx.World.Remove(ctx.Store, ctx.ID, ctx.Loc)
	} else {
		g.height -= delta
		ctx.World.Logger().Debug().
			Stringer("loc", ctx.Loc).
			Uint8("from", g.height+delta).
			Uint8("to", g.height).
			Msg("grass was eaten")
	}
}

func (g *Grass) Act(ctx *Context) LifeCycle {
	// Grass grows slowly.
	if g.height < 255-grassDelta {
		g.height += grassDelta
		ctx.World.Logger().Trace().
			Stringer("loc", ctx.Loc).
			Uint8("height", g.height).
			Msg("grass grew")
	}

	// Once grass has grown enough it starts spreading into neighboring cells
	// that have no fodder of their own.
	if g.height > spreadHeight {
		open := ctx.World.All(ctx.Loc, 1, func(pt Point) bool {
			if pt == ctx.Loc {
				return false
			}
			for _, id := range ctx.World.Cell(pt) {
				if componentHas[Fodder](ctx.Store, id) {
					return false
				}
			}
			return true
		})
		for _, neighbor := range open {
			if ctx.World.Rng().Intn(16) == 0 {
				spreadGrass(ctx.World, ctx.Store, neighbor)
				ctx.World.Logger().Debug().
					Stringer("loc", ctx.Loc).
					Stringer("to", neighbor).
					Msg("grass spread")
			}
		}
	}
	return Alive
}

func (g *Grass) Render() Glyph {
	if g.height == 0 {
		panic("rendering grass with zero height")
	}
	if g.height < spreadHeight {
		return Glyph{Ch: '~'}
	}
	return Glyph{Ch: '|'}
}

func (g *Grass) Inspect() string {
	return fmt.Sprintf("grass height=%d", g.height)
}

// componentHas reports whether the live component stored under id lists T as
// a normal trait.
func componentHas[T any](store *cogs.Store, id cogs.ComponentID) bool {
	c, ok := store.Get(id)
	return ok && cogs.HasTrait[T](c)
}
