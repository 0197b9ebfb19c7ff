// Helper object for components that move around.
package main

import (
	"math"

	"github.com/cogworks/cogs"
)

type Mover struct{}

func (Mover) Name() string {
	return "mover"
}

func registerMover() {
	cogs.MustRegisterObjectType[Mover]()
	cogs.MustRegisterImpl[Moveable, Mover]()
	cogs.MustRegisterImpl[Inspectable, Mover]()
}

// RandomMove prefers a neighboring cell without another animal and falls back
// to any neighboring cell.
func (m *Mover) RandomMove(ctx *Context) (Point, bool) {
	open := ctx.World.All(ctx.Loc, 1, func(pt Point) bool {
		if pt == ctx.Loc {
			return false
		}
		for _, id := range ctx.World.Cell(pt) {
			if componentHas[Animal](ctx.Store, id) {
				return false
			}
		}
		return true
	})
	if len(open) > 0 {
		return open[ctx.World.Rng().Intn(len(open))], true
	}

	anywhere := ctx.World.All(ctx.Loc, 1, func(pt Point) bool {
		return pt != ctx.Loc
	})
	if len(anywhere) > 0 {
		return anywhere[ctx.World.Rng().Intn(len(anywhere))], true
	}
	return Point{}, false
}

// MoveTowards returns the neighboring cell closest to dst.
func (m *Mover) MoveTowards(world *World, loc, dst Point) (Point, bool) {
	var newLoc Point
	found := false
	dist := math.MaxInt

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			candidate := Pt(loc.X+dx, loc.Y+dy)
			if candidate == loc {
				continue
			}
			if d := world.Distance2(candidate, dst); d < dist {
				newLoc = candidate
				dist = d
				found = true
			}
		}
	}
	return newLoc, found
}

func (m *Mover) Inspect() string {
	return "mover"
}
