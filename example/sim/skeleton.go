// Left behind for a bit after an animal dies.
package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/cogworks/cogs"
)

const skeletonLifetime = 4

type Skeleton struct {
	lifetime int
}

func (Skeleton) Name() string {
	return "skeleton"
}

func registerSkeleton() {
	cogs.MustRegisterObjectType[Skeleton]()
	cogs.MustRegisterImpl[Action, Skeleton]()
	cogs.MustRegisterImpl[Render, Skeleton]()
	cogs.MustRegisterImpl[Inspectable, Skeleton]()
}

func addSkeleton(world *World, store *cogs.Store, loc Point) {
	c := cogs.NewComponent("skeleton")
	cogs.AddObject(c, &Skeleton{lifetime: skeletonLifetime},
		[]cogs.TraitID{actionID, renderID},
		[]cogs.TraitID{inspectableID})
	world.AddBack(store, loc, c)
}

func (s *Skeleton) Act(ctx *Context) LifeCycle {
	s.lifetime--
	if s.lifetime > 0 {
		return Alive
	}
	return Dead
}

func (s *Skeleton) Render() Glyph {
	if s.lifetime == skeletonLifetime {
		return Glyph{Ch: '*', Color: color.New(color.FgRed)}
	}
	return Glyph{Ch: '*'}
}

func (s *Skeleton) Inspect() string {
	return fmt.Sprintf("skeleton lifetime=%d", s.lifetime)
}
