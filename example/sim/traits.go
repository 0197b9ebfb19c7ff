// Trait interfaces shared by everything placed in the world.
package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/cogworks/cogs"
)

// LifeCycle is returned by Action.Act to report whether the actor survived
// its turn.
type LifeCycle int

const (
	Alive LifeCycle = iota
	Dead
)

// Glyph is a single rendered map cell. Color is nil for plain output.
type Glyph struct {
	Ch    rune
	Color *color.Color
}

func (g Glyph) String() string {
	if g.Color != nil {
		return g.Color.Sprint(string(g.Ch))
	}
	return string(g.Ch)
}

// Context is handed to trait methods so they can inspect and mutate the world
// on behalf of one component.
type Context struct {
	World *World
	Store *cogs.Store
	Loc   Point
	ID    cogs.ComponentID
}

// Self returns the acting component.
func (ctx *Context) Self() *cogs.Component {
	c, ok := ctx.Store.Get(ctx.ID)
	if !ok {
		panic(fmt.Sprintf("component %d is not live in the store", ctx.ID))
	}
	return c
}

// Action is required for every component added to the world.
type Action interface {
	Act(ctx *Context) LifeCycle
}

// Render is required for every component added to the world.
type Render interface {
	Render() Glyph
}

// Fodder is something rabbits can eat.
type Fodder interface {
	// Height reports how much fodder is left.
	Height() uint8
	// Eat consumes percent of the fodder. ctx identifies the fodder's own
	// component, not the eater's.
	Eat(ctx *Context, percent int)
}

// Animal marks rabbits and wolves.
type Animal interface {
	isAnimal()
}

// Predator marks animals that hunt prey.
type Predator interface {
	isPredator()
}

// Prey marks animals that predators hunt.
type Prey interface {
	isPrey()
}

// Hunger tracks how close an animal is to starving, in [0, max].
type Hunger interface {
	Get() int
	Set(value int)
	Adjust(delta int)
}

// Moveable provides movement for components that wander the world.
type Moveable interface {
	RandomMove(ctx *Context) (Point, bool)
	MoveTowards(world *World, loc, dst Point) (Point, bool)
}

// Inspectable is listed as a repeatable trait so that every object in a
// component can contribute a line to diagnostics.
type Inspectable interface {
	Inspect() string
}

// Trait ids are resolved once at startup by registerAll and reused by every
// add helper.
var (
	actionID      cogs.TraitID
	renderID      cogs.TraitID
	fodderID      cogs.TraitID
	animalID      cogs.TraitID
	predatorID    cogs.TraitID
	preyID        cogs.TraitID
	hungerID      cogs.TraitID
	moveableID    cogs.TraitID
	inspectableID cogs.TraitID
)

func registerTraits() {
	cogs.MustRegisterTrait[Action]()
	cogs.MustRegisterTrait[Render]()
	cogs.MustRegisterTrait[Fodder]()
	cogs.MustRegisterTrait[Animal]()
	cogs.MustRegisterTrait[Predator]()
	cogs.MustRegisterTrait[Prey]()
	cogs.MustRegisterTrait[Hunger]()
	cogs.MustRegisterTrait[Moveable]()
	cogs.MustRegisterTrait[Inspectable]()

	actionID = cogs.MustTraitID[Action]()
	renderID = cogs.MustTraitID[Render]()
	fodderID = cogs.MustTraitID[Fodder]()
	animalID = cogs.MustTraitID[Animal]()
	predatorID = cogs.MustTraitID[Predator]()
	preyID = cogs.MustTraitID[Prey]()
	hungerID = cogs.MustTraitID[Hunger]()
	moveableID = cogs.MustTraitID[Moveable]()
	inspectableID = cogs.MustTraitID[Inspectable]()
}
