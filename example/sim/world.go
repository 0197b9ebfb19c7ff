package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/cogworks/cogs"
)

// World owns the map and the placement of components on it. Component
// lifetimes are handled separately by the store, which defers mutations until
// a Sync call so that actors can add and remove components mid turn.
type World struct {
	width   int
	height  int
	verbose int
	rng     *rand.Rand
	logger  zerolog.Logger

	cells   map[Point][]cogs.ComponentID
	pending []pendingActor
	ticks   int
}

type pendingActor struct {
	loc Point
	id  cogs.ComponentID
}

func NewWorld(width, height int, rng *rand.Rand, verbose int, logger zerolog.Logger) *World {
	return &World{
		width:   width,
		height:  height,
		verbose: verbose,
		rng:     rng,
		logger:  logger,
		cells:   make(map[Point][]cogs.ComponentID),
	}
}

func (w *World) Rng() *rand.Rand {
	return w.rng
}

func (w *World) Logger() *zerolog.Logger {
	return &w.logger
}

func (w *World) Ticks() int {
	return w.ticks
}

// Cell returns the ids of the components at loc. The world is a toroid so
// out of range locations wrap around.
func (w *World) Cell(loc Point) []cogs.ComponentID {
	return w.cells[w.wrap(loc)]
}

// AddBack places a component on top of its cell. Use this for components that
// should always be rendered.
func (w *World) AddBack(store *cogs.Store, loc Point, c *cogs.Component) {
	w.requireWorldTraits(c)
	loc = w.wrap(loc)
	w.cells[loc] = append(w.cells[loc], c.ID())
	store.QueueAdd(c)
}

// AddFront places a component underneath everything else in its cell. Use
// this for components that are rendered only when they are alone.
func (w *World) AddFront(store *cogs.Store, loc Point, c *cogs.Component) {
	w.requireWorldTraits(c)
	loc = w.wrap(loc)
	w.cells[loc] = append([]cogs.ComponentID{c.ID()}, w.cells[loc]...)
	store.QueueAdd(c)
}

// Components placed in the world act and render every tick, so both traits
// have to be present. Objects may list others as well.
func (w *World) requireWorldTraits(c *cogs.Component) {
	if !cogs.HasTrait[Action](c) {
		panic(fmt.Sprintf("%s does not have the Action trait", c))
	}
	if !cogs.HasTrait[Render](c) {
		panic(fmt.Sprintf("%s does not have the Render trait", c))
	}
}

// MoveTo relocates a live component from oldLoc to newLoc.
func (w *World) MoveTo(id cogs.ComponentID, oldLoc, newLoc Point) {
	oldLoc = w.wrap(oldLoc)
	newLoc = w.wrap(newLoc)
	w.removeFromCell(oldLoc, id)
	w.cells[newLoc] = append(w.cells[newLoc], id)
}

// Remove takes a component off the map and queues its removal from the store.
// If the component has not yet acted this tick it will not act at all.
func (w *World) Remove(store *cogs.Store, id cogs.ComponentID, loc Point) {
	loc = w.wrap(loc)
	w.removeFromCell(loc, id)
	store.QueueRemove(id)

	for i, p := range w.pending {
		if p.loc == loc && p.id == id {
			w.pending = append(w.pending[:i], w.pending[i+1:]...)
			break
		}
	}
}

func (w *World) removeFromCell(loc Point, id cogs.ComponentID) {
	ids := w.cells[loc]
	for i, e := range ids {
		if e == id {
			w.cells[loc] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("component %d is not at %s", id, loc))
}

// All returns every location within radius of loc that satisfies the
// predicate. Candidates are not wrapped; predicates normally call Cell which
// wraps for them.
func (w *World) All(loc Point, radius int, predicate func(pt Point) bool) []Point {
	var found []Point
	loc = w.wrap(loc)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			candidate := Pt(loc.X+dx, loc.Y+dy)
			if predicate(candidate) {
				found = append(found, candidate)
			}
		}
	}
	return found
}

// Step gives every component a chance to act. Components added during the
// tick do not act until the next one, and execution order is randomized to
// avoid bias. Component additions and removals staged during an act are
// applied by the store right after it.
func (w *World) Step(store *cogs.Store) error {
	if len(w.pending) != 0 {
		panic("pending actors left over from the previous tick")
	}
	for loc, ids := range w.cells {
		for _, id := range ids {
			w.pending = append(w.pending, pendingActor{loc: loc, id: id})
		}
	}
	w.rng.Shuffle(len(w.pending), func(i, j int) {
		w.pending[i], w.pending[j] = w.pending[j], w.pending[i]
	})

	for len(w.pending) > 0 {
		next := w.pending[len(w.pending)-1]
		w.pending = w.pending[:len(w.pending)-1]

		c, ok := store.Get(next.id)
		if !ok {
			return eris.Errorf("pending component %d is not in the store", next.id)
		}
		action, ok, err := cogs.FindTrait[Action](c)
		if err != nil {
			return eris.Wrapf(err, "finding Action on %s", c)
		}
		if !ok {
			return eris.Errorf("%s lost its Action trait", c)
		}

		if e := w.logger.Trace(); e.Enabled() {
			arr := zerolog.Arr()
			views, err := cogs.FindAllTraits[Inspectable](c)
			if err != nil {
				return eris.Wrapf(err, "inspecting %s", c)
			}
			for _, view := range views {
				arr = arr.Str(view.Inspect())
			}
			e.Stringer("component", c).
				Stringer("loc", next.loc).
				Array("views", arr).
				Msg("acting")
		}

		ctx := &Context{World: w, Store: store, Loc: next.loc, ID: next.id}
		if action.Act(ctx) == Dead {
			w.removeFromCell(next.loc, next.id)
			store.QueueRemove(next.id)
		}
		if err := store.Sync(); err != nil {
			return eris.Wrap(err, "syncing store after act")
		}
	}
	w.ticks++
	return nil
}

// RenderTo draws the map. It returns Alive if anything other than tall grass
// or empty ground was drawn, which the main loop uses to detect a stabilized
// world.
func (w *World) RenderTo(store *cogs.Store, out io.Writer) (LifeCycle, error) {
	cycle := Dead

	fmt.Fprintf(out, "ticks: %d\n", w.ticks)
	if w.verbose >= 1 {
		fmt.Fprint(out, "  ")
		for x := 0; x < w.width; x++ {
			fmt.Fprintf(out, "%d", x%10)
		}
		fmt.Fprintln(out)
	}
	for y := 0; y < w.height; y++ {
		if w.verbose >= 1 {
			fmt.Fprintf(out, "%d ", y%10)
		}
		for x := 0; x < w.width; x++ {
			ids := w.cells[Pt(x, y)]
			if len(ids) == 0 {
				fmt.Fprint(out, " ")
				continue
			}
			id := ids[len(ids)-1]
			c, ok := store.Get(id)
			if !ok {
				return cycle, eris.Errorf("component %d at (%d, %d) is not in the store", id, x, y)
			}
			render, ok, err := cogs.FindTrait[Render](c)
			if err != nil {
				return cycle, eris.Wrapf(err, "finding Render on %s", c)
			}
			if !ok {
				return cycle, eris.Errorf("%s lost its Render trait", c)
			}
			glyph := render.Render()
			if glyph.Ch != '|' && glyph.Ch != ' ' {
				cycle = Alive
			}
			fmt.Fprint(out, glyph)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("-", w.width))
	return cycle, nil
}

// Distance2 returns the squared distance between two locations taking the
// edges of the toroid into account.
func (w *World) Distance2(loc1, loc2 Point) int {
	dx := loc1.X - loc2.X
	if dx < 0 {
		dx = -dx
	}
	dy := loc1.Y - loc2.Y
	if dy < 0 {
		dy = -dy
	}

	if dx > w.width/2 {
		dx = w.width - dx
	}
	if dy > w.height/2 {
		dy = w.height - dy
	}
	return dx*dx + dy*dy
}

func (w *World) wrap(loc Point) Point {
	x := loc.X % w.width
	if x < 0 {
		x += w.width
	}
	y := loc.Y % w.height
	if y < 0 {
		y += w.height
	}
	return Pt(x, y)
}
