// Package store owns the live components of an application session. It is the
// sole place a component may be retrieved from by id: callers hand a built
// component to the store and from then on pass its id around instead of the
// reference itself.
package store

import (
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/cogworks/cogs/component"
	"github.com/cogworks/cogs/types"
)

// ErrDuplicateComponent is returned when a component id is added twice. Ids are
// issued monotonically, so this occurring at all means a component was added to
// the same store twice; callers should treat it as a fatal invariant violation.
var ErrDuplicateComponent = eris.New("component id already present in store")

// Store maps component ids to live components and governs their lifetime. The
// store is the single owner of record: Get hands out a borrowed view, and
// Remove is the only way ownership leaves the store.
//
// A Store expects a single mutator within a logical turn of the host
// application. Components are sealed on insertion, so lookups against stored
// components may run concurrently with reads; Add, Remove, and Sync must not.
type Store struct {
	id         string
	logger     zerolog.Logger
	components map[types.ComponentID]*component.Component

	// Mutations staged with QueueAdd/QueueRemove while a turn is iterating over
	// live components, applied by Sync between turns.
	pendingAdd    []*component.Component
	pendingRemove []types.ComponentID
}

// Option augments the creation of a Store.
type Option func(s *Store)

// WithLogger attaches a logger used for lifetime diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		id:         uuid.NewString(),
		logger:     zerolog.Nop(),
		components: make(map[types.ComponentID]*component.Component),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("store_id", s.id).Logger()
	return s
}

// ID returns the store's instance id, used to tell stores apart in logs.
func (s *Store) ID() string {
	return s.id
}

// Len returns the number of live components.
func (s *Store) Len() int {
	return len(s.components)
}

// Add inserts a component and returns its id. The component is sealed: its slot
// composition is frozen from this point on.
func (s *Store) Add(c *component.Component) (types.ComponentID, error) {
	if c == nil {
		return types.BadComponentID, eris.New("cannot add nil component to store")
	}
	if _, exists := s.components[c.ID()]; exists {
		return types.BadComponentID, eris.Wrapf(ErrDuplicateComponent, "%s", c)
	}

	c.Seal()
	s.components[c.ID()] = c
	s.logger.Debug().Object("component", c).Msg("component added")
	return c.ID(), nil
}

// Get returns the component stored under id. The second return is false if no
// such component is live; a stale id after Remove is an expected, recoverable
// outcome, not an error.
func (s *Store) Get(id types.ComponentID) (*component.Component, bool) {
	c, ok := s.components[id]
	return c, ok
}

// Remove detaches the component stored under id and returns it, handing
// ownership to the caller. It returns false if the id is not live; other
// entries are unaffected either way.
func (s *Store) Remove(id types.ComponentID) (*component.Component, bool) {
	c, ok := s.components[id]
	if !ok {
		return nil, false
	}
	delete(s.components, id)
	s.logger.Debug().Object("component", c).Msg("component removed")
	return c, true
}

// Each calls fn for every live component until fn returns false. Iteration
// order is unspecified.
func (s *Store) Each(fn func(c *component.Component) bool) {
	for _, c := range s.components {
		if !fn(c) {
			return
		}
	}
}

// QueueAdd stages a component for insertion at the next Sync. Use it when new
// components are produced while a turn is still iterating over live ones.
func (s *Store) QueueAdd(c *component.Component) {
	s.pendingAdd = append(s.pendingAdd, c)
}

// QueueRemove stages a removal for the next Sync.
func (s *Store) QueueRemove(id types.ComponentID) {
	s.pendingRemove = append(s.pendingRemove, id)
}

// Sync applies staged additions, then staged removals. A staged removal naming
// an id that is not live (and was not just added) is an error: a turn may only
// queue removals for components it actually saw.
func (s *Store) Sync() error {
	for _, c := range s.pendingAdd {
		if _, err := s.Add(c); err != nil {
			return err
		}
	}
	s.pendingAdd = s.pendingAdd[:0]

	for _, id := range s.pendingRemove {
		if _, ok := s.Remove(id); !ok {
			return eris.Errorf("queued removal of component id %d that is not in the store", id)
		}
	}
	s.pendingRemove = s.pendingRemove[:0]
	return nil
}
