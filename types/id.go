package types

import "sync/atomic"

// TypeID identifies a registered concrete object type. IDs are issued by a
// registry, monotonically from 1, and are never reused within a process.
type TypeID int

// TraitID identifies a registered trait interface. IDs are issued by a
// registry, monotonically from 1, and are never reused within a process.
type TraitID int

// ComponentID identifies a component for its entire lifetime. IDs are
// process-unique and monotonic; a removed component's id is never reissued.
type ComponentID uint64

// BadComponentID is never issued to a live component.
const BadComponentID ComponentID = 0

var nextComponentID atomic.Uint64

// NextComponentID issues a fresh component id.
func NextComponentID() ComponentID {
	return ComponentID(nextComponentID.Add(1))
}
