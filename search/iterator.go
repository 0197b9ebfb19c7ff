package search

import (
	"github.com/rotisserie/eris"
)

// TraitIterator lazily yields every repeatable implementation of a trait within
// a component, in slot insertion order. Obtain one from Search.Iterator.
type TraitIterator struct {
	search *Search
	next   int
	err    error
	primed bool
}

// HasNext reports whether another implementation remains. It also surfaces an
// unregistered-trait error: HasNext returns false and the following Next call
// returns the error.
func (it *TraitIterator) HasNext() bool {
	if !it.primed {
		it.primed = true
		it.err = it.search.checkRegistered()
	}
	if it.err != nil {
		return false
	}
	for it.next < it.search.comp.Len() {
		if it.search.comp.Slot(it.next).ListsRepeatable(it.search.trait) {
			return true
		}
		it.next++
	}
	return false
}

// Next returns the next trait reference.
func (it *TraitIterator) Next() (any, error) {
	if !it.HasNext() {
		if it.err != nil {
			return nil, it.err
		}
		return nil, eris.New("trait iterator exhausted")
	}
	slot := it.search.comp.Slot(it.next)
	it.next++
	return it.search.cast(slot)
}
