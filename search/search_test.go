package search_test

import (
	"testing"

	"github.com/cogworks/cogs/assert"
	"github.com/cogworks/cogs/component"
	"github.com/cogworks/cogs/registry"
	"github.com/cogworks/cogs/search"
	"github.com/cogworks/cogs/types"
)

type Speaker interface {
	Say() string
}

type Inspectable interface {
	Describe() string
}

type Silent interface {
	Hush()
}

type Cat struct {
	Lives int
}

func (Cat) Name() string { return "cat" }

func (c *Cat) Say() string { return "meow" }

func (c *Cat) Describe() string { return "a cat" }

type Dog struct {
	GoodBoy bool
}

func (Dog) Name() string { return "dog" }

func (d *Dog) Say() string { return "woof" }

func (d *Dog) Describe() string { return "a dog" }

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	_, err := registry.RegisterTrait[Speaker](reg)
	assert.NilError(t, err)
	_, err = registry.RegisterTrait[Inspectable](reg)
	assert.NilError(t, err)
	_, err = registry.RegisterTrait[Silent](reg)
	assert.NilError(t, err)
	_, err = registry.RegisterObjectType[Cat](reg)
	assert.NilError(t, err)
	_, err = registry.RegisterObjectType[Dog](reg)
	assert.NilError(t, err)
	assert.NilError(t, registry.RegisterImpl[Speaker, Cat](reg))
	assert.NilError(t, registry.RegisterImpl[Speaker, Dog](reg))
	assert.NilError(t, registry.RegisterImpl[Inspectable, Cat](reg))
	assert.NilError(t, registry.RegisterImpl[Inspectable, Dog](reg))
	return reg
}

func TestFirstMatchFollowsSlotOrder(t *testing.T) {
	reg := newTestRegistry(t)
	speak := registry.MustTraitID[Speaker](reg)

	c := component.New("pets")
	component.AddObject(reg, c, &Dog{}, []types.TraitID{speak}, nil)
	component.AddObject(reg, c, &Cat{}, []types.TraitID{speak}, nil)

	speaker, ok, err := search.Find[Speaker](reg, c)
	assert.NilError(t, err)
	assert.True(t, ok)
	assert.Equal(t, speaker.Say(), "woof")
}

func TestFindReturnsNothingWhenTraitAbsent(t *testing.T) {
	reg := newTestRegistry(t)
	speak := registry.MustTraitID[Speaker](reg)

	c := component.New("pets")
	component.AddObject(reg, c, &Dog{}, []types.TraitID{speak}, nil)

	// Silent is registered but no slot lists it: an expected miss, not an error.
	_, ok, err := search.Find[Silent](reg, c)
	assert.NilError(t, err)
	assert.False(t, ok)
}

func TestFindOnEmptyComponentReturnsNothing(t *testing.T) {
	reg := newTestRegistry(t)

	_, ok, err := search.Find[Speaker](reg, component.New("empty"))
	assert.NilError(t, err)
	assert.False(t, ok)
}

func TestLookupOfUnregisteredTraitIsCallerError(t *testing.T) {
	reg := newTestRegistry(t)
	c := component.New("pets")

	type Never interface{ Nope() }
	_, _, err := search.Find[Never](reg, c)
	assert.ErrorIs(t, err, registry.ErrTraitNotRegistered)

	_, _, err = search.New(reg, c, types.TraitID(12345)).First()
	assert.ErrorIs(t, err, registry.ErrTraitNotRegistered)
}

func TestNormalAndRepeatableListsDoNotInteract(t *testing.T) {
	reg := newTestRegistry(t)
	inspect := registry.MustTraitID[Inspectable](reg)

	c := component.New("pets")
	component.AddObject(reg, c, &Dog{}, nil, []types.TraitID{inspect})

	// Listed only as repeatable, so a first-match lookup misses it.
	_, ok, err := search.Find[Inspectable](reg, c)
	assert.NilError(t, err)
	assert.False(t, ok)

	all, err := search.FindAll[Inspectable](reg, c)
	assert.NilError(t, err)
	assert.Len(t, all, 1)
}

func TestFindAllYieldsMatchesInSlotOrder(t *testing.T) {
	reg := newTestRegistry(t)
	speak := registry.MustTraitID[Speaker](reg)
	inspect := registry.MustTraitID[Inspectable](reg)

	c := component.New("pets")
	component.AddObject(reg, c, &Dog{}, []types.TraitID{speak}, []types.TraitID{inspect})
	component.AddObject(reg, c, &Cat{}, []types.TraitID{speak}, nil)
	component.AddObject(reg, c, &Cat{Lives: 9}, nil, []types.TraitID{inspect})

	all, err := search.FindAll[Inspectable](reg, c)
	assert.NilError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, all[0].Describe(), "a dog")
	assert.Equal(t, all[1].Describe(), "a cat")

	// A second scan is independent and yields the identical sequence.
	again, err := search.FindAll[Inspectable](reg, c)
	assert.NilError(t, err)
	assert.Len(t, again, 2)
	assert.Equal(t, again[0].Describe(), "a dog")
	assert.Equal(t, again[1].Describe(), "a cat")
}

func TestIteratorIsLazyAndRestartable(t *testing.T) {
	reg := newTestRegistry(t)
	inspect := registry.MustTraitID[Inspectable](reg)

	c := component.New("pets")
	component.AddObject(reg, c, &Dog{}, nil, []types.TraitID{inspect})
	component.AddObject(reg, c, &Cat{}, nil, []types.TraitID{inspect})

	s := search.New(reg, c, inspect)
	for scan := 0; scan < 2; scan++ {
		it := s.Iterator()
		var got []string
		for it.HasNext() {
			ref, err := it.Next()
			assert.NilError(t, err)
			got = append(got, ref.(Inspectable).Describe())
		}
		assert.DeepEqual(t, got, []string{"a dog", "a cat"})

		_, err := it.Next()
		assert.ErrorContains(t, err, "exhausted")
	}
}

func TestCountCountsRepeatableMatches(t *testing.T) {
	reg := newTestRegistry(t)
	inspect := registry.MustTraitID[Inspectable](reg)

	c := component.New("pets")
	component.AddObject(reg, c, &Dog{}, nil, []types.TraitID{inspect})
	component.AddObject(reg, c, &Cat{}, nil, []types.TraitID{inspect})

	n, err := search.New(reg, c, inspect).Count()
	assert.NilError(t, err)
	assert.Equal(t, n, 2)
}

func TestEachStopsWhenCallbackReturnsFalse(t *testing.T) {
	reg := newTestRegistry(t)
	inspect := registry.MustTraitID[Inspectable](reg)

	c := component.New("pets")
	component.AddObject(reg, c, &Dog{}, nil, []types.TraitID{inspect})
	component.AddObject(reg, c, &Cat{}, nil, []types.TraitID{inspect})

	seen := 0
	err := search.New(reg, c, inspect).Each(func(any) bool {
		seen++
		return false
	})
	assert.NilError(t, err)
	assert.Equal(t, seen, 1)
}

func TestRegisteredTraitWithNoImplsAnywhereNeverMatches(t *testing.T) {
	reg := newTestRegistry(t)
	speak := registry.MustTraitID[Speaker](reg)

	c := component.New("pets")
	component.AddObject(reg, c, &Dog{}, []types.TraitID{speak}, nil)

	// Silent has no vtable entries at all; the lookup simply cannot succeed.
	ok := search.Has[Silent](reg, c)
	assert.False(t, ok)
}
