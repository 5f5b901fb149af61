package core

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUnit struct {
	id      string
	faction Faction
	pos     Coordinate
	dead    bool
}

func (u *fakeUnit) ID() string                { return u.id }
func (u *fakeUnit) Faction() Faction          { return u.faction }
func (u *fakeUnit) BoardPosition() Coordinate { return u.pos }
func (u *fakeUnit) IsAlive() bool             { return !u.dead }

func newTestRegistry() (*OccupancyRegistry, *recordingPublisher, *bytes.Buffer) {
	var buf bytes.Buffer
	r := NewOccupancyRegistry(zerolog.New(&buf))
	pub := &recordingPublisher{}
	r.SetEventPublisher(pub)
	return r, pub, &buf
}

func conflicts(pub *recordingPublisher) []OccupancyNotice {
	var out []OccupancyNotice
	for _, e := range pub.events {
		if n, ok := e.(OccupancyNotice); ok && n.Kind == OccupancyConflict {
			out = append(out, n)
		}
	}
	return out
}

func TestOccupancyRegistry_Register(t *testing.T) {
	r, pub, _ := newTestRegistry()
	cat := &fakeUnit{id: "cat", faction: FactionCats}
	c := Coordinate{2, 3}

	assert.False(t, r.HasOccupant(c))
	r.Register(cat, c)

	got, ok := r.OccupantAt(c)
	require.True(t, ok)
	assert.Same(t, cat, got)
	assert.True(t, r.HasOccupant(c))
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []interface{}{
		OccupancyNotice{Kind: OccupancyRegistered, Coord: c, UnitID: "cat"},
	}, pub.events)
}

func TestOccupancyRegistry_RegisterReplacesWithWarning(t *testing.T) {
	r, pub, buf := newTestRegistry()
	cat := &fakeUnit{id: "cat", faction: FactionCats}
	hyena := &fakeUnit{id: "hyena", faction: FactionHyenas}
	c := Coordinate{1, 1}

	r.Register(cat, c)
	r.Register(hyena, c)

	got, _ := r.OccupantAt(c)
	assert.Same(t, hyena, got)
	assert.Equal(t, 1, r.Len())
	assert.Contains(t, buf.String(), `"level":"warn"`)

	cs := conflicts(pub)
	require.Len(t, cs, 1)
	assert.Equal(t, "hyena", cs[0].UnitID)
	assert.Equal(t, "cat", cs[0].Existing)
}

func TestOccupancyRegistry_RegisterSameUnitTwiceIsQuiet(t *testing.T) {
	r, pub, buf := newTestRegistry()
	cat := &fakeUnit{id: "cat"}

	r.Register(cat, Coordinate{0, 0})
	r.Register(cat, Coordinate{0, 0})

	assert.Empty(t, conflicts(pub))
	assert.NotContains(t, buf.String(), `"level":"warn"`)
}

func TestOccupancyRegistry_RegisterNil(t *testing.T) {
	r, pub, _ := newTestRegistry()
	r.Register(nil, Coordinate{0, 0})
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, pub.events)
}

func TestOccupancyRegistry_MoveUnit(t *testing.T) {
	r, pub, _ := newTestRegistry()
	cat := &fakeUnit{id: "cat"}
	from, to := Coordinate{0, 0}, Coordinate{0, 1}

	r.Register(cat, from)
	r.MoveUnit(cat, from, to)

	_, ok := r.OccupantAt(from)
	assert.False(t, ok)
	got, ok := r.OccupantAt(to)
	require.True(t, ok)
	assert.Same(t, cat, got)
	assert.Equal(t, 1, r.Len())
	assert.Empty(t, conflicts(pub))
}

func TestOccupancyRegistry_MoveUnitFromWrongCellStillRegisters(t *testing.T) {
	r, pub, _ := newTestRegistry()
	cat := &fakeUnit{id: "cat"}
	hyena := &fakeUnit{id: "hyena"}

	r.Register(hyena, Coordinate{0, 0})
	r.MoveUnit(cat, Coordinate{0, 0}, Coordinate{1, 0})

	got, _ := r.OccupantAt(Coordinate{0, 0})
	assert.Same(t, hyena, got, "other unit stays")
	got, _ = r.OccupantAt(Coordinate{1, 0})
	assert.Same(t, cat, got)

	cs := conflicts(pub)
	require.Len(t, cs, 1)
	assert.Equal(t, "different occupant", cs[0].Reason)
}

func TestOccupancyRegistry_Unregister(t *testing.T) {
	t.Run("removes matching unit", func(t *testing.T) {
		r, _, _ := newTestRegistry()
		cat := &fakeUnit{id: "cat"}
		r.Register(cat, Coordinate{4, 4})
		r.Unregister(cat, Coordinate{4, 4})
		assert.False(t, r.HasOccupant(Coordinate{4, 4}))
	})

	t.Run("keeps a different occupant", func(t *testing.T) {
		r, pub, buf := newTestRegistry()
		cat := &fakeUnit{id: "cat"}
		hyena := &fakeUnit{id: "hyena"}
		r.Register(cat, Coordinate{4, 4})

		r.Unregister(hyena, Coordinate{4, 4})

		got, ok := r.OccupantAt(Coordinate{4, 4})
		require.True(t, ok)
		assert.Same(t, cat, got)
		assert.Contains(t, buf.String(), "different unit is registered")
		require.Len(t, conflicts(pub), 1)
	})

	t.Run("warns on empty cell", func(t *testing.T) {
		r, pub, buf := newTestRegistry()
		assert.NotPanics(t, func() {
			r.Unregister(&fakeUnit{id: "ghost"}, Coordinate{9, 9})
		})
		assert.Contains(t, buf.String(), "no unit is registered")
		cs := conflicts(pub)
		require.Len(t, cs, 1)
		assert.Equal(t, "", cs[0].Existing)
	})
}

func TestOccupancyRegistry_AllOccupants(t *testing.T) {
	r, _, _ := newTestRegistry()
	units := []*fakeUnit{
		{id: "cat-b", faction: FactionCats},
		{id: "hyena-a", faction: FactionHyenas},
		{id: "cat-a", faction: FactionCats},
	}
	for i, u := range units {
		r.Register(u, Coordinate{i, 0})
	}

	cats := r.AllOccupants(FactionCats)
	require.Len(t, cats, 2)
	assert.Equal(t, "cat-a", cats[0].ID())
	assert.Equal(t, "cat-b", cats[1].ID())

	assert.Len(t, r.AllOccupants(FactionHyenas), 1)
	assert.Empty(t, r.AllOccupants(FactionNone))
}

func TestOccupancyRegistry_IdentityIsID(t *testing.T) {
	r, pub, _ := newTestRegistry()
	r.Register(&fakeUnit{id: "cat"}, Coordinate{0, 0})

	// A second handle for the same unit may unregister it.
	r.Unregister(&fakeUnit{id: "cat"}, Coordinate{0, 0})
	assert.False(t, r.HasOccupant(Coordinate{0, 0}))
	assert.Empty(t, conflicts(pub))
}

func TestOccupancyRegistry_RemoveDead(t *testing.T) {
	r, pub, _ := newTestRegistry()
	alive := &fakeUnit{id: "alive"}
	dead := &fakeUnit{id: "dead"}
	r.Register(alive, Coordinate{0, 0})
	r.Register(dead, Coordinate{1, 0})
	pub.events = nil

	dead.dead = true
	assert.Equal(t, 1, r.RemoveDead())

	assert.True(t, r.HasOccupant(Coordinate{0, 0}))
	assert.False(t, r.HasOccupant(Coordinate{1, 0}))
	assert.Equal(t, []interface{}{
		OccupancyNotice{Kind: OccupancyUnregistered, Coord: Coordinate{1, 0}, UnitID: "dead"},
	}, pub.events)
	assert.Zero(t, r.RemoveDead())
}
