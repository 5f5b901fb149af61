package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCoordinate(t *testing.T) {
	c := NewCoordinate(3, 5)
	assert.Equal(t, 3, c.X)
	assert.Equal(t, 5, c.Y)
}

func TestCoordinate_IndexRoundTrip(t *testing.T) {
	width := 7
	for i := 0; i < 49; i++ {
		coord := FromIndex(i, width)
		assert.Equal(t, i, coord.ToIndex(width), "Round trip failed for index %d", i)
	}
}

func TestCoordinate_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		valid bool
	}{
		{"Origin", Coordinate{0, 0}, true},
		{"FarCorner", Coordinate{4, 2}, true},
		{"NegativeX", Coordinate{-1, 0}, false},
		{"NegativeY", Coordinate{0, -1}, false},
		{"XTooLarge", Coordinate{5, 0}, false},
		{"YTooLarge", Coordinate{0, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.coord.IsValid(5, 3))
		})
	}
}

func TestCoordinate_AddSub(t *testing.T) {
	a := Coordinate{3, -2}
	b := Coordinate{-7, 4}

	assert.Equal(t, Coordinate{-4, 2}, a.Add(b))
	assert.Equal(t, Coordinate{10, -6}, a.Sub(b))
	assert.Equal(t, a, a.Add(b).Sub(b))
}

func TestCoordinate_EqualityAsMapKey(t *testing.T) {
	m := map[Coordinate]string{}
	m[NewCoordinate(2, 3)] = "first"
	m[Coordinate{X: 2, Y: 3}] = "second"

	assert.Len(t, m, 1)
	assert.Equal(t, "second", m[Coordinate{2, 3}])
	assert.True(t, Coordinate{2, 3}.Equal(NewCoordinate(2, 3)))
	assert.False(t, Coordinate{2, 3}.Equal(Coordinate{3, 2}))
}

func TestCoordinate_Neighbors(t *testing.T) {
	c := Coordinate{5, 5}
	assert.Equal(t, [4]Coordinate{
		{5, 6}, // up
		{6, 5}, // right
		{5, 4}, // down
		{4, 5}, // left
	}, c.Neighbors())

	for _, n := range c.Neighbors() {
		assert.True(t, c.IsAdjacentTo(n))
		assert.Equal(t, 1, c.DistanceTo(n))
	}
}

func TestCoordinate_DistanceAndAdjacency(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coordinate
		distance int
		adjacent bool
	}{
		{"Same", Coordinate{1, 1}, Coordinate{1, 1}, 0, false},
		{"Horizontal", Coordinate{1, 1}, Coordinate{2, 1}, 1, true},
		{"Vertical", Coordinate{1, 1}, Coordinate{1, 0}, 1, true},
		{"Diagonal", Coordinate{1, 1}, Coordinate{2, 2}, 2, false},
		{"Far", Coordinate{-3, 4}, Coordinate{3, -4}, 14, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.distance, tt.a.DistanceTo(tt.b))
			assert.Equal(t, tt.distance, tt.b.DistanceTo(tt.a))
			assert.Equal(t, tt.adjacent, tt.a.IsAdjacentTo(tt.b))
		})
	}
}

func TestCoordinate_Move(t *testing.T) {
	c := Coordinate{0, 0}
	assert.Equal(t, Coordinate{0, 1}, c.Move(Up))
	assert.Equal(t, Coordinate{1, 0}, c.Move(Right))
	assert.Equal(t, Coordinate{0, -1}, c.Move(Down))
	assert.Equal(t, Coordinate{-1, 0}, c.Move(Left))
	assert.Equal(t, c, c.Move(Direction(9)))
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "(3,-1)", Coordinate{3, -1}.String())
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "Direction(7)", Direction(7).String())
}
