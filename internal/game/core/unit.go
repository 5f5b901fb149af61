package core

// Unit is the handle the unit-management layer hands to the board. The board
// never owns units; identity is the ID.
type Unit interface {
	ID() string
	Faction() Faction
	BoardPosition() Coordinate
	IsAlive() bool
}

func sameUnit(a, b Unit) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

func unitID(u Unit) string {
	if u == nil {
		return ""
	}
	return u.ID()
}
