package core

import (
	"fmt"
	"strings"
)

// Faction is the allegiance of a cell or a unit. The zero value is FactionNone.
type Faction int

const (
	FactionNone Faction = iota
	FactionCats
	FactionHyenas
)

// PlayableFactions lists every faction that can own cells, in declaration order.
var PlayableFactions = []Faction{FactionCats, FactionHyenas}

func (f Faction) String() string {
	switch f {
	case FactionNone:
		return "none"
	case FactionCats:
		return "cats"
	case FactionHyenas:
		return "hyenas"
	default:
		return fmt.Sprintf("Faction(%d)", int(f))
	}
}

// ParseFaction is the inverse of Faction.String. Matching is case-insensitive.
func ParseFaction(s string) (Faction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "neutral", "":
		return FactionNone, nil
	case "cats":
		return FactionCats, nil
	case "hyenas":
		return FactionHyenas, nil
	default:
		return FactionNone, fmt.Errorf("%w: %q", ErrUnknownFaction, s)
	}
}

func (f Faction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Faction) UnmarshalText(text []byte) error {
	parsed, err := ParseFaction(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
