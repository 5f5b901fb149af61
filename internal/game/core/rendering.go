package core

import (
	"fmt"
	"strings"
)

const (
	voidSymbol    = " "
	neutralSymbol = "·"
)

var factionSymbols = map[Faction]string{
	FactionCats:   "C",
	FactionHyenas: "H",
}

// String draws owners row by row with the top of the map first.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.W*2 + 4) * (b.H + 1))

	for y := b.H - 1; y >= 0; y-- {
		sb.WriteString(IntToStringFixedWidth(y, 2))
		sb.WriteString(" ")
		for x := 0; x < b.W; x++ {
			cell := &b.C[b.Idx(x, y)]
			switch {
			case cell.IsVoid():
				sb.WriteString(voidSymbol)
			case cell.IsNeutral():
				sb.WriteString(neutralSymbol)
			default:
				sb.WriteString(factionSymbols[cell.Owner])
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// DistanceString draws the distance field; unreached cells show as '-'.
func (b *Board) DistanceString() string {
	var sb strings.Builder
	for y := b.H - 1; y >= 0; y-- {
		sb.WriteString(IntToStringFixedWidth(y, 2))
		sb.WriteString(" ")
		for x := 0; x < b.W; x++ {
			cell := &b.C[b.Idx(x, y)]
			switch {
			case cell.IsVoid():
				sb.WriteString("   ")
			case !cell.IsReached():
				sb.WriteString("  -")
			default:
				sb.WriteString(IntToStringFixedWidth(cell.MinDistToHQ, 3))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// IntToStringFixedWidth left-pads num with spaces to width.
func IntToStringFixedWidth(num int, width int) string {
	return fmt.Sprintf("%*d", width, num)
}
