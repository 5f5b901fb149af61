package core

// predefinedLayout is the shipped map, rows top to bottom.
var predefinedLayout = [][]int{
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 1, 1, -1, -1, -1},
	{-1, -1, -1, -1, -1, -1, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, -1, -1, -1},
	{-1, -1, -1, -1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 3, 3, -1, -1, -1},
	{-1, -1, -1, -1, 1, 4, 1, 1, 1, 1, 1, 2, 1, 2, 3, 2, 4, 2, 1, -1, -1},
	{-1, -1, -1, 1, 1, 1, 1, -1, -1, 2, 1, 2, 2, 2, 1, 2, 1, 1, 1, 3, -1},
	{-1, -1, -1, -1, 1, 3, 1, -1, -1, 2, 1, 1, 2, 2, 1, 2, 1, 1, 1, 2, 1},
	{-1, -1, -1, -1, 3, 2, 1, 1, 1, 1, 1, 2, 2, 3, 2, -1, -1, 2, 3, 2, 1},
	{-1, -1, -1, 1, 1, 1, 1, 1, 1, 2, 2, 1, 4, 2, 3, -1, -1, 2, 1, 1, -1},
	{-1, -1, -1, -1, 1, 1, 2, 1, 1, 2, 1, 1, 3, 1, 2, 1, 1, 2, 1, -1, -1},
	{-1, 2, 1, 2, 2, 3, 2, 1, 1, 2, 2, 1, 1, 2, 1, 1, 3, -1, -1, -1, -1},
	{-1, 3, 1, 1, 2, 1, 1, 1, 1, 2, 1, 1, 2, 1, 1, 1, 2, 1, -1, -1, -1},
	{-1, 3, 2, 1, 1, 1, 1, -1, -1, 2, 3, 2, 1, 2, 2, 3, 2, 1, -1, -1, -1},
	{1, 1, 1, 1, 1, 1, 2, 2, 1, 2, 2, 4, 1, 1, 2, 1, 1, -1, -1, -1, -1},
	{-1, 1, 1, 2, 1, 1, 2, 1, 1, 3, 1, 2, 1, 1, 2, 1, -1, -1, -1, -1, -1},
	{-1, -1, -1, -1, 1, 1, 2, 2, 1, 1, 2, 1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, -1, 1, 1, 2, 1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
}

// PredefinedLayout returns a copy of the shipped 21x16 map.
func PredefinedLayout() [][]int {
	layout := make([][]int, len(predefinedLayout))
	for i, row := range predefinedLayout {
		layout[i] = append([]int(nil), row...)
	}
	return layout
}
