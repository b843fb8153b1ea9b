// pkg/gridmap/map.go
package gridmap

// GridMap is the static square playfield a run is generated on. It only
// knows about geometry and passability; tower ownership lives on the
// simulation's own tiles.
type GridMap struct {
	Width, Height int
	Blocked       map[Cell]bool
	Entry         Cell
	Exit          Cell
	Checkpoints   []Cell
}

// NewGridMap создаёт пустую карту заданного размера.
func NewGridMap(width, height int) *GridMap {
	return &GridMap{
		Width:   width,
		Height:  height,
		Blocked: make(map[Cell]bool),
	}
}

// Contains reports whether the cell lies inside the map bounds.
func (gm *GridMap) Contains(c Cell) bool {
	return c.X >= 0 && c.X < gm.Width && c.Y >= 0 && c.Y < gm.Height
}

// IsPassable reports whether a path may run through the cell.
func (gm *GridMap) IsPassable(c Cell) bool {
	return gm.Contains(c) && !gm.Blocked[c]
}
