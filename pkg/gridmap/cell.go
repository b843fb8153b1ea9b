// pkg/gridmap/cell.go
package gridmap

import "iso-tower-defense/pkg/utils"

// Cell represents a tile position on the square grid.
type Cell struct {
	X, Y int
}

// NeighborDirections defines the 4 cardinal directions, starting from East
// and going counter-clockwise.
var NeighborDirections = []Cell{
	{X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 1},
}

// Add возвращает сумму двух клеток.
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// Distance вычисляет манхэттенское расстояние между клетками.
func (c Cell) Distance(to Cell) int {
	return utils.Abs(c.X-to.X) + utils.Abs(c.Y-to.Y)
}

// AllPossibleNeighbors returns the 4 adjacent cells regardless of bounds.
func (c Cell) AllPossibleNeighbors() []Cell {
	return []Cell{
		{c.X + 1, c.Y},
		{c.X, c.Y - 1},
		{c.X - 1, c.Y},
		{c.X, c.Y + 1},
	}
}

// Neighbors returns the adjacent cells that exist on the map.
func (c Cell) Neighbors(gm *GridMap) []Cell {
	all := c.AllPossibleNeighbors()
	valid := make([]Cell, 0, 4)
	for _, n := range all {
		if gm.Contains(n) {
			valid = append(valid, n)
		}
	}
	return valid
}

// Center returns the cell center in tile units, the coordinate space the
// simulation and the renderer share.
func (c Cell) Center() (x, y float64) {
	return float64(c.X) + 0.5, float64(c.Y) + 0.5
}
