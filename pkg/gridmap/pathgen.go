// pkg/gridmap/pathgen.go
package gridmap

// Rand is the source of randomness path generation draws from. The caller
// supplies a seeded generator so the same seed always carves the same path.
type Rand interface {
	Intn(n int) int
}

// Generator carves the waypoint path a run's enemies will march along.
type Generator struct {
	rng Rand
}

// NewGenerator creates a path generator backed by the given random source.
func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds a map of the given size and a spawn-to-base path on it.
// The spawn sits on the west edge, the base on the east edge, and a couple
// of interior checkpoints bend the path so it is not a straight corridor.
func (g *Generator) Generate(width, height int) (*GridMap, []Cell) {
	gm := NewGridMap(width, height)
	gm.Entry = Cell{X: 0, Y: 1 + g.rng.Intn(height-2)}
	gm.Exit = Cell{X: width - 1, Y: 1 + g.rng.Intn(height-2)}

	// Чекпоинты распределяются по колоннам между входом и выходом.
	checkpointCount := 2
	if width < 7 {
		checkpointCount = 1
	}
	step := (width - 2) / (checkpointCount + 1)
	for i := 1; i <= checkpointCount; i++ {
		cp := Cell{
			X: 1 + i*step,
			Y: 1 + g.rng.Intn(height-2),
		}
		gm.Checkpoints = append(gm.Checkpoints, cp)
	}

	path := g.calculatePath(gm)
	return gm, path
}

// calculatePath connects entry, checkpoints and exit with A* segments,
// dropping the duplicated joint cell between consecutive segments.
func (g *Generator) calculatePath(gm *GridMap) []Cell {
	fullPath := []Cell{}
	current := gm.Entry
	for _, cp := range gm.Checkpoints {
		segment := AStar(current, cp, gm)
		if segment == nil {
			return nil
		}
		if len(fullPath) == 0 {
			fullPath = segment
		} else {
			fullPath = append(fullPath, segment[1:]...)
		}
		current = cp
	}

	pathToExit := AStar(current, gm.Exit, gm)
	if pathToExit == nil {
		return nil
	}
	if len(fullPath) == 0 {
		return pathToExit
	}
	return append(fullPath, pathToExit[1:]...)
}
