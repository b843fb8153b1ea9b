package sim

import (
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/pkg/gridmap"
)

// testState builds a minimal 3-row playfield with a straight path along
// the middle row. Towers go on the rows above and below it.
func testState(pathLen int) State {
	grid := make([][]Tile, 3)
	for y := 0; y < 3; y++ {
		grid[y] = make([]Tile, pathLen)
		for x := 0; x < pathLen; x++ {
			grid[y][x] = Tile{Pos: gridmap.Cell{X: x, Y: y}, Kind: TileEmpty}
		}
	}
	path := make([]gridmap.Cell, pathLen)
	for x := 0; x < pathLen; x++ {
		path[x] = gridmap.Cell{X: x, Y: 1}
		grid[1][x].Kind = TilePath
	}
	grid[1][0].Kind = TileSpawn
	grid[1][pathLen-1].Kind = TileBase

	return State{
		Name:   "test",
		Speed:  1,
		Money:  200,
		Lives:  20,
		Grid:   grid,
		Path:   path,
		Spawn:  path[0],
		Base:   path[pathLen-1],
		Phase:  PhaseIdle,
		NextID: 1,
	}
}

func addTower(st *State, x, y int, defID string, level int, mode defs.TargetingMode) *TowerInstance {
	tower := &TowerInstance{
		ID:    st.AllocID(),
		DefID: defID,
		Level: level,
		Mode:  mode,
	}
	st.Grid[y][x].Tower = tower
	return tower
}

func addEnemy(st *State, defID string, pathIndex int, progress float64) *EnemyInstance {
	def := defs.EnemyLibrary[defID]
	st.Enemies = append(st.Enemies, EnemyInstance{
		ID:              st.AllocID(),
		DefID:           def.ID,
		HP:              def.Health,
		MaxHP:           def.Health,
		Speed:           def.Speed,
		ArmorMultiplier: def.ArmorMultiplier,
		Flying:          def.Flying,
		Reward:          def.Reward,
		LeakDamage:      def.LeakDamage,
		SlowMultiplier:  1.0,
		PathIndex:       pathIndex,
		Progress:        progress,
	})
	return &st.Enemies[len(st.Enemies)-1]
}

// queueSingle primes a one-enemy wave without going through the authored
// wave patterns.
func queueSingle(st *State, enemyID string) {
	st.Stats.Wave = 1
	st.Phase = PhaseSpawning
	st.SpawnQueue = []PendingSpawn{{EnemyID: enemyID, TicksUntilSpawn: 1}}
}
