// internal/sim/state.go
package sim

import (
	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/pkg/gridmap"
)

// TileKind classifies what a grid tile is used for.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TilePath
	TileSpawn
	TileBase
)

// Tile is one cell of the playfield. A tile owns at most one tower.
type Tile struct {
	Pos   gridmap.Cell
	Kind  TileKind
	Tower *TowerInstance
}

// TowerInstance is a placed tower. Placement, upgrade and sell happen
// outside the core; the simulation only mutates the cooldown.
type TowerInstance struct {
	ID            int
	DefID         string
	Level         int // 1..config.MaxTowerLevel
	Mode          defs.TargetingMode
	TotalSpent    int // cumulative spend, drives the sell refund
	CooldownTicks int
}

// EnemyInstance is a live enemy marching along the path.
type EnemyInstance struct {
	ID              int
	DefID           string
	HP              int
	MaxHP           int
	Speed           float64 // tiles/sec, before slows
	ArmorMultiplier float64
	Flying          bool
	Reward          int
	LeakDamage      int

	// Положение на пути: индекс сегмента и доля [0,1) внутри него.
	PathIndex int
	Progress  float64

	SlowMultiplier     float64 // 1.0 = не замедлен
	SlowRemainingTicks int

	Leaked bool // дошёл до базы; награды не даёт
}

// ProjectileInstance is an in-flight shot. Instant projectiles resolve the
// same tick they are fired; everything else homes on its target.
type ProjectileInstance struct {
	ID       int
	X, Y     float64 // tile units
	VX, VY   float64 // tiles/sec
	TargetID int
	Speed    float64
	Instant  bool

	Damage            int
	SplashRadius      float64
	SlowMultiplier    float64 // 0 = no slow payload
	SlowDurationTicks int
}

// PendingSpawn is one queued enemy; only the head of the queue counts down.
type PendingSpawn struct {
	EnemyID         string
	TicksUntilSpawn int
}

// WavePhase is the wave state machine position.
type WavePhase string

const (
	PhaseIdle       WavePhase = "idle"
	PhaseSpawning   WavePhase = "spawning"
	PhaseInProgress WavePhase = "in_progress"
	PhaseComplete   WavePhase = "complete"
	PhaseVictory    WavePhase = "victory"
	PhaseGameOver   WavePhase = "game_over"
)

// Terminal reports whether the phase ends the run for good.
func (p WavePhase) Terminal() bool {
	return p == PhaseVictory || p == PhaseGameOver
}

// Active reports whether a wave is currently running.
func (p WavePhase) Active() bool {
	return p == PhaseSpawning || p == PhaseInProgress
}

// Stats aggregates the run's bookkeeping.
type Stats struct {
	Wave        int
	Kills       int
	Leaks       int // lives lost to leaks, not leaked-enemy count
	MoneyEarned int
	MoneySpent  int
}

// State is the full simulation snapshot. Tick and StartWave take it by
// value and return a fresh snapshot; the argument is never mutated.
type State struct {
	Name  string
	Seed  int64
	Tick  int
	Speed int // ticks per frame the host should run; 0 = stopped

	Money int
	Lives int

	Grid  [][]Tile
	Path  []gridmap.Cell
	Spawn gridmap.Cell
	Base  gridmap.Cell

	Enemies     []EnemyInstance
	Projectiles []ProjectileInstance
	SpawnQueue  []PendingSpawn

	Phase WavePhase
	Stats Stats

	NextID int
}

// PathGenerator is the external collaborator that carves the run's path.
type PathGenerator interface {
	Generate(width, height int) (*gridmap.GridMap, []gridmap.Cell)
}

// NewRun builds the initial snapshot: an empty size×size grid with the
// generated path applied to it (path, spawn and base tiles marked).
func NewRun(name string, size int, seed int64, gen PathGenerator) State {
	_, path := gen.Generate(size, size)

	grid := make([][]Tile, size)
	for y := 0; y < size; y++ {
		grid[y] = make([]Tile, size)
		for x := 0; x < size; x++ {
			grid[y][x] = Tile{Pos: gridmap.Cell{X: x, Y: y}, Kind: TileEmpty}
		}
	}
	for _, c := range path {
		grid[c.Y][c.X].Kind = TilePath
	}
	spawn := path[0]
	base := path[len(path)-1]
	grid[spawn.Y][spawn.X].Kind = TileSpawn
	grid[base.Y][base.X].Kind = TileBase

	return State{
		Name:   name,
		Seed:   seed,
		Speed:  config.DefaultSpeed,
		Money:  config.StartingMoney,
		Lives:  config.StartingLives,
		Grid:   grid,
		Path:   path,
		Spawn:  spawn,
		Base:   base,
		Phase:  PhaseIdle,
		NextID: 1,
	}
}

// Clone deep-copies the snapshot so a transition can mutate freely.
func (s State) Clone() State {
	st := s
	st.Grid = make([][]Tile, len(s.Grid))
	for y := range s.Grid {
		row := make([]Tile, len(s.Grid[y]))
		copy(row, s.Grid[y])
		for x := range row {
			if row[x].Tower != nil {
				t := *row[x].Tower
				row[x].Tower = &t
			}
		}
		st.Grid[y] = row
	}
	st.Path = append([]gridmap.Cell(nil), s.Path...)
	st.Enemies = append([]EnemyInstance(nil), s.Enemies...)
	st.Projectiles = append([]ProjectileInstance(nil), s.Projectiles...)
	st.SpawnQueue = append([]PendingSpawn(nil), s.SpawnQueue...)
	return st
}

// AllocID hands out the next entity id. The host uses it for tower ids so
// they never collide with enemy or projectile ids.
func (s *State) AllocID() int {
	id := s.NextID
	s.NextID++
	return id
}

// Position derives the enemy's world position in tile units by linear
// interpolation between the waypoints bounding (PathIndex, Progress).
func (e *EnemyInstance) Position(path []gridmap.Cell) (float64, float64) {
	if e.PathIndex >= len(path)-1 {
		return path[len(path)-1].Center()
	}
	x1, y1 := path[e.PathIndex].Center()
	x2, y2 := path[e.PathIndex+1].Center()
	return x1 + (x2-x1)*e.Progress, y1 + (y2-y1)*e.Progress
}

func (s *State) enemyByID(id int) *EnemyInstance {
	for i := range s.Enemies {
		if s.Enemies[i].ID == id {
			return &s.Enemies[i]
		}
	}
	return nil
}
