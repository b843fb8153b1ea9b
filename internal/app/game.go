// internal/app/game.go
package app

import (
	"log"
	"math"

	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/internal/event"
	"iso-tower-defense/internal/sim"
	"iso-tower-defense/internal/utils"
	"iso-tower-defense/pkg/gridmap"
)

// Game is the host side of a run: it owns the simulation snapshot, feeds
// it through sim.Tick on a fixed-step accumulator and applies player
// actions (tower placement, upgrades, sells, wave starts) between ticks.
type Game struct {
	State           sim.State
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	SelectedTowerID string

	accumulator float64
	prev        sim.State
}

// NewGame initializes a new run with the given seed.
func NewGame(name string, seed int64) *Game {
	rng := utils.NewPRNGService(seed)
	gen := gridmap.NewGenerator(rng)
	dispatcher := event.NewDispatcher()

	g := &Game{
		State:           sim.NewRun(name, config.DefaultGridSize, seed, gen),
		EventDispatcher: dispatcher,
		Rng:             rng,
		SelectedTowerID: "TOWER_ARROW",
	}
	g.prev = g.State

	dispatcher.Subscribe(event.GameOver, &runLogger{})
	dispatcher.Subscribe(event.Victory, &runLogger{})
	dispatcher.Subscribe(event.WaveEnded, &runLogger{})
	return g
}

// Кадр ровно в N*FixedDT после округления float64 может оказаться чуть
// меньше N шагов; допуск удерживает число тиков целым.
const accumulatorEpsilon = 1e-9

// Update advances the simulation. Speed is expressed as how many fixed
// ticks run per unit of wall-clock time; the step size itself never
// changes, pause simply runs zero ticks.
func (g *Game) Update(deltaTime float64) {
	g.accumulator += deltaTime * float64(g.State.Speed)
	for g.accumulator >= config.FixedDT-accumulatorEpsilon {
		g.accumulator -= config.FixedDT
		g.prev = g.State
		g.State = sim.Tick(g.State)
		g.dispatchDiff()
	}
}

// StartNextWave asks the core to begin the next wave. Illegal phases make
// it a no-op inside the core, so the host does not need to guard.
func (g *Game) StartNextWave() {
	prev := g.State
	g.State = sim.StartWave(g.State)
	if g.State.Phase == sim.PhaseSpawning && prev.Phase != sim.PhaseSpawning {
		g.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: g.State.Stats.Wave})
	}
}

// CycleSpeed steps the speed setting 0 → 1 → 2 → 3 → 0. Finished runs are
// pinned at 0 by the core.
func (g *Game) CycleSpeed() {
	if g.State.Phase.Terminal() {
		return
	}
	g.State.Speed = (g.State.Speed + 1) % (config.MaxSpeed + 1)
}

// PlaceTower puts a tower of the selected type on an empty tile, paying
// its cost. The grid mutation happens here, outside the core; the next
// Tick observes the new tower.
func (g *Game) PlaceTower(c gridmap.Cell) bool {
	def, ok := defs.TowerLibrary[g.SelectedTowerID]
	if !ok {
		return false
	}
	tile := g.tileAt(c)
	if tile == nil || tile.Kind != sim.TileEmpty || tile.Tower != nil {
		return false
	}
	cost := def.Cost()
	if g.State.Money < cost {
		return false
	}

	g.State.Money -= cost
	g.State.Stats.MoneySpent += cost
	tile.Tower = &sim.TowerInstance{
		ID:         g.State.AllocID(),
		DefID:      def.ID,
		Level:      1,
		Mode:       defs.TargetFirst,
		TotalSpent: cost,
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: tile.Tower.ID})
	return true
}

// UpgradeTower raises the tower's level by one, up to the maximum.
func (g *Game) UpgradeTower(c gridmap.Cell) bool {
	tile := g.tileAt(c)
	if tile == nil || tile.Tower == nil || tile.Tower.Level >= config.MaxTowerLevel {
		return false
	}
	def, ok := defs.TowerLibrary[tile.Tower.DefID]
	if !ok {
		return false
	}
	cost := def.Levels[tile.Tower.Level].UpgradeCost
	if g.State.Money < cost {
		return false
	}

	g.State.Money -= cost
	g.State.Stats.MoneySpent += cost
	tile.Tower.Level++
	tile.Tower.TotalSpent += cost
	return true
}

// SellTower removes the tower and refunds a fixed share of everything
// spent on it.
func (g *Game) SellTower(c gridmap.Cell) bool {
	tile := g.tileAt(c)
	if tile == nil || tile.Tower == nil {
		return false
	}
	refund := int(math.Floor(float64(tile.Tower.TotalSpent) * config.SellRefundRatio))
	g.State.Money += refund
	id := tile.Tower.ID
	tile.Tower = nil
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: id})
	return true
}

// ToggleTargeting flips the tower between "first" and "closest".
func (g *Game) ToggleTargeting(c gridmap.Cell) {
	tile := g.tileAt(c)
	if tile == nil || tile.Tower == nil {
		return
	}
	if tile.Tower.Mode == defs.TargetFirst {
		tile.Tower.Mode = defs.TargetClosest
	} else {
		tile.Tower.Mode = defs.TargetFirst
	}
}

func (g *Game) tileAt(c gridmap.Cell) *sim.Tile {
	if c.Y < 0 || c.Y >= len(g.State.Grid) || c.X < 0 || c.X >= len(g.State.Grid[c.Y]) {
		return nil
	}
	return &g.State.Grid[c.Y][c.X]
}

// dispatchDiff compares the previous and current snapshots and raises
// host-side events for everything that changed during the tick.
func (g *Game) dispatchDiff() {
	if g.State.Stats.Kills > g.prev.Stats.Kills {
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: g.State.Stats.Kills - g.prev.Stats.Kills})
	}
	if g.State.Stats.Leaks > g.prev.Stats.Leaks {
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: g.State.Stats.Leaks - g.prev.Stats.Leaks})
	}
	if g.State.Phase == g.prev.Phase {
		return
	}
	switch g.State.Phase {
	case sim.PhaseComplete:
		g.EventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: g.State.Stats.Wave})
	case sim.PhaseVictory:
		g.EventDispatcher.Dispatch(event.Event{Type: event.Victory, Data: g.State.Stats.Wave})
	case sim.PhaseGameOver:
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.State.Stats.Wave})
	}
}

// runLogger пишет ключевые события забега в лог.
type runLogger struct{}

func (l *runLogger) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		log.Printf("wave %d cleared", e.Data)
	case event.Victory:
		log.Printf("victory on wave %d", e.Data)
	case event.GameOver:
		log.Printf("game over on wave %d", e.Data)
	}
}
