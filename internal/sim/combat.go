// internal/sim/combat.go
package sim

import (
	"math"

	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
)

// stepTowers decays cooldowns and, while a wave is active, picks targets
// and emits projectiles.
func (s *State) stepTowers() {
	waveActive := s.Phase.Active()
	for y := range s.Grid {
		for x := range s.Grid[y] {
			tower := s.Grid[y][x].Tower
			if tower == nil {
				continue
			}
			if tower.CooldownTicks > 0 {
				tower.CooldownTicks--
				continue
			}
			if !waveActive {
				continue
			}

			def, ok := defs.TowerLibrary[tower.DefID]
			if !ok {
				continue
			}
			stats := def.Levels[tower.Level-1]
			tx, ty := s.Grid[y][x].Pos.Center()

			target := s.selectTarget(tower.Mode, def.TargetsFlying, tx, ty, stats.Range)
			if target == nil {
				continue
			}
			tower.CooldownTicks = stats.CooldownTicks
			s.fireAt(target, tx, ty, stats)
		}
	}
}

// selectTarget scans all live enemies within range² and returns the best
// one for the targeting mode. "first" scores by path progress toward the
// base, "closest" by negative squared distance to the tower. Ties go to
// the lowest enemy id.
func (s *State) selectTarget(mode defs.TargetingMode, targetsFlying bool, tx, ty, rangeTiles float64) *EnemyInstance {
	rangeSq := rangeTiles * rangeTiles
	var best *EnemyInstance
	var bestScore float64

	for i := range s.Enemies {
		e := &s.Enemies[i]
		if e.HP <= 0 {
			continue
		}
		if e.Flying && !targetsFlying {
			continue
		}
		ex, ey := e.Position(s.Path)
		dx, dy := ex-tx, ey-ty
		distSq := dx*dx + dy*dy
		if distSq > rangeSq {
			continue
		}

		var score float64
		switch mode {
		case defs.TargetClosest:
			score = -distSq
		default: // defs.TargetFirst
			score = float64(e.PathIndex) + e.Progress
		}

		if best == nil || score > bestScore || (score == bestScore && e.ID < best.ID) {
			best = e
			bestScore = score
		}
	}
	return best
}

// fireAt emits one projectile toward the target's current position. Fast
// enough weapons are hit-scan; everything else homes each tick, so no lead
// is computed here.
func (s *State) fireAt(target *EnemyInstance, tx, ty float64, stats defs.LevelStats) {
	p := ProjectileInstance{
		ID:                s.AllocID(),
		X:                 tx,
		Y:                 ty,
		TargetID:          target.ID,
		Speed:             stats.ProjectileSpeed,
		Instant:           stats.ProjectileSpeed >= config.InstantProjectileSpeed,
		Damage:            stats.Damage,
		SplashRadius:      stats.SplashRadius,
		SlowMultiplier:    stats.SlowMultiplier,
		SlowDurationTicks: stats.SlowDurationTicks,
	}
	ex, ey := target.Position(s.Path)
	dx, dy := ex-p.X, ey-p.Y
	if dist := math.Hypot(dx, dy); dist > 0 {
		p.VX = dx / dist * p.Speed
		p.VY = dy / dist * p.Speed
	}
	s.Projectiles = append(s.Projectiles, p)
}
