// internal/sim/movement.go
package sim

import "iso-tower-defense/internal/config"

// stepEnemies advances every living enemy along the path by one fixed step
// and books leaks for enemies that reach the base.
func (s *State) stepEnemies() {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if e.HP <= 0 {
			continue
		}

		if e.SlowRemainingTicks > 0 {
			e.SlowRemainingTicks--
			if e.SlowRemainingTicks == 0 {
				e.SlowMultiplier = 1.0
			}
		}

		// Соседние клетки пути — единичные сегменты, поэтому скорость в
		// клетках/сек расходуется напрямую.
		distance := e.Speed * e.SlowMultiplier * config.FixedDT
		for distance > 0 && e.PathIndex < len(s.Path)-1 {
			remaining := 1.0 - e.Progress
			if distance < remaining {
				e.Progress += distance
				distance = 0
			} else {
				distance -= remaining
				e.PathIndex++
				e.Progress = 0
			}
		}

		if e.PathIndex >= len(s.Path)-1 {
			s.leak(e)
		}
	}
}

// leak books a base arrival: lives drop by the enemy's leak damage and the
// enemy dies without yielding a reward.
func (s *State) leak(e *EnemyInstance) {
	s.Lives -= e.LeakDamage
	if s.Lives < 0 {
		s.Lives = 0
	}
	s.Stats.Leaks += e.LeakDamage
	e.HP = 0
	e.Leaked = true
}
