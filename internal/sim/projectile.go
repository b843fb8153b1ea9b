// internal/sim/projectile.go
package sim

import (
	"math"

	"iso-tower-defense/internal/config"
)

// stepProjectiles advances every in-flight projectile: dead or vanished
// targets drop the projectile, hits apply damage (and splash, and slows),
// everything else re-homes toward the moved target.
func (s *State) stepProjectiles() {
	kept := s.Projectiles[:0]
	for i := range s.Projectiles {
		p := s.Projectiles[i]

		target := s.enemyByID(p.TargetID)
		if target == nil || target.HP <= 0 {
			// Цель пропала — снаряд исчезает без взрыва.
			continue
		}

		tx, ty := target.Position(s.Path)
		dx, dy := tx-p.X, ty-p.Y
		distSq := dx*dx + dy*dy
		// Шаг за тик может быть больше радиуса поражения; если остаток
		// пути покрывается шагом, это попадание, иначе снаряд перелетал
		// бы цель и кружил вокруг неё.
		step := p.Speed * config.FixedDT
		if p.Instant || distSq <= config.HitRadius*config.HitRadius || distSq <= step*step {
			s.resolveHit(&p, target, tx, ty)
			continue
		}

		dist := math.Sqrt(distSq)
		p.VX = dx / dist * p.Speed
		p.VY = dy / dist * p.Speed
		p.X += p.VX * config.FixedDT
		p.Y += p.VY * config.FixedDT
		kept = append(kept, p)
	}
	s.Projectiles = kept
}

// resolveHit damages the locked-on target and, for splash projectiles,
// every other live enemy around the hit point.
func (s *State) resolveHit(p *ProjectileInstance, target *EnemyInstance, hitX, hitY float64) {
	s.damageEnemy(target, p)

	if p.SplashRadius <= 0 {
		return
	}
	splashSq := p.SplashRadius * p.SplashRadius
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if e.ID == target.ID || e.HP <= 0 {
			continue
		}
		ex, ey := e.Position(s.Path)
		dx, dy := ex-hitX, ey-hitY
		if dx*dx+dy*dy <= splashSq {
			s.damageEnemy(e, p)
		}
	}
}

// damageEnemy applies armor-scaled damage and merges the slow payload:
// the strongest multiplier wins and so does the longest remaining
// duration; slows never multiply together.
func (s *State) damageEnemy(e *EnemyInstance, p *ProjectileInstance) {
	e.HP -= int(math.Floor(float64(p.Damage) * e.ArmorMultiplier))

	if p.SlowMultiplier > 0 {
		if p.SlowMultiplier < e.SlowMultiplier {
			e.SlowMultiplier = p.SlowMultiplier
		}
		if p.SlowDurationTicks > e.SlowRemainingTicks {
			e.SlowRemainingTicks = p.SlowDurationTicks
		}
	}
}
