package sim

import (
	"math"
	"testing"
)

func TestDamageEnemy_ArmorFloorsDamage(t *testing.T) {
	st := testState(8)
	e := addEnemy(&st, "ENEMY_TANK", 0, 0) // armor 0.75
	p := ProjectileInstance{Damage: 20}

	st.damageEnemy(e, &p)

	if got := e.MaxHP - e.HP; got != 15 {
		t.Errorf("HP reduction = %d, want floor(20*0.75) = 15", got)
	}
}

func TestDamageEnemy_SlowTakesStrongestAndLongest(t *testing.T) {
	st := testState(8)
	e := addEnemy(&st, "ENEMY_GRUNT", 0, 0)

	// Сначала сильное короткое замедление, затем слабое долгое.
	st.damageEnemy(e, &ProjectileInstance{Damage: 1, SlowMultiplier: 0.5, SlowDurationTicks: 20})
	st.damageEnemy(e, &ProjectileInstance{Damage: 1, SlowMultiplier: 0.6, SlowDurationTicks: 40})

	if e.SlowMultiplier != 0.5 {
		t.Errorf("SlowMultiplier = %f, want 0.5 (strongest kept, never multiplied)", e.SlowMultiplier)
	}
	if e.SlowRemainingTicks != 40 {
		t.Errorf("SlowRemainingTicks = %d, want 40 (longest kept)", e.SlowRemainingTicks)
	}
}

func TestStepProjectiles_DropsWhenTargetGone(t *testing.T) {
	st := testState(8)
	st.Phase = PhaseInProgress
	st.Projectiles = []ProjectileInstance{{
		ID: st.AllocID(), X: 3.5, Y: 0.5, TargetID: 999, Speed: 8, Damage: 10,
	}}

	st = Tick(st)

	if len(st.Projectiles) != 0 {
		t.Errorf("projectile kept flying after its target vanished")
	}
}

func TestStepProjectiles_HomesTowardTarget(t *testing.T) {
	st := testState(12)
	st.Phase = PhaseInProgress
	e := addEnemy(&st, "ENEMY_TANK", 6, 0)
	st.Projectiles = []ProjectileInstance{{
		ID: st.AllocID(), X: 2.5, Y: 1.5, TargetID: e.ID, Speed: 8, Damage: 10,
	}}

	before := st.Projectiles[0]
	st = Tick(st)

	if len(st.Projectiles) != 1 {
		t.Fatalf("projectile resolved too early")
	}
	after := st.Projectiles[0]
	moved := math.Hypot(after.X-before.X, after.Y-before.Y)
	want := 8 * 0.05
	if math.Abs(moved-want) > 1e-9 {
		t.Errorf("moved %f per tick, want %f", moved, want)
	}
	if after.X <= before.X {
		t.Errorf("projectile did not close on its target")
	}
}

func TestStepProjectiles_HitWithinRadius(t *testing.T) {
	st := testState(8)
	st.Phase = PhaseInProgress
	e := addEnemy(&st, "ENEMY_TANK", 3, 0) // медленный, далеко от базы
	ex, ey := e.Position(st.Path)
	st.Projectiles = []ProjectileInstance{{
		ID: st.AllocID(), X: ex + 0.1, Y: ey, TargetID: e.ID, Speed: 8, Damage: 20,
	}}

	st = Tick(st)

	if len(st.Projectiles) != 0 {
		t.Fatalf("projectile within hit radius did not resolve")
	}
	if st.Enemies[0].HP == st.Enemies[0].MaxHP {
		t.Errorf("hit applied no damage")
	}
}

func TestStepProjectiles_StepCoveringRemainderHits(t *testing.T) {
	st := testState(8)
	st.Phase = PhaseInProgress
	e := addEnemy(&st, "ENEMY_TANK", 3, 0)
	ex, ey := e.Position(st.Path)
	// Дальше радиуса поражения, но ближе одного шага (8 * 0.05 = 0.4):
	// перелетать цель снаряд не должен.
	st.Projectiles = []ProjectileInstance{{
		ID: st.AllocID(), X: ex, Y: ey - 0.3, TargetID: e.ID, Speed: 8, Damage: 20,
	}}

	st = Tick(st)

	if len(st.Projectiles) != 0 {
		t.Fatalf("projectile overshot its target instead of resolving")
	}
	if st.Enemies[0].HP == st.Enemies[0].MaxHP {
		t.Errorf("hit applied no damage")
	}
}

func TestStepProjectiles_AlwaysCatchesMovingTarget(t *testing.T) {
	st := testState(8)
	st.Phase = PhaseInProgress
	e := addEnemy(&st, "ENEMY_GRUNT", 0, 0)
	st.Projectiles = []ProjectileInstance{{
		ID: st.AllocID(), X: 2.5, Y: 0.5, TargetID: e.ID, Speed: 8, Damage: 20,
	}}

	for i := 0; i < 20 && len(st.Projectiles) > 0; i++ {
		st = Tick(st)
	}

	if len(st.Projectiles) != 0 {
		t.Fatalf("projectile never resolved against a moving target")
	}
	if got := st.Enemies[0].HP; got != st.Enemies[0].MaxHP-20 {
		t.Errorf("HP = %d, want %d", got, st.Enemies[0].MaxHP-20)
	}
}

func TestResolveHit_SplashHitsNeighbors(t *testing.T) {
	st := testState(12)
	st.Phase = PhaseInProgress
	addEnemy(&st, "ENEMY_GRUNT", 3, 0)
	addEnemy(&st, "ENEMY_GRUNT", 3, 0.4) // в радиусе взрыва
	addEnemy(&st, "ENEMY_GRUNT", 8, 0)   // далеко

	tx, ty := st.Enemies[0].Position(st.Path)
	p := ProjectileInstance{Damage: 10, SplashRadius: 1.0}
	st.resolveHit(&p, &st.Enemies[0], tx, ty)

	if st.Enemies[0].HP != st.Enemies[0].MaxHP-10 {
		t.Errorf("primary target HP = %d", st.Enemies[0].HP)
	}
	if st.Enemies[1].HP != st.Enemies[1].MaxHP-10 {
		t.Errorf("splash missed a neighbor inside the radius")
	}
	if st.Enemies[2].HP != st.Enemies[2].MaxHP {
		t.Errorf("splash reached an enemy outside the radius")
	}
}
