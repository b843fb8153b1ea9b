package sim

import (
	"testing"

	"iso-tower-defense/internal/defs"
)

func TestStepTowers_CooldownDecaysWithoutWave(t *testing.T) {
	st := testState(8)
	tower := addTower(&st, 3, 0, "TOWER_ARROW", 1, defs.TargetFirst)
	tower.CooldownTicks = 3
	addEnemy(&st, "ENEMY_GRUNT", 3, 0) // рядом, но волна не активна

	st = Tick(st)

	if got := st.Grid[0][3].Tower.CooldownTicks; got != 2 {
		t.Errorf("CooldownTicks = %d, want 2", got)
	}
	if len(st.Projectiles) != 0 {
		t.Errorf("tower fired while no wave was active")
	}
}

func TestStepTowers_FiresAndResetsCooldown(t *testing.T) {
	st := testState(8)
	addTower(&st, 3, 0, "TOWER_ARROW", 1, defs.TargetFirst)
	st.Phase = PhaseInProgress
	addEnemy(&st, "ENEMY_GRUNT", 3, 0)

	st = Tick(st)

	if len(st.Projectiles) != 1 {
		t.Fatalf("%d projectiles, want 1", len(st.Projectiles))
	}
	wantCooldown := defs.TowerLibrary["TOWER_ARROW"].Levels[0].CooldownTicks
	if got := st.Grid[0][3].Tower.CooldownTicks; got != wantCooldown {
		t.Errorf("CooldownTicks = %d, want %d", got, wantCooldown)
	}
	if st.Projectiles[0].Instant {
		t.Errorf("arrow projectile marked instant")
	}
}

func TestStepTowers_SniperIsInstant(t *testing.T) {
	st := testState(8)
	addTower(&st, 3, 0, "TOWER_SNIPER", 1, defs.TargetFirst)
	st.Phase = PhaseInProgress
	addEnemy(&st, "ENEMY_GRUNT", 3, 0)

	st = Tick(st)

	// Хитскан разрешается в тот же тик: снаряд не переживает тик.
	if len(st.Projectiles) != 0 {
		t.Fatalf("instant projectile survived the tick")
	}
	def := defs.EnemyLibrary["ENEMY_GRUNT"]
	wantHP := def.Health - defs.TowerLibrary["TOWER_SNIPER"].Levels[0].Damage
	if st.Enemies[0].HP != wantHP {
		t.Errorf("HP = %d, want %d", st.Enemies[0].HP, wantHP)
	}
}

func TestSelectTarget_FirstPrefersFurthestAlongPath(t *testing.T) {
	st := testState(10)
	st.Phase = PhaseInProgress
	addTower(&st, 2, 0, "TOWER_SNIPER", 1, defs.TargetFirst) // большой радиус покрывает обоих
	near := addEnemy(&st, "ENEMY_GRUNT", 1, 0.5)
	far := addEnemy(&st, "ENEMY_GRUNT", 5, 0.5)
	_, _ = near, far

	st = Tick(st)

	// Дальний по пути (ближе к базе) должен получить урон.
	if st.Enemies[1].HP == st.Enemies[1].MaxHP {
		t.Errorf("first-mode tower ignored the enemy furthest along the path")
	}
	if st.Enemies[0].HP != st.Enemies[0].MaxHP {
		t.Errorf("first-mode tower hit the trailing enemy")
	}
}

func TestSelectTarget_ClosestPrefersNearest(t *testing.T) {
	st := testState(10)
	st.Phase = PhaseInProgress
	addTower(&st, 2, 0, "TOWER_SNIPER", 1, defs.TargetClosest)
	addEnemy(&st, "ENEMY_GRUNT", 1, 0.5) // ближе к башне
	addEnemy(&st, "ENEMY_GRUNT", 5, 0.5)

	st = Tick(st)

	if st.Enemies[0].HP == st.Enemies[0].MaxHP {
		t.Errorf("closest-mode tower ignored the nearest enemy")
	}
	if st.Enemies[1].HP != st.Enemies[1].MaxHP {
		t.Errorf("closest-mode tower hit the distant enemy")
	}
}

func TestSelectTarget_GroundOnlyTowerSkipsFlying(t *testing.T) {
	st := testState(8)
	st.Phase = PhaseInProgress
	addTower(&st, 3, 0, "TOWER_CANNON", 1, defs.TargetFirst)
	addEnemy(&st, "ENEMY_WASP", 3, 0)

	st = Tick(st)

	if len(st.Projectiles) != 0 {
		t.Errorf("cannon targeted a flying enemy")
	}
}

func TestSelectTarget_OutOfRangeIgnored(t *testing.T) {
	st := testState(12)
	st.Phase = PhaseInProgress
	addTower(&st, 0, 0, "TOWER_FROST", 1, defs.TargetFirst) // range 2.2
	addEnemy(&st, "ENEMY_GRUNT", 9, 0)

	st = Tick(st)

	if len(st.Projectiles) != 0 {
		t.Errorf("tower fired beyond its range")
	}
}
