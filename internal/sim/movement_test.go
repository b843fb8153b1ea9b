package sim

import (
	"math"
	"testing"
)

func TestStepEnemies_AdvancesByFixedStep(t *testing.T) {
	st := testState(8)
	st.Phase = PhaseInProgress
	addEnemy(&st, "ENEMY_GRUNT", 0, 0) // 1.2 tiles/sec

	st = Tick(st)

	e := st.Enemies[0]
	want := 1.2 * 0.05
	if math.Abs(e.Progress-want) > 1e-9 || e.PathIndex != 0 {
		t.Errorf("after 1 tick: pathIndex=%d progress=%f, want 0/%f", e.PathIndex, e.Progress, want)
	}
}

func TestStepEnemies_CrossesSegmentBoundary(t *testing.T) {
	st := testState(8)
	st.Phase = PhaseInProgress
	e := addEnemy(&st, "ENEMY_GRUNT", 2, 0.98)
	_ = e

	st = Tick(st)

	got := st.Enemies[0]
	if got.PathIndex != 3 {
		t.Fatalf("pathIndex = %d, want 3", got.PathIndex)
	}
	want := 0.98 + 1.2*0.05 - 1.0
	if math.Abs(got.Progress-want) > 1e-9 {
		t.Errorf("progress = %f, want %f", got.Progress, want)
	}
}

func TestStepEnemies_SlowExpires(t *testing.T) {
	st := testState(8)
	st.Phase = PhaseInProgress
	e := addEnemy(&st, "ENEMY_GRUNT", 0, 0)
	e.SlowMultiplier = 0.5
	e.SlowRemainingTicks = 2

	st = Tick(st)
	if st.Enemies[0].SlowMultiplier != 0.5 || st.Enemies[0].SlowRemainingTicks != 1 {
		t.Fatalf("tick 1: mult=%f ticks=%d", st.Enemies[0].SlowMultiplier, st.Enemies[0].SlowRemainingTicks)
	}

	st = Tick(st)
	if st.Enemies[0].SlowMultiplier != 1.0 || st.Enemies[0].SlowRemainingTicks != 0 {
		t.Fatalf("tick 2: mult=%f ticks=%d, want reset", st.Enemies[0].SlowMultiplier, st.Enemies[0].SlowRemainingTicks)
	}

	// Два тика: один замедленный, один уже нет.
	wantProgress := 1.2*0.5*0.05 + 1.2*0.05
	if math.Abs(st.Enemies[0].Progress-wantProgress) > 1e-9 {
		t.Errorf("progress = %f, want %f", st.Enemies[0].Progress, wantProgress)
	}
}

func TestStepEnemies_LeakCostsLivesAndYieldsNothing(t *testing.T) {
	st := testState(5)
	st.Phase = PhaseInProgress
	addEnemy(&st, "ENEMY_GRUNT", 3, 0.99)
	moneyBefore := st.Money

	st = Tick(st)

	if st.Lives != 19 {
		t.Errorf("Lives = %d, want 19", st.Lives)
	}
	if st.Stats.Leaks != 1 {
		t.Errorf("Stats.Leaks = %d, want 1", st.Stats.Leaks)
	}
	if st.Stats.Kills != 0 {
		t.Errorf("leak counted as kill")
	}
	if st.Money != moneyBefore {
		t.Errorf("leak paid a reward: money %d -> %d", moneyBefore, st.Money)
	}
	if len(st.Enemies) != 0 {
		t.Errorf("leaked enemy not removed")
	}
}

func TestStepEnemies_BossLeaksFiveLives(t *testing.T) {
	st := testState(5)
	st.Phase = PhaseInProgress
	addEnemy(&st, "ENEMY_BOSS", 3, 0.999)

	st = Tick(st)

	if st.Lives != 15 {
		t.Errorf("Lives = %d, want 15", st.Lives)
	}
	if st.Stats.Leaks != 5 {
		t.Errorf("Stats.Leaks = %d, want 5", st.Stats.Leaks)
	}
}

func TestStepEnemies_LivesNeverNegative(t *testing.T) {
	st := testState(5)
	st.Phase = PhaseInProgress
	st.Lives = 2
	addEnemy(&st, "ENEMY_BOSS", 3, 0.999)

	st = Tick(st)

	if st.Lives != 0 {
		t.Errorf("Lives = %d, want 0", st.Lives)
	}
	if st.Phase != PhaseGameOver {
		t.Errorf("Phase = %s, want %s", st.Phase, PhaseGameOver)
	}
	if st.Speed != 0 {
		t.Errorf("Speed = %d, want 0 after game over", st.Speed)
	}
}
