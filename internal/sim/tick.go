// internal/sim/tick.go
package sim

// Tick advances the simulation by one fixed 50 ms step and returns the new
// snapshot. The input snapshot is never touched, so two runs fed the same
// seed and the same call sequence stay bit-identical. Ticking a finished
// run is a no-op.
func Tick(s State) State {
	if s.Phase == PhaseGameOver {
		return s
	}

	st := s.Clone()
	st.Tick++
	st.advanceSpawns()
	st.stepEnemies()
	st.stepTowers()
	st.stepProjectiles()
	st.settle()
	return st
}
