// internal/sim/economy.go
package sim

import "iso-tower-defense/internal/defs"

// settle removes dead enemies, credits rewards for real kills and drives
// the wave state machine. Running out of lives takes priority over any
// completion computed in the same tick.
func (s *State) settle() {
	kept := s.Enemies[:0]
	for i := range s.Enemies {
		e := s.Enemies[i]
		if e.HP > 0 {
			kept = append(kept, e)
			continue
		}
		if !e.Leaked {
			s.Money += e.Reward
			s.Stats.MoneyEarned += e.Reward
			s.Stats.Kills++
		}
	}
	s.Enemies = kept

	if s.Phase.Active() && len(s.SpawnQueue) == 0 && len(s.Enemies) == 0 {
		if s.Stats.Wave >= defs.FinalWave {
			s.Phase = PhaseVictory
			s.Speed = 0
		} else {
			s.Phase = PhaseComplete
		}
	}

	if s.Lives <= 0 {
		s.Phase = PhaseGameOver
		s.Speed = 0
	}
}
