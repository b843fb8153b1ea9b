// internal/sim/wave.go
package sim

import (
	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
)

// StartWave begins the next wave: it bumps the wave counter, flattens the
// wave definition into the pending spawn queue and enters PhaseSpawning.
// Only legal while idle or between waves; on any other phase the call is a
// no-op and the snapshot is returned unchanged.
func StartWave(s State) State {
	if s.Phase != PhaseIdle && s.Phase != PhaseComplete {
		return s
	}

	st := s.Clone()
	st.Stats.Wave++

	def := waveForNumber(st.Stats.Wave)
	queue := make([]PendingSpawn, 0, 8)
	for _, group := range def.Groups {
		for i := 0; i < group.Count; i++ {
			ticks := group.IntervalTicks
			if len(queue) == 0 {
				// Самый первый враг волны появляется на следующем тике.
				ticks = 1
			}
			queue = append(queue, PendingSpawn{EnemyID: group.EnemyID, TicksUntilSpawn: ticks})
		}
	}
	st.SpawnQueue = queue
	st.Phase = PhaseSpawning
	return st
}

// waveForNumber looks up an authored wave, or synthesizes one past the
// authored set: the last definition with counts multiplied by
// max(1, wave/FinalWave) plus a flat bonus per scale step.
func waveForNumber(number int) defs.WaveDefinition {
	if def, ok := defs.WavePatterns[number]; ok {
		return def
	}

	base := defs.WavePatterns[defs.FinalWave]
	scale := number / defs.FinalWave
	if scale < 1 {
		scale = 1
	}
	groups := make([]defs.SpawnGroup, len(base.Groups))
	for i, g := range base.Groups {
		g.Count = g.Count*scale + config.WaveFallbackCountBonus*(scale-1)
		groups[i] = g
	}
	return defs.WaveDefinition{Groups: groups}
}

// advanceSpawns counts down the head of the queue and spawns due enemies at
// the spawn cell. Draining the queue moves the wave into PhaseInProgress.
func (s *State) advanceSpawns() {
	if !s.Phase.Active() || len(s.SpawnQueue) == 0 {
		return
	}

	s.SpawnQueue[0].TicksUntilSpawn--
	for len(s.SpawnQueue) > 0 && s.SpawnQueue[0].TicksUntilSpawn <= 0 {
		s.spawnEnemy(s.SpawnQueue[0].EnemyID)
		s.SpawnQueue = s.SpawnQueue[1:]
	}
	if len(s.SpawnQueue) == 0 {
		s.Phase = PhaseInProgress
	}
}

func (s *State) spawnEnemy(enemyID string) {
	def, ok := defs.EnemyLibrary[enemyID]
	if !ok {
		// Неизвестный тип — ошибка данных; враг просто не появляется.
		return
	}
	s.Enemies = append(s.Enemies, EnemyInstance{
		ID:              s.AllocID(),
		DefID:           def.ID,
		HP:              def.Health,
		MaxHP:           def.Health,
		Speed:           def.Speed,
		ArmorMultiplier: def.ArmorMultiplier,
		Flying:          def.Flying,
		Reward:          def.Reward,
		LeakDamage:      def.LeakDamage,
		SlowMultiplier:  1.0,
	})
}
