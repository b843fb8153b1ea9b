// internal/defs/waves.go
package defs

// SpawnGroup описывает одну группу врагов внутри волны.
type SpawnGroup struct {
	EnemyID       string // Идентификатор врага из библиотеки
	Count         int    // Количество врагов в группе
	IntervalTicks int    // Интервал между появлением врагов, в тиках
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Groups []SpawnGroup
}

// FinalWave is the last authored wave; clearing it wins the run. Waves past
// it reuse the last definition with scaled-up counts.
const FinalWave = 20

// WavePatterns определяет последовательность волн в игре.
// Ключ карты - это номер волны.
var WavePatterns = map[int]WaveDefinition{
	1:  {Groups: []SpawnGroup{{EnemyID: "ENEMY_GRUNT", Count: 5, IntervalTicks: 16}}},
	2:  {Groups: []SpawnGroup{{EnemyID: "ENEMY_GRUNT", Count: 8, IntervalTicks: 16}}},
	3:  {Groups: []SpawnGroup{{EnemyID: "ENEMY_GRUNT", Count: 8, IntervalTicks: 14}, {EnemyID: "ENEMY_RUNNER", Count: 3, IntervalTicks: 10}}},
	4:  {Groups: []SpawnGroup{{EnemyID: "ENEMY_RUNNER", Count: 10, IntervalTicks: 10}}},
	5:  {Groups: []SpawnGroup{{EnemyID: "ENEMY_GRUNT", Count: 10, IntervalTicks: 12}, {EnemyID: "ENEMY_TANK", Count: 2, IntervalTicks: 24}}},
	6:  {Groups: []SpawnGroup{{EnemyID: "ENEMY_WASP", Count: 8, IntervalTicks: 12}}},
	7:  {Groups: []SpawnGroup{{EnemyID: "ENEMY_GRUNT", Count: 12, IntervalTicks: 10}, {EnemyID: "ENEMY_RUNNER", Count: 6, IntervalTicks: 8}}},
	8:  {Groups: []SpawnGroup{{EnemyID: "ENEMY_TANK", Count: 5, IntervalTicks: 20}}},
	9:  {Groups: []SpawnGroup{{EnemyID: "ENEMY_WASP", Count: 10, IntervalTicks: 10}, {EnemyID: "ENEMY_RUNNER", Count: 8, IntervalTicks: 8}}},
	10: {Groups: []SpawnGroup{{EnemyID: "ENEMY_BOSS", Count: 1, IntervalTicks: 20}}},
	11: {Groups: []SpawnGroup{{EnemyID: "ENEMY_GRUNT", Count: 16, IntervalTicks: 8}}},
	12: {Groups: []SpawnGroup{{EnemyID: "ENEMY_RUNNER", Count: 14, IntervalTicks: 7}, {EnemyID: "ENEMY_WASP", Count: 6, IntervalTicks: 10}}},
	13: {Groups: []SpawnGroup{{EnemyID: "ENEMY_TANK", Count: 7, IntervalTicks: 18}, {EnemyID: "ENEMY_GRUNT", Count: 10, IntervalTicks: 8}}},
	14: {Groups: []SpawnGroup{{EnemyID: "ENEMY_WASP", Count: 14, IntervalTicks: 8}}},
	15: {Groups: []SpawnGroup{{EnemyID: "ENEMY_BOSS", Count: 1, IntervalTicks: 20}, {EnemyID: "ENEMY_RUNNER", Count: 10, IntervalTicks: 6}}},
	16: {Groups: []SpawnGroup{{EnemyID: "ENEMY_GRUNT", Count: 20, IntervalTicks: 6}, {EnemyID: "ENEMY_TANK", Count: 6, IntervalTicks: 16}}},
	17: {Groups: []SpawnGroup{{EnemyID: "ENEMY_RUNNER", Count: 18, IntervalTicks: 5}}},
	18: {Groups: []SpawnGroup{{EnemyID: "ENEMY_TANK", Count: 9, IntervalTicks: 14}, {EnemyID: "ENEMY_WASP", Count: 10, IntervalTicks: 7}}},
	19: {Groups: []SpawnGroup{{EnemyID: "ENEMY_GRUNT", Count: 24, IntervalTicks: 5}, {EnemyID: "ENEMY_RUNNER", Count: 12, IntervalTicks: 5}}},
	20: {Groups: []SpawnGroup{{EnemyID: "ENEMY_BOSS", Count: 2, IntervalTicks: 60}, {EnemyID: "ENEMY_TANK", Count: 8, IntervalTicks: 12}}},
}
