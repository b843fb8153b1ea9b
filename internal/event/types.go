// internal/event/types.go
package event

const (
	WaveStarted EventType = "WaveStarted" // Волна началась
	WaveEnded   EventType = "WaveEnded"   // Волна закончилась
	EnemyKilled EventType = "EnemyKilled" // Враг уничтожен башней
	EnemyLeaked EventType = "EnemyLeaked" // Враг дошёл до базы
	TowerPlaced EventType = "TowerPlaced" // Башня построена
	TowerSold   EventType = "TowerSold"   // Башня продана
	GameOver    EventType = "GameOver"
	Victory     EventType = "Victory"
)
