// internal/defs/towers.go
package defs

import "image/color"

// LevelStats holds the combat numbers of one tower level. A tower has
// exactly three levels; level 1 is what a freshly placed tower gets.
type LevelStats struct {
	Damage            int     `yaml:"damage"`
	Range             float64 `yaml:"range"` // tiles
	CooldownTicks     int     `yaml:"cooldown_ticks"`
	ProjectileSpeed   float64 `yaml:"projectile_speed"` // tiles/sec
	SplashRadius      float64 `yaml:"splash_radius"`    // tiles, 0 = single target
	SlowMultiplier    float64 `yaml:"slow_multiplier"`  // 0 = no slow payload
	SlowDurationTicks int     `yaml:"slow_duration_ticks"`
	UpgradeCost       int     `yaml:"upgrade_cost"` // level 1 entry is the build cost
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID            string        `yaml:"id"`
	Name          string        `yaml:"name"`
	TargetsFlying bool          `yaml:"targets_flying"`
	Levels        [3]LevelStats `yaml:"levels"`
	Visuals       Visuals       `yaml:"visuals"`
}

// Cost returns the money needed to place the tower at level 1.
func (d TowerDefinition) Cost() int {
	return d.Levels[0].UpgradeCost
}

// TowerLibrary is the library of all tower definitions, mapped by their ID.
var TowerLibrary map[string]TowerDefinition

func defaultTowers() []TowerDefinition {
	return []TowerDefinition{
		{
			ID:   "TOWER_CANNON",
			Name: "Cannon",
			Levels: [3]LevelStats{
				{Damage: 20, Range: 2.5, CooldownTicks: 14, ProjectileSpeed: 8, SplashRadius: 0.9, UpgradeCost: 50},
				{Damage: 32, Range: 2.8, CooldownTicks: 13, ProjectileSpeed: 8, SplashRadius: 1.0, UpgradeCost: 60},
				{Damage: 50, Range: 3.2, CooldownTicks: 12, ProjectileSpeed: 9, SplashRadius: 1.2, UpgradeCost: 90},
			},
			Visuals: Visuals{Color: color.RGBA{255, 50, 50, 255}, RadiusFactor: 0.34, StrokeWidth: 2},
		},
		{
			ID:            "TOWER_ARROW",
			Name:          "Arrow",
			TargetsFlying: true,
			Levels: [3]LevelStats{
				{Damage: 8, Range: 3.0, CooldownTicks: 8, ProjectileSpeed: 14, UpgradeCost: 40},
				{Damage: 12, Range: 3.4, CooldownTicks: 7, ProjectileSpeed: 14, UpgradeCost: 50},
				{Damage: 18, Range: 3.8, CooldownTicks: 6, ProjectileSpeed: 16, UpgradeCost: 75},
			},
			Visuals: Visuals{Color: color.RGBA{50, 255, 50, 255}, RadiusFactor: 0.3, StrokeWidth: 2},
		},
		{
			ID:            "TOWER_FROST",
			Name:          "Frost",
			TargetsFlying: true,
			Levels: [3]LevelStats{
				{Damage: 4, Range: 2.2, CooldownTicks: 14, ProjectileSpeed: 10, SlowMultiplier: 0.6, SlowDurationTicks: 40, UpgradeCost: 45},
				{Damage: 6, Range: 2.5, CooldownTicks: 13, ProjectileSpeed: 10, SlowMultiplier: 0.5, SlowDurationTicks: 50, UpgradeCost: 55},
				{Damage: 9, Range: 2.8, CooldownTicks: 12, ProjectileSpeed: 11, SlowMultiplier: 0.4, SlowDurationTicks: 60, UpgradeCost: 80},
			},
			Visuals: Visuals{Color: color.RGBA{50, 100, 255, 255}, RadiusFactor: 0.3, StrokeWidth: 2},
		},
		{
			ID:            "TOWER_SNIPER",
			Name:          "Sniper",
			TargetsFlying: true,
			Levels: [3]LevelStats{
				{Damage: 45, Range: 5.0, CooldownTicks: 50, ProjectileSpeed: 1000, UpgradeCost: 70},
				{Damage: 70, Range: 5.5, CooldownTicks: 46, ProjectileSpeed: 1000, UpgradeCost: 85},
				{Damage: 110, Range: 6.0, CooldownTicks: 42, ProjectileSpeed: 1000, UpgradeCost: 120},
			},
			Visuals: Visuals{Color: color.RGBA{180, 50, 230, 255}, RadiusFactor: 0.32, StrokeWidth: 2},
		},
	}
}
