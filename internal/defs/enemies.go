// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	Health          int     `yaml:"health"`
	Speed           float64 `yaml:"speed"`            // tiles/sec
	ArmorMultiplier float64 `yaml:"armor_multiplier"` // incoming-damage scalar, 1.0 = no reduction
	Flying          bool    `yaml:"flying"`
	Reward          int     `yaml:"reward"`
	LeakDamage      int     `yaml:"leak_damage"` // lives lost when the enemy reaches the base
	Visuals         Visuals `yaml:"visuals"`
}

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
var EnemyLibrary map[string]EnemyDefinition

func defaultEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{
			ID: "ENEMY_GRUNT", Name: "Grunt",
			Health: 80, Speed: 1.2, ArmorMultiplier: 1.0, Reward: 15, LeakDamage: 1,
			Visuals: Visuals{Color: color.RGBA{120, 160, 90, 255}, RadiusFactor: 0.26, StrokeWidth: 1},
		},
		{
			ID: "ENEMY_RUNNER", Name: "Runner",
			Health: 50, Speed: 2.2, ArmorMultiplier: 1.0, Reward: 12, LeakDamage: 1,
			Visuals: Visuals{Color: color.RGBA{220, 200, 70, 255}, RadiusFactor: 0.2, StrokeWidth: 1},
		},
		{
			ID: "ENEMY_TANK", Name: "Tank",
			Health: 260, Speed: 0.8, ArmorMultiplier: 0.75, Reward: 30, LeakDamage: 1,
			Visuals: Visuals{Color: color.RGBA{110, 110, 130, 255}, RadiusFactor: 0.32, StrokeWidth: 2},
		},
		{
			ID: "ENEMY_WASP", Name: "Wasp",
			Health: 60, Speed: 1.8, ArmorMultiplier: 1.0, Flying: true, Reward: 20, LeakDamage: 1,
			Visuals: Visuals{Color: color.RGBA{230, 140, 40, 255}, RadiusFactor: 0.22, StrokeWidth: 1},
		},
		{
			ID: "ENEMY_BOSS", Name: "Boss",
			Health: 1600, Speed: 0.7, ArmorMultiplier: 0.6, Reward: 200, LeakDamage: 5,
			Visuals: Visuals{Color: color.RGBA{170, 40, 40, 255}, RadiusFactor: 0.42, StrokeWidth: 3},
		},
	}
}
