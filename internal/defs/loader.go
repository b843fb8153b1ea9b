// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func init() {
	ResetLibraries()
}

// ResetLibraries repopulates the libraries with the built-in definitions.
func ResetLibraries() {
	TowerLibrary = make(map[string]TowerDefinition)
	for _, def := range defaultTowers() {
		TowerLibrary[def.ID] = def
	}
	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range defaultEnemies() {
		EnemyLibrary[def.ID] = def
	}
}

// LoadTowerDefinitions reads a tower configuration file and replaces the
// matching TowerLibrary entries.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := yaml.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	for _, def := range towerDefs {
		if def.ID == "" {
			return fmt.Errorf("tower definition without id in %s", path)
		}
		TowerLibrary[def.ID] = def
	}
	return nil
}

// LoadEnemyDefinitions reads an enemy configuration file and replaces the
// matching EnemyLibrary entries.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := yaml.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for _, def := range enemyDefs {
		if def.ID == "" {
			return fmt.Errorf("enemy definition without id in %s", path)
		}
		EnemyLibrary[def.ID] = def
	}
	return nil
}
