// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = true // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "seed for path generation; 0 uses the clock")
	towersFile := flag.String("towers", "", "optional YAML file overriding tower definitions")
	enemiesFile := flag.String("enemies", "", "optional YAML file overriding enemy definitions")
	flag.Parse()

	if *towersFile != "" {
		if err := defs.LoadTowerDefinitions(*towersFile); err != nil {
			log.Fatal(err)
		}
	}
	if *enemiesFile != "" {
		if err := defs.LoadEnemyDefinitions(*enemiesFile); err != nil {
			log.Fatal(err)
		}
	}

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, *seed))
	} else {
		sm.SetState(state.NewMenuState(sm, *seed))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Iso Tower Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
