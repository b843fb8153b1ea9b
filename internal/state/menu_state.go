// internal/state/menu_state.go
package state

import (
	"iso-tower-defense/internal/config"
	"iso-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState — состояние меню
type MenuState struct {
	sm   *StateMachine
	seed int64
}

func NewMenuState(sm *StateMachine, seed int64) *MenuState {
	return &MenuState{sm: sm, seed: seed}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.seed))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "ISO TOWER DEFENSE", render.HUDFace(), config.ScreenWidth/2-60, config.ScreenHeight/2-10, config.TextLightColor)
	text.Draw(screen, "press SPACE to start", render.HUDFace(), config.ScreenWidth/2-66, config.ScreenHeight/2+12, config.TextLightColor)
}

func (m *MenuState) Exit() {}
