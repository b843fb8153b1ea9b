// internal/state/game_state.go
package state

import (
	"image/color"
	"time"

	"iso-tower-defense/internal/app"
	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/event"
	"iso-tower-defense/internal/sim"
	"iso-tower-defense/internal/ui"
	"iso-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	renderer      *render.GridRenderer
	indicator     *ui.StateIndicator
	speedButton   *ui.SpeedButton
	waveIndicator *ui.WaveIndicator
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, seed int64) *GameState {
	gameLogic := app.NewGame("run", seed)

	gridColors := &render.GridColors{
		BackgroundColor: config.BackgroundColor,
		EmptyColor:      config.EmptyTileColor,
		PathColor:       config.PathTileColor,
		SpawnColor:      config.SpawnTileColor,
		BaseColor:       config.BaseTileColor,
		GridLineColor:   config.GridLineColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     2,
	}

	renderer := render.NewGridRenderer(
		config.DefaultGridSize, config.DefaultGridSize,
		config.TileSize, config.ScreenWidth, config.ScreenHeight, gridColors,
	)
	renderer.RenderMapImage(gameLogic.State.Grid)

	indicator := ui.NewStateIndicator(
		float32(config.ScreenWidth-config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorRadius),
	)
	speedButton := ui.NewSpeedButton(
		float32(config.ScreenWidth-config.SpeedButtonOffsetX),
		float32(config.SpeedButtonY),
		float32(config.SpeedButtonSize),
		config.SpeedButtonColors,
	)
	waveIndicator := ui.NewWaveIndicator(
		config.ScreenWidth/2, 48,
		render.HUDFace(),
		config.IdleStateColor, config.SpawningStateColor,
	)

	gs := &GameState{
		sm:            sm,
		game:          gameLogic,
		renderer:      renderer,
		indicator:     indicator,
		speedButton:   speedButton,
		waveIndicator: waveIndicator,
		lastClickTime: time.Now(),
	}
	gameLogic.EventDispatcher.Subscribe(event.WaveStarted, gs)
	gameLogic.EventDispatcher.Subscribe(event.WaveEnded, gs)
	return gs
}

func (g *GameState) Enter() {}

// OnEvent мигает индикатором при смене фазы волны.
func (g *GameState) OnEvent(e event.Event) {
	g.indicator.Flash()
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.StartNextWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.game.CycleSpeed()
	}

	// Выбор типа башни
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.game.SelectedTowerID = "TOWER_ARROW"
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.game.SelectedTowerID = "TOWER_CANNON"
	}
	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		g.game.SelectedTowerID = "TOWER_FROST"
	}
	if inpututil.IsKeyJustPressed(ebiten.Key4) {
		g.game.SelectedTowerID = "TOWER_SNIPER"
	}

	g.game.Update(deltaTime)
	g.speedButton.SetState(g.game.State.Speed)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.isClickOnUI(x, y) {
			g.handleUIClick(x, y)
		} else {
			g.handleGameClick(x, y, ebiten.MouseButtonLeft)
		}
		g.lastClickTime = time.Now()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.handleGameClick(x, y, ebiten.MouseButtonRight)
		g.lastClickTime = time.Now()
	}
}

// isClickOnUI проверяет, был ли клик по какому-либо элементу UI
func (g *GameState) isClickOnUI(x, y int) bool {
	mx, my := float32(x), float32(y)
	return g.speedButton.Contains(mx, my) || g.indicator.Contains(mx, my)
}

// handleUIClick обрабатывает клики, которые точно попали в UI
func (g *GameState) handleUIClick(x, y int) {
	mx, my := float32(x), float32(y)
	if g.speedButton.Contains(mx, my) {
		if time.Since(g.speedButton.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
			g.game.CycleSpeed()
		}
		return
	}
	if g.indicator.Contains(mx, my) {
		if time.Since(g.indicator.LastClickTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
			g.game.StartNextWave()
			g.indicator.Flash()
		}
	}
}

func (g *GameState) handleGameClick(x, y int, button ebiten.MouseButton) {
	cell := g.renderer.CellAt(x, y)

	if button == ebiten.MouseButtonRight {
		g.game.SellTower(cell)
		return
	}

	// Shift+клик повышает уровень, Ctrl+клик меняет приоритет цели.
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		g.game.UpgradeTower(cell)
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		g.game.ToggleTargeting(cell)
		return
	}
	g.game.PlaceTower(cell)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.State)

	var stateColor color.Color
	switch g.game.State.Phase {
	case sim.PhaseIdle:
		stateColor = config.IdleStateColor
	case sim.PhaseSpawning:
		stateColor = config.SpawningStateColor
	case sim.PhaseInProgress:
		stateColor = config.ProgressStateColor
	case sim.PhaseComplete:
		stateColor = config.CompleteStateColor
	case sim.PhaseVictory:
		stateColor = config.VictoryStateColor
	default:
		stateColor = config.GameOverStateColor
	}
	g.indicator.Draw(screen, stateColor)
	g.speedButton.Draw(screen)
	g.waveIndicator.Draw(screen, g.game.State.Stats.Wave)
}

func (g *GameState) Exit() {}
