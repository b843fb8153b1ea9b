// pkg/render/grid_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/internal/sim"
	"iso-tower-defense/pkg/gridmap"
	"iso-tower-defense/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUDFace returns the bitmap face the HUD and indicators share.
func HUDFace() font.Face {
	return basicfont.Face7x13
}

// GridRenderer draws the playfield: a pre-rendered tile background plus
// the towers, enemies and projectiles of the current snapshot.
type GridRenderer struct {
	gridWidth    int
	gridHeight   int
	tileSize     float64
	offsetX      float64
	offsetY      float64
	screenWidth  int
	screenHeight int
	colors       *GridColors
	fontFace     font.Face
	mapImage     *ebiten.Image // Поле для предрендеренной карты
}

func NewGridRenderer(gridWidth, gridHeight int, tileSize float64, screenWidth, screenHeight int, colors *GridColors) *GridRenderer {
	return &GridRenderer{
		gridWidth:    gridWidth,
		gridHeight:   gridHeight,
		tileSize:     tileSize,
		offsetX:      (float64(screenWidth) - float64(gridWidth)*tileSize) / 2,
		offsetY:      (float64(screenHeight) - float64(gridHeight)*tileSize) / 2,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       colors,
		fontFace:     basicfont.Face7x13,
	}
}

// ToScreen converts tile-unit coordinates into screen pixels.
func (r *GridRenderer) ToScreen(x, y float64) (float32, float32) {
	return float32(r.offsetX + x*r.tileSize), float32(r.offsetY + y*r.tileSize)
}

// CellAt converts a screen position into the grid cell under it.
func (r *GridRenderer) CellAt(mx, my int) gridmap.Cell {
	return gridmap.Cell{
		X: int(math.Floor((float64(mx) - r.offsetX) / r.tileSize)),
		Y: int(math.Floor((float64(my) - r.offsetY) / r.tileSize)),
	}
}

// RenderMapImage pre-renders the static tiles once; the background never
// changes during a run.
func (r *GridRenderer) RenderMapImage(grid [][]sim.Tile) {
	r.mapImage = ebiten.NewImage(r.screenWidth, r.screenHeight)
	r.mapImage.Fill(r.colors.BackgroundColor)

	for y := range grid {
		for x := range grid[y] {
			var clr color.RGBA
			switch grid[y][x].Kind {
			case sim.TilePath:
				clr = r.colors.PathColor
			case sim.TileSpawn:
				clr = r.colors.SpawnColor
			case sim.TileBase:
				clr = r.colors.BaseColor
			default:
				clr = r.colors.EmptyColor
			}
			px, py := r.ToScreen(float64(x), float64(y))
			size := float32(r.tileSize)
			vector.DrawFilledRect(r.mapImage, px, py, size, size, clr, false)
			vector.StrokeRect(r.mapImage, px, py, size, size, 1, r.colors.GridLineColor, false)
		}
	}
}

// Draw renders one snapshot.
func (r *GridRenderer) Draw(screen *ebiten.Image, st sim.State) {
	if r.mapImage == nil {
		r.RenderMapImage(st.Grid)
	}
	screen.DrawImage(r.mapImage, nil)

	r.drawTowers(screen, st)
	r.drawEnemies(screen, st)
	r.drawProjectiles(screen, st)
	r.drawHUD(screen, st)
}

func (r *GridRenderer) drawTowers(screen *ebiten.Image, st sim.State) {
	for y := range st.Grid {
		for x := range st.Grid[y] {
			tower := st.Grid[y][x].Tower
			if tower == nil {
				continue
			}
			def, ok := defs.TowerLibrary[tower.DefID]
			if !ok {
				continue
			}
			cx, cy := st.Grid[y][x].Pos.Center()
			px, py := r.ToScreen(cx, cy)
			radius := float32(r.tileSize * def.Visuals.RadiusFactor)

			vector.DrawFilledCircle(screen, px, py, radius, def.Visuals.Color, true)
			vector.StrokeCircle(screen, px, py, radius, float32(def.Visuals.StrokeWidth), config.TowerStrokeColor, true)
			// Кольца уровней
			for lvl := 1; lvl < tower.Level; lvl++ {
				vector.StrokeCircle(screen, px, py, radius+float32(lvl)*3, 1, config.TowerStrokeColor, true)
			}
		}
	}
}

func (r *GridRenderer) drawEnemies(screen *ebiten.Image, st sim.State) {
	for i := range st.Enemies {
		e := &st.Enemies[i]
		if e.HP <= 0 {
			continue
		}
		def, ok := defs.EnemyLibrary[e.DefID]
		if !ok {
			continue
		}
		ex, ey := e.Position(st.Path)
		px, py := r.ToScreen(ex, ey)

		// Радиус сжимается по мере потери здоровья.
		hpFrac := utils.Clamp(float64(e.HP)/float64(e.MaxHP), 0, 1)
		radius := float32((0.6 + 0.4*hpFrac) * r.tileSize * def.Visuals.RadiusFactor)

		clr := def.Visuals.Color
		if e.SlowRemainingTicks > 0 {
			clr = DarkenColor(clr)
		}
		vector.DrawFilledCircle(screen, px, py, radius, clr, true)
		if def.Visuals.StrokeWidth > 0 {
			vector.StrokeCircle(screen, px, py, radius, float32(def.Visuals.StrokeWidth), config.EnemyStrokeColor, true)
		}
	}
}

func (r *GridRenderer) drawProjectiles(screen *ebiten.Image, st sim.State) {
	for i := range st.Projectiles {
		p := &st.Projectiles[i]
		px, py := r.ToScreen(p.X, p.Y)
		vector.DrawFilledCircle(screen, px, py, 4, config.TextLightColor, true)
	}
}

func (r *GridRenderer) drawHUD(screen *ebiten.Image, st sim.State) {
	hud := fmt.Sprintf("$%d  lives %d  wave %d  kills %d  leaks %d",
		st.Money, st.Lives, st.Stats.Wave, st.Stats.Kills, st.Stats.Leaks)
	text.Draw(screen, hud, r.fontFace, 12, 20, r.colors.TextLightColor)

	switch st.Phase {
	case sim.PhaseVictory:
		text.Draw(screen, "VICTORY", r.fontFace, r.screenWidth/2-28, 24, config.VictoryStateColor)
	case sim.PhaseGameOver:
		text.Draw(screen, "GAME OVER", r.fontFace, r.screenWidth/2-32, 24, config.GameOverStateColor)
	}
}
