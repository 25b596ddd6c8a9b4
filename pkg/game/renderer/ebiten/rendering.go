package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/renderer"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(renderer.ColorMenu)
	if e.engine == nil {
		return
	}
	e.drawMap(screen)
	e.drawHUD(screen)
}

// drawMap draws the viewport window of the board as square tiles
func (e *EbitenRenderer) drawMap(screen *ebiten.Image) {
	g := e.engine.Game
	v := renderer.Camera(g.Player.Position, e.zoom.Size(), g.Grid.Size())
	tile := float32(renderer.TileWidth(e.screenWidth, v.Size))

	v.Each(func(x, y int) {
		col, row := v.ToScreen(x, y)
		px, py := float32(col)*tile, float32(row)*tile

		tag, err := g.Grid.Get(x, y)
		if err != nil {
			tag = world.Wall
		}
		vector.DrawFilledRect(screen, px, py, tile, tile, renderer.ColorFor(renderer.StyleFor(tag)), false)
		if tag != world.Wall {
			vector.StrokeRect(screen, px, py, tile, tile, 1, renderer.ColorGridLine, false)
		}

		if g.Player.X == x && g.Player.Y == y {
			vector.DrawFilledCircle(screen, px+tile/2, py+tile/2, tile/3, renderer.ColorPlayer, true)
		}
	})
}

// drawHUD draws the menu strip under the map
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image) {
	hud := renderer.BuildHUD(e.engine.Game)
	top := e.screenWidth + hudMargin

	ebitenutil.DebugPrintAt(screen, hud.ControlsTitle, hudMargin, top)
	for i, line := range hud.Controls {
		ebitenutil.DebugPrintAt(screen, line, hudMargin, top+(i+1)*hudLineHeight)
	}

	right := e.screenWidth - 240
	ebitenutil.DebugPrintAt(screen, hud.ObjectiveTitle, right, top)
	ebitenutil.DebugPrintAt(screen, hud.Objective, right, top+hudLineHeight)
	ebitenutil.DebugPrintAt(screen, hud.Level, right, top+2*hudLineHeight)
	vector.DrawFilledRect(screen,
		float32(e.screenWidth-swatchSize-hudMargin), float32(top+hudLineHeight),
		swatchSize, swatchSize, hud.Swatch, false)

	// Newest message sits in the middle column
	if n := len(hud.Messages); n > 0 {
		mid := e.screenWidth/2 - 120
		for i, msg := range hud.Messages[max(0, n-4):] {
			ebitenutil.DebugPrintAt(screen, msg, mid, top+i*hudLineHeight)
		}
	}
}
