//go:build ebiten

package app

import (
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mapforge/internal/render"
	"mapforge/internal/ui"
	"mapforge/pkg/core"
)

const (
	hudWidth = 220
	levels   = 16
)

// Game adapts a map to the ebiten.Game interface.
type Game struct {
	grid    core.Grid
	painter *render.GridPainter
	hud     *ui.HUD

	names   []string
	param   int
	layer   *render.Layer
	palette []color.RGBA

	scale  int
	cursor []int
}

// New constructs a Game showing param first, or the first parameter when
// param is empty or unknown.
func New(g core.Grid, param string, scale int) (*Game, error) {
	names, err := viewableNames(g)
	if err != nil {
		return nil, err
	}
	game := &Game{
		grid:   g,
		hud:    ui.NewHUD(g, hudWidth),
		names:  names,
		param:  max(slices.Index(names, param), 0),
		scale:  max(scale, 1),
		cursor: make([]int, g.DimensionCount()),
	}
	if err := game.resample(); err != nil {
		return nil, err
	}
	game.painter = render.NewGridPainter(game.layer.W, game.layer.H)
	return game, nil
}

func (g *Game) resample() error {
	l, err := render.Sample(g.grid, g.names[g.param])
	if err != nil {
		return err
	}
	g.layer = l
	g.palette = render.Palette(l, levels)
	return nil
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.param = (g.param + 1) % len(g.names)
		if err := g.resample(); err != nil {
			return err
		}
	}

	mx, my := ebiten.CursorPosition()
	x, y := mx/g.scale, my/g.scale
	if x >= 0 && x < g.layer.W && y >= 0 && y < g.layer.H {
		g.cursor[0] = x
		if len(g.cursor) > 1 {
			g.cursor[1] = y
		}
	}
	g.hud.Update(g.cursor, g.names[g.param])
	return nil
}

// Draw renders the selected parameter and the inspector panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.layer, g.palette, g.scale)
	g.hud.Draw(screen, g.layer.W*g.scale, g.layer.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layer.W*g.scale + g.hud.Width(), g.layer.H * g.scale
}
