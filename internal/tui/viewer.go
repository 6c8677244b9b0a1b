// Package tui is a terminal viewer for planar maps.
package tui

import (
	"context"
	"fmt"
	"image/color"
	"slices"

	"github.com/gdamore/tcell/v2"

	"mapforge/internal/render"
	"mapforge/pkg/core"
)

const (
	cellWidth = 2
	levels    = 8
)

// Viewer draws one parameter of a map at a time with a cell inspector on
// the line below the map.
type Viewer struct {
	screen tcell.Screen
	grid   core.Grid
	names  []string

	param            int
	cursorX, cursorY int

	layer   *render.Layer
	palette []color.RGBA
}

// New prepares a viewer for g on an initialised screen.
func New(screen tcell.Screen, g core.Grid) (*Viewer, error) {
	if screen == nil || g == nil {
		return nil, core.ErrNilArgument
	}
	names := g.Definitions().Names()
	if len(names) == 0 {
		return nil, fmt.Errorf("map %q has no parameters to show", g.Name())
	}
	v := &Viewer{screen: screen, grid: g, names: names}
	if err := v.resample(); err != nil {
		return nil, err
	}
	return v, nil
}

// Parameter returns the name of the parameter being shown.
func (v *Viewer) Parameter() string { return v.names[v.param] }

// Select switches to the named parameter and reports whether it exists.
func (v *Viewer) Select(name string) bool {
	i := slices.Index(v.names, name)
	if i < 0 {
		return false
	}
	prev := v.param
	v.param = i
	if err := v.resample(); err != nil {
		v.param = prev
		return false
	}
	return true
}

// Cursor returns the inspected cell position.
func (v *Viewer) Cursor() (int, int) { return v.cursorX, v.cursorY }

func (v *Viewer) resample() error {
	l, err := render.Sample(v.grid, v.Parameter())
	if err != nil {
		return err
	}
	v.layer = l
	v.palette = render.Palette(l, levels)
	return nil
}

// Draw renders the current state and shows it.
func (v *Viewer) Draw() {
	v.screen.Clear()

	indices := v.layer.Indices(len(v.palette))
	for y := 0; y < v.layer.H; y++ {
		for x := 0; x < v.layer.W; x++ {
			col := v.palette[min(int(indices[y*v.layer.W+x]), len(v.palette)-1)]
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B)))
			glyph := ' '
			if x == v.cursorX && y == v.cursorY {
				glyph = '#'
				style = style.Foreground(tcell.ColorWhite)
			}
			for i := 0; i < cellWidth; i++ {
				v.screen.SetContent(x*cellWidth+i, y, glyph, nil, style)
			}
		}
	}

	v.drawText(0, v.layer.H, v.status())
	v.drawText(0, v.layer.H+1, "tab/n next  p prev  arrows/hjkl move  q quit")
	v.screen.Show()
}

func (v *Viewer) status() string {
	line := fmt.Sprintf("%s (%s) %d/%d  x=%d y=%d", v.Parameter(), v.layer.Type, v.param+1, len(v.names), v.cursorX, v.cursorY)
	if c, err := v.cell(); err == nil {
		line += "  " + render.FormatCell(c, v.names...)
	}
	return line
}

func (v *Viewer) cell() (*core.Cell, error) {
	if v.grid.DimensionCount() == 1 {
		return v.grid.Cell(v.cursorX)
	}
	return v.grid.Cell(v.cursorX, v.cursorY)
}

func (v *Viewer) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// handleKey applies a key press and reports whether the viewer should keep
// running.
func (v *Viewer) handleKey(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		v.cycle(1)
	case tcell.KeyBacktab:
		v.cycle(-1)
	case tcell.KeyLeft:
		v.move(-1, 0)
	case tcell.KeyRight:
		v.move(1, 0)
	case tcell.KeyUp:
		v.move(0, -1)
	case tcell.KeyDown:
		v.move(0, 1)
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'n':
			v.cycle(1)
		case 'p':
			v.cycle(-1)
		case 'h':
			v.move(-1, 0)
		case 'l':
			v.move(1, 0)
		case 'k':
			v.move(0, -1)
		case 'j':
			v.move(0, 1)
		}
	}
	return true
}

func (v *Viewer) cycle(delta int) {
	prev, n := v.param, len(v.names)
	v.param = ((v.param+delta)%n + n) % n
	if err := v.resample(); err != nil {
		v.param = prev
	}
}

func (v *Viewer) move(dx, dy int) {
	v.cursorX = max(0, min(v.cursorX+dx, v.layer.W-1))
	v.cursorY = max(0, min(v.cursorY+dy, v.layer.H-1))
}

// Run draws the map and processes input until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.handleKey(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
			v.Draw()
		}
	}
}
