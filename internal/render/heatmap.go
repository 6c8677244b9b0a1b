package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"mapforge/pkg/core"
)

// heatmapLevels is the number of colors in the heat palette.
const heatmapLevels = 16

// layerGrid adapts a Layer to plotter.GridXYZ.
type layerGrid struct{ l *Layer }

func (g layerGrid) Dims() (c, r int)   { return g.l.W, g.l.H }
func (g layerGrid) Z(c, r int) float64 { return g.l.Values[r*g.l.W+c] }
func (g layerGrid) X(c int) float64    { return float64(c) }
func (g layerGrid) Y(r int) float64    { return float64(r) }

// Heatmap plots one parameter of a planar grid.
func Heatmap(g core.Grid, name string) (*plot.Plot, error) {
	l, err := Sample(g, name)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: %s", g.Name(), name)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	hm := plotter.NewHeatMap(layerGrid{l}, palette.Heat(heatmapLevels, 1))
	// a flat layer still needs a non-empty range to pick a color
	if lo, hi := l.Range(); lo == hi {
		hm.Min, hm.Max = lo-0.5, hi+0.5
	}
	p.Add(hm)
	return p, nil
}

// WriteHeatmap renders the heatmap of a parameter as PNG.
func WriteHeatmap(w io.Writer, g core.Grid, name string, size vg.Length) error {
	p, err := Heatmap(g, name)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(size, size, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveHeatmap writes the heatmap of a parameter to path. The format follows
// the file extension.
func SaveHeatmap(path string, g core.Grid, name string, size vg.Length) error {
	p, err := Heatmap(g, name)
	if err != nil {
		return err
	}
	if err := p.Save(size, size, path); err != nil {
		return fmt.Errorf("failed to save heatmap: %w", err)
	}
	return nil
}
