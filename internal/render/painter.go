//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a sampled layer into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a w*h layer.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit draws the layer scaled by scale. Layers of the wrong size are skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, l *Layer, palette []color.RGBA, scale int) {
	if l == nil || l.W != gp.w || l.H != gp.h {
		return
	}
	gp.img.WritePixels(RGBA(l, palette))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
