package render

import (
	"image/color"

	"mapforge/pkg/core"
)

var (
	lowColor  = color.NRGBA{R: 30, G: 60, B: 140, A: 255}
	highColor = color.NRGBA{R: 235, G: 220, B: 120, A: 255}

	categoryColors = []color.NRGBA{
		{R: 70, G: 52, B: 32, A: 255},
		{R: 40, G: 110, B: 200, A: 255},
		{R: 70, G: 160, B: 80, A: 255},
		{R: 210, G: 190, B: 120, A: 255},
		{R: 130, G: 130, B: 130, A: 255},
		{R: 255, G: 90, B: 40, A: 255},
		{R: 180, G: 180, B: 200, A: 255},
		{R: 40, G: 100, B: 55, A: 255},
	}
)

// Palette returns the colors used to draw a layer. Numeric layers get a
// gradient of the requested number of levels.
func Palette(l *Layer, levels int) []color.RGBA {
	switch {
	case len(l.Labels) > 0:
		out := make([]color.RGBA, len(l.Labels))
		for i := range out {
			out[i] = toRGBA(categoryColors[i%len(categoryColors)])
		}
		return out
	case l.Type == core.ParamTypeBool:
		return []color.RGBA{toRGBA(categoryColors[0]), toRGBA(categoryColors[1])}
	default:
		return Gradient(lowColor, highColor, max(levels, 1))
	}
}

// Gradient blends from lo to hi in n steps.
func Gradient(lo, hi color.NRGBA, n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []color.RGBA{toRGBA(lo)}
	}
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = toRGBA(blendColors(lo, hi, float64(i)/float64(n-1)))
	}
	return out
}

// RGBA renders the layer into a W*H*4 pixel buffer.
func RGBA(l *Layer, palette []color.RGBA) []byte {
	buf := make([]byte, 4*len(l.Values))
	fillPaletteRGBA(buf, l.Indices(len(palette)), palette)
	return buf
}

func toRGBA(c color.NRGBA) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	w := overlayWeight
	inv := 1 - w
	mix := func(a, b uint8) uint8 { return uint8(float64(a)*inv + float64(b)*w + 0.5) }
	return color.NRGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: mix(base.A, overlay.A),
	}
}

// fillPaletteRGBA converts palette indices into RGBA pixels. An empty palette
// clears the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf)
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
