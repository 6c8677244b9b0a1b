package render

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"mapforge/pkg/core"
)

// FormatCell renders the named values of a cell as a "[v1,v2] " block.
// Without names every value is printed in name order.
func FormatCell(c *core.Cell, names ...string) string {
	if len(names) == 0 {
		values := c.Values()
		names = make([]string, 0, len(values))
		for name := range values {
			names = append(names, name)
		}
		slices.Sort(names)
	}

	var b strings.Builder
	b.WriteByte('[')
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		v, _ := c.Value(name)
		b.WriteString(core.FormatValue(v))
	}
	b.WriteString("] ")
	return b.String()
}

// WriteMap prints a one or two dimensional grid, one line per row with x
// increasing left to right. Names default to every defined parameter.
func WriteMap(w io.Writer, g core.Grid, names ...string) error {
	width, height, err := planeSize(g)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		names = g.Definitions().Names()
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c, err := planeCell(g, x, y)
			if err != nil {
				return err
			}
			if _, err := bw.WriteString(FormatCell(c, names...)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// planeSize returns the width and height of a grid that can be drawn on a
// plane. One dimensional grids are a single row.
func planeSize(g core.Grid) (int, int, error) {
	if g == nil {
		return 0, 0, core.ErrNilArgument
	}
	switch g.DimensionCount() {
	case 1:
		w, err := g.Length(0)
		return w, 1, err
	case 2:
		w, err := g.Length(0)
		if err != nil {
			return 0, 0, err
		}
		h, err := g.Length(1)
		return w, h, err
	default:
		return 0, 0, fmt.Errorf("cannot draw a %d-dimensional map on a plane: %w", g.DimensionCount(), core.ErrInvalidGeometry)
	}
}

func planeCell(g core.Grid, x, y int) (*core.Cell, error) {
	if g.DimensionCount() == 1 {
		return g.Cell(x)
	}
	return g.Cell(x, y)
}
