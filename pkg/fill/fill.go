// Package fill assigns one parameter value to every cell of a grid that
// matches a geometric region.
//
// Every operation validates its geometry arguments, then resolves the
// parameter and checks the value once before any cell is visited, so a
// rejected call leaves the grid untouched. Writes go through Cell.SetValue.
// Operations return the number of cells written.
package fill

import (
	"fmt"

	"mapforge/pkg/core"
)

// FillRegion writes v to every cell of g matched by region.
func FillRegion(g core.Grid, name string, v core.Value, region Region) (int, error) {
	if err := checkGrid(g); err != nil {
		return 0, err
	}
	if region == nil {
		return 0, fmt.Errorf("fill %q: nil region: %w", name, core.ErrNilArgument)
	}
	if _, err := resolve(g, name, v); err != nil {
		return 0, err
	}
	n := 0
	for c := range g.Cells() {
		if !region(c.Coordinates()) {
			continue
		}
		if err := c.SetValue(name, v); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// FullFill writes v to every cell.
func FullFill(g core.Grid, name string, v core.Value) (int, error) {
	return FillRegion(g, name, v, Full())
}

// FullDefaultFill resets the named parameter to its default on every cell.
func FullDefaultFill(g core.Grid, name string) (int, error) {
	if err := checkGrid(g); err != nil {
		return 0, err
	}
	p, err := lookup(g, name)
	if err != nil {
		return 0, err
	}
	def := p.DefaultValue()
	n := 0
	for c := range g.Cells() {
		if err := c.SetValue(name, def); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// FullDefaultFillAll resets every parameter of every cell to its default.
func FullDefaultFillAll(g core.Grid) (int, error) {
	if err := checkGrid(g); err != nil {
		return 0, err
	}
	defs := g.Definitions()
	n := 0
	for c := range g.Cells() {
		for _, p := range defs {
			if err := c.SetValue(p.Name(), p.DefaultValue()); err != nil {
				return n, err
			}
		}
		n++
	}
	return n, nil
}

// FillCenter writes v to cells within Chebyshev distance extent of the centre.
// A negative extent fails with ErrInvalidGeometry instead of matching nothing.
func FillCenter(g core.Grid, name string, v core.Value, extent int) (int, error) {
	extents, err := extentsOf(g)
	if err != nil {
		return 0, err
	}
	r, err := Center(extents, extent)
	if err != nil {
		return 0, err
	}
	return FillRegion(g, name, v, r)
}

// FillBorder writes v to cells within thickness of any edge.
func FillBorder(g core.Grid, name string, v core.Value, thickness int) (int, error) {
	extents, err := extentsOf(g)
	if err != nil {
		return 0, err
	}
	r, err := Border(extents, thickness)
	if err != nil {
		return 0, err
	}
	return FillRegion(g, name, v, r)
}

// FillInterior writes v to cells at least margin away from every edge.
func FillInterior(g core.Grid, name string, v core.Value, margin int) (int, error) {
	extents, err := extentsOf(g)
	if err != nil {
		return 0, err
	}
	r, err := Interior(extents, margin)
	if err != nil {
		return 0, err
	}
	return FillRegion(g, name, v, r)
}

// FillCorner writes v to the single corner block selected by mask.
func FillCorner(g core.Grid, name string, v core.Value, size int, mask []int) (int, error) {
	extents, err := extentsOf(g)
	if err != nil {
		return 0, err
	}
	r, err := Corner(extents, size, mask)
	if err != nil {
		return 0, err
	}
	return FillRegion(g, name, v, r)
}

// FillCorners writes v to every corner block.
func FillCorners(g core.Grid, name string, v core.Value, size int) (int, error) {
	extents, err := extentsOf(g)
	if err != nil {
		return 0, err
	}
	r, err := Corners(extents, size)
	if err != nil {
		return 0, err
	}
	return FillRegion(g, name, v, r)
}

// FillBand writes v to cells whose axis coordinate lies in [start, start+length).
func FillBand(g core.Grid, name string, v core.Value, axis, start, length int) (int, error) {
	extents, err := extentsOf(g)
	if err != nil {
		return 0, err
	}
	r, err := Band(extents, axis, start, length)
	if err != nil {
		return 0, err
	}
	return FillRegion(g, name, v, r)
}

// FillScatter writes v to a deterministic pseudo-random subset of cells, each
// chosen with probability chance.
func FillScatter(g core.Grid, name string, v core.Value, chance float64, seed int64) (int, error) {
	if err := checkGrid(g); err != nil {
		return 0, err
	}
	r, err := Scatter(chance, seed)
	if err != nil {
		return 0, err
	}
	return FillRegion(g, name, v, r)
}

func checkGrid(g core.Grid) error {
	if g == nil {
		return fmt.Errorf("fill: nil grid: %w", core.ErrNilArgument)
	}
	return nil
}

func lookup(g core.Grid, name string) (core.ParameterDefinition, error) {
	if name == "" {
		return nil, fmt.Errorf("fill: empty parameter name: %w", core.ErrNilArgument)
	}
	p, ok := g.Definitions().Lookup(name)
	if !ok {
		return nil, fmt.Errorf("parameter %q is not defined on map %q: %w", name, g.Name(), core.ErrUnknownParameter)
	}
	return p, nil
}

func resolve(g core.Grid, name string, v core.Value) (core.ParameterDefinition, error) {
	p, err := lookup(g, name)
	if err != nil {
		return nil, err
	}
	if !p.IsValid(v) {
		return nil, fmt.Errorf("value %v for parameter %q: %w", v, name, core.ErrInvalidValue)
	}
	return p, nil
}

func extentsOf(g core.Grid) ([]int, error) {
	if err := checkGrid(g); err != nil {
		return nil, err
	}
	extents := make([]int, g.DimensionCount())
	for axis := range extents {
		n, err := g.Length(axis)
		if err != nil {
			return nil, err
		}
		extents[axis] = n
	}
	return extents, nil
}
