package core

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Grid is the read/write surface fill operations and front ends work through.
type Grid interface {
	Name() string
	Definitions() Definitions
	DimensionCount() int
	Length(axis int) (int, error)
	Cell(coords ...int) (*Cell, error)
	Cells() iter.Seq[*Cell]
}

// Map is a dense, fixed-shape grid of cells stored in row-major order: axis 0
// is the outermost index.
type Map struct {
	name    string
	extents []int
	strides []int
	defs    Definitions
	cells   []*Cell
}

var _ Grid = (*Map)(nil)

// New allocates a map with one default-initialised cell per coordinate.
func New(name string, extents []int, defs Definitions) (*Map, error) {
	if name == "" {
		return nil, fmt.Errorf("new map: empty name: %w", ErrInvalidConstruction)
	}
	if len(extents) == 0 {
		return nil, fmt.Errorf("new map %q: no extents: %w", name, ErrInvalidConstruction)
	}
	total := 1
	for axis, n := range extents {
		if n <= 0 {
			return nil, fmt.Errorf("new map %q: axis %d length %d must be positive: %w", name, axis, n, ErrInvalidConstruction)
		}
		if n > math.MaxInt/total {
			return nil, fmt.Errorf("new map %q: cell count overflows at axis %d: %w", name, axis, ErrInvalidConstruction)
		}
		total *= n
	}
	if err := defs.Validate(); err != nil {
		return nil, fmt.Errorf("new map %q: %w", name, err)
	}

	m := &Map{
		name:    name,
		extents: slices.Clone(extents),
		strides: make([]int, len(extents)),
		defs:    slices.Clone(defs),
		cells:   make([]*Cell, total),
	}
	stride := 1
	for axis := len(extents) - 1; axis >= 0; axis-- {
		m.strides[axis] = stride
		stride *= extents[axis]
	}
	for i := range m.cells {
		m.cells[i] = newCell(m.coordsOf(i), m.defs)
	}
	return m, nil
}

// New2D allocates a width x height map. Axis 0 is x, axis 1 is y.
func New2D(name string, width, height int, defs Definitions) (*Map, error) {
	return New(name, []int{width, height}, defs)
}

// Name returns the map name.
func (m *Map) Name() string { return m.name }

// Definitions returns the parameter definitions. The slice is a copy; the
// definitions themselves are shared.
func (m *Map) Definitions() Definitions { return slices.Clone(m.defs) }

// DimensionCount returns the number of axes.
func (m *Map) DimensionCount() int { return len(m.extents) }

// Extents returns a copy of the per-axis lengths.
func (m *Map) Extents() []int { return slices.Clone(m.extents) }

// CellCount returns the product of the extents.
func (m *Map) CellCount() int { return len(m.cells) }

// Length returns the extent of axis.
func (m *Map) Length(axis int) (int, error) {
	if axis < 0 || axis >= len(m.extents) {
		return 0, fmt.Errorf("axis %d of %d-dimensional map: %w", axis, len(m.extents), ErrInvalidAxis)
	}
	return m.extents[axis], nil
}

// Cell returns the cell at coords. At least DimensionCount components are
// required; extra trailing components are ignored.
func (m *Map) Cell(coords ...int) (*Cell, error) {
	i, err := m.Index(coords...)
	if err != nil {
		return nil, err
	}
	return m.cells[i], nil
}

// Index returns the row-major slice index for coords.
func (m *Map) Index(coords ...int) (int, error) {
	if len(coords) < len(m.extents) {
		return 0, fmt.Errorf("need %d coordinates, got %v: %w", len(m.extents), coords, ErrOutOfRange)
	}
	idx := 0
	for axis, n := range m.extents {
		c := coords[axis]
		if c < 0 || c >= n {
			return 0, fmt.Errorf("coordinates %v: axis %d index %d not in [0, %d): %w", coords, axis, c, n, ErrOutOfRange)
		}
		idx += c * m.strides[axis]
	}
	return idx, nil
}

// Cells yields every cell once in row-major order.
func (m *Map) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, c := range m.cells {
			if !yield(c) {
				return
			}
		}
	}
}

func (m *Map) coordsOf(i int) []int {
	coords := make([]int, len(m.extents))
	for axis, stride := range m.strides {
		coords[axis] = i / stride
		i %= stride
	}
	return coords
}
