package core

import (
	"fmt"
	"slices"
)

// Cell is one addressable grid position. Its coordinates are fixed at
// construction; its values change only through SetValue.
type Cell struct {
	coords  []int
	storage *CellStorage
	defs    Definitions
}

func newCell(coords []int, defs Definitions) *Cell {
	s := NewCellStorage()
	s.InitFromDefaults(defs)
	return &Cell{coords: coords, storage: s, defs: defs}
}

// Coordinates returns a copy of the cell's coordinate vector.
func (c *Cell) Coordinates() []int { return slices.Clone(c.coords) }

// Value returns the stored value for the named parameter.
func (c *Cell) Value(name string) (Value, bool) { return c.storage.Get(name) }

// Values returns a copy of every stored value keyed by parameter name.
func (c *Cell) Values() map[string]Value { return c.storage.Snapshot() }

// SetValue validates v against the named definition and stores it. On error
// the cell is left unchanged.
func (c *Cell) SetValue(name string, v Value) error {
	p, ok := c.defs.Lookup(name)
	if !ok {
		return fmt.Errorf("set %q at %v: %w", name, c.coords, ErrUnknownParameter)
	}
	if !p.IsValid(v) {
		return fmt.Errorf("set %q at %v to %v: %w", name, c.coords, v, ErrInvalidValue)
	}
	c.storage.Set(name, v)
	return nil
}
