package core

import "maps"

// CellStorage maps parameter names to values. It performs no validation;
// writes are checked by the owning Cell.
type CellStorage struct {
	values map[string]Value
}

// NewCellStorage returns empty storage.
func NewCellStorage() *CellStorage {
	return &CellStorage{values: make(map[string]Value)}
}

// Get returns the stored value for name.
func (s *CellStorage) Get(name string) (Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Set writes v under name unconditionally.
func (s *CellStorage) Set(name string, v Value) { s.values[name] = v }

// HasParameter reports whether name has an entry.
func (s *CellStorage) HasParameter(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Len returns the number of entries.
func (s *CellStorage) Len() int { return len(s.values) }

// InitFromDefaults writes every definition's default, overwriting existing
// entries.
func (s *CellStorage) InitFromDefaults(defs Definitions) {
	for _, p := range defs {
		s.values[p.Name()] = p.DefaultValue()
	}
}

// Snapshot returns a copy of all entries.
func (s *CellStorage) Snapshot() map[string]Value { return maps.Clone(s.values) }
