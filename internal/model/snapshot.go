package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mapforge/pkg/core"
)

// Capture copies m into a new snapshot with a fresh ID.
func Capture(m *core.Map) (Snapshot, error) {
	if m == nil {
		return Snapshot{}, fmt.Errorf("capture: nil map: %w", core.ErrNilArgument)
	}
	defs := m.Definitions()
	snap := Snapshot{
		ID:         uuid.NewString(),
		Name:       m.Name(),
		Extents:    m.Extents(),
		Parameters: make([]ParameterRecord, 0, len(defs)),
		Layers:     make([]Layer, 0, len(defs)),
		CreatedAt:  time.Now().UTC(),
	}
	for _, d := range defs {
		rec, err := RecordOf(d)
		if err != nil {
			return Snapshot{}, fmt.Errorf("capture %q: %w", m.Name(), err)
		}
		snap.Parameters = append(snap.Parameters, rec)
		snap.Layers = append(snap.Layers, Layer{Parameter: d.Name(), Values: make([]json.RawMessage, 0, m.CellCount())})
	}
	for c := range m.Cells() {
		for i, d := range defs {
			v, _ := c.Value(d.Name())
			raw, err := EncodeValue(v)
			if err != nil {
				return Snapshot{}, fmt.Errorf("capture %q at %v: %w", m.Name(), c.Coordinates(), err)
			}
			snap.Layers[i].Values = append(snap.Layers[i].Values, raw)
		}
	}
	return snap, nil
}

// Restore rebuilds a map from s. Every stored value is written through
// Cell.SetValue and so re-validated against its definition.
func Restore(s Snapshot) (*core.Map, error) {
	defs, err := Definitions(s.Parameters)
	if err != nil {
		return nil, fmt.Errorf("restore %q: %w", s.Name, err)
	}
	m, err := core.New(s.Name, s.Extents, defs)
	if err != nil {
		return nil, fmt.Errorf("restore %q: %w", s.Name, err)
	}
	for _, layer := range s.Layers {
		d, ok := defs.Lookup(layer.Parameter)
		if !ok {
			return nil, fmt.Errorf("restore %q layer %q: %w", s.Name, layer.Parameter, core.ErrUnknownParameter)
		}
		if len(layer.Values) != m.CellCount() {
			return nil, fmt.Errorf("restore %q layer %q: %d values for %d cells: %w", s.Name, layer.Parameter, len(layer.Values), m.CellCount(), core.ErrInvalidConstruction)
		}
		i := 0
		for c := range m.Cells() {
			v, err := DecodeValue(d.Type(), layer.Values[i])
			if err != nil {
				return nil, fmt.Errorf("restore %q layer %q cell %d: %w", s.Name, layer.Parameter, i, err)
			}
			if err := c.SetValue(layer.Parameter, v); err != nil {
				return nil, fmt.Errorf("restore %q: %w", s.Name, err)
			}
			i++
		}
	}
	return m, nil
}
