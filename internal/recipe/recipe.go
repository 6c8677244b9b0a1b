// Package recipe describes maps declaratively: a name, extents, parameter
// definitions and an ordered list of fill steps.
package recipe

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mapforge/internal/model"
	"mapforge/pkg/core"
	"mapforge/pkg/fill"
)

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Recipe is the JSON form of a map build.
type Recipe struct {
	Name       string                  `json:"name"`
	Extents    []int                   `json:"extents"`
	Parameters []model.ParameterRecord `json:"parameters"`
	Steps      []Step                  `json:"steps"`
}

// Step applies one registered fill operation. Value is parsed according to
// the parameter's type; ops that compute their own values ignore it.
type Step struct {
	Op        string            `json:"op"`
	Parameter string            `json:"parameter,omitempty"`
	Value     string            `json:"value,omitempty"`
	Args      map[string]string `json:"args,omitempty"`
}

// Load reads and decodes a recipe file.
func Load(path string) (*Recipe, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("recipe file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat recipe file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("recipe file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}

	var r Recipe
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse recipe JSON: %w", err)
	}
	return &r, nil
}

// Build constructs the map and runs every step in order. The returned slice
// holds the number of cells each step modified.
func (r *Recipe) Build() (*core.Map, []int, error) {
	defs, err := model.Definitions(r.Parameters)
	if err != nil {
		return nil, nil, err
	}
	m, err := core.New(r.Name, r.Extents, defs)
	if err != nil {
		return nil, nil, err
	}

	counts := make([]int, 0, len(r.Steps))
	for i, step := range r.Steps {
		n, err := step.Apply(m)
		if err != nil {
			return nil, nil, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		counts = append(counts, n)
	}
	return m, counts, nil
}

// Apply runs the step against g.
func (s Step) Apply(g core.Grid) (int, error) {
	op, ok := fill.Lookup(s.Op)
	if !ok {
		return 0, fmt.Errorf("unknown fill op %q", s.Op)
	}

	var v core.Value
	if fill.TakesValue(s.Op) {
		def, ok := g.Definitions().Lookup(s.Parameter)
		if !ok {
			return 0, fmt.Errorf("parameter %q is not defined on map %q: %w", s.Parameter, g.Name(), core.ErrUnknownParameter)
		}
		parsed, err := core.ParseValue(def.Type(), s.Value)
		if err != nil {
			return 0, err
		}
		v = parsed
	}
	return op(g, s.Parameter, v, s.Args)
}

// Demo is the sandbox map: a 13x13 grid with a water band across rows 2..6
// and a raised interior.
func Demo() *Recipe {
	return &Recipe{
		Name:    "Main",
		Extents: []int{13, 13},
		Parameters: []model.ParameterRecord{
			{Name: "Height", Type: "int", Default: json.RawMessage(`50`), Min: json.RawMessage(`0`), Max: json.RawMessage(`100`)},
			{Name: "IsWater", Type: "bool", Default: json.RawMessage(`false`)},
		},
		Steps: []Step{
			{Op: "band", Parameter: "IsWater", Value: "true", Args: map[string]string{"axis": "1", "start": "2", "length": "5"}},
			{Op: "interior", Parameter: "Height", Value: "77", Args: map[string]string{"margin": "2"}},
		},
	}
}
