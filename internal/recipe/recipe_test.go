package recipe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapforge/pkg/core"
)

func valueAt(t *testing.T, m *core.Map, name string, coords ...int) core.Value {
	t.Helper()
	cell, err := m.Cell(coords...)
	require.NoError(t, err)
	v, ok := cell.Value(name)
	require.True(t, ok)
	return v
}

func TestDemoRecipe(t *testing.T) {
	t.Parallel()
	m, counts, err := Demo().Build()
	require.NoError(t, err)
	assert.Equal(t, []int{13, 13}, m.Extents())
	assert.Equal(t, []int{65, 81}, counts)

	assert.Equal(t, core.Bool(false), valueAt(t, m, "IsWater", 0, 0))
	assert.Equal(t, core.Bool(true), valueAt(t, m, "IsWater", 0, 2))
	assert.Equal(t, core.Bool(true), valueAt(t, m, "IsWater", 12, 6))
	assert.Equal(t, core.Bool(false), valueAt(t, m, "IsWater", 12, 7))

	assert.Equal(t, core.Int(50), valueAt(t, m, "Height", 1, 1))
	assert.Equal(t, core.Int(77), valueAt(t, m, "Height", 2, 2))
	assert.Equal(t, core.Int(77), valueAt(t, m, "Height", 10, 10))
	assert.Equal(t, core.Int(50), valueAt(t, m, "Height", 11, 10))
}

func TestLoadAndBuild(t *testing.T) {
	t.Parallel()
	r, err := Load(filepath.Join("testdata", "island.json"))
	require.NoError(t, err)
	require.Len(t, r.Steps, 5)

	m, counts, err := r.Build()
	require.NoError(t, err)
	assert.Equal(t, []int{35, 35, 9, 9, 28}, counts)
	assert.Equal(t, core.String("ocean"), valueAt(t, m, "Biome", 0, 0))
	assert.Equal(t, core.String("beach"), valueAt(t, m, "Biome", 1, 1))
	assert.Equal(t, core.String("forest"), valueAt(t, m, "Biome", 4, 3))
	assert.Equal(t, core.Int(60), valueAt(t, m, "Height", 5, 2))
	assert.Equal(t, core.Float(1), valueAt(t, m, "Moisture", 8, 6))
	assert.Equal(t, core.Float(0.5), valueAt(t, m, "Moisture", 4, 3))
}

func TestBuildReportsFailingStep(t *testing.T) {
	t.Parallel()
	r, err := Load(filepath.Join("testdata", "bad_step.json"))
	require.NoError(t, err)
	_, _, err = r.Build()
	require.ErrorIs(t, err, core.ErrInvalidValue)
	assert.Contains(t, err.Error(), "step 1 (full)")
}

func TestStepApplyErrors(t *testing.T) {
	t.Parallel()
	m, _, err := Demo().Build()
	require.NoError(t, err)

	_, err = Step{Op: "spiral", Parameter: "Height", Value: "1"}.Apply(m)
	assert.Error(t, err)
	_, err = Step{Op: "full", Parameter: "Depth", Value: "1"}.Apply(m)
	assert.ErrorIs(t, err, core.ErrUnknownParameter)
	_, err = Step{Op: "full", Parameter: "Height", Value: "tall"}.Apply(m)
	assert.ErrorIs(t, err, core.ErrInvalidValue)

	n, err := Step{Op: "default"}.Apply(m)
	require.NoError(t, err)
	assert.Equal(t, 13*13, n)
	assert.Equal(t, core.Int(50), valueAt(t, m, "Height", 6, 6))
}

func TestLoadValidatesFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "recipe.yaml"))
	assert.ErrorContains(t, err, ".json extension")

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	big := filepath.Join(dir, "big.json")
	require.NoError(t, os.WriteFile(big, []byte(strings.Repeat(" ", maxFileSize+1)), 0o644))
	_, err = Load(big)
	assert.ErrorContains(t, err, "too large")

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"name": `), 0o644))
	_, err = Load(broken)
	assert.ErrorContains(t, err, "parse recipe JSON")
}
