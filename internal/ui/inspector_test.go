package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapforge/pkg/core"
)

func TestDescribe(t *testing.T) {
	t.Parallel()
	height, err := core.NewNumericParameter("Height", 50, core.Between(0, 100))
	require.NoError(t, err)
	temp, err := core.NewNumericParameter("Temp", 0.5, core.AtMost(2.5))
	require.NoError(t, err)
	depth, err := core.NewNumericParameter[int64]("Depth", 3, core.AtLeast[int64](1))
	require.NoError(t, err)
	free, err := core.NewNumericParameter("Free", 0.0, core.Unbounded[float64]())
	require.NoError(t, err)
	biome, err := core.NewStringParameter("Biome", "grass", "grass", "sand")
	require.NoError(t, err)
	label, err := core.NewStringParameter("Label", "")
	require.NoError(t, err)
	water, err := core.NewBoolParameter("IsWater", false)
	require.NoError(t, err)

	assert.Equal(t, "int [0, 100]", Describe(height))
	assert.Equal(t, "float (-inf, 2.5]", Describe(temp))
	assert.Equal(t, "int [1, +inf)", Describe(depth))
	assert.Equal(t, "float", Describe(free))
	assert.Equal(t, "string {grass, sand}", Describe(biome))
	assert.Equal(t, "string", Describe(label))
	assert.Equal(t, "bool", Describe(water))
	assert.Equal(t, "", Describe(nil))
}

func TestInspectorLines(t *testing.T) {
	t.Parallel()
	height, err := core.NewNumericParameter("Height", 50, core.Between(0, 100))
	require.NoError(t, err)
	water, err := core.NewBoolParameter("IsWater", false)
	require.NoError(t, err)
	m, err := core.New2D("Main", 3, 3, core.Definitions{height, water})
	require.NoError(t, err)
	c, err := m.Cell(1, 2)
	require.NoError(t, err)
	require.NoError(t, c.SetValue("IsWater", core.Bool(true)))

	want := []string{
		"Main",
		"cell [1 2]",
		"  Height = 50",
		"    int [0, 100]",
		"> IsWater = 1",
		"    bool",
	}
	if diff := cmp.Diff(want, InspectorLines(m, []int{1, 2}, "IsWater")); diff != "" {
		t.Fatalf("unexpected inspector lines (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{"Main", "no cell selected"}, InspectorLines(m, []int{5, 0}, ""))
	assert.Nil(t, InspectorLines(nil, nil, ""))
}
