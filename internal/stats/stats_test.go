package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapforge/pkg/core"
	"mapforge/pkg/fill"
)

func demoMap(t *testing.T) *core.Map {
	t.Helper()
	height, err := core.NewNumericParameter("Height", 50, core.Between(0, 100))
	require.NoError(t, err)
	water, err := core.NewBoolParameter("IsWater", false)
	require.NoError(t, err)
	biome, err := core.NewStringParameter("Biome", "grass", "grass", "sand")
	require.NoError(t, err)

	m, err := core.New2D("stats", 4, 4, core.Definitions{height, water, biome})
	require.NoError(t, err)
	_, err = fill.FillInterior(m, "Height", core.Int(90), 1)
	require.NoError(t, err)
	_, err = fill.FillBand(m, "IsWater", core.Bool(true), 1, 0, 1)
	require.NoError(t, err)
	_, err = fill.FillCorners(m, "Biome", core.String("sand"), 1)
	require.NoError(t, err)
	return m
}

func TestSummarizeNumeric(t *testing.T) {
	t.Parallel()
	s, err := Summarize(demoMap(t), "Height")
	require.NoError(t, err)

	assert.Equal(t, 16, s.Count)
	assert.True(t, s.Numeric())
	assert.Nil(t, s.Histogram)
	// 12 cells at 50, 4 at 90
	assert.InDelta(t, 60.0, s.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(300), s.StdDev, 1e-9)
	assert.Equal(t, 50.0, s.Min)
	assert.Equal(t, 90.0, s.Max)
	assert.Equal(t, "Height (int): 16 cells, mean 60, sd 17.32, min 50, max 90", s.String())
}

func TestSummarizeCategorical(t *testing.T) {
	t.Parallel()
	m := demoMap(t)

	water, err := Summarize(m, "IsWater")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"0": 12, "1": 4}, water.Histogram)
	assert.InDelta(t, 0.25, water.Mean, 1e-9)

	biome, err := Summarize(m, "Biome")
	require.NoError(t, err)
	assert.False(t, biome.Numeric())
	assert.Equal(t, map[string]int{"grass": 12, "sand": 4}, biome.Histogram)
	assert.Equal(t, "Biome (string): 16 cells, grass=12, sand=4", biome.String())
}

func TestSummarizeAll(t *testing.T) {
	t.Parallel()
	all, err := SummarizeAll(demoMap(t))
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Height", all[0].Parameter)
	assert.Equal(t, "Biome", all[2].Parameter)
}

func TestSummarizeErrors(t *testing.T) {
	t.Parallel()
	_, err := Summarize(nil, "Height")
	assert.ErrorIs(t, err, core.ErrNilArgument)
	_, err = Summarize(demoMap(t), "Depth")
	assert.ErrorIs(t, err, core.ErrUnknownParameter)
	_, err = SummarizeAll(nil)
	assert.ErrorIs(t, err, core.ErrNilArgument)
}
