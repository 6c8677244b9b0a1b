package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"mapforge/pkg/core"
	"mapforge/pkg/fill"
)

func newTestMap(t *testing.T, extents ...int) *core.Map {
	t.Helper()
	height, err := core.NewNumericParameter("Height", 50, core.Between(0, 100))
	require.NoError(t, err)
	water, err := core.NewBoolParameter("IsWater", false)
	require.NoError(t, err)
	biome, err := core.NewStringParameter("Biome", "grass", "grass", "sand", "rock")
	require.NoError(t, err)
	m, err := core.New("render", extents, core.Definitions{height, water, biome})
	require.NoError(t, err)
	return m
}

func TestFormatCell(t *testing.T) {
	t.Parallel()
	m := newTestMap(t, 2, 2)
	c, err := m.Cell(1, 0)
	require.NoError(t, err)
	require.NoError(t, c.SetValue("IsWater", core.Bool(true)))

	assert.Equal(t, "[50,1] ", FormatCell(c, "Height", "IsWater"))
	assert.Equal(t, "[grass,50,1] ", FormatCell(c))
}

func TestWriteMapRowsFollowY(t *testing.T) {
	t.Parallel()
	m := newTestMap(t, 3, 2)
	_, err := fill.FillBand(m, "IsWater", core.Bool(true), 1, 1, 1)
	require.NoError(t, err)
	_, err = fill.FillBand(m, "Height", core.Int(7), 0, 2, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteMap(&buf, m, "Height", "IsWater"))
	want := "[50,0] [50,0] [7,0] \n" +
		"[50,1] [50,1] [7,1] \n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected map text (-want +got):\n%s", diff)
	}
}

func TestWriteMapRejectsHigherDimensions(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := WriteMap(&buf, newTestMap(t, 2, 2, 2))
	assert.ErrorIs(t, err, core.ErrInvalidGeometry)
	assert.ErrorIs(t, WriteMap(&buf, nil), core.ErrNilArgument)

	require.NoError(t, WriteMap(&buf, newTestMap(t, 3), "IsWater"))
	assert.Equal(t, "[0] [0] [0] \n", buf.String())
}

func TestSampleImageOrder(t *testing.T) {
	t.Parallel()
	m := newTestMap(t, 3, 2)
	c, err := m.Cell(2, 0)
	require.NoError(t, err)
	require.NoError(t, c.SetValue("Height", core.Int(90)))
	c, err = m.Cell(0, 1)
	require.NoError(t, err)
	require.NoError(t, c.SetValue("Biome", core.String("rock")))

	l, err := Sample(m, "Height")
	require.NoError(t, err)
	assert.Equal(t, 3, l.W)
	assert.Equal(t, 2, l.H)
	assert.Equal(t, []float64{50, 50, 90, 50, 50, 50}, l.Values)
	lo, hi := l.Range()
	assert.Equal(t, 50.0, lo)
	assert.Equal(t, 90.0, hi)
	assert.Equal(t, []uint8{0, 0, 3, 0, 0, 0}, l.Indices(4))

	l, err = Sample(m, "Biome")
	require.NoError(t, err)
	assert.Equal(t, []string{"grass", "sand", "rock"}, l.Labels)
	assert.Equal(t, []uint8{0, 0, 0, 2, 0, 0}, l.Indices(len(l.Labels)))

	_, err = Sample(m, "Depth")
	assert.ErrorIs(t, err, core.ErrUnknownParameter)
}

func TestSampleUnrestrictedStringsFirstSeen(t *testing.T) {
	t.Parallel()
	tag, err := core.NewStringParameter("Tag", "b")
	require.NoError(t, err)
	m, err := core.New2D("tags", 2, 1, core.Definitions{tag})
	require.NoError(t, err)
	c, err := m.Cell(1, 0)
	require.NoError(t, err)
	require.NoError(t, c.SetValue("Tag", core.String("a")))

	l, err := Sample(m, "Tag")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, l.Labels)
	assert.Equal(t, []float64{0, 1}, l.Values)
}

func TestRGBA(t *testing.T) {
	t.Parallel()
	m := newTestMap(t, 2, 1)
	c, err := m.Cell(1, 0)
	require.NoError(t, err)
	require.NoError(t, c.SetValue("IsWater", core.Bool(true)))

	l, err := Sample(m, "IsWater")
	require.NoError(t, err)
	pal := Palette(l, 8)
	require.Len(t, pal, 2)

	buf := RGBA(l, pal)
	require.Len(t, buf, 8)
	assert.Equal(t, []byte{pal[0].R, pal[0].G, pal[0].B, pal[0].A}, buf[0:4])
	assert.Equal(t, []byte{pal[1].R, pal[1].G, pal[1].B, pal[1].A}, buf[4:8])

	cleared := RGBA(l, nil)
	assert.Equal(t, make([]byte, 8), cleared)
}

func TestGradientEndpoints(t *testing.T) {
	t.Parallel()
	lo := color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	hi := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	g := Gradient(lo, hi, 3)
	require.Len(t, g, 3)
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 255}, g[0])
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 255}, g[1])
	assert.Equal(t, color.RGBA{R: 200, G: 100, B: 50, A: 255}, g[2])
	assert.Nil(t, Gradient(lo, hi, 0))
}

func TestWriteHeatmapPNG(t *testing.T) {
	t.Parallel()
	m := newTestMap(t, 6, 4)
	_, err := fill.FillInterior(m, "Height", core.Int(80), 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteHeatmap(&buf, m, "Height", 3*vg.Inch))
	assert.True(t, strings.HasPrefix(buf.String(), "\x89PNG"), "output is a PNG")

	// flat layers still render
	buf.Reset()
	require.NoError(t, WriteHeatmap(&buf, m, "IsWater", 2*vg.Inch))
	assert.NotZero(t, buf.Len())

	assert.ErrorIs(t, WriteHeatmap(&buf, newTestMap(t, 2, 2, 2), "Height", vg.Inch), core.ErrInvalidGeometry)
}
