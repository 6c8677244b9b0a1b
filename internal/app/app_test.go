package app

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapforge/internal/model"
	"mapforge/internal/storage"
	"mapforge/pkg/core"
)

func TestConfigBind(t *testing.T) {
	t.Parallel()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-recipe", "r.json", "-store", "memory", "-scale", "8", "-param", "Height"}))

	assert.Equal(t, "r.json", cfg.Recipe)
	assert.Equal(t, "memory", cfg.Store)
	assert.Equal(t, 8, cfg.Scale)
	assert.Equal(t, "Height", cfg.Param)
	assert.Equal(t, "mapforge.db", cfg.DBPath)
	assert.Equal(t, 30, cfg.TPS)
}

func TestLoadDefaultsToDemo(t *testing.T) {
	t.Parallel()
	m, err := NewConfig().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Main", m.Name())
	assert.Equal(t, []int{13, 13}, m.Extents())
}

func TestLoadRecipe(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "strip.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "Strip",
		"extents": [4],
		"parameters": [{"name": "On", "type": "bool"}],
		"steps": [{"op": "band", "parameter": "On", "value": "true", "args": {"axis": "0", "start": "1", "length": "2"}}]
	}`), 0o644))

	cfg := NewConfig()
	cfg.Recipe = path
	m, err := cfg.Load(context.Background())
	require.NoError(t, err)
	c, err := m.Cell(2)
	require.NoError(t, err)
	v, _ := c.Value("On")
	assert.Equal(t, core.Bool(true), v)
}

func TestLoadSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := NewConfig()
	cfg.Store = "sqlite"
	cfg.DBPath = filepath.Join(t.TempDir(), "maps.db")

	demo, err := NewConfig().Load(ctx)
	require.NoError(t, err)
	snap, err := model.Capture(demo)
	require.NoError(t, err)

	store, err := cfg.OpenStore(ctx)
	require.NoError(t, err)
	require.NoError(t, store.SaveSnapshot(ctx, snap))
	require.NoError(t, storage.CloseIfSupported(store))

	cfg.Snapshot = snap.ID
	m, err := cfg.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, demo.Extents(), m.Extents())

	cfg.Snapshot = "missing"
	_, err = cfg.Load(ctx)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestOpenStoreRejectsUnknownBackend(t *testing.T) {
	t.Parallel()
	cfg := NewConfig()
	cfg.Store = "etcd"
	_, err := cfg.OpenStore(context.Background())
	assert.Error(t, err)
}

func TestNewRejectsMapWithoutParameters(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bare.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Bare", "extents": [3, 2], "parameters": []}`), 0o644))

	cfg := NewConfig()
	cfg.Recipe = path
	m, err := cfg.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, m.Definitions())

	_, err = viewableNames(m)
	assert.ErrorContains(t, err, "no parameters")
	game, err := New(m, "", 1)
	assert.ErrorContains(t, err, "no parameters")
	assert.Nil(t, game)

	_, err = viewableNames(nil)
	assert.ErrorIs(t, err, core.ErrNilArgument)
}

func TestViewableNames(t *testing.T) {
	t.Parallel()
	m, err := NewConfig().Load(context.Background())
	require.NoError(t, err)
	names, err := viewableNames(m)
	require.NoError(t, err)
	assert.Equal(t, m.Definitions().Names(), names)
	assert.NotEmpty(t, names)
}
