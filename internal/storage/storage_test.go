package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mapforge/internal/model"
	"mapforge/pkg/core"
	"mapforge/pkg/fill"
)

func sampleSnapshot(t *testing.T, name string, created time.Time) model.Snapshot {
	t.Helper()
	height, err := core.NewNumericParameter("Height", 50, core.Between(0, 100))
	require.NoError(t, err)
	water, err := core.NewBoolParameter("IsWater", false)
	require.NoError(t, err)

	m, err := core.New2D(name, 5, 3, core.Definitions{height, water})
	require.NoError(t, err)
	_, err = fill.FillBorder(m, "IsWater", core.Bool(true), 1)
	require.NoError(t, err)

	snap, err := model.Capture(m)
	require.NoError(t, err)
	snap.CreatedAt = created
	return snap
}

// exerciseStore runs the Store contract against any backend.
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	first := sampleSnapshot(t, "first", base.Add(time.Minute))
	second := sampleSnapshot(t, "second", base)
	require.NoError(t, store.SaveSnapshot(ctx, first))
	require.NoError(t, store.SaveSnapshot(ctx, second))

	got, ok, err := store.GetSnapshot(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, first.Name, got.Name)
	require.Equal(t, CurrentSchemaVersion, got.SchemaVersion)
	require.Equal(t, CurrentCodecVersion, got.CodecVersion)

	restored, err := model.Restore(got)
	require.NoError(t, err)
	cell, err := restored.Cell(0, 0)
	require.NoError(t, err)
	v, _ := cell.Value("IsWater")
	require.Equal(t, core.Bool(true), v)
	cell, err = restored.Cell(2, 1)
	require.NoError(t, err)
	v, _ = cell.Value("IsWater")
	require.Equal(t, core.Bool(false), v)

	infos, err := store.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	require.Equal(t, second.ID, infos[0].ID, "listing is ordered by creation time")
	require.Equal(t, first.ID, infos[1].ID)
	require.Equal(t, []int{5, 3}, infos[0].Extents)
	require.True(t, infos[0].CreatedAt.Equal(base))

	// saving under an existing id replaces it
	first.Name = "renamed"
	require.NoError(t, store.SaveSnapshot(ctx, first))
	got, ok, err = store.GetSnapshot(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "renamed", got.Name)

	require.NoError(t, store.DeleteSnapshot(ctx, second.ID))
	_, ok, err = store.GetSnapshot(ctx, second.ID)
	require.NoError(t, err)
	require.False(t, ok)

	infos, err = store.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)

	require.Error(t, store.SaveSnapshot(ctx, model.Snapshot{}), "empty id is rejected")
}
