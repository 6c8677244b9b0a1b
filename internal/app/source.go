package app

import (
	"context"
	"errors"
	"fmt"

	"mapforge/internal/model"
	"mapforge/internal/recipe"
	"mapforge/internal/storage"
	"mapforge/pkg/core"
)

// ErrSnapshotNotFound is returned when the requested snapshot id is not stored.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// OpenStore creates and initialises the configured snapshot store. Callers
// release it with storage.CloseIfSupported.
func (c *Config) OpenStore(ctx context.Context) (storage.Store, error) {
	store, err := storage.NewStore(c.Store, c.DBPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		_ = storage.CloseIfSupported(store)
		return nil, fmt.Errorf("init %s store: %w", c.Store, err)
	}
	return store, nil
}

// Load resolves the map to work on: a stored snapshot when one is named,
// otherwise the recipe file, otherwise the built-in demo recipe.
func (c *Config) Load(ctx context.Context) (*core.Map, error) {
	if c.Snapshot != "" {
		return c.loadSnapshot(ctx)
	}

	r := recipe.Demo()
	if c.Recipe != "" {
		loaded, err := recipe.Load(c.Recipe)
		if err != nil {
			return nil, err
		}
		r = loaded
	}
	m, _, err := r.Build()
	return m, err
}

func (c *Config) loadSnapshot(ctx context.Context) (*core.Map, error) {
	store, err := c.OpenStore(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	snap, ok, err := store.GetSnapshot(ctx, c.Snapshot)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, c.Snapshot)
	}
	return model.Restore(snap)
}
