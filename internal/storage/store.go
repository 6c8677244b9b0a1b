package storage

import (
	"context"

	"mapforge/internal/model"
)

// Store persists map snapshots.
type Store interface {
	Init(ctx context.Context) error
	SaveSnapshot(ctx context.Context, snap model.Snapshot) error
	GetSnapshot(ctx context.Context, id string) (model.Snapshot, bool, error)
	ListSnapshots(ctx context.Context) ([]model.SnapshotInfo, error)
	DeleteSnapshot(ctx context.Context, id string) error
}
