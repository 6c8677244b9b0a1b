package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"mapforge/internal/model"
)

// MemoryStore keeps encoded snapshots in process memory.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	snapshots   map[string][]byte
	infos       map[string]model.SnapshotInfo
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.snapshots = make(map[string][]byte)
	s.infos = make(map[string]model.SnapshotInfo)
	return nil
}

func (s *MemoryStore) SaveSnapshot(_ context.Context, snap model.Snapshot) error {
	if snap.ID == "" {
		return errors.New("snapshot id is required")
	}
	payload, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	s.snapshots[snap.ID] = payload
	s.infos[snap.ID] = snap.Info()
	return nil
}

func (s *MemoryStore) GetSnapshot(_ context.Context, id string) (model.Snapshot, bool, error) {
	s.mu.RLock()
	payload, ok := s.snapshots[id]
	s.mu.RUnlock()

	if !ok {
		return model.Snapshot{}, false, nil
	}
	snap, err := DecodeSnapshot(payload)
	if err != nil {
		return model.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *MemoryStore) ListSnapshots(_ context.Context) ([]model.SnapshotInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.SnapshotInfo, 0, len(s.infos))
	for _, info := range s.infos {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) DeleteSnapshot(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.snapshots, id)
	delete(s.infos, id)
	return nil
}
