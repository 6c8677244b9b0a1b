package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"mapforge/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

// EncodeSnapshot stamps the current versions onto s and marshals it.
func EncodeSnapshot(s model.Snapshot) ([]byte, error) {
	s.SchemaVersion = CurrentSchemaVersion
	s.CodecVersion = CurrentCodecVersion
	return json.Marshal(s)
}

func DecodeSnapshot(data []byte) (model.Snapshot, error) {
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, err
	}
	if err := checkVersion(snap.VersionedRecord); err != nil {
		return model.Snapshot{}, fmt.Errorf("snapshot %s: %w", snap.ID, err)
	}
	return snap, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
