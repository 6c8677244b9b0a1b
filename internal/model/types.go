package model

import (
	"encoding/json"
	"time"
)

// VersionedRecord carries the schema and codec versions of a persisted record.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// ParameterRecord is the serialisable form of a parameter definition. Default,
// Min and Max hold JSON scalars interpreted according to Type.
type ParameterRecord struct {
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Default json.RawMessage `json:"default,omitempty"`
	Min     json.RawMessage `json:"min,omitempty"`
	Max     json.RawMessage `json:"max,omitempty"`
	Allowed []string        `json:"allowed,omitempty"`
}

// Layer holds one parameter's values for every cell in row-major order.
type Layer struct {
	Parameter string            `json:"parameter"`
	Values    []json.RawMessage `json:"values"`
}

// Snapshot is a complete, self-describing copy of a map.
type Snapshot struct {
	VersionedRecord
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Extents    []int             `json:"extents"`
	Parameters []ParameterRecord `json:"parameters"`
	Layers     []Layer           `json:"layers"`
	CreatedAt  time.Time         `json:"created_at"`
}

// SnapshotInfo summarises a stored snapshot for listings.
type SnapshotInfo struct {
	ID        string
	Name      string
	Extents   []int
	CreatedAt time.Time
}

// Info returns the listing summary of s.
func (s Snapshot) Info() SnapshotInfo {
	return SnapshotInfo{ID: s.ID, Name: s.Name, Extents: s.Extents, CreatedAt: s.CreatedAt}
}
