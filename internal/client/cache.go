package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"atelier_crm/internal/domain/entities"
)

// Snapshot is the durable warm-start state of a reconciliation store: every
// tracked project and quote as of the last save.
type Snapshot struct {
	Projects []entities.Project `json:"projects"`
	Quotes   []entities.Quote   `json:"quotes"`
}

// Cache is the device-local durable store backing a reconciliation store. It
// only has to hold one snapshot blob; it is read once at startup and written
// after each applied mutation.
type Cache interface {
	LoadSnapshot() (Snapshot, error)
	SaveSnapshot(Snapshot) error
}

// FileCache stores the snapshot as one JSON file. A missing file is an empty
// snapshot, not an error.
type FileCache struct {
	path string
}

var _ Cache = (*FileCache)(nil)

func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

func (c *FileCache) LoadSnapshot() (Snapshot, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (c *FileCache) SaveSnapshot(snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-save never truncates the snapshot.
	tmp := c.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}
