package persistence

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manager handles save/load for population snapshots
type Manager struct {
	basePath string
}

// NewManager creates a manager with the given base directory
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

// FilePath returns the path for a snapshot file
func (m *Manager) FilePath(name string) string {
	return filepath.Join(m.basePath, name+".toml")
}

// Exists checks if a snapshot file exists
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.FilePath(name))
	return err == nil
}

// Save writes a snapshot to disk
func (m *Manager) Save(name string, dto SnapshotDTO) error {
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(dto); err != nil {
		return err
	}

	return os.WriteFile(m.FilePath(name), buf.Bytes(), 0644)
}

// Load reads a snapshot from disk
func (m *Manager) Load(name string) (SnapshotDTO, error) {
	var dto SnapshotDTO

	if _, err := toml.DecodeFile(m.FilePath(name), &dto); err != nil {
		return dto, err
	}

	return dto, nil
}
