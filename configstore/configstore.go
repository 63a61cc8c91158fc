package configstore

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/pixelrevive/pixelrevive-api/models"
)

// Store persists the full StoreConfig as one JSON document on disk. There is
// no schema versioning: a missing or corrupt document falls back entirely to
// defaults at the call site.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted config. ok is false when the document is missing
// or unparsable; the caller then uses the hardcoded defaults unchanged.
func (s *Store) Load() (models.StoreConfig, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read config document %s: %v", s.path, err)
		}
		return models.StoreConfig{}, false
	}

	var cfg models.StoreConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("⚠️ Corrupt config document %s, falling back to defaults: %v", s.path, err)
		return models.StoreConfig{}, false
	}
	return cfg, true
}

// Save rewrites the whole document. Writes go to a temp file first and are
// renamed into place so a crash mid-write never leaves a truncated document.
func (s *Store) Save(cfg models.StoreConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Path returns the location of the persisted document, used by the nightly
// backup routine.
func (s *Store) Path() string {
	return s.path
}
