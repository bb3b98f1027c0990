package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// Document is the single persisted object: the full trade collection plus the
// goal configuration. Either field may be absent in a stored document; loading
// tolerates that and fills in the zero value.
type Document struct {
	Trades []Trade `json:"trades"`
	Goals  Goals   `json:"goals"`
}

// Store is the persistence gateway. Persistence is best effort: a failed Save
// is reported but never rolls back the in-memory session.
type Store interface {
	Load() (Document, error)
	Save(Document) error
	Close() error
}

// FileStore persists the document as a single local JSON blob.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the JSON file at path. The file need
// not exist yet; Load on a missing file yields an empty document.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, nil
		}
		return Document{}, fmt.Errorf("read journal: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse journal: %w", err)
	}
	return doc, nil
}

// Save writes the whole document. The write goes to a temp file first and is
// renamed into place so a full disk cannot leave a truncated journal behind.
func (s *FileStore) Save(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal journal: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create journal dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp)
		return saveErr(err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return saveErr(err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// saveErr tags out-of-space failures with ErrStorageFull so the caller can
// tell the user to export before anything is lost.
func saveErr(err error) error {
	if errors.Is(err, syscall.ENOSPC) || errors.Is(err, syscall.EDQUOT) {
		return fmt.Errorf("save journal: %w: %v", ErrStorageFull, err)
	}
	return fmt.Errorf("save journal: %w", err)
}
