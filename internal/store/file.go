package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cutiplan/internal/domain/planner"
)

// FileStore persists the planner document as a single JSON file. It is
// the default backend and the durable analog of the original
// browser-local storage: full-object read, full-object overwrite.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the stored document. A missing or unparsable file is
// treated as absence and yields the default document.
func (s *FileStore) Load(ctx context.Context) (planner.UserData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("planner data unreadable, using defaults", "path", s.path, "err", err)
		}
		return planner.DefaultUserData(), nil
	}
	return planner.DecodeUserData(raw), nil
}

// Save overwrites the document atomically via a temp-file rename.
func (s *FileStore) Save(ctx context.Context, data planner.UserData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "planner-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
