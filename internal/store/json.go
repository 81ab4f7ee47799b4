package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/nhle/taskbook/internal/model"
)

// JSONStore keeps the active items and the archive in two JSON files
// under a taskbook directory:
//
//	<dir>/storage/storage.json
//	<dir>/archive/archive.json
//	<dir>/.temp/            scratch space for atomic writes
type JSONStore struct {
	storageFile string
	archiveFile string
	tempDir     string
	validator   *Validator
}

// JSONOption configures a JSONStore.
type JSONOption func(*JSONStore)

// WithValidator checks every file read against the storage schema.
func WithValidator(v *Validator) JSONOption {
	return func(s *JSONStore) { s.validator = v }
}

// NewJSONStore creates the directory layout under dir if needed.
func NewJSONStore(dir string, opts ...JSONOption) (*JSONStore, error) {
	storage, archive := JSONFiles(dir)
	s := &JSONStore{
		storageFile: storage,
		archiveFile: archive,
		tempDir:     filepath.Join(dir, ".temp"),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, d := range []string{filepath.Dir(s.storageFile), filepath.Dir(s.archiveFile), s.tempDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", d, err)
		}
	}
	return s, nil
}

// Close is a no-op; it lets JSONStore satisfy Backend.
func (s *JSONStore) Close() error { return nil }

// JSONFiles returns the storage and archive file paths under dir.
func JSONFiles(dir string) (storage, archive string) {
	return filepath.Join(dir, "storage", "storage.json"), filepath.Join(dir, "archive", "archive.json")
}

// Read returns the active items. A missing file is an empty store.
func (s *JSONStore) Read(ctx context.Context) (model.Items, error) {
	items, err := s.readFile(ctx, s.storageFile)
	if err != nil {
		return nil, fmt.Errorf("reading storage: %w", err)
	}
	return items, nil
}

// ReadArchive returns the archived items. A missing file is an empty archive.
func (s *JSONStore) ReadArchive(ctx context.Context) (model.Items, error) {
	items, err := s.readFile(ctx, s.archiveFile)
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}
	return items, nil
}

// Write replaces the storage file with items.
func (s *JSONStore) Write(ctx context.Context, items model.Items) error {
	if err := s.writeFile(ctx, s.storageFile, items); err != nil {
		return fmt.Errorf("writing storage: %w", err)
	}
	return nil
}

// WriteArchive replaces the archive file with items.
func (s *JSONStore) WriteArchive(ctx context.Context, items model.Items) error {
	if err := s.writeFile(ctx, s.archiveFile, items); err != nil {
		return fmt.Errorf("writing archive: %w", err)
	}
	return nil
}

func (s *JSONStore) readFile(ctx context.Context, path string) (model.Items, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Items{}, nil
	}
	if err != nil {
		return nil, err
	}

	if s.validator != nil {
		if err := s.validator.Validate(path, data); err != nil {
			return nil, err
		}
	}

	items := model.Items{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return items, nil
}

// writeFile writes to a uniquely named temp file and renames it over
// path, so readers never observe a partial file.
func (s *JSONStore) writeFile(ctx context.Context, path string, items model.Items) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if items == nil {
		items = model.Items{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}

	tmp := filepath.Join(s.tempDir, uuid.NewString()+".json")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
