package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nhle/taskbook/internal/model"
)

// SQLiteFile is the database file name used by the sqlite backend.
const SQLiteFile = "taskbook.db"

// Open returns the backend selected by cfg.
func Open(cfg *model.AppConfig) (Backend, error) {
	dir := cfg.TaskbookDir()

	switch cfg.Storage.Backend {
	case model.BackendSQLite:
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
		return NewSQLiteStore(filepath.Join(dir, SQLiteFile))
	case model.BackendJSON, "":
		var opts []JSONOption
		if cfg.Storage.Validate {
			v, err := NewValidator()
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithValidator(v))
		}
		return NewJSONStore(dir, opts...)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
