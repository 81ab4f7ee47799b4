package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/taskbook/internal/model"
)

// SQLiteStore implements the Store interface using a local SQLite database.
// Each item is kept as its JSON record, keyed by id.
type SQLiteStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// itemRow is one row of the items or archive table.
type itemRow struct {
	ID   int    `db:"id"`
	Data string `db:"data"`
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// A single connection keeps ":memory:" databases shared across queries.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db, now: time.Now}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// SchemaVersion returns the highest applied migration.
func (s *SQLiteStore) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	if err := s.db.GetContext(ctx, &v, "SELECT COALESCE(MAX(version), 0) FROM schema_version"); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

// Read returns all active items.
func (s *SQLiteStore) Read(ctx context.Context) (model.Items, error) {
	items, err := s.readTable(ctx, "SELECT id, data FROM items ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("reading storage: %w", err)
	}
	return items, nil
}

// ReadArchive returns all archived items.
func (s *SQLiteStore) ReadArchive(ctx context.Context) (model.Items, error) {
	items, err := s.readTable(ctx, "SELECT id, data FROM archive ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}
	return items, nil
}

func (s *SQLiteStore) readTable(ctx context.Context, query string) (model.Items, error) {
	var rows []itemRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	items := make(model.Items, len(rows))
	for _, r := range rows {
		var item model.Item
		if err := json.Unmarshal([]byte(r.Data), &item); err != nil {
			return nil, fmt.Errorf("decoding item %d: %w", r.ID, err)
		}
		item.ID = r.ID
		items[r.ID] = &item
	}
	return items, nil
}

// Write replaces the active items with the given snapshot.
func (s *SQLiteStore) Write(ctx context.Context, items model.Items) error {
	const upsert = `
		INSERT INTO items (id, data) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data`

	if err := s.writeTable(ctx, "items", upsert, items, nil); err != nil {
		return fmt.Errorf("writing storage: %w", err)
	}
	return nil
}

// WriteArchive replaces the archive with the given snapshot. Rows whose
// record is unchanged keep their archived_at stamp.
func (s *SQLiteStore) WriteArchive(ctx context.Context, items model.Items) error {
	const upsert = `
		INSERT INTO archive (id, data, archived_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			data = excluded.data,
			archived_at = CASE WHEN archive.data = excluded.data
				THEN archive.archived_at ELSE excluded.archived_at END`

	stamp := s.now().UTC().Format(time.RFC3339)
	if err := s.writeTable(ctx, "archive", upsert, items, []interface{}{stamp}); err != nil {
		return fmt.Errorf("writing archive: %w", err)
	}
	return nil
}

// writeTable upserts every item and drops rows missing from the snapshot,
// all in one transaction. table is never user input.
func (s *SQLiteStore) writeTable(
	ctx context.Context,
	table, upsert string,
	items model.Items,
	extra []interface{},
) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if len(items) == 0 {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
		return tx.Commit()
	}

	query, args, err := sqlx.In("DELETE FROM "+table+" WHERE id NOT IN (?)", items.IDs())
	if err != nil {
		return fmt.Errorf("building delete for %s: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return fmt.Errorf("pruning %s: %w", table, err)
	}

	stmt, err := tx.PreparexContext(ctx, upsert)
	if err != nil {
		return fmt.Errorf("preparing upsert statement: %w", err)
	}
	defer stmt.Close()

	for _, id := range items.IDs() {
		data, err := json.Marshal(items[id])
		if err != nil {
			return fmt.Errorf("encoding item %d: %w", id, err)
		}
		args := append([]interface{}{id, string(data)}, extra...)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("upserting item %d: %w", id, err)
		}
	}

	return tx.Commit()
}
