// Package sqlite persists the asset index in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeusync/assetkit/internal/core/models"
	"github.com/zeusync/assetkit/internal/core/storage/index"
	"github.com/zeusync/assetkit/internal/core/storage/interfaces"
	_ "modernc.org/sqlite"
)

var (
	_ interfaces.IndexStore = (*Store)(nil)
	_ interfaces.Closer     = (*Store)(nil)
)

// One row per persisted record. The (section, name) key mirrors the JSON
// format, where display names are object keys.
const schema = `
CREATE TABLE IF NOT EXISTS asset_index (
	section  TEXT    NOT NULL,
	name     TEXT    NOT NULL,
	uuid     INTEGER NOT NULL,
	filepath TEXT    NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (section, name)
);`

// Store keeps the asset index in the asset_index table.
type Store struct {
	path  string
	sqlDB *sql.DB
}

// Open opens or creates the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err = sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{path: cleanPath, sqlDB: sqlDB}, nil
}

func (s *Store) Location() string { return s.path }

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Load returns ErrIndexNotFound while the table is empty.
func (s *Store) Load(ctx context.Context) (index.Document, error) {
	var doc index.Document
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT section, name, uuid, filepath FROM asset_index ORDER BY section, position`)
	if err != nil {
		return doc, fmt.Errorf("query asset index: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			section, name, path string
			id                  int64
		)
		if err = rows.Scan(&section, &name, &id, &path); err != nil {
			return doc, fmt.Errorf("scan asset index: %w", err)
		}
		kind := models.ParseKind(section)
		if !kind.Valid() {
			return doc, fmt.Errorf("%w: unknown section %q", index.ErrMalformed, section)
		}
		// uuid is stored as the two's complement of the uint64 value
		doc.Append(kind, index.Record{Name: name, UUID: models.UUID(uint64(id)), Path: path})
	}
	if err = rows.Err(); err != nil {
		return doc, fmt.Errorf("iterate asset index: %w", err)
	}
	if doc.Len() == 0 {
		return doc, fmt.Errorf("%w: %s", interfaces.ErrIndexNotFound, s.path)
	}
	return doc, nil
}

func (s *Store) Save(ctx context.Context, doc index.Document) error {
	doc, _ = doc.Normalize()

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, `DELETE FROM asset_index`); err != nil {
		return fmt.Errorf("clear asset index: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO asset_index (section, name, uuid, filepath, position) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, kind := range models.Kinds {
		for pos, rec := range doc.Section(kind) {
			if _, err = stmt.ExecContext(ctx, kind.Section(), rec.Name, int64(rec.UUID), rec.Path, pos); err != nil {
				return fmt.Errorf("insert %s %q: %w", kind, rec.Name, err)
			}
		}
	}
	return tx.Commit()
}
