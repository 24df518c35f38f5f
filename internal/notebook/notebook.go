// Package notebook provides the SQLite-backed note store. One table,
// one row per note, keyed by a unique notename.
package notebook

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS notebook (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	note_name TEXT NOT NULL UNIQUE,
	note      TEXT NOT NULL DEFAULT ''
);
`

// DB wraps a sql.DB with notebook operations.
type DB struct {
	conn   *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the SQLite database and applies the schema.
// The logger receives one event per mutating operation; pass nil to
// discard them.
func Open(dsn string, logger *slog.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("notebook: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("notebook: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("notebook: apply schema: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &DB{conn: conn, logger: logger}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// isUniqueViolation reports whether err is the backend's signal for a
// violated UNIQUE constraint. Callers never see sqlite error codes; the
// classification happens here and surfaces as apperr.NameTaken.
func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
		se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
