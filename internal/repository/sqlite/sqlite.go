// Package sqlite implements the repository interfaces on SQLite.
//
// SQLite is an embedded database — the whole store is one file next to the
// binary, auto-created on first start. No separate database server to run,
// which fits a single-process backend like this one.
//
// The driver is modernc.org/sqlite, a pure-Go translation of the SQLite C
// code: no CGo, no C compiler, cross-compiles anywhere Go does.
package sqlite

import (
	"database/sql"
	"fmt"

	// Side-effect import: registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and implements both
// repository.UserRepository and repository.ContactRepository.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the database at dbPath and bootstraps the schema.
//
// dbPath examples:
//   - "db.sqlite"  → file-based database (persistent)
//   - ":memory:"   → in-memory database (tests; lost on close)
//
// sql.Open only creates the pool manager; Ping forces a real connection so
// a bad path or permission problem surfaces here, not on the first query.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets reads proceed while a write is in flight — without it
	// SQLite locks the whole file per write, which stalls a web server.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys stay at SQLite's default (off). The contacts.user_id
	// link is declarative only: a contact may reference an owner id that
	// was never created, and inserts must not fail on that.

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: creating schema: %w", err)
	}

	return db, nil
}

// Close closes the connection pool. Always defer this next to New.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the two tables if they don't exist yet.
// CREATE TABLE IF NOT EXISTS is idempotent — safe on every startup.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			username        TEXT NOT NULL UNIQUE,
			password_digest TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS contacts (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			name    TEXT NOT NULL,
			phone   TEXT NOT NULL,
			email   TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (user_id) REFERENCES users (id)
		);
		CREATE INDEX IF NOT EXISTS idx_contacts_user_id ON contacts(user_id);
	`)
	if err != nil {
		return fmt.Errorf("creating contacts table: %w", err)
	}

	return nil
}
