package kvstore

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const createItemsTable = `
CREATE TABLE IF NOT EXISTS kv_items (
	target  TEXT PRIMARY KEY,
	payload BLOB NOT NULL
)`

// SQLiteStore keeps every target as one row of a single sqlite table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens the database at path and creates the items table.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// Single writer; avoids SQLITE_BUSY between pooled connections.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createItemsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv_items: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(target string) (Record, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM kv_items WHERE target = ?`, target).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", target, err)
	}
	return decode(payload)
}

func (s *SQLiteStore) Save(target string, rec Record) error {
	payload, err := encode(rec)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO kv_items (target, payload) VALUES (?, ?)
		ON CONFLICT(target) DO UPDATE SET payload = excluded.payload`,
		target, payload)
	if err != nil {
		return fmt.Errorf("save %s: %w", target, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
