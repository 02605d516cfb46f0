package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SnapshotRepository stores opaque snapshot records by key. Values are the
// JSON the caller hands in; the repository does not inspect them.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a repository over the given connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Get returns the stored value for the key, or (nil, nil) when absent.
func (r *SnapshotRepository) Get(key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot %s: %w", key, err)
	}
	return value, nil
}

// Put inserts or overwrites the value for the key.
func (r *SnapshotRepository) Put(key string, value []byte) error {
	_, err := r.db.Exec(
		`INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("put snapshot %s: %w", key, err)
	}
	return nil
}

// Delete removes the record for the key; deleting an absent key is a no-op.
func (r *SnapshotRepository) Delete(key string) error {
	if _, err := r.db.Exec(`DELETE FROM snapshots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete snapshot %s: %w", key, err)
	}
	return nil
}
