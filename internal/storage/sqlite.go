package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/webdiary/internal/dbx"
)

// SQLiteStore implements Store on the kv table.
type SQLiteStore struct {
	db    *sql.DB
	quota int64
}

// Option configures a SQLiteStore.
type Option func(*SQLiteStore)

// WithQuota limits the total size of stored keys and values, in bytes.
// A quota of zero or less means unlimited.
func WithQuota(bytes int64) Option {
	return func(s *SQLiteStore) { s.quota = bytes }
}

// NewSQLiteStore returns a store bound to db. The kv table must exist.
func NewSQLiteStore(db *sql.DB, opts ...Option) *SQLiteStore {
	s := &SQLiteStore{db: db}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Get returns the value for key, or (nil, nil) if there is none.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %q: %w", key, classify(err))
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// Set upserts key. When a quota is configured the size check and the write
// happen in one transaction; the value being replaced does not count against
// the quota.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if s.quota > 0 {
			used, err := usedBytes(ctx, tx, key)
			if err != nil {
				return err
			}
			if used+int64(len(key))+int64(len(value)) > s.quota {
				return ErrQuotaExceeded
			}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO kv (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", key, classify(err))
	}
	return nil
}

func usedBytes(ctx context.Context, tx dbx.DBTX, except string) (int64, error) {
	var used int64
	err := tx.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(LENGTH(CAST(key AS BLOB)) + LENGTH(value)), 0)
		FROM kv WHERE key <> ?
	`, except).Scan(&used)
	if err != nil {
		return 0, fmt.Errorf("failed to measure usage: %w", err)
	}
	return used, nil
}

// Delete removes key; absent keys are ignored.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, classify(err))
	}
	return nil
}

// Keys lists all keys in lexical order.
func (s *SQLiteStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate keys: %w", err)
	}
	return keys, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
