package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/webdiary/internal/filex"
	"github.com/dmitrijs2005/webdiary/internal/storage/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// OpenOptions controls Open.
type OpenOptions struct {
	QuotaBytes int64
	ReadOnly   bool
}

// Open opens (creating if needed) the sqlite database at path, migrates it
// and returns a store over it. sqlite serialises writers anyway, so the pool
// is held to a single connection; this also keeps ":memory:" databases and
// per-connection pragmas stable. In read-only mode every write fails with
// ErrSecurity.
func Open(ctx context.Context, path string, o OpenOptions) (*SQLiteStore, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if o.ReadOnly {
		if _, err := db.ExecContext(ctx, `PRAGMA query_only = 1`); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enable read-only mode: %w", err)
		}
	}

	return NewSQLiteStore(db, WithQuota(o.QuotaBytes)), nil
}
