// Package database persists meditation state in a single sqlite key-value table.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var ErrClosed = errors.New("database is closed")

// Database wraps the sqlite handle.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open connects to the sqlite file at path, creating it and its schema if needed.
func Open(ctx context.Context, path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, wrapErr(EntityStore, "open", 0, err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, wrapErr(EntityStore, "open", 0, err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, wrapErr(EntityStore, "ping", 0, err)
	}
	d := &Database{DB: sqlDB, dbFile: path}
	if err := d.migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the connection. Safe to call on a closed database.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	err := d.DB.Close()
	d.DB = nil
	return err
}

// Path is the backing file.
func (d *Database) Path() string { return d.dbFile }

func (d *Database) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	for _, q := range queries {
		if _, err := d.DB.ExecContext(ctx, q); err != nil {
			return wrapErr(EntityStore, "migrate", 0, err)
		}
	}
	return nil
}

// WithTx runs fn inside a transaction, rolling back on error.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		tx, err := d.DB.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if err := fn(tx); err != nil {
			return rollbackWithLog(tx, err)
		}
		return tx.Commit()
	})
}

func (d *Database) withDBContext(ctx context.Context, fn func(context.Context) error) error {
	if d == nil || d.DB == nil {
		return ErrClosed
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if d == nil || d.DB == nil {
		return zero, ErrClosed
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx)
}
