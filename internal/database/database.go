// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package database manages the connection to the embedded record store and
// schema migrations. SQLite is the default embedded engine; PostgreSQL is
// supported through pgx for server deployments. Migrations are embedded at
// compile time and applied with goose, keyed by version number.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Connect opens a connection pool for the given driver and verifies it with
// a ping. SQLite pools are limited to a single connection so that writes
// are serialized inside the process.
func Connect(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	if _, err := dialect(driver); err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("database open: %w", err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
	}

	// Verify the connection is alive.
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping: %w", err)
	}

	slog.Info("database connected", "driver", driver)
	return db, nil
}

// Migrate applies all pending migrations. Running it against an up-to-date
// schema is a no-op.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	provider, err := newProvider(db, driver)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		slog.Info("migration applied", "version", r.Source.Version, "duration", r.Duration.String())
	}
	return nil
}

// SchemaVersion returns the highest applied migration version.
func SchemaVersion(ctx context.Context, db *sql.DB, driver string) (int64, error) {
	provider, err := newProvider(db, driver)
	if err != nil {
		return 0, err
	}
	v, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose version: %w", err)
	}
	return v, nil
}

func newProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	d, err := dialect(driver)
	if err != nil {
		return nil, err
	}
	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migrations fs: %w", err)
	}
	provider, err := goose.NewProvider(d, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return provider, nil
}

func dialect(driver string) (goose.Dialect, error) {
	switch driver {
	case DriverSQLite:
		return goose.DialectSQLite3, nil
	case DriverPostgres:
		return goose.DialectPostgres, nil
	}
	return "", fmt.Errorf("unsupported database driver %q", driver)
}

// Handle owns the process-wide store connection. Open is idempotent: the
// first call connects and migrates, later calls return the same *sql.DB
// until Close is called.
type Handle struct {
	driver string
	dsn    string

	mu sync.Mutex
	db *sql.DB
}

// NewHandle returns an unopened handle for the given driver and DSN.
func NewHandle(driver, dsn string) *Handle {
	return &Handle{driver: driver, dsn: dsn}
}

// Driver returns the database/sql driver name.
func (h *Handle) Driver() string {
	return h.driver
}

// Open returns the live connection, connecting and migrating on first use.
func (h *Handle) Open(ctx context.Context) (*sql.DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db != nil {
		return h.db, nil
	}

	db, err := Connect(ctx, h.driver, h.dsn)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db, h.driver); err != nil {
		db.Close()
		return nil, err
	}

	h.db = db
	return db, nil
}

// Close releases the connection. Closing an unopened or already closed
// handle is a no-op.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db == nil {
		return nil
	}
	err := h.db.Close()
	h.db = nil
	return err
}
