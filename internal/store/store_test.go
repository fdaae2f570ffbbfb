// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// store_test.go provides a shared test store helper. Every test gets its
// own SQLite file under t.TempDir(), migrated to the current schema.
package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"inkpress/internal/database"
)

// testStore opens a fresh embedded database and binds the collections.
// A cleanup function is registered to close the connection.
func testStore(t *testing.T) *Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "store.db") + "?_busy_timeout=5000"
	h := database.NewHandle(database.DriverSQLite, dsn)
	db, err := h.Open(context.Background())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() { h.Close() })
	return New(db)
}

// ts returns a fixed UTC instant offset by the given number of hours.
func ts(hours int) time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(hours) * time.Hour)
}

func ptr[T any](v T) *T { return &v }
