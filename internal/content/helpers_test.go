// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"inkpress/internal/database"
	"inkpress/internal/store"
)

// fakeClock is a settable clock. It does not advance on its own, which
// exercises the strictly increasing updatedAt path.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// newTestService returns a Service over a fresh SQLite store and the clock
// driving it.
func newTestService(t *testing.T) (*Service, *fakeClock) {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "content.db") + "?_busy_timeout=5000"
	h := database.NewHandle(database.DriverSQLite, dsn)
	db, err := h.Open(context.Background())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { h.Close() })

	clock := newFakeClock()
	return NewService(store.New(db), WithClock(clock.Now), WithBcryptCost(bcrypt.MinCost)), clock
}

func ptr[T any](v T) *T { return &v }
