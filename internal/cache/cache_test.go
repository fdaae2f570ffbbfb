// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a client backed by an in-process miniredis
// server that is torn down with the test.
func testValkeyClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestConnectValkey(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := ConnectValkey(context.Background(), mr.Host(), mr.Port(), "")
	if err != nil {
		t.Fatalf("ConnectValkey: %v", err)
	}
	defer client.Close()

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("ping after connect: %v", err)
	}
}

func TestConnectValkey_BadAddress(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()
	mr.Close()

	if _, err := ConnectValkey(context.Background(), host, port, ""); err == nil {
		t.Fatal("expected error for closed server")
	}
}

func TestHistoryOrderAndDedup(t *testing.T) {
	client, _ := testValkeyClient(t)
	ctx := context.Background()
	h := NewHistory(client, "")

	for _, q := range []string{"vue", "go", "  ", "vue", "rust"} {
		if err := h.Add(ctx, q); err != nil {
			t.Fatalf("Add(%q): %v", q, err)
		}
	}

	got, err := h.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if diff := cmp.Diff([]string{"rust", "vue", "go"}, got); diff != "" {
		t.Errorf("history (-want +got):\n%s", diff)
	}
}

func TestHistoryCap(t *testing.T) {
	client, mr := testValkeyClient(t)
	ctx := context.Background()
	h := NewHistory(client, "history:test")
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	for i := range MaxHistory + 5 {
		if err := h.Add(ctx, fmt.Sprintf("q%02d", i)); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, err := h.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != MaxHistory {
		t.Fatalf("len = %d, want %d", len(got), MaxHistory)
	}
	if got[0] != "q14" || got[MaxHistory-1] != "q05" {
		t.Errorf("history = %v", got)
	}

	members, err := mr.ZMembers("history:test")
	if err != nil {
		t.Fatalf("ZMembers: %v", err)
	}
	if len(members) != MaxHistory {
		t.Errorf("stored members = %d, want trimmed to %d", len(members), MaxHistory)
	}

	if err := h.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got, _ := h.List(ctx); len(got) != 0 {
		t.Errorf("history after clear = %v", got)
	}
}

func TestPopular(t *testing.T) {
	client, _ := testValkeyClient(t)
	ctx := context.Background()
	p := NewPopular(client, "")

	for _, q := range []string{"Vue", "vue ", "go", "VUE", "go", "rust", ""} {
		if err := p.Track(ctx, q); err != nil {
			t.Fatalf("Track(%q): %v", q, err)
		}
	}

	top, err := p.Top(ctx, 2)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	want := []PopularSearch{{Query: "vue", Count: 3}, {Query: "go", Count: 2}}
	if diff := cmp.Diff(want, top); diff != "" {
		t.Errorf("top (-want +got):\n%s", diff)
	}

	if none, _ := p.Top(ctx, 0); len(none) != 0 {
		t.Errorf("Top(0) = %v", none)
	}
}

func TestHistoryUnavailable(t *testing.T) {
	client, mr := testValkeyClient(t)
	mr.Close()

	h := NewHistory(client, "")
	if err := h.Add(context.Background(), "vue"); err == nil {
		t.Error("expected error when the server is gone")
	}
}
