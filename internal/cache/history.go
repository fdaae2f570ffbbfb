// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultHistoryKey is the sorted set holding recent searches.
	DefaultHistoryKey = "search:history"

	// MaxHistory is the number of searches kept.
	MaxHistory = 10
)

// History is the recent-search list: de-duplicated by query, most recent
// first, capped at MaxHistory entries. Entries are members of a sorted set
// scored by the time they were last searched.
type History struct {
	client redis.Cmdable
	key    string
	now    func() time.Time

	mu    sync.Mutex
	score int64
}

// NewHistory creates a history slot under key. An empty key uses
// DefaultHistoryKey.
func NewHistory(client redis.Cmdable, key string) *History {
	if key == "" {
		key = DefaultHistoryKey
	}
	return &History{client: client, key: key, now: time.Now}
}

// nextScore returns a microsecond timestamp that never repeats, so two
// searches in the same microsecond still keep their order.
func (h *History) nextScore() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.now().UnixMicro()
	if s <= h.score {
		s = h.score + 1
	}
	h.score = s
	return float64(s)
}

// Add records a search. Repeating a query moves it to the front. Blank
// queries are ignored.
func (h *History) Add(ctx context.Context, q string) error {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}

	_, err := h.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, h.key, redis.Z{Score: h.nextScore(), Member: q})
		pipe.ZRemRangeByRank(ctx, h.key, 0, -(MaxHistory + 1))
		return nil
	})
	if err != nil {
		return fmt.Errorf("search history add: %w", err)
	}
	return nil
}

// List returns the stored searches, most recent first.
func (h *History) List(ctx context.Context) ([]string, error) {
	items, err := h.client.ZRevRange(ctx, h.key, 0, MaxHistory-1).Result()
	if err != nil {
		return nil, fmt.Errorf("search history list: %w", err)
	}
	return items, nil
}

// Clear forgets every stored search.
func (h *History) Clear(ctx context.Context) error {
	if err := h.client.Del(ctx, h.key).Err(); err != nil {
		return fmt.Errorf("search history clear: %w", err)
	}
	return nil
}
