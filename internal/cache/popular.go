// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultPopularKey is the sorted set counting searches per query.
const DefaultPopularKey = "search:popular"

// PopularSearch is one query and how often it was searched.
type PopularSearch struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

// Popular counts search frequency. Queries are folded to lower case so
// "Vue" and "vue" count together.
type Popular struct {
	client redis.Cmdable
	key    string
}

// NewPopular creates an analytics slot under key. An empty key uses
// DefaultPopularKey.
func NewPopular(client redis.Cmdable, key string) *Popular {
	if key == "" {
		key = DefaultPopularKey
	}
	return &Popular{client: client, key: key}
}

// Track counts one search for q.
func (p *Popular) Track(ctx context.Context, q string) error {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	if err := p.client.ZIncrBy(ctx, p.key, 1, q).Err(); err != nil {
		return fmt.Errorf("search analytics track: %w", err)
	}
	return nil
}

// Top returns the n most searched queries, most frequent first.
func (p *Popular) Top(ctx context.Context, n int) ([]PopularSearch, error) {
	if n <= 0 {
		return []PopularSearch{}, nil
	}
	zs, err := p.client.ZRevRangeWithScores(ctx, p.key, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("search analytics top: %w", err)
	}
	out := make([]PopularSearch, 0, len(zs))
	for _, z := range zs {
		member, _ := z.Member.(string)
		out = append(out, PopularSearch{Query: member, Count: int64(z.Score)})
	}
	return out, nil
}
