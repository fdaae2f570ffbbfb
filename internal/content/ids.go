// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"math/rand/v2"
	"sync"
	"time"
)

// IDGenerator issues record identifiers derived from the clock: the
// current Unix millisecond times 1000 plus a random offset below 1000.
// Identifiers issued by one generator are strictly increasing.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewIDGenerator returns a generator reading the given clock.
func NewIDGenerator(now func() time.Time) *IDGenerator {
	return &IDGenerator{now: now}
}

// Next returns a fresh identifier.
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()*1000 + rand.Int64N(1000)
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
