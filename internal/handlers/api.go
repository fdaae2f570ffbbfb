// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON HTTP handlers for the inkpress API.
// Handlers are grouped by resource and receive their dependencies through
// the API struct.
package handlers

import (
	"inkpress/internal/cache"
	"inkpress/internal/content"
	"inkpress/internal/search"
)

// API groups all /api/v1 handlers and their dependencies. history and
// popular may be nil when Valkey is not configured.
type API struct {
	svc     *content.Service
	search  *search.Engine
	history *cache.History
	popular *cache.Popular
}

// NewAPI creates the API handler group.
func NewAPI(svc *content.Service, engine *search.Engine, history *cache.History, popular *cache.Popular) *API {
	return &API{
		svc:     svc,
		search:  engine,
		history: history,
		popular: popular,
	}
}
