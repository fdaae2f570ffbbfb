// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"inkpress/internal/cache"
	"inkpress/internal/search"
)

// defaultPopularLimit is the number of popular searches returned by default.
const defaultPopularLimit = 10

// searchResponse wraps search hits with the echoed query.
type searchResponse struct {
	Query string       `json:"query"`
	Type  string       `json:"type"`
	Hits  []search.Hit `json:"hits"`
	Total int          `json:"total"`
}

// Search handles GET /search?q=...&type=articles.
func (a *API) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	kind := firstOf(r.URL.Query().Get("type"), search.KindArticles)

	hits, err := a.search.Search(r.Context(), q, kind)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: q, Type: kind, Hits: hits, Total: len(hits)})
}

// Suggestions handles GET /search/suggestions?q=...
func (a *API) Suggestions(w http.ResponseWriter, r *http.Request) {
	items, err := a.search.Suggestions(r.Context(), r.URL.Query().Get("q"))
	respond(w, r, http.StatusOK, items, err)
}

// SearchHistory handles GET /search/history.
func (a *API) SearchHistory(w http.ResponseWriter, r *http.Request) {
	if a.history == nil {
		writeJSON(w, http.StatusOK, []string{})
		return
	}
	items, err := a.history.List(r.Context())
	respond(w, r, http.StatusOK, items, err)
}

// ClearSearchHistory handles DELETE /search/history.
func (a *API) ClearSearchHistory(w http.ResponseWriter, r *http.Request) {
	if a.history != nil {
		if err := a.history.Clear(r.Context()); err != nil {
			writeError(w, r, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// PopularSearches handles GET /search/popular.
func (a *API) PopularSearches(w http.ResponseWriter, r *http.Request) {
	if a.popular == nil {
		writeJSON(w, http.StatusOK, []cache.PopularSearch{})
		return
	}
	limit, err := intQuery(r, "limit", defaultPopularLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	items, err := a.popular.Top(r.Context(), limit)
	respond(w, r, http.StatusOK, items, err)
}
