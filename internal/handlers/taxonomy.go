// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkpress/internal/models"
)

// respond writes v with status, or the mapped error.
func respond[T any](w http.ResponseWriter, r *http.Request, status int, v T, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, status, v)
}

// createFrom decodes a P from the body and passes it to create.
func createFrom[P, T any](w http.ResponseWriter, r *http.Request, create func(context.Context, P) (*T, error)) {
	var in P
	if !decodeJSON(w, r, &in) {
		return
	}
	v, err := create(r.Context(), in)
	respond(w, r, http.StatusCreated, v, err)
}

// updateFrom decodes a P from the body and applies it to the {id} record.
func updateFrom[P, T any](w http.ResponseWriter, r *http.Request, update func(context.Context, int64, P) (*T, error)) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var p P
	if !decodeJSON(w, r, &p) {
		return
	}
	v, err := update(r.Context(), id, p)
	respond(w, r, http.StatusOK, v, err)
}

// getByID fetches the {id} record.
func getByID[T any](w http.ResponseWriter, r *http.Request, get func(context.Context, int64) (*T, error)) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	v, err := get(r.Context(), id)
	respond(w, r, http.StatusOK, v, err)
}

// deleteByID removes the {id} record and answers 204.
func deleteByID(w http.ResponseWriter, r *http.Request, del func(context.Context, int64) error) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := del(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------- Categories ----------

// ListCategories handles GET /categories. Only active categories are
// returned unless ?all=true.
func (a *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := a.svc.ListCategories(r.Context(), !boolQuery(r, "all"))
	respond(w, r, http.StatusOK, items, err)
}

// GetCategory handles GET /categories/{id}.
func (a *API) GetCategory(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, a.svc.Category)
}

// GetCategoryBySlug handles GET /categories/slug/{slug}.
func (a *API) GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	c, err := a.svc.CategoryBySlug(r.Context(), chi.URLParam(r, "slug"))
	respond(w, r, http.StatusOK, c, err)
}

// CategoryArticles handles GET /categories/slug/{slug}/articles.
func (a *API) CategoryArticles(w http.ResponseWriter, r *http.Request) {
	f, err := articleFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := a.svc.ArticlesByCategorySlug(r.Context(), chi.URLParam(r, "slug"), f)
	respond(w, r, http.StatusOK, res, err)
}

// CreateCategory handles POST /categories.
func (a *API) CreateCategory(w http.ResponseWriter, r *http.Request) {
	createFrom[models.CategoryPatch](w, r, a.svc.CreateCategory)
}

// UpdateCategory handles PATCH /categories/{id}.
func (a *API) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	updateFrom[models.CategoryPatch](w, r, a.svc.UpdateCategory)
}

// DeleteCategory handles DELETE /categories/{id}.
func (a *API) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, a.svc.DeleteCategory)
}

// ---------- Tags ----------

// ListTags handles GET /tags.
func (a *API) ListTags(w http.ResponseWriter, r *http.Request) {
	items, err := a.svc.ListTags(r.Context(), !boolQuery(r, "all"))
	respond(w, r, http.StatusOK, items, err)
}

// GetTag handles GET /tags/{id}.
func (a *API) GetTag(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, a.svc.Tag)
}

// GetTagBySlug handles GET /tags/slug/{slug}.
func (a *API) GetTagBySlug(w http.ResponseWriter, r *http.Request) {
	t, err := a.svc.TagBySlug(r.Context(), chi.URLParam(r, "slug"))
	respond(w, r, http.StatusOK, t, err)
}

// TagArticles handles GET /tags/slug/{slug}/articles.
func (a *API) TagArticles(w http.ResponseWriter, r *http.Request) {
	f, err := articleFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := a.svc.ArticlesByTagSlug(r.Context(), chi.URLParam(r, "slug"), f)
	respond(w, r, http.StatusOK, res, err)
}

// CreateTag handles POST /tags.
func (a *API) CreateTag(w http.ResponseWriter, r *http.Request) {
	createFrom[models.TagPatch](w, r, a.svc.CreateTag)
}

// UpdateTag handles PATCH /tags/{id}.
func (a *API) UpdateTag(w http.ResponseWriter, r *http.Request) {
	updateFrom[models.TagPatch](w, r, a.svc.UpdateTag)
}

// DeleteTag handles DELETE /tags/{id}.
func (a *API) DeleteTag(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, a.svc.DeleteTag)
}

// ---------- Series ----------

// ListSeries handles GET /series.
func (a *API) ListSeries(w http.ResponseWriter, r *http.Request) {
	items, err := a.svc.ListSeries(r.Context(), !boolQuery(r, "all"))
	respond(w, r, http.StatusOK, items, err)
}

// GetSeries handles GET /series/{id}.
func (a *API) GetSeries(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, a.svc.SeriesByID)
}

// GetSeriesBySlug handles GET /series/slug/{slug}.
func (a *API) GetSeriesBySlug(w http.ResponseWriter, r *http.Request) {
	s, err := a.svc.SeriesBySlug(r.Context(), chi.URLParam(r, "slug"))
	respond(w, r, http.StatusOK, s, err)
}

// SeriesArticles handles GET /series/{id}/articles.
func (a *API) SeriesArticles(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if _, err := a.svc.SeriesByID(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	items, err := a.svc.ArticlesInSeries(r.Context(), id)
	respond(w, r, http.StatusOK, items, err)
}

// CreateSeries handles POST /series.
func (a *API) CreateSeries(w http.ResponseWriter, r *http.Request) {
	createFrom[models.SeriesPatch](w, r, a.svc.CreateSeries)
}

// UpdateSeries handles PATCH /series/{id}.
func (a *API) UpdateSeries(w http.ResponseWriter, r *http.Request) {
	updateFrom[models.SeriesPatch](w, r, a.svc.UpdateSeries)
}

// DeleteSeries handles DELETE /series/{id}.
func (a *API) DeleteSeries(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, a.svc.DeleteSeries)
}
