// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"inkpress/internal/models"
	"inkpress/internal/query"
)

// articleFilter builds a query filter from URL parameters. Both camelCase
// and snake_case spellings of the sort parameters are accepted.
func articleFilter(r *http.Request) (query.ArticleFilter, error) {
	q := r.URL.Query()
	f := query.ArticleFilter{
		Status:    q.Get("status"),
		Search:    firstOf(q.Get("search"), q.Get("q")),
		SortBy:    firstOf(q.Get("sortBy"), q.Get("sort_by")),
		SortOrder: firstOf(q.Get("sortOrder"), q.Get("sort_order")),
	}

	ids := []struct {
		name string
		dst  **int64
	}{
		{"category", &f.Category},
		{"tag", &f.Tag},
		{"author", &f.Author},
	}
	for _, p := range ids {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, &models.InvalidFilterError{Field: p.name, Value: raw}
		}
		*p.dst = &n
	}

	if raw := q.Get("featured"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return f, &models.InvalidFilterError{Field: "featured", Value: raw}
		}
		f.Featured = &b
	}

	var err error
	if f.Offset, err = intQuery(r, "offset", 0); err != nil {
		return f, err
	}
	if f.Limit, err = intQuery(r, "limit", 0); err != nil {
		return f, err
	}
	if f.Limit < 0 {
		return f, &models.InvalidFilterError{Field: "limit", Value: q.Get("limit")}
	}
	return f, nil
}

func firstOf(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// ListArticles handles GET /articles.
func (a *API) ListArticles(w http.ResponseWriter, r *http.Request) {
	f, err := articleFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := a.svc.ListArticles(r.Context(), f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetArticle handles GET /articles/{id}.
func (a *API) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	art, err := a.svc.Article(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, art)
}

// GetArticleBySlug handles GET /articles/slug/{slug}.
func (a *API) GetArticleBySlug(w http.ResponseWriter, r *http.Request) {
	art, err := a.svc.ArticleBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, art)
}

// ViewArticleBySlug handles POST /articles/slug/{slug}/view: it returns the
// article with its view counter already bumped.
func (a *API) ViewArticleBySlug(w http.ResponseWriter, r *http.Request) {
	art, err := a.svc.ViewArticle(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, art)
}

// CreateArticle handles POST /articles.
func (a *API) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var in models.Article
	if !decodeJSON(w, r, &in) {
		return
	}
	art, err := a.svc.CreateArticle(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, art)
}

// UpdateArticle handles PATCH /articles/{id}.
func (a *API) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var p models.ArticlePatch
	if !decodeJSON(w, r, &p) {
		return
	}
	art, err := a.svc.UpdateArticle(r.Context(), id, p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, art)
}

// DeleteArticle handles DELETE /articles/{id}. The default is a soft
// delete; ?hard=true removes the record.
func (a *API) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := a.svc.DeleteArticle(r.Context(), id, !boolQuery(r, "hard")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ViewArticle handles POST /articles/{id}/view.
func (a *API) ViewArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	n, err := a.svc.IncrementViewCount(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, counter{ID: id, Count: n})
}

// LikeArticle handles POST /articles/{id}/like.
func (a *API) LikeArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	n, err := a.svc.LikeArticle(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, counter{ID: id, Count: n})
}

// RelatedArticles handles GET /articles/{id}/related.
func (a *API) RelatedArticles(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}
	items, err := a.svc.RelatedArticles(r.Context(), id, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// FeaturedArticles handles GET /articles/featured.
func (a *API) FeaturedArticles(w http.ResponseWriter, r *http.Request) {
	a.discover(w, r, a.svc.FeaturedArticles)
}

// PopularArticles handles GET /articles/popular.
func (a *API) PopularArticles(w http.ResponseWriter, r *http.Request) {
	a.discover(w, r, a.svc.PopularArticles)
}

// RecentArticles handles GET /articles/recent.
func (a *API) RecentArticles(w http.ResponseWriter, r *http.Request) {
	a.discover(w, r, a.svc.RecentArticles)
}

func (a *API) discover(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, limit int) ([]models.Article, error)) {
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}
	items, err := fn(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
