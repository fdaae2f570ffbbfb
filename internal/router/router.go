// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// inkpress API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inkpress/internal/handlers"
	"inkpress/internal/middleware"
)

// New creates the configured Chi router. limiter may be nil to disable
// rate limiting.
func New(api *handlers.API, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)

	// Operational endpoints are never rate limited.
	r.Get("/health", healthHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", api.ListArticles)
			r.Post("/", api.CreateArticle)
			r.Get("/featured", api.FeaturedArticles)
			r.Get("/popular", api.PopularArticles)
			r.Get("/recent", api.RecentArticles)
			r.Get("/slug/{slug}", api.GetArticleBySlug)
			r.Post("/slug/{slug}/view", api.ViewArticleBySlug)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", api.GetArticle)
				r.Patch("/", api.UpdateArticle)
				r.Delete("/", api.DeleteArticle)
				r.Post("/view", api.ViewArticle)
				r.Post("/like", api.LikeArticle)
				r.Get("/related", api.RelatedArticles)
				r.Get("/comments", api.ArticleComments)
				r.Post("/comments", api.CreateComment)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", api.ListCategories)
			r.Post("/", api.CreateCategory)
			r.Get("/slug/{slug}", api.GetCategoryBySlug)
			r.Get("/slug/{slug}/articles", api.CategoryArticles)
			r.Get("/{id}", api.GetCategory)
			r.Patch("/{id}", api.UpdateCategory)
			r.Delete("/{id}", api.DeleteCategory)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", api.ListTags)
			r.Post("/", api.CreateTag)
			r.Get("/slug/{slug}", api.GetTagBySlug)
			r.Get("/slug/{slug}/articles", api.TagArticles)
			r.Get("/{id}", api.GetTag)
			r.Patch("/{id}", api.UpdateTag)
			r.Delete("/{id}", api.DeleteTag)
		})

		r.Route("/series", func(r chi.Router) {
			r.Get("/", api.ListSeries)
			r.Post("/", api.CreateSeries)
			r.Get("/slug/{slug}", api.GetSeriesBySlug)
			r.Get("/{id}", api.GetSeries)
			r.Get("/{id}/articles", api.SeriesArticles)
			r.Patch("/{id}", api.UpdateSeries)
			r.Delete("/{id}", api.DeleteSeries)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", api.ListUsers)
			r.Post("/", api.CreateUser)
			r.Get("/{id}", api.GetUser)
			r.Patch("/{id}", api.UpdateUser)
			r.Delete("/{id}", api.DeleteUser)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Patch("/{id}", api.UpdateComment)
			r.Delete("/{id}", api.DeleteComment)
			r.Post("/{id}/like", api.LikeComment)
			r.Get("/{id}/replies", api.CommentReplies)
		})

		r.Route("/search", func(r chi.Router) {
			r.Get("/", api.Search)
			r.Get("/suggestions", api.Suggestions)
			r.Get("/history", api.SearchHistory)
			r.Delete("/history", api.ClearSearchHistory)
			r.Get("/popular", api.PopularSearches)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
