// Package seed loads the demo dataset into an empty store.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"inkpress/internal/content"
	"inkpress/internal/models"
)

// Demo credentials for the seeded admin account.
const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "admin123"
)

func str(s string) *string { return &s }

// Demo populates the store with an admin user, three categories, three
// tags and three articles. It runs only when the article collection is
// empty, so repeated startups never duplicate data. It reports whether
// anything was written.
func Demo(ctx context.Context, svc *content.Service) (bool, error) {
	st := svc.Store()

	count, err := st.Articles.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed check articles: %w", err)
	}
	if count > 0 {
		slog.Info("store already seeded, skipping", "articles", count)
		return false, nil
	}

	now := time.Now().UTC()
	yesterday := now.Add(-24 * time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("seed bcrypt: %w", err)
	}

	admin := models.User{
		ID:           1,
		Username:     "admin",
		Email:        AdminEmail,
		PasswordHash: string(hash),
		Bio:          str("Administrator and content creator"),
		Role:         models.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// A previous partial run may have left the admin behind.
	if existing, err := st.Users.Get(ctx, admin.ID); err != nil {
		return false, fmt.Errorf("seed check admin: %w", err)
	} else if existing == nil {
		if err := st.Users.Add(ctx, &admin); err != nil {
			return false, fmt.Errorf("seed insert admin: %w", err)
		}
	}

	categories := []models.Category{
		{ID: 1, Name: "Web Development", Slug: "web-development", Description: str("Articles about web development"), Color: str("#3b82f6"), Icon: str("i-heroicons-globe-alt")},
		{ID: 2, Name: "JavaScript", Slug: "javascript", Description: str("JavaScript tutorials and tips"), Color: str("#f59e0b"), Icon: str("i-simple-icons-javascript")},
		{ID: 3, Name: "Vue.js", Slug: "vuejs", Description: str("Vue.js framework articles"), Color: str("#10b981"), Icon: str("i-simple-icons-vuedotjs")},
	}
	for i := range categories {
		c := &categories[i]
		c.IsActive, c.CreatedAt, c.UpdatedAt = true, now, now
		if err := st.Categories.Put(ctx, c); err != nil {
			return false, fmt.Errorf("seed category %s: %w", c.Slug, err)
		}
	}

	tags := []models.Tag{
		{ID: 1, Name: "Tutorial", Slug: "tutorial", Description: str("Tutorial articles"), Color: str("#8b5cf6")},
		{ID: 2, Name: "Beginner", Slug: "beginner", Description: str("Beginner-friendly content"), Color: str("#06b6d4")},
		{ID: 3, Name: "Advanced", Slug: "advanced", Description: str("Advanced topics"), Color: str("#ef4444")},
	}
	for i := range tags {
		t := &tags[i]
		t.IsActive, t.CreatedAt, t.UpdatedAt = true, now, now
		if err := st.Tags.Put(ctx, t); err != nil {
			return false, fmt.Errorf("seed tag %s: %w", t.Slug, err)
		}
	}

	for _, a := range demoArticles(now, yesterday) {
		if err := st.Articles.Add(ctx, &a); err != nil {
			return false, fmt.Errorf("seed article %s: %w", a.Slug, err)
		}
	}

	if err := svc.RecountArticleCounts(ctx); err != nil {
		return false, fmt.Errorf("seed recount: %w", err)
	}

	slog.Info("store seeded with demo content",
		"email", AdminEmail,
		"password", AdminPassword,
		"articles", 3,
	)
	return true, nil
}

func demoArticles(now, yesterday time.Time) []models.Article {
	return []models.Article{
		{
			ID:              1,
			Title:           "Getting Started with Vue 3 Composition API",
			Slug:            "getting-started-vue-3-composition-api",
			Content:         "<h2>Introduction</h2><p>The Vue 3 Composition API is a powerful new way to organize your Vue.js components...</p><h2>Basic Usage</h2><p>Here's how you can start using the Composition API in your Vue 3 applications...</p>",
			Excerpt:         str("Learn how to use the Vue 3 Composition API to build better Vue.js applications with improved code organization and reusability."),
			Status:          models.ArticleStatusPublished,
			PublishedAt:     &now,
			AuthorID:        1,
			MetaTitle:       str("Getting Started with Vue 3 Composition API - Complete Guide"),
			MetaDescription: str("Learn how to use the Vue 3 Composition API to build better Vue.js applications with improved code organization and reusability."),
			MetaKeywords:    str("Vue 3, Composition API, JavaScript, Frontend"),
			ReadingTime:     8,
			ViewCount:       1250,
			LikeCount:       45,
			CommentCount:    12,
			IsFeatured:      true,
			Categories:      []int64{1, 3},
			Tags:            []int64{1, 2},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              2,
			Title:           "Advanced TypeScript Patterns for Better Code",
			Slug:            "advanced-typescript-patterns-better-code",
			Content:         "<h2>Type Guards</h2><p>Type guards are a way to narrow down the type of a variable...</p><h2>Utility Types</h2><p>TypeScript provides several utility types that help with common type transformations...</p>",
			Excerpt:         str("Explore advanced TypeScript patterns and techniques to write more maintainable and type-safe code."),
			Status:          models.ArticleStatusPublished,
			PublishedAt:     &yesterday,
			AuthorID:        1,
			MetaTitle:       str("Advanced TypeScript Patterns for Better Code"),
			MetaDescription: str("Explore advanced TypeScript patterns and techniques to write more maintainable and type-safe code."),
			MetaKeywords:    str("TypeScript, Advanced, Patterns, Type Safety"),
			ReadingTime:     12,
			ViewCount:       890,
			LikeCount:       32,
			CommentCount:    8,
			Categories:      []int64{1, 2},
			Tags:            []int64{1, 3},
			CreatedAt:       yesterday,
			UpdatedAt:       yesterday,
		},
		{
			ID:              3,
			Title:           "Building Responsive Layouts with CSS Grid",
			Slug:            "building-responsive-layouts-css-grid",
			Content:         "<h2>CSS Grid Basics</h2><p>CSS Grid is a powerful layout system that allows you to create complex layouts...</p><h2>Responsive Design</h2><p>Making your grid layouts responsive is crucial for modern web development...</p>",
			Excerpt:         str("Master CSS Grid to create flexible and responsive web layouts that work across all devices."),
			Status:          models.ArticleStatusDraft,
			AuthorID:        1,
			MetaTitle:       str("Building Responsive Layouts with CSS Grid"),
			MetaDescription: str("Master CSS Grid to create flexible and responsive web layouts that work across all devices."),
			MetaKeywords:    str("CSS Grid, Responsive Design, Layout, CSS"),
			ReadingTime:     10,
			Categories:      []int64{1},
			Tags:            []int64{1, 2},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}
