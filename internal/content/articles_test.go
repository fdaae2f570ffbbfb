// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"inkpress/internal/models"
	"inkpress/internal/query"
	"inkpress/internal/store"
)

func TestCreateArticleDefaults(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateArticle(ctx, models.Article{Title: "  Hello, World!  ", Content: "<p>one two three</p>", AuthorID: 7})
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}

	if a.ID == 0 {
		t.Error("expected an assigned id")
	}
	if a.Title != "Hello, World!" {
		t.Errorf("title = %q", a.Title)
	}
	if a.Slug != "hello-world" {
		t.Errorf("slug = %q, want hello-world", a.Slug)
	}
	if a.Status != models.ArticleStatusDraft {
		t.Errorf("status = %q, want draft", a.Status)
	}
	if a.ReadingTime != 1 {
		t.Errorf("reading time = %d, want 1", a.ReadingTime)
	}
	if a.PublishedAt != nil {
		t.Errorf("draft should not have published_at, got %v", a.PublishedAt)
	}
	if !a.CreatedAt.Equal(clock.Now()) || !a.UpdatedAt.Equal(clock.Now()) {
		t.Errorf("timestamps = %v / %v, want %v", a.CreatedAt, a.UpdatedAt, clock.Now())
	}
	if a.Categories == nil || a.Tags == nil {
		t.Error("reference lists should be empty, not nil")
	}

	stored, err := svc.Article(ctx, a.ID)
	if err != nil {
		t.Fatalf("Article: %v", err)
	}
	if diff := cmp.Diff(a, stored); diff != "" {
		t.Errorf("stored mismatch (-created +stored):\n%s", diff)
	}
}

func TestCreateArticleKeepsSuppliedCounters(t *testing.T) {
	svc, _ := newTestService(t)

	a, err := svc.CreateArticle(context.Background(), models.Article{Title: "Imported", ViewCount: 150, LikeCount: 12, ReadingTime: 8, IsFeatured: true})
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}
	if a.ViewCount != 150 || a.LikeCount != 12 || a.ReadingTime != 8 || !a.IsFeatured {
		t.Errorf("supplied values not kept: %+v", a)
	}
}

func TestCreateArticleSlugs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var slugs []string
	for range 3 {
		a, err := svc.CreateArticle(ctx, models.Article{Title: "Same Title"})
		if err != nil {
			t.Fatalf("CreateArticle: %v", err)
		}
		slugs = append(slugs, a.Slug)
	}
	if diff := cmp.Diff([]string{"same-title", "same-title-2", "same-title-3"}, slugs); diff != "" {
		t.Errorf("derived slugs (-want +got):\n%s", diff)
	}

	_, err := svc.CreateArticle(ctx, models.Article{Title: "Other", Slug: "same-title"})
	if !errors.Is(err, models.ErrConflict) {
		t.Errorf("explicit taken slug: got %v, want ErrConflict", err)
	}

	_, err = svc.CreateArticle(ctx, models.Article{Title: "Other", Slug: "Not A Slug"})
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("malformed slug: got %v, want ErrValidation", err)
	}
}

func TestCreateArticleValidation(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name  string
		in    models.Article
		field string
	}{
		{name: "missing title", in: models.Article{Title: "   "}, field: "title"},
		{name: "title too long", in: models.Article{Title: strings.Repeat("a", 301)}, field: "title"},
		{name: "unknown status", in: models.Article{Title: "x", Status: "pending"}, field: "status"},
		{name: "long excerpt", in: models.Article{Title: "x", Excerpt: ptr(strings.Repeat("e", 1001))}, field: "excerpt"},
		{name: "negative reading time", in: models.Article{Title: "x", ReadingTime: -1}, field: "reading_time"},
		{name: "negative view count", in: models.Article{Title: "x", ViewCount: -3}, field: "view_count"},
		{name: "negative like count", in: models.Article{Title: "x", LikeCount: -1}, field: "like_count"},
		{name: "negative comment count", in: models.Article{Title: "x", CommentCount: -1}, field: "comment_count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateArticle(context.Background(), tt.in)
			var ve *models.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("got %v, want *ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestCreatePublishedStampsPublishedAt(t *testing.T) {
	svc, clock := newTestService(t)

	a, err := svc.CreateArticle(context.Background(), models.Article{Title: "Live", Status: models.ArticleStatusPublished})
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}
	if a.PublishedAt == nil || !a.PublishedAt.Equal(clock.Now()) {
		t.Errorf("published_at = %v, want %v", a.PublishedAt, clock.Now())
	}

	explicit := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	b, err := svc.CreateArticle(context.Background(), models.Article{Title: "Backdated", Status: models.ArticleStatusPublished, PublishedAt: &explicit})
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}
	if !b.PublishedAt.Equal(explicit) {
		t.Errorf("published_at = %v, want explicit %v", b.PublishedAt, explicit)
	}
}

func TestUpdateArticleKeepsIdentity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateArticle(ctx, models.Article{Title: "Original"})
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}

	// The clock is frozen, so every update must still move updatedAt forward.
	prev := a.UpdatedAt
	for i := range 3 {
		title := "Edited"
		u, err := svc.UpdateArticle(ctx, a.ID, models.ArticlePatch{Title: &title})
		if err != nil {
			t.Fatalf("UpdateArticle #%d: %v", i, err)
		}
		if u.ID != a.ID || !u.CreatedAt.Equal(a.CreatedAt) {
			t.Errorf("identity changed: id %d→%d created %v→%v", a.ID, u.ID, a.CreatedAt, u.CreatedAt)
		}
		if !u.UpdatedAt.After(prev) {
			t.Errorf("updated_at %v did not advance past %v", u.UpdatedAt, prev)
		}
		prev = u.UpdatedAt
	}

	stored, _ := svc.Article(ctx, a.ID)
	if !stored.UpdatedAt.Equal(prev) {
		t.Errorf("stored updated_at = %v, want %v", stored.UpdatedAt, prev)
	}
	if stored.Slug != "original" {
		t.Errorf("title edit should not touch slug, got %q", stored.Slug)
	}
}

func TestUpdateArticlePatchSemantics(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateArticle(ctx, models.Article{
		Title:      "Patch me",
		Excerpt:    ptr("keep"),
		MetaTitle:  ptr("drop"),
		Categories: []int64{1, 2},
		Content:    strings.Repeat("word ", 450),
	})
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}
	if a.ReadingTime != 3 {
		t.Fatalf("reading time = %d, want 3", a.ReadingTime)
	}

	short := "brief"
	u, err := svc.UpdateArticle(ctx, a.ID, models.ArticlePatch{
		MetaTitle:  models.Null[string](),
		Categories: &[]int64{9},
		Content:    &short,
	})
	if err != nil {
		t.Fatalf("UpdateArticle: %v", err)
	}
	if u.Excerpt == nil || *u.Excerpt != "keep" {
		t.Errorf("omitted excerpt changed: %v", u.Excerpt)
	}
	if u.MetaTitle != nil {
		t.Errorf("null meta_title not cleared: %q", *u.MetaTitle)
	}
	if diff := cmp.Diff([]int64{9}, u.Categories); diff != "" {
		t.Errorf("categories not replaced wholesale (-want +got):\n%s", diff)
	}
	if u.ReadingTime != 1 {
		t.Errorf("reading time = %d, want re-derived 1", u.ReadingTime)
	}
}

func TestUpdateArticleSlug(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, _ := svc.CreateArticle(ctx, models.Article{Title: "First"})
	b, _ := svc.CreateArticle(ctx, models.Article{Title: "Second"})

	if _, err := svc.UpdateArticle(ctx, b.ID, models.ArticlePatch{Slug: &a.Slug}); !errors.Is(err, models.ErrConflict) {
		t.Errorf("taking another article's slug: got %v, want ErrConflict", err)
	}

	empty := ""
	u, err := svc.UpdateArticle(ctx, b.ID, models.ArticlePatch{Slug: &empty})
	if err != nil {
		t.Fatalf("UpdateArticle: %v", err)
	}
	if u.Slug != "second" {
		t.Errorf("re-derived slug = %q, want own slug kept", u.Slug)
	}
}

func TestUpdateArticleNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	title := "x"
	_, err := svc.UpdateArticle(context.Background(), 12345, models.ArticlePatch{Title: &title})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

// TestPublishFlow creates a draft, publishes it and checks that status
// queries see the change.
func TestPublishFlow(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateArticle(ctx, models.Article{Title: "Foo", Slug: "foo", Status: models.ArticleStatusDraft})
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}

	clock.Advance(time.Minute)
	published := models.ArticleStatusPublished
	if _, err := svc.UpdateArticle(ctx, a.ID, models.ArticlePatch{Status: &published, PublishedAt: models.Some(clock.Now())}); err != nil {
		t.Fatalf("UpdateArticle: %v", err)
	}

	pub, err := svc.ListArticles(ctx, query.ArticleFilter{Status: "published"})
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if pub.Total != 1 || pub.Items[0].ID != a.ID {
		t.Errorf("published query = %+v, want the article", pub)
	}

	drafts, err := svc.ListArticles(ctx, query.ArticleFilter{Status: "draft"})
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if drafts.Total != 0 {
		t.Errorf("draft query still returns %d records", drafts.Total)
	}
}

func TestFirstPublishStampsPublishedAt(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	a, _ := svc.CreateArticle(ctx, models.Article{Title: "Later"})
	clock.Advance(time.Hour)

	published := models.ArticleStatusPublished
	u, err := svc.UpdateArticle(ctx, a.ID, models.ArticlePatch{Status: &published})
	if err != nil {
		t.Fatalf("UpdateArticle: %v", err)
	}
	if u.PublishedAt == nil || !u.PublishedAt.Equal(clock.Now()) {
		t.Errorf("published_at = %v, want %v", u.PublishedAt, clock.Now())
	}
}

func TestSoftDeleteArticle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, _ := svc.CreateArticle(ctx, models.Article{Title: "Doomed", Status: models.ArticleStatusPublished})
	if err := svc.DeleteArticle(ctx, a.ID, true); err != nil {
		t.Fatalf("DeleteArticle: %v", err)
	}

	got, err := svc.Article(ctx, a.ID)
	if err != nil {
		t.Fatalf("Article: %v", err)
	}
	if got.Status != models.ArticleStatusArchived || got.DeletedAt == nil {
		t.Errorf("status=%q deleted_at=%v, want archived with deleted_at", got.Status, got.DeletedAt)
	}

	pub, _ := svc.ListArticles(ctx, query.ArticleFilter{Status: "published"})
	if pub.Total != 0 {
		t.Errorf("soft-deleted article still in published query")
	}

	all, err := svc.Store().Articles.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("All returned %d records, want the archived one", len(all))
	}

	if err := svc.DeleteArticle(ctx, 999, true); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("soft delete of unknown id: got %v, want ErrNotFound", err)
	}
}

func TestHardDeleteArticle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, _ := svc.CreateArticle(ctx, models.Article{Title: "Gone"})
	if err := svc.DeleteArticle(ctx, a.ID, false); err != nil {
		t.Fatalf("DeleteArticle: %v", err)
	}
	if _, err := svc.Article(ctx, a.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Article after hard delete: got %v, want ErrNotFound", err)
	}
	if rec, _ := svc.Store().Articles.FirstByIndex(ctx, store.IndexSlug, "gone"); rec != nil {
		t.Error("slug index still resolves the deleted article")
	}
	if err := svc.DeleteArticle(ctx, a.ID, false); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("second hard delete: got %v, want ErrNotFound", err)
	}
}

func TestCounters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, _ := svc.CreateArticle(ctx, models.Article{Title: "Counted", Status: models.ArticleStatusPublished})

	const n = 7
	for range n {
		if _, err := svc.IncrementViewCount(ctx, a.ID); err != nil {
			t.Fatalf("IncrementViewCount: %v", err)
		}
	}
	likes, err := svc.LikeArticle(ctx, a.ID)
	if err != nil {
		t.Fatalf("LikeArticle: %v", err)
	}
	if likes != 1 {
		t.Errorf("likes = %d, want 1", likes)
	}

	got, _ := svc.Article(ctx, a.ID)
	if got.ViewCount != n {
		t.Errorf("views = %d, want %d", got.ViewCount, n)
	}

	viewed, err := svc.ViewArticle(ctx, "counted")
	if err != nil {
		t.Fatalf("ViewArticle: %v", err)
	}
	if viewed.ViewCount != n+1 {
		t.Errorf("ViewArticle count = %d, want %d", viewed.ViewCount, n+1)
	}

	if _, err := svc.IncrementViewCount(ctx, 404); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("views on unknown article: got %v", err)
	}
	if _, err := svc.LikeArticle(ctx, 404); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("like on unknown article: got %v", err)
	}
}

func TestUpdateArticleKeepsCounters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, _ := svc.CreateArticle(ctx, models.Article{Title: "Tallied", Status: models.ArticleStatusPublished})
	for range 3 {
		if _, err := svc.IncrementViewCount(ctx, a.ID); err != nil {
			t.Fatalf("IncrementViewCount: %v", err)
		}
	}
	if _, err := svc.LikeArticle(ctx, a.ID); err != nil {
		t.Fatalf("LikeArticle: %v", err)
	}

	updated, err := svc.UpdateArticle(ctx, a.ID, models.ArticlePatch{Title: ptr("Tallied again")})
	if err != nil {
		t.Fatalf("UpdateArticle: %v", err)
	}
	if updated.ViewCount != 3 || updated.LikeCount != 1 {
		t.Errorf("update result counters = %d views, %d likes; want 3, 1", updated.ViewCount, updated.LikeCount)
	}

	got, _ := svc.Article(ctx, a.ID)
	if got.ViewCount != 3 || got.LikeCount != 1 {
		t.Errorf("stored counters = %d views, %d likes; want 3, 1", got.ViewCount, got.LikeCount)
	}
}

func TestCounterBumpNeverRewindsUpdatedAt(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// The fake clock stands still, so the update stamps created+1ns.
	a, _ := svc.CreateArticle(ctx, models.Article{Title: "Still clock", Status: models.ArticleStatusPublished})
	updated, err := svc.UpdateArticle(ctx, a.ID, models.ArticlePatch{Title: ptr("Still clock edited")})
	if err != nil {
		t.Fatalf("UpdateArticle: %v", err)
	}
	if !updated.UpdatedAt.After(a.UpdatedAt) {
		t.Fatalf("update did not advance updatedAt: %v -> %v", a.UpdatedAt, updated.UpdatedAt)
	}

	if _, err := svc.IncrementViewCount(ctx, a.ID); err != nil {
		t.Fatalf("IncrementViewCount: %v", err)
	}
	if _, err := svc.LikeArticle(ctx, a.ID); err != nil {
		t.Fatalf("LikeArticle: %v", err)
	}

	got, _ := svc.Article(ctx, a.ID)
	if got.UpdatedAt.Before(updated.UpdatedAt) {
		t.Errorf("updatedAt went back: %v -> %v", updated.UpdatedAt, got.UpdatedAt)
	}
}

func TestArticleBySlugNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.ArticleBySlug(context.Background(), "missing"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestListArticlesInvalidSort(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.ListArticles(context.Background(), query.ArticleFilter{SortBy: "bogus"})
	if !errors.Is(err, models.ErrInvalidFilter) {
		t.Errorf("got %v, want ErrInvalidFilter", err)
	}
}
