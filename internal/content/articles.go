// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"fmt"
	"strings"

	"inkpress/internal/models"
	"inkpress/internal/query"
	"inkpress/internal/store"
)

// CreateArticle assigns an identifier and timestamps, fills defaults and
// derived fields, and inserts the article. An empty slug is derived from
// the title; an explicit slug that is taken yields models.ErrConflict.
func (s *Service) CreateArticle(ctx context.Context, in models.Article) (*models.Article, error) {
	a := in
	a.Title = strings.TrimSpace(a.Title)
	a.Slug = strings.TrimSpace(a.Slug)
	if a.Status == "" {
		a.Status = models.ArticleStatusDraft
	}
	if err := validateArticle(&a); err != nil {
		return nil, err
	}

	var err error
	if a.Slug, err = resolveSlug(ctx, s.st.Articles, a.Slug, a.Title); err != nil {
		return nil, err
	}
	if a.ReadingTime == 0 {
		a.ReadingTime = ReadingTime(a.Content)
	}
	if a.Categories == nil {
		a.Categories = []int64{}
	}
	if a.Tags == nil {
		a.Tags = []int64{}
	}

	now := s.now().UTC()
	if a.IsPublished() && a.PublishedAt == nil {
		a.PublishedAt = &now
	}
	a.ID = s.ids.Next()
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := s.st.Articles.Add(ctx, &a); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	s.recount(ctx, &a)
	return &a, nil
}

// UpdateArticle merges the patch over the stored article. The id and
// createdAt are preserved and updatedAt strictly increases. Reading time
// is re-derived when content changes without an explicit value, and
// publishedAt is stamped the first time the article is published.
func (s *Service) UpdateArticle(ctx context.Context, id int64, p models.ArticlePatch) (*models.Article, error) {
	cur, err := find(ctx, s.st.Articles, id)
	if err != nil {
		return nil, err
	}

	next := *cur
	p.Apply(&next)
	next.ID = cur.ID
	next.CreatedAt = cur.CreatedAt
	next.Title = strings.TrimSpace(next.Title)

	if p.Slug != nil {
		if next.Slug, err = patchSlug(ctx, s.st.Articles, cur.Slug, *p.Slug, next.Title); err != nil {
			return nil, err
		}
	}
	if p.Content != nil && p.ReadingTime == nil {
		next.ReadingTime = ReadingTime(next.Content)
	}
	if next.Categories == nil {
		next.Categories = []int64{}
	}
	if next.Tags == nil {
		next.Tags = []int64{}
	}
	if err := validateArticle(&next); err != nil {
		return nil, err
	}

	next.UpdatedAt = s.stamp(cur.UpdatedAt)
	if next.IsPublished() && next.PublishedAt == nil {
		at := next.UpdatedAt
		next.PublishedAt = &at
	}

	if err := s.st.Articles.Put(ctx, &next); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	if p.TouchesMembership() {
		s.recount(ctx, cur, &next)
	}
	return &next, nil
}

// DeleteArticle removes an article. The soft path archives it and sets
// deletedAt, keeping the record; the hard path removes it from the store.
func (s *Service) DeleteArticle(ctx context.Context, id int64, soft bool) error {
	if soft {
		archived := models.ArticleStatusArchived
		_, err := s.UpdateArticle(ctx, id, models.ArticlePatch{
			Status:    &archived,
			DeletedAt: models.Some(s.now().UTC()),
		})
		return err
	}

	cur, err := find(ctx, s.st.Articles, id)
	if err != nil {
		return err
	}
	if err := s.st.Articles.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	s.recount(ctx, cur)
	return nil
}

// Article returns the article with the given id.
func (s *Service) Article(ctx context.Context, id int64) (*models.Article, error) {
	return find(ctx, s.st.Articles, id)
}

// ArticleBySlug returns the article with the given slug.
func (s *Service) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return bySlug(ctx, s.st.Articles, slug)
}

// ViewArticle fetches an article by slug and counts the view. The returned
// record carries the incremented counter.
func (s *Service) ViewArticle(ctx context.Context, slug string) (*models.Article, error) {
	a, err := s.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if a.ViewCount, err = s.IncrementViewCount(ctx, a.ID); err != nil {
		return nil, err
	}
	return a, nil
}

// ListArticles runs the query pipeline over the whole article collection.
func (s *Service) ListArticles(ctx context.Context, f query.ArticleFilter) (query.Result[models.Article], error) {
	all, err := s.st.Articles.All(ctx)
	if err != nil {
		return query.Result[models.Article]{}, err
	}
	return query.Articles(all, f)
}

// IncrementViewCount adds one view and returns the new count.
func (s *Service) IncrementViewCount(ctx context.Context, id int64) (int64, error) {
	return s.st.Articles.Increment(ctx, id, store.CounterViews, s.now().UTC())
}

// LikeArticle adds one like and returns the new count. Likes are never
// taken back.
func (s *Service) LikeArticle(ctx context.Context, id int64) (int64, error) {
	return s.st.Articles.Increment(ctx, id, store.CounterLikes, s.now().UTC())
}
