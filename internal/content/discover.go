// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"

	"inkpress/internal/models"
	"inkpress/internal/query"
)

// Default result sizes for the discovery helpers.
const (
	DefaultRelatedLimit  = 3
	DefaultFeaturedLimit = 4
	DefaultPopularLimit  = 5
	DefaultRecentLimit   = 5
)

func orDefault(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return limit
}

func (s *Service) published(ctx context.Context, f query.ArticleFilter) ([]models.Article, error) {
	f.Status = string(models.ArticleStatusPublished)
	res, err := s.ListArticles(ctx, f)
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

// RelatedArticles returns published articles sharing at least one
// category or tag with the given article, newest first.
func (s *Service) RelatedArticles(ctx context.Context, id int64, limit int) ([]models.Article, error) {
	a, err := s.Article(ctx, id)
	if err != nil {
		return nil, err
	}
	candidates, err := s.published(ctx, query.ArticleFilter{})
	if err != nil {
		return nil, err
	}

	limit = orDefault(limit, DefaultRelatedLimit)
	related := make([]models.Article, 0, limit)
	for _, c := range candidates {
		if len(related) == limit {
			break
		}
		if c.ID != id && sharesTaxonomy(a, &c) {
			related = append(related, c)
		}
	}
	return related, nil
}

func sharesTaxonomy(a, b *models.Article) bool {
	for _, id := range b.Categories {
		if a.InCategory(id) {
			return true
		}
	}
	for _, id := range b.Tags {
		if a.HasTag(id) {
			return true
		}
	}
	return false
}

// FeaturedArticles returns published featured articles, newest first.
func (s *Service) FeaturedArticles(ctx context.Context, limit int) ([]models.Article, error) {
	featured := true
	return s.published(ctx, query.ArticleFilter{Featured: &featured, Limit: orDefault(limit, DefaultFeaturedLimit)})
}

// PopularArticles returns published articles with the most views.
func (s *Service) PopularArticles(ctx context.Context, limit int) ([]models.Article, error) {
	return s.published(ctx, query.ArticleFilter{SortBy: "viewCount", SortOrder: query.OrderDesc, Limit: orDefault(limit, DefaultPopularLimit)})
}

// RecentArticles returns the most recently published articles.
func (s *Service) RecentArticles(ctx context.Context, limit int) ([]models.Article, error) {
	return s.published(ctx, query.ArticleFilter{SortBy: "publishedAt", SortOrder: query.OrderDesc, Limit: orDefault(limit, DefaultRecentLimit)})
}

// ArticlesByCategorySlug runs f restricted to the category with the given
// slug. Any category constraint already in f is replaced.
func (s *Service) ArticlesByCategorySlug(ctx context.Context, categorySlug string, f query.ArticleFilter) (query.Result[models.Article], error) {
	c, err := s.CategoryBySlug(ctx, categorySlug)
	if err != nil {
		return query.Result[models.Article]{}, err
	}
	f.Category = &c.ID
	return s.ListArticles(ctx, f)
}

// ArticlesByTagSlug runs f restricted to the tag with the given slug.
func (s *Service) ArticlesByTagSlug(ctx context.Context, tagSlug string, f query.ArticleFilter) (query.Result[models.Article], error) {
	t, err := s.TagBySlug(ctx, tagSlug)
	if err != nil {
		return query.Result[models.Article]{}, err
	}
	f.Tag = &t.ID
	return s.ListArticles(ctx, f)
}

// ArticlesInSeries returns the live articles of a series, oldest first.
func (s *Service) ArticlesInSeries(ctx context.Context, seriesID int64) ([]models.Article, error) {
	all, err := s.st.Articles.All(ctx)
	if err != nil {
		return nil, err
	}
	var in []models.Article
	for _, a := range all {
		if a.SeriesID != nil && *a.SeriesID == seriesID && !a.IsDeleted() {
			in = append(in, a)
		}
	}
	res, err := query.Articles(in, query.ArticleFilter{SortBy: "publishedAt", SortOrder: query.OrderAsc})
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}
