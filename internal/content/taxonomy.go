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
)

// activeOrDefault reports the requested active flag, true when omitted.
func activeOrDefault(p *bool) bool {
	return p == nil || *p
}

// ---------- Categories ----------

// CreateCategory inserts a category. IsActive defaults to true and the
// article count starts at zero.
func (s *Service) CreateCategory(ctx context.Context, in models.CategoryPatch) (*models.Category, error) {
	c := models.Category{IsActive: activeOrDefault(in.IsActive)}
	in.IsActive = nil
	in.Apply(&c)
	c.Name = strings.TrimSpace(c.Name)
	if err := validateName("name", c.Name, c.Description); err != nil {
		return nil, err
	}

	var err error
	if c.Slug, err = resolveSlug(ctx, s.st.Categories, strings.TrimSpace(c.Slug), c.Name); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	c.ID = s.ids.Next()
	c.ArticleCount = 0
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.st.Categories.Add(ctx, &c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &c, nil
}

// UpdateCategory merges the patch over the stored category.
func (s *Service) UpdateCategory(ctx context.Context, id int64, p models.CategoryPatch) (*models.Category, error) {
	cur, err := find(ctx, s.st.Categories, id)
	if err != nil {
		return nil, err
	}
	next := *cur
	p.Apply(&next)
	next.Name = strings.TrimSpace(next.Name)
	if err := validateName("name", next.Name, next.Description); err != nil {
		return nil, err
	}
	if p.Slug != nil {
		if next.Slug, err = patchSlug(ctx, s.st.Categories, cur.Slug, *p.Slug, next.Name); err != nil {
			return nil, err
		}
	}
	next.UpdatedAt = s.stamp(cur.UpdatedAt)

	if err := s.st.Categories.Put(ctx, &next); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return &next, nil
}

// DeleteCategory removes a category. Articles keep the dangling id.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.st.Categories.Delete(ctx, id)
}

// Category returns the category with the given id.
func (s *Service) Category(ctx context.Context, id int64) (*models.Category, error) {
	return find(ctx, s.st.Categories, id)
}

// CategoryBySlug returns the category with the given slug.
func (s *Service) CategoryBySlug(ctx context.Context, categorySlug string) (*models.Category, error) {
	return bySlug(ctx, s.st.Categories, categorySlug)
}

// ListCategories returns categories ordered by name.
func (s *Service) ListCategories(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	all, err := s.st.Categories.All(ctx)
	if err != nil {
		return nil, err
	}
	return query.Categories(all, activeOnly), nil
}

// ---------- Tags ----------

// CreateTag inserts a tag. IsActive defaults to true.
func (s *Service) CreateTag(ctx context.Context, in models.TagPatch) (*models.Tag, error) {
	t := models.Tag{IsActive: activeOrDefault(in.IsActive)}
	in.IsActive = nil
	in.Apply(&t)
	t.Name = strings.TrimSpace(t.Name)
	if err := validateName("name", t.Name, t.Description); err != nil {
		return nil, err
	}

	var err error
	if t.Slug, err = resolveSlug(ctx, s.st.Tags, strings.TrimSpace(t.Slug), t.Name); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	t.ID = s.ids.Next()
	t.ArticleCount = 0
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.st.Tags.Add(ctx, &t); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return &t, nil
}

// UpdateTag merges the patch over the stored tag.
func (s *Service) UpdateTag(ctx context.Context, id int64, p models.TagPatch) (*models.Tag, error) {
	cur, err := find(ctx, s.st.Tags, id)
	if err != nil {
		return nil, err
	}
	next := *cur
	p.Apply(&next)
	next.Name = strings.TrimSpace(next.Name)
	if err := validateName("name", next.Name, next.Description); err != nil {
		return nil, err
	}
	if p.Slug != nil {
		if next.Slug, err = patchSlug(ctx, s.st.Tags, cur.Slug, *p.Slug, next.Name); err != nil {
			return nil, err
		}
	}
	next.UpdatedAt = s.stamp(cur.UpdatedAt)

	if err := s.st.Tags.Put(ctx, &next); err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}
	return &next, nil
}

// DeleteTag removes a tag.
func (s *Service) DeleteTag(ctx context.Context, id int64) error {
	return s.st.Tags.Delete(ctx, id)
}

// Tag returns the tag with the given id.
func (s *Service) Tag(ctx context.Context, id int64) (*models.Tag, error) {
	return find(ctx, s.st.Tags, id)
}

// TagBySlug returns the tag with the given slug.
func (s *Service) TagBySlug(ctx context.Context, tagSlug string) (*models.Tag, error) {
	return bySlug(ctx, s.st.Tags, tagSlug)
}

// ListTags returns tags ordered by name.
func (s *Service) ListTags(ctx context.Context, activeOnly bool) ([]models.Tag, error) {
	all, err := s.st.Tags.All(ctx)
	if err != nil {
		return nil, err
	}
	return query.Tags(all, activeOnly), nil
}

// ---------- Series ----------

// CreateSeries inserts a series. IsActive defaults to true.
func (s *Service) CreateSeries(ctx context.Context, in models.SeriesPatch) (*models.Series, error) {
	r := models.Series{IsActive: activeOrDefault(in.IsActive)}
	in.IsActive = nil
	in.Apply(&r)
	r.Title = strings.TrimSpace(r.Title)
	if err := validateName("title", r.Title, r.Description); err != nil {
		return nil, err
	}

	var err error
	if r.Slug, err = resolveSlug(ctx, s.st.Series, strings.TrimSpace(r.Slug), r.Title); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	r.ID = s.ids.Next()
	r.ArticleCount = 0
	r.CreatedAt = now
	r.UpdatedAt = now

	if err := s.st.Series.Add(ctx, &r); err != nil {
		return nil, fmt.Errorf("create series: %w", err)
	}
	return &r, nil
}

// UpdateSeries merges the patch over the stored series.
func (s *Service) UpdateSeries(ctx context.Context, id int64, p models.SeriesPatch) (*models.Series, error) {
	cur, err := find(ctx, s.st.Series, id)
	if err != nil {
		return nil, err
	}
	next := *cur
	p.Apply(&next)
	next.Title = strings.TrimSpace(next.Title)
	if err := validateName("title", next.Title, next.Description); err != nil {
		return nil, err
	}
	if p.Slug != nil {
		if next.Slug, err = patchSlug(ctx, s.st.Series, cur.Slug, *p.Slug, next.Title); err != nil {
			return nil, err
		}
	}
	next.UpdatedAt = s.stamp(cur.UpdatedAt)

	if err := s.st.Series.Put(ctx, &next); err != nil {
		return nil, fmt.Errorf("update series: %w", err)
	}
	return &next, nil
}

// DeleteSeries removes a series.
func (s *Service) DeleteSeries(ctx context.Context, id int64) error {
	return s.st.Series.Delete(ctx, id)
}

// SeriesByID returns the series with the given id.
func (s *Service) SeriesByID(ctx context.Context, id int64) (*models.Series, error) {
	return find(ctx, s.st.Series, id)
}

// SeriesBySlug returns the series with the given slug.
func (s *Service) SeriesBySlug(ctx context.Context, seriesSlug string) (*models.Series, error) {
	return bySlug(ctx, s.st.Series, seriesSlug)
}

// ListSeries returns series ordered by title.
func (s *Service) ListSeries(ctx context.Context, activeOnly bool) ([]models.Series, error) {
	all, err := s.st.Series.All(ctx)
	if err != nil {
		return nil, err
	}
	return query.SeriesList(all, activeOnly), nil
}
