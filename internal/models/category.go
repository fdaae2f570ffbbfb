// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Category groups articles. Articles may belong to many categories.
// ArticleCount is denormalized and maintained by the content service.
type Category struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description,omitempty"`
	Color        *string   `json:"color,omitempty"`
	Icon         *string   `json:"icon,omitempty"`
	ParentID     *int64    `json:"parent_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	ArticleCount int64     `json:"article_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CategoryPatch is a partial update for a category.
type CategoryPatch struct {
	Name        *string          `json:"name"`
	Slug        *string          `json:"slug"`
	Description Nullable[string] `json:"description"`
	Color       Nullable[string] `json:"color"`
	Icon        Nullable[string] `json:"icon"`
	ParentID    Nullable[int64]  `json:"parent_id"`
	IsActive    *bool            `json:"is_active"`
}

// Apply merges the patch over c.
func (p *CategoryPatch) Apply(c *Category) {
	setIf(&c.Name, p.Name)
	setIf(&c.Slug, p.Slug)
	p.Description.ApplyTo(&c.Description)
	p.Color.ApplyTo(&c.Color)
	p.Icon.ApplyTo(&c.Icon)
	p.ParentID.ApplyTo(&c.ParentID)
	setIf(&c.IsActive, p.IsActive)
}

// Tag is a flat label attached to articles.
type Tag struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description,omitempty"`
	Color        *string   `json:"color,omitempty"`
	IsActive     bool      `json:"is_active"`
	ArticleCount int64     `json:"article_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TagPatch is a partial update for a tag.
type TagPatch struct {
	Name        *string          `json:"name"`
	Slug        *string          `json:"slug"`
	Description Nullable[string] `json:"description"`
	Color       Nullable[string] `json:"color"`
	IsActive    *bool            `json:"is_active"`
}

// Apply merges the patch over t.
func (p *TagPatch) Apply(t *Tag) {
	setIf(&t.Name, p.Name)
	setIf(&t.Slug, p.Slug)
	p.Description.ApplyTo(&t.Description)
	p.Color.ApplyTo(&t.Color)
	setIf(&t.IsActive, p.IsActive)
}

// Series is an ordered collection of articles by one author.
type Series struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   *string   `json:"description,omitempty"`
	FeaturedImage *string   `json:"featured_image,omitempty"`
	AuthorID      int64     `json:"author_id"`
	IsActive      bool      `json:"is_active"`
	ArticleCount  int64     `json:"article_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SeriesPatch is a partial update for a series.
type SeriesPatch struct {
	Title         *string          `json:"title"`
	Slug          *string          `json:"slug"`
	Description   Nullable[string] `json:"description"`
	FeaturedImage Nullable[string] `json:"featured_image"`
	AuthorID      *int64           `json:"author_id"`
	IsActive      *bool            `json:"is_active"`
}

// Apply merges the patch over s.
func (p *SeriesPatch) Apply(s *Series) {
	setIf(&s.Title, p.Title)
	setIf(&s.Slug, p.Slug)
	p.Description.ApplyTo(&s.Description)
	p.FeaturedImage.ApplyTo(&s.FeaturedImage)
	setIf(&s.AuthorID, p.AuthorID)
	setIf(&s.IsActive, p.IsActive)
}
