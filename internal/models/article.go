// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"slices"
	"time"
)

// ArticleStatus represents the publishing state of an article.
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
	ArticleStatusArchived  ArticleStatus = "archived"
)

// Valid reports whether s is one of the known statuses.
func (s ArticleStatus) Valid() bool {
	switch s {
	case ArticleStatusDraft, ArticleStatusPublished, ArticleStatusArchived:
		return true
	}
	return false
}

// Article is the central record of the CMS. Categories and Tags hold
// foreign ids; membership is not deduplicated.
type Article struct {
	ID              int64         `json:"id"`
	Title           string        `json:"title"`
	Slug            string        `json:"slug"`
	Content         string        `json:"content"`
	Excerpt         *string       `json:"excerpt,omitempty"`
	FeaturedImage   *string       `json:"featured_image,omitempty"`
	Status          ArticleStatus `json:"status"`
	PublishedAt     *time.Time    `json:"published_at,omitempty"`
	ScheduledAt     *time.Time    `json:"scheduled_at,omitempty"`
	AuthorID        int64         `json:"author_id"`
	MetaTitle       *string       `json:"meta_title,omitempty"`
	MetaDescription *string       `json:"meta_description,omitempty"`
	MetaKeywords    *string       `json:"meta_keywords,omitempty"`
	ReadingTime     int           `json:"reading_time"`
	ViewCount       int64         `json:"view_count"`
	LikeCount       int64         `json:"like_count"`
	CommentCount    int64         `json:"comment_count"`
	IsFeatured      bool          `json:"is_featured"`
	SeriesID        *int64        `json:"series_id,omitempty"`
	Categories      []int64       `json:"categories"`
	Tags            []int64       `json:"tags"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	DeletedAt       *time.Time    `json:"deleted_at,omitempty"`
}

// IsPublished returns true if the article is in published status.
func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}

// IsDeleted returns true if the article has been soft-deleted.
func (a *Article) IsDeleted() bool {
	return a.DeletedAt != nil
}

// InCategory reports whether id appears in the article's category list.
func (a *Article) InCategory(id int64) bool {
	return slices.Contains(a.Categories, id)
}

// HasTag reports whether id appears in the article's tag list.
func (a *Article) HasTag(id int64) bool {
	return slices.Contains(a.Tags, id)
}

// ArticlePatch is a partial update for an article. Nil pointers leave the
// field untouched; Nullable fields can also clear the stored value.
// Slices replace the stored list wholesale.
type ArticlePatch struct {
	Title           *string             `json:"title"`
	Slug            *string             `json:"slug"`
	Content         *string             `json:"content"`
	Excerpt         Nullable[string]    `json:"excerpt"`
	FeaturedImage   Nullable[string]    `json:"featured_image"`
	Status          *ArticleStatus      `json:"status"`
	PublishedAt     Nullable[time.Time] `json:"published_at"`
	ScheduledAt     Nullable[time.Time] `json:"scheduled_at"`
	AuthorID        *int64              `json:"author_id"`
	MetaTitle       Nullable[string]    `json:"meta_title"`
	MetaDescription Nullable[string]    `json:"meta_description"`
	MetaKeywords    Nullable[string]    `json:"meta_keywords"`
	ReadingTime     *int                `json:"reading_time"`
	IsFeatured      *bool               `json:"is_featured"`
	SeriesID        Nullable[int64]     `json:"series_id"`
	Categories      *[]int64            `json:"categories"`
	Tags            *[]int64            `json:"tags"`
	DeletedAt       Nullable[time.Time] `json:"deleted_at"`
}

// Apply merges the patch over a. It does not touch ID, CreatedAt or UpdatedAt.
func (p *ArticlePatch) Apply(a *Article) {
	setIf(&a.Title, p.Title)
	setIf(&a.Slug, p.Slug)
	setIf(&a.Content, p.Content)
	p.Excerpt.ApplyTo(&a.Excerpt)
	p.FeaturedImage.ApplyTo(&a.FeaturedImage)
	setIf(&a.Status, p.Status)
	p.PublishedAt.ApplyTo(&a.PublishedAt)
	p.ScheduledAt.ApplyTo(&a.ScheduledAt)
	setIf(&a.AuthorID, p.AuthorID)
	p.MetaTitle.ApplyTo(&a.MetaTitle)
	p.MetaDescription.ApplyTo(&a.MetaDescription)
	p.MetaKeywords.ApplyTo(&a.MetaKeywords)
	setIf(&a.ReadingTime, p.ReadingTime)
	setIf(&a.IsFeatured, p.IsFeatured)
	p.SeriesID.ApplyTo(&a.SeriesID)
	if p.Categories != nil {
		a.Categories = slices.Clone(*p.Categories)
	}
	if p.Tags != nil {
		a.Tags = slices.Clone(*p.Tags)
	}
	p.DeletedAt.ApplyTo(&a.DeletedAt)
}

// TouchesMembership reports whether applying the patch can change which
// categories, tags or series count this article.
func (p *ArticlePatch) TouchesMembership() bool {
	return p.Categories != nil || p.Tags != nil || p.SeriesID.Set || p.DeletedAt.Set
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
