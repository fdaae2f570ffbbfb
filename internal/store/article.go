// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"inkpress/internal/models"
)

var articleSchema = schema[models.Article]{
	kind: "articles",
	columns: []string{
		"id", "title", "slug", "content", "excerpt", "featured_image", "status",
		"published_at", "scheduled_at", "author_id", "meta_title", "meta_description",
		"meta_keywords", "reading_time", "view_count", "like_count", "comment_count",
		"is_featured", "series_id", "categories", "tags", "created_at", "updated_at",
		"deleted_at",
	},
	indexes: map[string]index{
		IndexStatus:      {column: "status"},
		IndexSlug:        {column: "slug", unique: true},
		IndexAuthor:      {column: "author_id"},
		IndexFeatured:    {column: "is_featured"},
		IndexPublishedAt: {column: "published_at"},
	},
	counters: map[string]string{
		CounterViews:    "view_count",
		CounterLikes:    "like_count",
		CounterComments: "comment_count",
	},
	id:     func(a *models.Article) int64 { return a.ID },
	scan:   scanArticle,
	values: articleValues,
}

// scanArticle scans a row into an Article struct.
func scanArticle(s scanner) (*models.Article, error) {
	var (
		a                                 models.Article
		excerpt, image, metaTitle         sql.NullString
		metaDesc, metaKeywords            sql.NullString
		publishedAt, scheduledAt, deleted sql.NullString
		createdAt, updatedAt              string
		categories, tags                  string
		seriesID                          sql.NullInt64
	)
	err := s.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Content, &excerpt, &image, &a.Status,
		&publishedAt, &scheduledAt, &a.AuthorID, &metaTitle, &metaDesc,
		&metaKeywords, &a.ReadingTime, &a.ViewCount, &a.LikeCount, &a.CommentCount,
		&a.IsFeatured, &seriesID, &categories, &tags, &createdAt, &updatedAt,
		&deleted,
	)
	if err != nil {
		return nil, err
	}

	a.Excerpt = stringPtr(excerpt)
	a.FeaturedImage = stringPtr(image)
	a.MetaTitle = stringPtr(metaTitle)
	a.MetaDescription = stringPtr(metaDesc)
	a.MetaKeywords = stringPtr(metaKeywords)
	a.SeriesID = int64Ptr(seriesID)

	if a.PublishedAt, err = parseNullTime(publishedAt); err != nil {
		return nil, err
	}
	if a.ScheduledAt, err = parseNullTime(scheduledAt); err != nil {
		return nil, err
	}
	if a.DeletedAt, err = parseNullTime(deleted); err != nil {
		return nil, err
	}
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if a.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	if a.Categories, err = decodeIDs(categories); err != nil {
		return nil, err
	}
	if a.Tags, err = decodeIDs(tags); err != nil {
		return nil, err
	}
	return &a, nil
}

func articleValues(a *models.Article) ([]any, error) {
	categories, err := encodeIDs(a.Categories)
	if err != nil {
		return nil, err
	}
	tags, err := encodeIDs(a.Tags)
	if err != nil {
		return nil, err
	}
	return []any{
		a.ID, a.Title, a.Slug, a.Content, nullString(a.Excerpt), nullString(a.FeaturedImage), string(a.Status),
		nullTime(a.PublishedAt), nullTime(a.ScheduledAt), a.AuthorID, nullString(a.MetaTitle), nullString(a.MetaDescription),
		nullString(a.MetaKeywords), a.ReadingTime, a.ViewCount, a.LikeCount, a.CommentCount,
		a.IsFeatured, nullInt(a.SeriesID), categories, tags, formatTime(a.CreatedAt), formatTime(a.UpdatedAt),
		nullTime(a.DeletedAt),
	}, nil
}
