// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"inkpress/internal/models"
)

var seriesSchema = schema[models.Series]{
	kind: "series",
	columns: []string{
		"id", "title", "slug", "description", "featured_image", "author_id",
		"is_active", "article_count", "created_at", "updated_at",
	},
	indexes: map[string]index{
		IndexSlug:   {column: "slug", unique: true},
		IndexAuthor: {column: "author_id"},
	},
	id:     func(s *models.Series) int64 { return s.ID },
	scan:   scanSeries,
	values: seriesValues,
}

func scanSeries(s scanner) (*models.Series, error) {
	var (
		sr                   models.Series
		description, image   sql.NullString
		createdAt, updatedAt string
	)
	err := s.Scan(
		&sr.ID, &sr.Title, &sr.Slug, &description, &image, &sr.AuthorID,
		&sr.IsActive, &sr.ArticleCount, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	sr.Description = stringPtr(description)
	sr.FeaturedImage = stringPtr(image)
	if sr.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if sr.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &sr, nil
}

func seriesValues(s *models.Series) ([]any, error) {
	return []any{
		s.ID, s.Title, s.Slug, nullString(s.Description), nullString(s.FeaturedImage), s.AuthorID,
		s.IsActive, s.ArticleCount, formatTime(s.CreatedAt), formatTime(s.UpdatedAt),
	}, nil
}
