// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"inkpress/internal/models"
)

var tagSchema = schema[models.Tag]{
	kind: "tags",
	columns: []string{
		"id", "name", "slug", "description", "color",
		"is_active", "article_count", "created_at", "updated_at",
	},
	indexes: map[string]index{
		IndexSlug:   {column: "slug", unique: true},
		IndexActive: {column: "is_active"},
	},
	id:     func(t *models.Tag) int64 { return t.ID },
	scan:   scanTag,
	values: tagValues,
}

func scanTag(s scanner) (*models.Tag, error) {
	var (
		t                    models.Tag
		description, color   sql.NullString
		createdAt, updatedAt string
	)
	err := s.Scan(
		&t.ID, &t.Name, &t.Slug, &description, &color,
		&t.IsActive, &t.ArticleCount, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Description = stringPtr(description)
	t.Color = stringPtr(color)
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func tagValues(t *models.Tag) ([]any, error) {
	return []any{
		t.ID, t.Name, t.Slug, nullString(t.Description), nullString(t.Color),
		t.IsActive, t.ArticleCount, formatTime(t.CreatedAt), formatTime(t.UpdatedAt),
	}, nil
}
