// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"inkpress/internal/models"
)

var categorySchema = schema[models.Category]{
	kind: "categories",
	columns: []string{
		"id", "name", "slug", "description", "color", "icon", "parent_id",
		"is_active", "article_count", "created_at", "updated_at",
	},
	indexes: map[string]index{
		IndexSlug:   {column: "slug", unique: true},
		IndexActive: {column: "is_active"},
	},
	id:     func(c *models.Category) int64 { return c.ID },
	scan:   scanCategory,
	values: categoryValues,
}

// scanCategory scans a row into a Category struct.
func scanCategory(s scanner) (*models.Category, error) {
	var (
		c                        models.Category
		description, color, icon sql.NullString
		parentID                 sql.NullInt64
		createdAt, updatedAt     string
	)
	err := s.Scan(
		&c.ID, &c.Name, &c.Slug, &description, &color, &icon, &parentID,
		&c.IsActive, &c.ArticleCount, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Description = stringPtr(description)
	c.Color = stringPtr(color)
	c.Icon = stringPtr(icon)
	c.ParentID = int64Ptr(parentID)
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func categoryValues(c *models.Category) ([]any, error) {
	return []any{
		c.ID, c.Name, c.Slug, nullString(c.Description), nullString(c.Color), nullString(c.Icon), nullInt(c.ParentID),
		c.IsActive, c.ArticleCount, formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
	}, nil
}
