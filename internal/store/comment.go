// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"inkpress/internal/models"
)

var commentSchema = schema[models.Comment]{
	kind: "comments",
	columns: []string{
		"id", "article_id", "content", "name", "email", "parent_id",
		"like_count", "created_at", "updated_at",
	},
	indexes: map[string]index{
		IndexArticle: {column: "article_id"},
		IndexParent:  {column: "parent_id"},
	},
	counters: map[string]string{
		CounterLikes: "like_count",
	},
	id:     func(c *models.Comment) int64 { return c.ID },
	scan:   scanComment,
	values: commentValues,
}

func scanComment(s scanner) (*models.Comment, error) {
	var (
		c                    models.Comment
		parentID             sql.NullInt64
		createdAt, updatedAt string
	)
	err := s.Scan(
		&c.ID, &c.ArticleID, &c.Content, &c.Name, &c.Email, &parentID,
		&c.LikeCount, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.ParentID = int64Ptr(parentID)
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func commentValues(c *models.Comment) ([]any, error) {
	return []any{
		c.ID, c.ArticleID, c.Content, c.Name, c.Email, nullInt(c.ParentID),
		c.LikeCount, formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
	}, nil
}
