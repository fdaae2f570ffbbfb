// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store is the embedded record store: six indexed collections keyed
// by integer id, with secondary indexes for uniqueness and lookup. Each
// collection is a Collection[T] bound to a per-kind schema.
package store

import (
	"database/sql"

	"inkpress/internal/models"
)

// Secondary index names accepted by Collection.ByIndex.
const (
	IndexStatus      = "status"
	IndexSlug        = "slug"
	IndexAuthor      = "authorId"
	IndexFeatured    = "isFeatured"
	IndexPublishedAt = "publishedAt"
	IndexActive      = "isActive"
	IndexEmail       = "email"
	IndexUsername    = "username"
	IndexArticle     = "articleId"
	IndexParent      = "parentId"
)

// Counter names accepted by Collection.Increment.
const (
	CounterViews    = "viewCount"
	CounterLikes    = "likeCount"
	CounterComments = "commentCount"
)

// Store groups the six record collections over one database handle.
type Store struct {
	Articles   *Collection[models.Article]
	Categories *Collection[models.Category]
	Tags       *Collection[models.Tag]
	Series     *Collection[models.Series]
	Users      *Collection[models.User]
	Comments   *Collection[models.Comment]
}

// New binds the collections to an opened and migrated database.
func New(db *sql.DB) *Store {
	return &Store{
		Articles:   newCollection(db, articleSchema),
		Categories: newCollection(db, categorySchema),
		Tags:       newCollection(db, tagSchema),
		Series:     newCollection(db, seriesSchema),
		Users:      newCollection(db, userSchema),
		Comments:   newCollection(db, commentSchema),
	}
}
