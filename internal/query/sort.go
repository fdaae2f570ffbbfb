// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package query

import (
	"cmp"
	"maps"
	"strings"
	"time"

	"inkpress/internal/models"
)

type articleCompare func(a, b *models.Article) int

// byTime compares optional instants. An absent instant sorts as the epoch.
func byTime(get func(*models.Article) *time.Time) articleCompare {
	return func(a, b *models.Article) int {
		return instant(get(a)).Compare(instant(get(b)))
	}
}

func instant(t *time.Time) time.Time {
	if t == nil {
		return time.Unix(0, 0)
	}
	return *t
}

func byValue[V cmp.Ordered](get func(*models.Article) V) articleCompare {
	return func(a, b *models.Article) int {
		return cmp.Compare(get(a), get(b))
	}
}

func byBool(get func(*models.Article) bool) articleCompare {
	return func(a, b *models.Article) int {
		x, y := get(a), get(b)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	}
}

// articleSortFields maps sortable field names to comparators. Both the
// camelCase record names and the snake_case JSON names are accepted.
var articleSortFields = map[string]articleCompare{
	"id":           byValue(func(a *models.Article) int64 { return a.ID }),
	"title":        byValue(func(a *models.Article) string { return a.Title }),
	"slug":         byValue(func(a *models.Article) string { return a.Slug }),
	"status":       byValue(func(a *models.Article) string { return string(a.Status) }),
	"authorId":     byValue(func(a *models.Article) int64 { return a.AuthorID }),
	"readingTime":  byValue(func(a *models.Article) int { return a.ReadingTime }),
	"viewCount":    byValue(func(a *models.Article) int64 { return a.ViewCount }),
	"likeCount":    byValue(func(a *models.Article) int64 { return a.LikeCount }),
	"commentCount": byValue(func(a *models.Article) int64 { return a.CommentCount }),
	"isFeatured":   byBool(func(a *models.Article) bool { return a.IsFeatured }),
	"publishedAt":  byTime(func(a *models.Article) *time.Time { return a.PublishedAt }),
	"scheduledAt":  byTime(func(a *models.Article) *time.Time { return a.ScheduledAt }),
	"deletedAt":    byTime(func(a *models.Article) *time.Time { return a.DeletedAt }),
	"createdAt":    byTime(func(a *models.Article) *time.Time { return &a.CreatedAt }),
	"updatedAt":    byTime(func(a *models.Article) *time.Time { return &a.UpdatedAt }),
}

func init() {
	aliases := make(map[string]articleCompare)
	for name, fn := range articleSortFields {
		if snake := toSnake(name); snake != name {
			aliases[snake] = fn
		}
	}
	maps.Copy(articleSortFields, aliases)
}

func toSnake(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SortFieldKnown reports whether name is accepted as an article sort field.
func SortFieldKnown(name string) bool {
	_, ok := articleSortFields[name]
	return ok
}

// articleComparator resolves sortBy and sortOrder to a comparator for
// slices.SortStableFunc.
func articleComparator(sortBy, sortOrder string) (func(a, b models.Article) int, error) {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	fn, ok := articleSortFields[sortBy]
	if !ok {
		return nil, &models.InvalidFilterError{Field: "sortBy", Value: sortBy}
	}

	var desc bool
	switch strings.ToUpper(sortOrder) {
	case "", OrderDesc:
		desc = true
	case OrderAsc:
	default:
		return nil, &models.InvalidFilterError{Field: "sortOrder", Value: sortOrder}
	}

	return func(a, b models.Article) int {
		c := fn(&a, &b)
		if desc {
			return -c
		}
		return c
	}, nil
}
