// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package query

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"inkpress/internal/metrics"
	"inkpress/internal/models"
)

// Categories is the reduced category query: optional active-only filter
// and a locale-aware ordering by name.
func Categories(items []models.Category, activeOnly bool) []models.Category {
	return byName("categories", items, activeOnly,
		func(c *models.Category) string { return c.Name },
		func(c *models.Category) bool { return c.IsActive })
}

// Tags is the reduced tag query, see Categories.
func Tags(items []models.Tag, activeOnly bool) []models.Tag {
	return byName("tags", items, activeOnly,
		func(t *models.Tag) string { return t.Name },
		func(t *models.Tag) bool { return t.IsActive })
}

// SeriesList orders series by title with the same rules.
func SeriesList(items []models.Series, activeOnly bool) []models.Series {
	return byName("series", items, activeOnly,
		func(s *models.Series) string { return s.Title },
		func(s *models.Series) bool { return s.IsActive })
}

func byName[T any](kind string, items []T, activeOnly bool, name func(*T) string, active func(*T) bool) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if !activeOnly || active(&items[i]) {
			out = append(out, items[i])
		}
	}

	// A Collator keeps internal buffers, so each call gets its own.
	col := collate.New(language.Und)
	slices.SortStableFunc(out, func(a, b T) int {
		return col.CompareString(name(&a), name(&b))
	})
	metrics.ObserveQuery(kind, len(out))
	return out
}
