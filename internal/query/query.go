// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package query turns a filter, sort and pagination request into a
// result page plus the filtered total. It works on records already loaded
// from the store and never touches storage itself.
package query

import (
	"slices"
	"strings"

	"inkpress/internal/metrics"
	"inkpress/internal/models"
)

// Sort orders accepted by ArticleFilter.SortOrder.
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// StatusAll disables the status filter.
const StatusAll = "all"

// DefaultSortBy is used when ArticleFilter.SortBy is empty.
const DefaultSortBy = "publishedAt"

// ArticleFilter is the declarative article query. Every field is optional;
// zero values mean "no constraint".
type ArticleFilter struct {
	Status   string // exact status, or "" / "all" for any
	Category *int64
	Tag      *int64
	Author   *int64
	Featured *bool
	Search   string

	SortBy    string
	SortOrder string

	Offset int
	Limit  int // 0 means unlimited
}

// Result is one page of a query plus the filtered count before pagination.
type Result[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// Articles filters, sorts and paginates records. The input slice is not
// modified. Unknown sort fields or orders yield *models.InvalidFilterError.
func Articles(records []models.Article, f ArticleFilter) (Result[models.Article], error) {
	cmp, err := articleComparator(f.SortBy, f.SortOrder)
	if err != nil {
		return Result[models.Article]{}, err
	}

	matched := make([]models.Article, 0, len(records))
	for i := range records {
		if f.matches(&records[i]) {
			matched = append(matched, records[i])
		}
	}
	metrics.ObserveQuery("articles", len(matched))

	slices.SortStableFunc(matched, cmp)

	return Result[models.Article]{
		Items: Page(matched, f.Offset, f.Limit),
		Total: len(matched),
	}, nil
}

// matches applies the predicates conjunctively, cheapest first.
func (f *ArticleFilter) matches(a *models.Article) bool {
	if f.Status != "" && f.Status != StatusAll && string(a.Status) != f.Status {
		return false
	}
	if f.Category != nil && !a.InCategory(*f.Category) {
		return false
	}
	if f.Tag != nil && !a.HasTag(*f.Tag) {
		return false
	}
	if f.Author != nil && a.AuthorID != *f.Author {
		return false
	}
	if f.Featured != nil && a.IsFeatured != *f.Featured {
		return false
	}
	if f.Search != "" && !MatchesText(a, f.Search) {
		return false
	}
	return true
}

// MatchesText reports whether term occurs, case-insensitively and as a
// literal substring, in the title, content, excerpt or meta keywords.
func MatchesText(a *models.Article, term string) bool {
	term = strings.ToLower(term)
	if containsFold(a.Title, term) || containsFold(a.Content, term) {
		return true
	}
	if a.Excerpt != nil && containsFold(*a.Excerpt, term) {
		return true
	}
	return a.MetaKeywords != nil && containsFold(*a.MetaKeywords, term)
}

// containsFold expects lowerTerm to be lower-cased already.
func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}

// Page returns the [offset, offset+limit) window of items, clamped to the
// slice bounds. A negative offset counts as zero; limit <= 0 means no limit.
func Page[T any](items []T, offset, limit int) []T {
	offset = max(offset, 0)
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return items[offset:end]
}
