// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package search

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"inkpress/internal/models"
	"inkpress/internal/query"
)

// Suggestion types.
const (
	TypeArticle  = "article"
	TypeCategory = "category"
	TypeTag      = "tag"
)

// Suggestion limits. Article titles are matched only within the first
// articlePool published articles.
const (
	articlePool       = 5
	maxCategoryHits   = 3
	maxTagHits        = 3
	minSuggestionTerm = 2
)

// Icons attached to each suggestion type.
const (
	iconArticle  = "i-heroicons-document-text"
	iconCategory = "i-heroicons-folder"
	iconTag      = "i-heroicons-tag"
)

// Suggestion is one typed entry in the suggestion list.
type Suggestion struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Slug string `json:"slug"`
	Icon string `json:"icon"`
}

// Suggestions returns article, then category, then tag suggestions whose
// name contains q case-insensitively: up to 5 article titles taken from
// the five most recent published articles, up to 3 active categories and
// up to 3 active tags. Queries shorter than two characters yield nothing.
func (e *Engine) Suggestions(ctx context.Context, q string) ([]Suggestion, error) {
	term := strings.ToLower(strings.TrimSpace(q))
	if len([]rune(term)) < minSuggestionTerm {
		return []Suggestion{}, nil
	}

	var (
		articles   []models.Article
		categories []models.Category
		tags       []models.Tag
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := e.svc.ListArticles(gctx, query.ArticleFilter{
			Status: string(models.ArticleStatusPublished),
			Limit:  articlePool,
		})
		articles = res.Items
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = e.svc.ListCategories(gctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		tags, err = e.svc.ListTags(gctx, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Suggestion, 0, articlePool+maxCategoryHits+maxTagHits)
	for _, a := range articles {
		if contains(a.Title, term) {
			out = append(out, Suggestion{Type: TypeArticle, Text: a.Title, Slug: a.Slug, Icon: iconArticle})
		}
	}
	n := 0
	for _, c := range categories {
		if n < maxCategoryHits && contains(c.Name, term) {
			out = append(out, Suggestion{Type: TypeCategory, Text: c.Name, Slug: c.Slug, Icon: iconCategory})
			n++
		}
	}
	n = 0
	for _, t := range tags {
		if n < maxTagHits && contains(t.Name, term) {
			out = append(out, Suggestion{Type: TypeTag, Text: t.Name, Slug: t.Slug, Icon: iconTag})
			n++
		}
	}
	return out, nil
}

func contains(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
