// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"inkpress/internal/metrics"
	"inkpress/internal/models"
	"inkpress/internal/store"
)

// articleCounts tallies live (not soft-deleted) articles per category, tag
// and series. An article listing the same id twice counts once.
type articleCounts struct {
	categories map[int64]int64
	tags       map[int64]int64
	series     map[int64]int64
}

func countArticles(all []models.Article) articleCounts {
	c := articleCounts{
		categories: make(map[int64]int64),
		tags:       make(map[int64]int64),
		series:     make(map[int64]int64),
	}
	for i := range all {
		a := &all[i]
		if a.IsDeleted() {
			continue
		}
		tallyDistinct(c.categories, a.Categories)
		tallyDistinct(c.tags, a.Tags)
		if a.SeriesID != nil {
			c.series[*a.SeriesID]++
		}
	}
	return c
}

func tallyDistinct(into map[int64]int64, ids []int64) {
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			into[id]++
		}
	}
}

// recount refreshes articleCount on every category, tag and series
// referenced by any of the given article versions. Failures are logged
// and swallowed; RecountArticleCounts repairs any drift.
func (s *Service) recount(ctx context.Context, versions ...*models.Article) {
	cats, tags, series := map[int64]bool{}, map[int64]bool{}, map[int64]bool{}
	for _, a := range versions {
		if a == nil {
			continue
		}
		for _, id := range a.Categories {
			cats[id] = true
		}
		for _, id := range a.Tags {
			tags[id] = true
		}
		if a.SeriesID != nil {
			series[*a.SeriesID] = true
		}
	}
	if len(cats)+len(tags)+len(series) == 0 {
		return
	}

	if err := s.applyCounts(ctx, cats, tags, series); err != nil {
		metrics.SideCallFailed("article_counts")
		slog.Warn("article count refresh failed", "error", err)
	}
}

// RecountArticleCounts recomputes articleCount for every category, tag and
// series from the article collection.
func (s *Service) RecountArticleCounts(ctx context.Context) error {
	return s.applyCounts(ctx, nil, nil, nil)
}

// applyCounts writes fresh counts to the records whose ids are in the
// given sets. A nil set means every record of that kind.
func (s *Service) applyCounts(ctx context.Context, cats, tags, series map[int64]bool) error {
	all, err := s.st.Articles.All(ctx)
	if err != nil {
		return fmt.Errorf("recount: %w", err)
	}
	counts := countArticles(all)

	err = syncCounts(ctx, s, s.st.Categories, cats, counts.categories,
		func(c *models.Category) (int64, *int64) { return c.ID, &c.ArticleCount },
		func(c *models.Category) *time.Time { return &c.UpdatedAt })
	if err != nil {
		return err
	}
	err = syncCounts(ctx, s, s.st.Tags, tags, counts.tags,
		func(t *models.Tag) (int64, *int64) { return t.ID, &t.ArticleCount },
		func(t *models.Tag) *time.Time { return &t.UpdatedAt })
	if err != nil {
		return err
	}
	return syncCounts(ctx, s, s.st.Series, series, counts.series,
		func(r *models.Series) (int64, *int64) { return r.ID, &r.ArticleCount },
		func(r *models.Series) *time.Time { return &r.UpdatedAt })
}

// syncCounts updates the records of one collection whose stored count
// differs from the tally. Missing records (dangling references) are skipped.
func syncCounts[T any](
	ctx context.Context,
	s *Service,
	c *store.Collection[T],
	only map[int64]bool,
	tally map[int64]int64,
	count func(*T) (int64, *int64),
	updated func(*T) *time.Time,
) error {
	var recs []T
	if only == nil {
		all, err := c.All(ctx)
		if err != nil {
			return fmt.Errorf("recount %s: %w", c.Kind(), err)
		}
		recs = all
	} else {
		for id := range only {
			rec, err := c.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("recount %s: %w", c.Kind(), err)
			}
			if rec != nil {
				recs = append(recs, *rec)
			}
		}
	}

	for i := range recs {
		rec := &recs[i]
		id, stored := count(rec)
		if *stored == tally[id] {
			continue
		}
		*stored = tally[id]
		ts := updated(rec)
		*ts = s.stamp(*ts)
		if err := c.Put(ctx, rec); err != nil {
			return fmt.Errorf("recount %s %d: %w", c.Kind(), id, err)
		}
	}
	return nil
}
