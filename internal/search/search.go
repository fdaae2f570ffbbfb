// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package search provides free-text search over published articles and
// typed suggestions drawn from articles, categories and tags. Recording the
// search history and analytics is best effort and never affects results.
package search

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"inkpress/internal/content"
	"inkpress/internal/metrics"
	"inkpress/internal/models"
	"inkpress/internal/query"
)

// KindArticles is the only searchable kind; other kinds yield no results.
const KindArticles = "articles"

// highlightOpen wraps every match in Highlight output.
const (
	highlightOpen  = `<mark class="bg-yellow-200 dark:bg-yellow-800">`
	highlightClose = `</mark>`
)

// sideCallTimeout bounds each detached history or analytics write.
const sideCallTimeout = 2 * time.Second

// Recorder receives searches for history or analytics. Implementations
// are called from detached goroutines.
type Recorder interface {
	Record(ctx context.Context, q string) error
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(ctx context.Context, q string) error

// Record calls f.
func (f RecorderFunc) Record(ctx context.Context, q string) error { return f(ctx, q) }

// Hit is a search result: the article plus highlighted display strings.
type Hit struct {
	models.Article
	HighlightedTitle   string `json:"highlighted_title"`
	HighlightedExcerpt string `json:"highlighted_excerpt"`
}

// Engine answers searches and suggestions on top of the content service.
type Engine struct {
	svc       *content.Service
	history   Recorder
	analytics Recorder

	wg sync.WaitGroup
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithHistory records every non-blank search in r.
func WithHistory(r Recorder) EngineOption {
	return func(e *Engine) { e.history = r }
}

// WithAnalytics reports every non-blank search to r.
func WithAnalytics(r Recorder) EngineOption {
	return func(e *Engine) { e.analytics = r }
}

// NewEngine creates a search engine.
func NewEngine(svc *content.Service, opts ...EngineOption) *Engine {
	e := &Engine{svc: svc}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search returns published articles matching q in title, content, excerpt
// or meta keywords, newest first. q is matched literally and
// case-insensitively. Blank queries and unknown kinds return no hits.
func (e *Engine) Search(ctx context.Context, q, kind string) ([]Hit, error) {
	term := strings.TrimSpace(q)
	if term == "" {
		return []Hit{}, nil
	}
	e.record(term)

	if kind != "" && kind != KindArticles {
		return []Hit{}, nil
	}

	res, err := e.svc.ListArticles(ctx, query.ArticleFilter{
		Search: term,
		Status: string(models.ArticleStatusPublished),
	})
	if err != nil {
		return nil, err
	}

	hits := make([]Hit, 0, len(res.Items))
	for _, a := range res.Items {
		excerpt := ""
		if a.Excerpt != nil {
			excerpt = *a.Excerpt
		}
		hits = append(hits, Hit{
			Article:            a,
			HighlightedTitle:   Highlight(a.Title, term),
			HighlightedExcerpt: Highlight(excerpt, term),
		})
	}
	return hits, nil
}

// Highlight wraps every case-insensitive occurrence of term in text with a
// mark element. The term is escaped, so pattern characters match literally.
func Highlight(text, term string) string {
	if text == "" || term == "" {
		return text
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	return re.ReplaceAllStringFunc(text, func(m string) string {
		return highlightOpen + m + highlightClose
	})
}

// record hands the query to the history and analytics recorders on
// detached goroutines. Their failures are logged and dropped.
func (e *Engine) record(q string) {
	e.detach("search_history", e.history, q)
	e.detach("search_analytics", e.analytics, q)
}

func (e *Engine) detach(task string, r Recorder, q string) {
	if r == nil {
		return
	}
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sideCallTimeout)
		defer cancel()

		if err := r.Record(ctx, q); err != nil {
			metrics.SideCallFailed(task)
			slog.Debug("best-effort side call failed", "task", task, "error", err)
		}
	}()
}

// Close waits for in-flight side calls to finish.
func (e *Engine) Close() {
	e.wg.Wait()
}
