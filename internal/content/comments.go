// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"inkpress/internal/metrics"
	"inkpress/internal/models"
	"inkpress/internal/store"
)

// CreateComment inserts a comment and bumps the article's comment count.
// A comment on an unknown article is kept; the count is simply skipped.
func (s *Service) CreateComment(ctx context.Context, in models.Comment) (*models.Comment, error) {
	c := in
	c.Content = strings.TrimSpace(c.Content)
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	if err := validateComment(&c); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	c.ID = s.ids.Next()
	c.LikeCount = 0
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := s.st.Comments.Add(ctx, &c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	_, err := s.st.Articles.Increment(ctx, c.ArticleID, store.CounterComments, now)
	switch {
	case errors.Is(err, models.ErrNotFound):
		slog.Debug("comment on unknown article", "comment_id", c.ID, "article_id", c.ArticleID)
	case err != nil:
		metrics.SideCallFailed("comment_count")
		slog.Warn("comment count update failed", "article_id", c.ArticleID, "error", err)
	}
	return &c, nil
}

// UpdateComment merges the patch over the stored comment.
func (s *Service) UpdateComment(ctx context.Context, id int64, p models.CommentPatch) (*models.Comment, error) {
	cur, err := find(ctx, s.st.Comments, id)
	if err != nil {
		return nil, err
	}
	next := *cur
	p.Apply(&next)
	next.Content = strings.TrimSpace(next.Content)
	next.Name = strings.TrimSpace(next.Name)
	next.Email = strings.TrimSpace(next.Email)
	if err := validateComment(&next); err != nil {
		return nil, err
	}
	next.UpdatedAt = s.stamp(cur.UpdatedAt)

	if err := s.st.Comments.Put(ctx, &next); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return &next, nil
}

// DeleteComment removes a comment. The article's comment count is a
// monotonic counter and is not decremented.
func (s *Service) DeleteComment(ctx context.Context, id int64) error {
	return s.st.Comments.Delete(ctx, id)
}

// LikeComment adds one like to a comment and returns the new count.
func (s *Service) LikeComment(ctx context.Context, id int64) (int64, error) {
	return s.st.Comments.Increment(ctx, id, store.CounterLikes, s.now().UTC())
}

// CommentsByArticle returns an article's comments, newest first.
func (s *Service) CommentsByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	comments, err := s.st.Comments.ByIndex(ctx, store.IndexArticle, articleID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(comments, func(a, b models.Comment) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return comments, nil
}

// Replies returns the direct replies to a comment, oldest first.
func (s *Service) Replies(ctx context.Context, parentID int64) ([]models.Comment, error) {
	replies, err := s.st.Comments.ByIndex(ctx, store.IndexParent, parentID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(replies, func(a, b models.Comment) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return replies, nil
}
