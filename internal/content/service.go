// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content implements the mutation lifecycle over the record store:
// identifier assignment, timestamp stamping, derived fields (slugs, reading
// time, publish instants, article counts) and the read helpers built on the
// query pipeline.
package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"inkpress/internal/models"
	"inkpress/internal/slug"
	"inkpress/internal/store"
)

// Service is the caller-facing API for creating, updating and deleting
// records. Operations are independent: none of them spans a transaction
// across record kinds.
type Service struct {
	st         *store.Store
	now        func() time.Time
	ids        *IDGenerator
	bcryptCost int
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the wall clock used for timestamps and identifiers.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator replaces the identifier source.
func WithIDGenerator(g *IDGenerator) Option {
	return func(s *Service) { s.ids = g }
}

// WithBcryptCost sets the password hashing cost.
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.bcryptCost = cost }
}

// NewService creates a Service over an opened store.
func NewService(st *store.Store, opts ...Option) *Service {
	s := &Service{
		st:         st,
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = NewIDGenerator(s.now)
	}
	return s
}

// Store exposes the underlying collections for read paths that need them.
func (s *Service) Store() *store.Store {
	return s.st
}

// stamp returns the current instant, forced past prev so that updatedAt
// strictly increases even when the clock stalls or steps back.
func (s *Service) stamp(prev time.Time) time.Time {
	now := s.now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

// slugTaken adapts a collection's unique slug index to slug.ExistsFunc.
func slugTaken[T any](c *store.Collection[T]) slug.ExistsFunc {
	return func(ctx context.Context, s string) (bool, error) {
		rec, err := c.FirstByIndex(ctx, store.IndexSlug, s)
		return rec != nil, err
	}
}

// resolveSlug validates an explicit slug, or derives a free one from the
// fallback text when explicit is empty. Collisions on explicit slugs are
// left to the unique index.
func resolveSlug[T any](ctx context.Context, c *store.Collection[T], explicit, fallback string) (string, error) {
	if explicit != "" {
		if !slug.Valid(explicit) {
			return "", &models.ValidationError{Field: "slug", Message: "must contain only lowercase letters, digits and single hyphens"}
		}
		return explicit, nil
	}
	s, err := slug.Unique(ctx, slug.Generate(fallback), slugTaken(c))
	if err != nil {
		return "", fmt.Errorf("derive %s slug: %w", c.Kind(), err)
	}
	return s, nil
}

// patchSlug resolves a slug sent in an update. An empty value re-derives
// one from fallback, keeping current when it already matches.
func patchSlug[T any](ctx context.Context, c *store.Collection[T], current, sent, fallback string) (string, error) {
	sent = strings.TrimSpace(sent)
	if sent == current || (sent == "" && slug.Generate(fallback) == current) {
		return current, nil
	}
	return resolveSlug(ctx, c, sent, fallback)
}

// find fetches a record by id, or fails with not found.
func find[T any](ctx context.Context, c *store.Collection[T], id int64) (*T, error) {
	rec, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NotFound(c.Kind(), id)
	}
	return rec, nil
}

// bySlug fetches a record through the slug index, or fails with not found.
func bySlug[T any](ctx context.Context, c *store.Collection[T], s string) (*T, error) {
	rec, err := c.FirstByIndex(ctx, store.IndexSlug, s)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%s %q: %w", c.Kind(), s, models.ErrNotFound)
	}
	return rec, nil
}
