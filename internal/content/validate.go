// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"inkpress/internal/models"
)

// Validation limits for record fields.
const (
	maxTitleLen       = 300
	maxSlugLen        = 300
	maxBodyLen        = 100_000
	maxExcerptLen     = 1_000
	maxMetaTitleLen   = 300
	maxMetaDescLen    = 500
	maxMetaKeywordLen = 500
	maxNameLen        = 100
	maxDescLen        = 1_000
	maxUsernameLen    = 50
	maxCommentLen     = 5_000
	minPasswordLen    = 6
)

// emailPattern accepts anything shaped like local@domain.tld.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func invalid(field, msg string) error {
	return &models.ValidationError{Field: field, Message: msg}
}

func tooLong(s string, n int) bool {
	return utf8.RuneCountInString(s) > n
}

func optTooLong(s *string, n int) bool {
	return s != nil && tooLong(*s, n)
}

// validateArticle checks an article before it is written and returns the
// first problem found.
func validateArticle(a *models.Article) error {
	switch {
	case strings.TrimSpace(a.Title) == "":
		return invalid("title", "is required")
	case tooLong(a.Title, maxTitleLen):
		return invalid("title", "is too long (max 300 characters)")
	case tooLong(a.Slug, maxSlugLen):
		return invalid("slug", "is too long (max 300 characters)")
	case tooLong(a.Content, maxBodyLen):
		return invalid("content", "is too long (max 100,000 characters)")
	case optTooLong(a.Excerpt, maxExcerptLen):
		return invalid("excerpt", "is too long (max 1,000 characters)")
	case optTooLong(a.MetaTitle, maxMetaTitleLen):
		return invalid("meta_title", "is too long (max 300 characters)")
	case optTooLong(a.MetaDescription, maxMetaDescLen):
		return invalid("meta_description", "is too long (max 500 characters)")
	case optTooLong(a.MetaKeywords, maxMetaKeywordLen):
		return invalid("meta_keywords", "are too long (max 500 characters)")
	case !a.Status.Valid():
		return invalid("status", "must be draft, published or archived")
	case a.ReadingTime < 0:
		return invalid("reading_time", "must not be negative")
	case a.ViewCount < 0:
		return invalid("view_count", "must not be negative")
	case a.LikeCount < 0:
		return invalid("like_count", "must not be negative")
	case a.CommentCount < 0:
		return invalid("comment_count", "must not be negative")
	}
	return nil
}

// validateName checks the display name of a category, tag or series.
func validateName(field, name string, desc *string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return invalid(field, "is required")
	case tooLong(name, maxNameLen):
		return invalid(field, "is too long (max 100 characters)")
	case optTooLong(desc, maxDescLen):
		return invalid("description", "is too long (max 1,000 characters)")
	}
	return nil
}

func validateUsername(s string) error {
	switch {
	case strings.TrimSpace(s) == "":
		return invalid("username", "is required")
	case tooLong(s, maxUsernameLen):
		return invalid("username", "is too long (max 50 characters)")
	}
	return nil
}

func validateEmail(s string) error {
	switch {
	case strings.TrimSpace(s) == "":
		return invalid("email", "is required")
	case !emailPattern.MatchString(s):
		return invalid("email", "is not a valid address")
	}
	return nil
}

func validatePassword(s string) error {
	if utf8.RuneCountInString(s) < minPasswordLen {
		return invalid("password", "must be at least 6 characters")
	}
	return nil
}

func validateComment(c *models.Comment) error {
	switch {
	case strings.TrimSpace(c.Content) == "":
		return invalid("content", "is required")
	case tooLong(c.Content, maxCommentLen):
		return invalid("content", "is too long (max 5,000 characters)")
	case strings.TrimSpace(c.Name) == "":
		return invalid("name", "is required")
	case tooLong(c.Name, maxNameLen):
		return invalid("name", "is too long (max 100 characters)")
	}
	return validateEmail(c.Email)
}
