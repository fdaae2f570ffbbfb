// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Comment is a reader comment on an article. ParentID threads replies.
type Comment struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	Content   string    `json:"content"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	LikeCount int64     `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentPatch is a partial update for a comment.
type CommentPatch struct {
	Content *string `json:"content"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
}

// Apply merges the patch over c.
func (p *CommentPatch) Apply(c *Comment) {
	setIf(&c.Content, p.Content)
	setIf(&c.Name, p.Name)
	setIf(&c.Email, p.Email)
}
