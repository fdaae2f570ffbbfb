// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"inkpress/internal/models"
)

// commentInput is the body accepted when posting a comment. The article
// comes from the URL.
type commentInput struct {
	Content  string `json:"content"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ParentID *int64 `json:"parent_id"`
}

// ArticleComments handles GET /articles/{id}/comments.
func (a *API) ArticleComments(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	comments, err := a.svc.CommentsByArticle(r.Context(), id)
	respond(w, r, http.StatusOK, comments, err)
}

// CreateComment handles POST /articles/{id}/comments.
func (a *API) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var in commentInput
	if !decodeJSON(w, r, &in) {
		return
	}
	c, err := a.svc.CreateComment(r.Context(), models.Comment{
		ArticleID: id,
		Content:   in.Content,
		Name:      in.Name,
		Email:     in.Email,
		ParentID:  in.ParentID,
	})
	respond(w, r, http.StatusCreated, c, err)
}

// UpdateComment handles PATCH /comments/{id}.
func (a *API) UpdateComment(w http.ResponseWriter, r *http.Request) {
	updateFrom[models.CommentPatch](w, r, a.svc.UpdateComment)
}

// DeleteComment handles DELETE /comments/{id}.
func (a *API) DeleteComment(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, a.svc.DeleteComment)
}

// LikeComment handles POST /comments/{id}/like.
func (a *API) LikeComment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	n, err := a.svc.LikeComment(r.Context(), id)
	respond(w, r, http.StatusOK, counter{ID: id, Count: n}, err)
}

// CommentReplies handles GET /comments/{id}/replies.
func (a *API) CommentReplies(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	replies, err := a.svc.Replies(r.Context(), id)
	respond(w, r, http.StatusOK, replies, err)
}
