// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"inkpress/internal/models"
)

// ListUsers handles GET /users.
func (a *API) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.svc.ListUsers(r.Context())
	respond(w, r, http.StatusOK, users, err)
}

// GetUser handles GET /users/{id}.
func (a *API) GetUser(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, a.svc.User)
}

// CreateUser handles POST /users.
func (a *API) CreateUser(w http.ResponseWriter, r *http.Request) {
	createFrom[models.NewUser](w, r, a.svc.CreateUser)
}

// UpdateUser handles PATCH /users/{id}.
func (a *API) UpdateUser(w http.ResponseWriter, r *http.Request) {
	updateFrom[models.UserPatch](w, r, a.svc.UpdateUser)
}

// DeleteUser handles DELETE /users/{id}.
func (a *API) DeleteUser(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, a.svc.DeleteUser)
}
