// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the records kept in the embedded store and the
// patch types used to update them.
package models

import (
	"strings"
	"time"
)

// Role represents a user's permission level in the system.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleAuthor Role = "author"
	RoleReader Role = "reader"

	// RoleLegacyUser is the reduced store's catch-all role. It is accepted
	// on input and stored as RoleReader.
	RoleLegacyUser Role = "user"
)

// ParseRole normalizes a role name. Empty input yields RoleReader.
// The second result is false for unknown roles.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return RoleReader, true
	case RoleLegacyUser:
		return RoleReader, true
	case RoleAdmin, RoleEditor, RoleAuthor, RoleReader:
		return r, true
	}
	return "", false
}

// User is a CMS account. The password is only ever stored hashed.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Never serialize the hash
	FirstName    *string    `json:"first_name,omitempty"`
	LastName     *string    `json:"last_name,omitempty"`
	Bio          *string    `json:"bio,omitempty"`
	Avatar       *string    `json:"avatar,omitempty"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanPublish returns true for roles allowed to publish articles.
func (u *User) CanPublish() bool {
	return u.Role == RoleAdmin || u.Role == RoleEditor || u.Role == RoleAuthor
}

// NewUser carries the fields accepted when registering a user. Password
// is plaintext and is hashed by the content service.
type NewUser struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Avatar    *string `json:"avatar"`
	Role      string  `json:"role"`
}

// UserPatch is a partial update for a user. Password, when set, is plaintext.
type UserPatch struct {
	Username  *string             `json:"username"`
	Email     *string             `json:"email"`
	Password  *string             `json:"password"`
	FirstName Nullable[string]    `json:"first_name"`
	LastName  Nullable[string]    `json:"last_name"`
	Bio       Nullable[string]    `json:"bio"`
	Avatar    Nullable[string]    `json:"avatar"`
	Role      *string             `json:"role"`
	IsActive  *bool               `json:"is_active"`
	LastLogin Nullable[time.Time] `json:"last_login"`
}

// Apply merges the profile fields of the patch over u. Username, email,
// password and role need validation and are handled by the caller.
func (p *UserPatch) Apply(u *User) {
	p.FirstName.ApplyTo(&u.FirstName)
	p.LastName.ApplyTo(&u.LastName)
	p.Bio.ApplyTo(&u.Bio)
	p.Avatar.ApplyTo(&u.Avatar)
	setIf(&u.IsActive, p.IsActive)
	p.LastLogin.ApplyTo(&u.LastLogin)
}
