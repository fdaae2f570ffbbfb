// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"

	"inkpress/internal/models"
)

var userSchema = schema[models.User]{
	kind: "users",
	columns: []string{
		"id", "username", "email", "password_hash", "first_name", "last_name",
		"bio", "avatar", "role", "is_active", "last_login", "created_at", "updated_at",
	},
	indexes: map[string]index{
		IndexEmail:    {column: "email", unique: true},
		IndexUsername: {column: "username", unique: true},
	},
	id:     func(u *models.User) int64 { return u.ID },
	scan:   scanUser,
	values: userValues,
}

// scanUser scans a row into a User struct. Rows written with the legacy
// "user" role are read back as readers.
func scanUser(s scanner) (*models.User, error) {
	var (
		u                    models.User
		first, last          sql.NullString
		bio, avatar          sql.NullString
		role                 string
		lastLogin            sql.NullString
		createdAt, updatedAt string
	)
	err := s.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &first, &last,
		&bio, &avatar, &role, &u.IsActive, &lastLogin, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.FirstName = stringPtr(first)
	u.LastName = stringPtr(last)
	u.Bio = stringPtr(bio)
	u.Avatar = stringPtr(avatar)
	if r, ok := models.ParseRole(role); ok {
		u.Role = r
	} else {
		u.Role = models.Role(role)
	}
	if u.LastLogin, err = parseNullTime(lastLogin); err != nil {
		return nil, err
	}
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func userValues(u *models.User) ([]any, error) {
	return []any{
		u.ID, u.Username, u.Email, u.PasswordHash, nullString(u.FirstName), nullString(u.LastName),
		nullString(u.Bio), nullString(u.Avatar), string(u.Role), u.IsActive, nullTime(u.LastLogin),
		formatTime(u.CreatedAt), formatTime(u.UpdatedAt),
	}, nil
}
