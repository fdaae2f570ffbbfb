// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"inkpress/internal/models"
	"inkpress/internal/store"
)

func parseRole(s string) (models.Role, error) {
	role, ok := models.ParseRole(s)
	if !ok {
		return "", invalid("role", "must be admin, editor, author or reader")
	}
	return role, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CreateUser validates the input, hashes the password and inserts the
// user. A taken username or email yields models.ErrConflict.
func (s *Service) CreateUser(ctx context.Context, in models.NewUser) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	role, err := parseRole(in.Role)
	if err != nil {
		return nil, err
	}
	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	u := models.User{
		ID:           s.ids.Next(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Bio:          in.Bio,
		Avatar:       in.Avatar,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.st.Users.Add(ctx, &u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

// UpdateUser merges the patch over the stored user. A new password is
// hashed; username, email and role are validated like on create.
func (s *Service) UpdateUser(ctx context.Context, id int64, p models.UserPatch) (*models.User, error) {
	cur, err := find(ctx, s.st.Users, id)
	if err != nil {
		return nil, err
	}
	next := *cur
	p.Apply(&next)

	if p.Username != nil {
		next.Username = strings.TrimSpace(*p.Username)
		if err := validateUsername(next.Username); err != nil {
			return nil, err
		}
	}
	if p.Email != nil {
		next.Email = strings.ToLower(strings.TrimSpace(*p.Email))
		if err := validateEmail(next.Email); err != nil {
			return nil, err
		}
	}
	if p.Role != nil {
		if next.Role, err = parseRole(*p.Role); err != nil {
			return nil, err
		}
	}
	if p.Password != nil {
		if err := validatePassword(*p.Password); err != nil {
			return nil, err
		}
		if next.PasswordHash, err = s.hashPassword(*p.Password); err != nil {
			return nil, err
		}
	}
	next.UpdatedAt = s.stamp(cur.UpdatedAt)

	if err := s.st.Users.Put(ctx, &next); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &next, nil
}

// DeleteUser removes a user. Articles keep the dangling author id.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.st.Users.Delete(ctx, id)
}

// User returns the user with the given id.
func (s *Service) User(ctx context.Context, id int64) (*models.User, error) {
	return find(ctx, s.st.Users, id)
}

// UserByEmail returns the user with the given email, matched
// case-insensitively.
func (s *Service) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userBy(ctx, store.IndexEmail, strings.ToLower(strings.TrimSpace(email)))
}

// UserByUsername returns the user with the given username.
func (s *Service) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userBy(ctx, store.IndexUsername, strings.TrimSpace(username))
}

func (s *Service) userBy(ctx context.Context, index, value string) (*models.User, error) {
	u, err := s.st.Users.FirstByIndex(ctx, index, value)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s %q: %w", index, value, models.ErrNotFound)
	}
	return u, nil
}

// ListUsers returns every user.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.st.Users.All(ctx)
}

// CheckPassword reports whether password matches the user's stored hash.
func CheckPassword(u *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
