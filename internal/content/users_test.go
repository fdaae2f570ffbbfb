// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"inkpress/internal/models"
)

func TestCreateUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, models.NewUser{Username: "ada", Email: " Ada@Example.com ", Password: "secret1"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.Role != models.RoleReader {
		t.Errorf("role = %q, want reader", u.Role)
	}
	if u.Email != "ada@example.com" || !u.IsActive {
		t.Errorf("user = %+v", u)
	}
	if u.PasswordHash == "secret1" || !CheckPassword(u, "secret1") || CheckPassword(u, "wrong") {
		t.Error("password not hashed or not verifiable")
	}

	b, _ := json.Marshal(u)
	if strings.Contains(string(b), u.PasswordHash) {
		t.Error("password hash leaked into JSON")
	}

	byEmail, err := svc.UserByEmail(ctx, "ADA@example.com")
	if err != nil || byEmail.ID != u.ID {
		t.Errorf("UserByEmail = %+v, %v", byEmail, err)
	}
	byName, err := svc.UserByUsername(ctx, "ada")
	if err != nil || byName.ID != u.ID {
		t.Errorf("UserByUsername = %+v, %v", byName, err)
	}
}

func TestCreateUserRejects(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, models.NewUser{Username: "ada", Email: "ada@example.com", Password: "secret1", Role: "admin"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	tests := []struct {
		name string
		in   models.NewUser
		want error
	}{
		{"missing username", models.NewUser{Email: "x@example.com", Password: "secret1"}, models.ErrValidation},
		{"malformed email", models.NewUser{Username: "x", Email: "not-an-email", Password: "secret1"}, models.ErrValidation},
		{"short password", models.NewUser{Username: "x", Email: "x@example.com", Password: "12345"}, models.ErrValidation},
		{"unknown role", models.NewUser{Username: "x", Email: "x@example.com", Password: "secret1", Role: "owner"}, models.ErrValidation},
		{"taken email", models.NewUser{Username: "x", Email: "ada@example.com", Password: "secret1"}, models.ErrConflict},
		{"taken username", models.NewUser{Username: "ada", Email: "x@example.com", Password: "secret1"}, models.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(ctx, tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLegacyUserRole(t *testing.T) {
	svc, _ := newTestService(t)

	u, err := svc.CreateUser(context.Background(), models.NewUser{Username: "old", Email: "old@example.com", Password: "secret1", Role: "user"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.Role != models.RoleReader {
		t.Errorf("legacy role stored as %q, want reader", u.Role)
	}
}

func TestUpdateUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	u, _ := svc.CreateUser(ctx, models.NewUser{Username: "ada", Email: "ada@example.com", Password: "secret1", Bio: ptr("hi")})

	role := "editor"
	password := "another-secret"
	got, err := svc.UpdateUser(ctx, u.ID, models.UserPatch{
		Role:      &role,
		Password:  &password,
		Bio:       models.Null[string](),
		FirstName: models.Some("Ada"),
	})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if got.Role != models.RoleEditor || got.Bio != nil || got.FirstName == nil || *got.FirstName != "Ada" {
		t.Errorf("updated user = %+v", got)
	}
	if !CheckPassword(got, password) || CheckPassword(got, "secret1") {
		t.Error("password not rehashed")
	}

	bad := "nope"
	if _, err := svc.UpdateUser(ctx, u.ID, models.UserPatch{Email: &bad}); !errors.Is(err, models.ErrValidation) {
		t.Errorf("bad email: got %v", err)
	}
	if _, err := svc.UpdateUser(ctx, 1, models.UserPatch{}); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("unknown user: got %v", err)
	}

	if err := svc.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	users, _ := svc.ListUsers(ctx)
	if len(users) != 0 {
		t.Errorf("users after delete = %d", len(users))
	}
}
