package staticdir

// Package staticdir provides a config-driven identity directory for local
// development: a fixed known-identity list with plaintext credentials, the
// dev-mode stand-in for the PostgreSQL directory.

import (
	"context"
	"crypto/subtle"

	"github.com/campusware/campus-admin/internal/domain/auth"
	apperrors "github.com/campusware/campus-admin/internal/errors"
	"github.com/campusware/campus-admin/internal/ports"
)

// User is one entry of the static identity list.
type User struct {
	Username    string
	Password    string
	DisplayName string
	Role        auth.Role
	Overrides   []auth.Permission
}

// Directory implements ports.Directory over a fixed user list.
type Directory struct {
	users map[string]User
}

var _ ports.Directory = (*Directory)(nil)

// New builds a directory from the given users. Later duplicates win.
func New(users []User) *Directory {
	m := make(map[string]User, len(users))
	for _, u := range users {
		if u.Username != "" {
			m[u.Username] = u
		}
	}
	return &Directory{users: m}
}

// Verify checks credentials against the static list.
func (d *Directory) Verify(_ context.Context, creds ports.Credentials) (auth.Identity, error) {
	u, ok := d.users[creds.Username]
	if !ok || subtle.ConstantTimeCompare([]byte(u.Password), []byte(creds.Password)) != 1 {
		return auth.Identity{}, apperrors.InvalidCredentials("invalid username or password")
	}
	return auth.Identity{
		ID:          u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		Overrides:   append([]auth.Permission(nil), u.Overrides...),
	}, nil
}
