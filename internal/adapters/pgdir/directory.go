package pgdir

// Package pgdir is the PostgreSQL-backed identity directory: the production
// known-identity list behind ports.Directory. Credential verification is a
// lookup plus a constant-time digest compare; the navigation runtime never
// sees how it works.

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campusware/campus-admin/internal/data/pgxutil"
	"github.com/campusware/campus-admin/internal/domain/auth"
	apperrors "github.com/campusware/campus-admin/internal/errors"
	"github.com/campusware/campus-admin/internal/ports"
)

// Directory implements ports.Directory against the users table.
type Directory struct {
	DB *sql.DB
}

var _ ports.Directory = (*Directory)(nil)

// New creates a directory backed by the given database pool.
func New(db *sql.DB) *Directory {
	return &Directory{DB: db}
}

// Verify resolves credentials against the users table. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (d *Directory) Verify(ctx context.Context, creds ports.Credentials) (auth.Identity, error) {
	if creds.Username == "" || creds.Password == "" {
		return auth.Identity{}, apperrors.InvalidCredentials("username and password are required")
	}

	var (
		identity  auth.Identity
		storedSum string
		overrides []string
	)
	err := pgxutil.WithPgxConn(ctx, d.DB, func(conn *pgx.Conn) error {
		row := conn.QueryRow(ctx, `
			SELECT id, display_name, role, overrides, password_hash
			FROM users
			WHERE username = $1 AND active
		`, creds.Username)
		return row.Scan(&identity.ID, &identity.DisplayName, &identity.Role, &overrides, &storedSum)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Identity{}, apperrors.InvalidCredentials("invalid username or password")
		}
		return auth.Identity{}, fmt.Errorf("query user: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(storedSum), []byte(HashPassword(creds.Password))) != 1 {
		return auth.Identity{}, apperrors.InvalidCredentials("invalid username or password")
	}

	for _, o := range overrides {
		identity.Overrides = append(identity.Overrides, auth.Permission(o))
	}
	return identity, nil
}

// NewUser carries the fields for creating a directory entry.
type NewUser struct {
	Username    string
	Password    string
	DisplayName string
	Role        auth.Role
	Overrides   []auth.Permission
}

// CreateUser inserts a directory entry. Duplicate usernames map to a
// validation error via the unique-violation SQLSTATE.
func (d *Directory) CreateUser(ctx context.Context, u NewUser) (auth.Identity, error) {
	if u.Username == "" || u.Password == "" {
		return auth.Identity{}, apperrors.Validation("username and password are required")
	}
	if _, ok := auth.ParseRole(string(u.Role)); !ok {
		return auth.Identity{}, apperrors.Validation("unknown role " + string(u.Role))
	}

	var overrides []string
	for _, o := range u.Overrides {
		overrides = append(overrides, string(o))
	}

	var identity auth.Identity
	err := pgxutil.WithPgxConn(ctx, d.DB, func(conn *pgx.Conn) error {
		row := conn.QueryRow(ctx, `
			INSERT INTO users (username, password_hash, display_name, role, overrides)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, display_name, role
		`, u.Username, HashPassword(u.Password), u.DisplayName, string(u.Role), overrides)
		return row.Scan(&identity.ID, &identity.DisplayName, &identity.Role)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return auth.Identity{}, apperrors.Validation("username already exists")
		}
		return auth.Identity{}, fmt.Errorf("insert user: %w", err)
	}
	identity.Overrides = u.Overrides
	return identity, nil
}

// HashPassword returns the hex digest stored in the users table.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
