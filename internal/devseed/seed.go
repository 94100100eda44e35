// Package devseed loads the configured dev user list into the PostgreSQL
// directory. Development only; existing usernames are left untouched.
package devseed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campusware/campus-admin/config"
	"github.com/campusware/campus-admin/internal/adapters/pgdir"
	"github.com/campusware/campus-admin/internal/domain/auth"
	apperrors "github.com/campusware/campus-admin/internal/errors"
)

// Seed creates a directory entry for each dev user. Duplicate usernames are
// skipped so seeding is safe to run on every startup.
func Seed(ctx context.Context, dir *pgdir.Directory, users []config.DevUser, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	for _, u := range users {
		role, ok := auth.ParseRole(u.Role)
		if !ok {
			return fmt.Errorf("seed user %q: unknown role %q", u.Username, u.Role)
		}

		_, err := dir.CreateUser(ctx, pgdir.NewUser{
			Username:    u.Username,
			Password:    u.Password,
			DisplayName: u.Username,
			Role:        role,
		})
		if err != nil {
			if apperrors.IsCode(err, apperrors.ErrCodeValidation) {
				logger.DebugContext(ctx, "seed user already exists", "user", u.Username)
				continue
			}
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
		logger.InfoContext(ctx, "seeded dev user", "user", u.Username, "role", role)
	}
	return nil
}
