package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/campusware/campus-admin/config"
	"github.com/campusware/campus-admin/internal/adapters/pgdir"
	"github.com/campusware/campus-admin/internal/adapters/redisstate"
	"github.com/campusware/campus-admin/internal/adapters/staticdir"
	"github.com/campusware/campus-admin/internal/devseed"
	"github.com/campusware/campus-admin/internal/domain/auth"
	"github.com/campusware/campus-admin/internal/ports"
	"github.com/campusware/campus-admin/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Sessions *service.SessionService
	Nav      *service.NavService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires the session and navigation services from configuration.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service deps and config are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	directory, err := buildDirectory(deps, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	sessions := service.NewSessionService(service.SessionServiceOptions{
		Directory: directory,
		Store:     redisstate.New(deps.RedisClient),
		TTL:       deps.Config.Auth.SessionTTL,
		Logger:    logger,
	})

	nav := service.NewNavService(service.NavServiceOptions{
		HistoryCapacity:  deps.Config.Router.HistoryCapacity,
		TransitionWindow: deps.Config.Router.TransitionWindow,
		Logger:           logger,
	})

	return ServiceContainer{Sessions: sessions, Nav: nav}, nil
}

// buildDirectory selects the identity directory for the configured mode.
//
//nolint:ireturn // directory selection happens at runtime.
func buildDirectory(deps *ServiceDeps, logger *slog.Logger) (ports.Directory, error) {
	switch deps.Config.Auth.Mode {
	case config.DirectoryModeStatic:
		users, err := deps.Config.Auth.DevUsers.ParseDevUsers()
		if err != nil {
			return nil, fmt.Errorf("parse dev users: %w", err)
		}
		logger.Warn("using static identity directory; do not use in production", "users", len(users))
		return staticDirectoryFromConfig(users)
	case config.DirectoryModePostgres:
		if deps.DB == nil {
			return nil, errors.New("postgres directory mode requires a database connection")
		}
		return pgdir.New(deps.DB), nil
	default:
		return nil, fmt.Errorf("unknown directory mode %q", deps.Config.Auth.Mode)
	}
}

func staticDirectoryFromConfig(users []config.DevUser) (*staticdir.Directory, error) {
	entries := make([]staticdir.User, 0, len(users))
	for _, u := range users {
		role, ok := auth.ParseRole(u.Role)
		if !ok {
			return nil, fmt.Errorf("dev user %q: unknown role %q", u.Username, u.Role)
		}
		entries = append(entries, staticdir.User{
			Username:    u.Username,
			Password:    u.Password,
			DisplayName: u.Username,
			Role:        role,
		})
	}
	return staticdir.New(entries), nil
}

// SeedDevUsers loads the configured dev user list into the PostgreSQL
// directory when seeding is enabled.
func SeedDevUsers(ctx context.Context, deps *ServiceDeps, logger *slog.Logger) error {
	if deps == nil || deps.Config == nil || !deps.Config.Auth.SeedUsers {
		return nil
	}
	if deps.Config.Auth.Mode != config.DirectoryModePostgres {
		return nil
	}

	users, err := deps.Config.Auth.DevUsers.ParseDevUsers()
	if err != nil {
		return fmt.Errorf("parse dev users: %w", err)
	}
	return devseed.Seed(ctx, pgdir.New(deps.DB), users, logger)
}
