package httpx

import (
	"log/slog"
	"time"

	"github.com/campusware/campus-admin/internal/adapters/memstate"
	"github.com/campusware/campus-admin/internal/adapters/staticdir"
	"github.com/campusware/campus-admin/internal/domain/auth"
	"github.com/campusware/campus-admin/internal/service"
)

// newTestRouterServices wires a full in-memory stack for handler tests: a
// static directory, a map-backed state store, and a short transition window
// so navigation flags settle quickly.
func newTestRouterServices() RouterServices {
	logger := slog.New(slog.DiscardHandler)
	directory := staticdir.New([]staticdir.User{
		{Username: "admin", Password: "admin-pass", DisplayName: "Site Admin", Role: auth.RoleAdmin},
		{Username: "tutor", Password: "tutor-pass", DisplayName: "Class Tutor", Role: auth.RoleTeacher},
		{Username: "pupil", Password: "pupil-pass", DisplayName: "Pupil", Role: auth.RoleStudent},
	})
	sessions := service.NewSessionService(service.SessionServiceOptions{
		Directory: directory,
		Store:     memstate.New(),
		Logger:    logger,
	})
	nav := service.NewNavService(service.NavServiceOptions{
		TransitionWindow: time.Millisecond,
		Logger:           logger,
	})
	return RouterServices{Sessions: sessions, Nav: nav, Logger: logger}
}
