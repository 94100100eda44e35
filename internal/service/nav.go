package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/campusware/campus-admin/internal/adapters/memplatform"
	"github.com/campusware/campus-admin/internal/domain/nav"
	"github.com/campusware/campus-admin/internal/router"
)

// NavServiceOptions groups dependencies for NavService.
type NavServiceOptions struct {
	HistoryCapacity  int
	TransitionWindow time.Duration
	Logger           *slog.Logger
}

// NavService keeps one router engine per connected client. Each engine is
// backed by an in-memory platform seeded from the URL the client first
// reported, so deep links and legacy ?page= bookmarks resolve exactly as a
// fresh page load would.
type NavService struct {
	mu      sync.Mutex
	clients map[string]*clientNav

	capacity int
	window   time.Duration
	logger   *slog.Logger
}

type clientNav struct {
	engine   *router.Engine
	platform *memplatform.Platform
}

// NewNavService constructs a NavService.
func NewNavService(opts NavServiceOptions) *NavService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &NavService{
		clients:  make(map[string]*clientNav),
		capacity: opts.HistoryCapacity,
		window:   opts.TransitionWindow,
		logger:   logger,
	}
}

// engineFor returns the client's engine, creating and initializing one at
// initialHref on first sight. Later calls ignore initialHref.
func (s *NavService) engineFor(clientID, initialHref string) *router.Engine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.clients[clientID]; ok {
		return c.engine
	}

	if initialHref == "" {
		initialHref = "/"
	}
	platform := memplatform.New(initialHref)
	engine := router.New(router.Config{
		Platform:         platform,
		HistoryCapacity:  s.capacity,
		TransitionWindow: s.window,
		Logger:           s.logger,
	})
	engine.Initialize()
	s.clients[clientID] = &clientNav{engine: engine, platform: platform}

	s.logger.Debug("nav engine created", "client", clientID, "href", initialHref)
	return engine
}

// State resolves (or creates) the client's engine and returns its snapshot
// plus the canonical address the client should display.
func (s *NavService) State(clientID, initialHref string) (router.State, string) {
	engine := s.engineFor(clientID, initialHref)
	return engine.State(), s.address(clientID)
}

// Navigate moves the client to route. Unknown routes resolve to not-found.
func (s *NavService) Navigate(clientID string, route nav.Route, params map[string]string, replace bool) (router.State, string) {
	engine := s.engineFor(clientID, "")
	engine.Navigate(route, params, router.NavigateOptions{Replace: replace})
	return engine.State(), s.address(clientID)
}

// Back moves the client one history entry back; a no-op at the oldest entry.
func (s *NavService) Back(clientID string) (router.State, string) {
	engine := s.engineFor(clientID, "")
	engine.GoBack()
	return engine.State(), s.address(clientID)
}

// Forward moves the client one history entry forward.
func (s *NavService) Forward(clientID string) (router.State, string) {
	engine := s.engineFor(clientID, "")
	engine.GoForward()
	return engine.State(), s.address(clientID)
}

// Breadcrumbs returns the trail for the client's current route.
func (s *NavService) Breadcrumbs(clientID string) []router.Breadcrumb {
	return s.engineFor(clientID, "").Breadcrumbs()
}

// Release disposes the client's engine, typically on sign-out. Unknown
// clients are a no-op.
func (s *NavService) Release(clientID string) {
	s.mu.Lock()
	c, ok := s.clients[clientID]
	delete(s.clients, clientID)
	s.mu.Unlock()
	if ok {
		c.engine.Dispose()
	}
}

func (s *NavService) address(clientID string) string {
	s.mu.Lock()
	c, ok := s.clients[clientID]
	s.mu.Unlock()
	if !ok {
		return "/"
	}
	loc := c.platform.Location()
	if loc == nil {
		return "/"
	}
	if loc.RawQuery != "" {
		return loc.Path + "?" + loc.RawQuery
	}
	return loc.Path
}
