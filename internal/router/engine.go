package router

// Package router reconciles in-memory navigation state with the platform
// address bar and history mechanism. The engine owns the current route, its
// parameters, the transition flag, and the bounded history stack; consumers
// mutate them only through engine methods.

import (
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/campusware/campus-admin/internal/domain/nav"
	"github.com/campusware/campus-admin/internal/ports"
)

// DefaultTransitionWindow is how long the engine stays in the transient
// navigating state after a navigate call. The trailing timer only clears a
// flag consumed by loading overlays; a superseding navigation restarts it.
const DefaultTransitionWindow = 100 * time.Millisecond

// legacyPageParam is the pre-runtime deep-link form (?page=<route>). It is
// still resolved for old bookmarks but never emitted.
const legacyPageParam = "page"

// State is a read-only snapshot of the engine.
type State struct {
	Current      nav.Route         `json:"current_route"`
	Params       map[string]string `json:"route_params,omitempty"`
	Navigating   bool              `json:"is_navigating"`
	Key          int64             `json:"route_key"`
	CanGoBack    bool              `json:"can_go_back"`
	CanGoForward bool              `json:"can_go_forward"`
}

// Breadcrumb is one element of the breadcrumb trail.
type Breadcrumb struct {
	Title string    `json:"title"`
	Route nav.Route `json:"route"`
}

// Config groups engine dependencies and tuning.
type Config struct {
	Platform         ports.Platform
	HistoryCapacity  int           // default nav.DefaultHistoryCapacity
	TransitionWindow time.Duration // default DefaultTransitionWindow
	Logger           *slog.Logger
}

// NavigateOptions modifies a Navigate call.
type NavigateOptions struct {
	// Replace overwrites the current history entry instead of pushing a new one,
	// on both the in-memory stack and the platform.
	Replace bool
}

// Engine is the navigation state machine. Construct with New, then call
// Initialize once before any navigation; call Dispose when done.
//
// Concurrency: all methods are safe for concurrent use. A Navigate call that
// arrives while a transition is pending supersedes it (last write wins on
// route and params); the superseded transition timer is restarted.
type Engine struct {
	mu       sync.Mutex
	platform ports.Platform
	history  *nav.History
	logger   *slog.Logger
	window   time.Duration

	current    nav.Route
	params     map[string]string
	navigating bool
	routeKey   int64

	transitionTimer *time.Timer
	initialized     bool
}

// New constructs an engine. The platform is required.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	window := cfg.TransitionWindow
	if window <= 0 {
		window = DefaultTransitionWindow
	}
	return &Engine{
		platform: cfg.Platform,
		logger:   logger,
		window:   window,
		history: nav.NewHistory(nav.HistoryConfig{
			Seed:     nav.Entry{Route: nav.RouteDashboard},
			Capacity: cfg.HistoryCapacity,
		}),
		current: nav.RouteDashboard,
	}
}

// Initialize resolves the route for a freshly loaded URL and registers the
// popstate handler. It is a restore, not a navigation: nothing is pushed onto
// either history, and the route key is untouched. The resolved state is
// written back to the current platform entry so the payload, not the URL,
// is the source of truth on later restores.
func (e *Engine) Initialize() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initialized {
		return
	}
	e.initialized = true

	route, params := resolveLocation(e.platform.Location())
	e.current = route
	e.params = params
	e.history.Reset(nav.Entry{Route: route, Params: nav.CloneParams(params)})

	md := nav.Lookup(route)
	e.platform.ReplaceState(ports.HistoryState{Route: route, Params: nav.CloneParams(params)}, href(md.Path, params))
	e.platform.SetTitle(md.Title)
	e.platform.OnPopState(e.handlePopState)

	e.logger.Debug("router initialized", "route", route, "params", len(params))
}

// Dispose stops the pending transition timer. The engine must not be used
// after Dispose.
func (e *Engine) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.transitionTimer != nil {
		e.transitionTimer.Stop()
		e.transitionTimer = nil
	}
}

// Navigate moves to route with the given parameters. Unknown routes coerce to
// the not-found route rather than erroring. Navigating to the current route
// with deep-equal params is a no-op with no side effects.
func (e *Engine) Navigate(route nav.Route, params map[string]string, opts NavigateOptions) {
	if !nav.IsValid(string(route)) {
		e.logger.Warn("invalid route coerced to not-found", "route", string(route))
		route = nav.RouteNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if route == e.current && nav.EqualParams(params, e.params) {
		return
	}

	e.applyLocked(route, params, opts.Replace, true)
}

// applyLocked performs steps 3-7 of a navigation. Caller holds e.mu.
// When syncPlatform is false the platform entry is left alone: GoBack and
// GoForward move the platform through its own primitive instead, keeping the
// two histories in lock-step without rewriting neighboring entries.
func (e *Engine) applyLocked(route nav.Route, params map[string]string, replace, syncPlatform bool) {
	e.navigating = true
	e.current = route
	e.params = nav.CloneParams(params)
	e.routeKey++

	if !replace {
		e.history.Push(nav.Entry{Route: route, Params: nav.CloneParams(params)})
	}

	md := nav.Lookup(route)
	if syncPlatform {
		state := ports.HistoryState{Route: route, Params: nav.CloneParams(params)}
		target := href(md.Path, params)
		if replace {
			e.platform.ReplaceState(state, target)
		} else {
			e.platform.PushState(state, target)
		}
	}

	e.platform.SetTitle(md.Title)
	e.platform.ScrollToTop()

	if e.transitionTimer != nil {
		e.transitionTimer.Stop()
	}
	e.transitionTimer = time.AfterFunc(e.window, func() {
		e.mu.Lock()
		e.navigating = false
		e.mu.Unlock()
	})
}

// GoBack pops the in-memory stack and moves the platform history back in
// lock-step. A no-op when already at the oldest entry.
func (e *Engine) GoBack() {
	e.mu.Lock()
	entry, ok := e.history.Back()
	if !ok {
		e.mu.Unlock()
		return
	}
	e.applyLocked(entry.Route, entry.Params, true, false)
	e.mu.Unlock()

	e.platform.Back()
}

// GoForward is the symmetric counterpart of GoBack.
func (e *Engine) GoForward() {
	e.mu.Lock()
	entry, ok := e.history.Forward()
	if !ok {
		e.mu.Unlock()
		return
	}
	e.applyLocked(entry.Route, entry.Params, true, false)
	e.mu.Unlock()

	e.platform.Forward()
}

// handlePopState reacts to platform back/forward movement that did not
// originate from this engine. A recognized payload is adopted directly; it
// was valid when pushed, so no re-validation against paths is needed. A
// missing or unrecognized payload (entries predating this engine) falls back
// to re-resolving the address bar as Initialize does.
func (e *Engine) handlePopState(state *ports.HistoryState) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if state != nil && nav.IsValid(string(state.Route)) {
		if state.Route == e.current && nav.EqualParams(state.Params, e.params) {
			return
		}
		e.current = state.Route
		e.params = nav.CloneParams(state.Params)
		e.platform.SetTitle(nav.Lookup(state.Route).Title)
		return
	}

	route, params := resolveLocation(e.platform.Location())
	e.current = route
	e.params = params
	md := nav.Lookup(route)
	e.platform.ReplaceState(ports.HistoryState{Route: route, Params: nav.CloneParams(params)}, href(md.Path, params))
	e.platform.SetTitle(md.Title)
}

// State returns a snapshot of the router state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{
		Current:      e.current,
		Params:       nav.CloneParams(e.params),
		Navigating:   e.navigating,
		Key:          e.routeKey,
		CanGoBack:    e.history.CanGoBack(),
		CanGoForward: e.history.CanGoForward(),
	}
}

// CurrentRoute returns the current route.
func (e *Engine) CurrentRoute() nav.Route {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Breadcrumbs is a pure projection of the current route: Home, plus the
// current screen unless the current screen already is the dashboard.
func (e *Engine) Breadcrumbs() []Breadcrumb {
	e.mu.Lock()
	current := e.current
	e.mu.Unlock()

	crumbs := []Breadcrumb{{Title: "Home", Route: nav.RouteDashboard}}
	if current != nav.RouteDashboard {
		crumbs = append(crumbs, Breadcrumb{Title: nav.Lookup(current).Title, Route: current})
	}
	return crumbs
}

// resolveLocation maps an address-bar URL to a route and parameters:
// canonical path first, then the legacy ?page= form, then the dashboard.
// Every query parameter except the legacy page key becomes a route param.
func resolveLocation(loc *url.URL) (nav.Route, map[string]string) {
	query := url.Values{}
	path := "/"
	if loc != nil {
		query = loc.Query()
		if loc.Path != "" {
			path = loc.Path
		}
	}

	route, ok := nav.ByPath(path)
	if !ok {
		if legacy := query.Get(legacyPageParam); legacy != "" && nav.IsValid(legacy) {
			route = nav.Route(legacy)
		} else {
			route = nav.RouteDashboard
		}
	}

	var params map[string]string
	for key, values := range query {
		if key == legacyPageParam || len(values) == 0 {
			continue
		}
		if params == nil {
			params = make(map[string]string)
		}
		params[key] = values[0]
	}
	return route, params
}

// href renders the canonical path plus the params as a query string.
func href(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	return path + "?" + query.Encode()
}
