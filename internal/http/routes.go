package httpx

import (
	"log/slog"
	"net/http"

	"github.com/campusware/campus-admin/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Sessions     SessionAPI
	Nav          *service.NavService
	CookieDomain string
	SecureCookie bool
	Logger       *slog.Logger
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Sessions,
		Nav:          services.Nav,
		CookieDomain: services.CookieDomain,
		Secure:       services.SecureCookie,
		Logger:       services.Logger,
	}
	navHandlers := &NavHandlers{Svc: services.Nav}
	accessHandlers := &AccessHandlers{}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	mux.HandleFunc("POST /auth/sign-in", authHandlers.SignIn)
	mux.HandleFunc("POST /auth/sign-out", authHandlers.SignOut)
	mux.HandleFunc("GET /auth/status", authHandlers.Status)

	requireAuth := RequireAuth(services.Sessions)
	mux.Handle("GET /api/nav/state", requireAuth(http.HandlerFunc(navHandlers.State)))
	mux.Handle("POST /api/nav/navigate", requireAuth(http.HandlerFunc(navHandlers.Navigate)))
	mux.Handle("POST /api/nav/back", requireAuth(http.HandlerFunc(navHandlers.Back)))
	mux.Handle("POST /api/nav/forward", requireAuth(http.HandlerFunc(navHandlers.Forward)))
	mux.Handle("GET /api/nav/breadcrumbs", requireAuth(http.HandlerFunc(navHandlers.Breadcrumbs)))
	mux.Handle("GET /api/menu", requireAuth(http.HandlerFunc(navHandlers.Menu)))
	mux.Handle("GET /api/access", requireAuth(http.HandlerFunc(accessHandlers.Summary)))
	mux.Handle("POST /api/access/capability", requireAuth(http.HandlerFunc(accessHandlers.Capability)))

	return mux
}
