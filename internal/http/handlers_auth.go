package httpx

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/campusware/campus-admin/internal/ports"
	"github.com/campusware/campus-admin/internal/service"
)

// AuthHandlers provides HTTP handlers for sign-in, sign-out, and session
// status.
type AuthHandlers struct {
	Svc          SessionAPI
	Nav          *service.NavService
	CookieDomain string
	Secure       bool
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignIn handles credential sign-in.
// POST /auth/sign-in.
//
// The client ID cookie is reused when present so a re-login lands in the same
// storage slots; a fresh client gets a new ID.
func (h *AuthHandlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	clientID := ""
	if cookie, err := r.Cookie(ClientIDCookie); err == nil {
		clientID = cookie.Value
	}
	if clientID == "" {
		clientID = uuid.NewString()
	}

	account, err := h.Svc.SignIn(r.Context(), clientID, ports.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.setClientCookie(w, clientID)
	WriteJSON(w, http.StatusOK, account)
}

// SignOut handles sign-out.
// POST /auth/sign-out.
//
// Clears the storage slots, drops the navigation engine, and expires the
// cookie. Signing out while signed out is a success.
func (h *AuthHandlers) SignOut(w http.ResponseWriter, r *http.Request) {
	clientID := ""
	if cookie, err := r.Cookie(ClientIDCookie); err == nil {
		clientID = cookie.Value
	}

	if err := h.Svc.SignOut(r.Context(), clientID); err != nil {
		h.logger().WarnContext(r.Context(), "sign-out failed", "error", err)
	}
	if h.Nav != nil && clientID != "" {
		h.Nav.Release(clientID)
	}

	h.clearClientCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Status reports the restored account for the current client.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(ClientIDCookie)
	if err != nil || cookie.Value == "" {
		writeAuthRequired(w)
		return
	}

	account, err := h.Svc.Restore(r.Context(), cookie.Value)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, account)
}

func (h *AuthHandlers) setClientCookie(w http.ResponseWriter, clientID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     ClientIDCookie,
		Value:    clientID,
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   int(service.DefaultSessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandlers) clearClientCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     ClientIDCookie,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
