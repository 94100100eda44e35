package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	apperrors "github.com/campusware/campus-admin/internal/errors"
	"github.com/campusware/campus-admin/internal/ports"
	"github.com/campusware/campus-admin/internal/service"
)

// ClientIDCookie names the cookie that carries the durable client ID. The ID
// keys both storage slots and the client's navigation engine.
const ClientIDCookie = "client_id"

// SessionAPI is the slice of SessionService the HTTP layer depends on.
type SessionAPI interface {
	SignIn(ctx context.Context, clientID string, creds ports.Credentials) (*service.Account, error)
	Restore(ctx context.Context, clientID string) (*service.Account, error)
	SignOut(ctx context.Context, clientID string) error
}

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns a middleware that restores the account for the client ID
// cookie. Requests without a restorable account get 401. An expired or corrupt
// session keeps its session_expired code so clients know to sign in again; a
// client the store has never seen reads the same as a missing cookie.
func RequireAuth(sessions SessionAPI) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(ClientIDCookie)
			if err != nil || cookie.Value == "" {
				writeAuthRequired(w)
				return
			}

			account, err := sessions.Restore(r.Context(), cookie.Value)
			if err != nil {
				if apperrors.IsCode(err, apperrors.ErrCodeNotFound) {
					writeAuthRequired(w)
					return
				}
				WriteAppError(w, err)
				return
			}

			ctx := SetAuthInContext(r.Context(), &RequestAuth{ClientID: cookie.Value, Account: account})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthRequired(w http.ResponseWriter) {
	WriteError(w, ErrorParams{
		Code:    http.StatusUnauthorized,
		ErrCode: "authentication_required",
		Err:     errors.New("authentication required"),
	})
}
