package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/campusware/campus-admin/config"
	httpx "github.com/campusware/campus-admin/internal/http"
)

const shutdownTimeout = 10 * time.Second

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunHTTPServer runs the HTTP server until ctx is canceled or the listener
// fails, then shuts it down gracefully.
func RunHTTPServer(ctx context.Context, cfg *HTTPServerConfig) error {
	if cfg == nil || cfg.Config == nil {
		return errors.New("http server config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	handler := buildHTTPHandler(logger, cfg)
	addr := cfg.Config.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}

		logger.Info("HTTP server stopped")
		return nil
	})

	return g.Wait()
}

// buildHTTPHandler assembles the router with its middleware chain.
// Order: Recover -> Logging -> Router.
func buildHTTPHandler(logger *slog.Logger, cfg *HTTPServerConfig) http.Handler {
	h := httpx.NewRouter(httpx.RouterServices{
		Sessions:     cfg.Services.Sessions,
		Nav:          cfg.Services.Nav,
		CookieDomain: cfg.Config.HTTP.CookieDomain,
		SecureCookie: cfg.Config.HTTP.SecureCookie(),
		Logger:       logger,
	})

	h = httpx.Logging(logger)(h)
	h = httpx.Recover(logger)(h)
	return h
}
