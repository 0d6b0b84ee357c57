package server

import (
	"context"
	"net/http"
	"time"

	"github.com/tjwls100/souldiary-be/internal/auth"
	"github.com/tjwls100/souldiary-be/internal/config"
	"github.com/tjwls100/souldiary-be/internal/http/handlers"
	"github.com/tjwls100/souldiary-be/internal/middleware"
	"github.com/tjwls100/souldiary-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store) *Server {
	mux := http.NewServeMux()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	requireAuth := func(next http.Handler) http.Handler {
		return middleware.Auth(tokens, next)
	}

	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewUserHandler(store, tokens, cfg.InitialCoin).Register(mux, requireAuth)
	handlers.NewDiaryHandler(store).Register(mux, requireAuth)
	handlers.NewStickerHandler(store).Register(mux, requireAuth)
	handlers.NewCalendarHandler(store).Register(mux, requireAuth)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
