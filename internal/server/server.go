package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/eletronicos-be/internal/auth"
	"github.com/hongminglow/eletronicos-be/internal/config"
	"github.com/hongminglow/eletronicos-be/internal/http/handlers"
	"github.com/hongminglow/eletronicos-be/internal/middleware"
	"github.com/hongminglow/eletronicos-be/internal/storage"
)

// maxRequestBodySize is the largest JSON body accepted (1 MB).
const maxRequestBodySize = 1 << 20

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, tokens *auth.TokenManager, logger *slog.Logger) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           NewHandler(cfg, store, tokens, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// NewHandler builds the routed handler. Registration and login are public;
// every /eletronicos route sits behind RequireToken.
func NewHandler(cfg config.Config, store storage.Store, tokens *auth.TokenManager, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.BodyLimit(maxRequestBodySize))

	handlers.NewHealthHandler(time.Now(), store).Register(r)
	handlers.NewAuthHandler(store, tokens, cfg.BcryptCost, logger).Register(r)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireToken(tokens, logger))
		handlers.NewApplianceHandler(store, logger).Register(r)
	})

	return r
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
