package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/eletronicos-be/internal/http/respond"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler returns uptime and basic status.
type HealthHandler struct {
	startedAt time.Time
	db        Pinger
}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler(startedAt time.Time, db Pinger) *HealthHandler {
	return &HealthHandler{startedAt: startedAt, db: db}
}

// Register wires the handler into the router.
func (h *HealthHandler) Register(r chi.Router) {
	r.Get("/health", h.handle)
}

func (h *HealthHandler) handle(w http.ResponseWriter, r *http.Request) {
	status, dbState := http.StatusOK, "ok"
	if err := h.db.Ping(r.Context()); err != nil {
		status, dbState = http.StatusServiceUnavailable, "unreachable"
	}
	respond.JSON(w, status, map[string]string{
		"status":   http.StatusText(status),
		"uptime":   time.Since(h.startedAt).Truncate(time.Second).String(),
		"database": dbState,
	})
}
