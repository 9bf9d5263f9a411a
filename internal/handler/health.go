package handler

import (
	"context"
	"net/http"
	"time"
)

// Pinger reports whether the backing datastore is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the service health endpoint
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// Check handles GET /v1/health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{
		"status":   "ok",
		"database": "ok",
	}

	if err := h.db.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		WriteJSON(w, http.StatusServiceUnavailable, status)
		return
	}

	WriteJSON(w, http.StatusOK, status)
}
