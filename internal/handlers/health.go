package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/recipe-api/internal/logger"
)

// Pinger defines the database check used by the readiness probe.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse represents the readiness state
// swagger:model HealthResponse
type HealthResponse struct {
	// ok or unavailable
	// default: ok
	Status string `json:"status"`
}

// NewHealthHandler returns a readiness probe that pings the database.
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Ready"
// @Failure 503 {object} handlers.HealthResponse "Database unreachable"
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Log.Warnw("readiness check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
