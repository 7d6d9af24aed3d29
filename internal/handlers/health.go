package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
)

//go:generate mockgen -source=health.go -destination=mock_health_test.go -package=handlers

// Pinger is a dependency checked by the health check.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports process health.
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status string `json:"status"`
}

// NewHealthHandler returns an HTTP handler that reports 503 when the
// database does not answer within two seconds.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Log.Warnw("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
