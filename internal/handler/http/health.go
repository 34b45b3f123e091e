package http

import (
	"net/http"
	"sync/atomic"

	"github.com/windfall/pitch_service/internal/logger"
	"github.com/windfall/pitch_service/pkg/response"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	ready atomic.Bool
}

// NewHealthHandler creates a new health handler. It starts not ready; the
// server flips it once listeners are up.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// SetReady sets the ready state.
func (h *HealthHandler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Health checks if the service is healthy.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": logger.ServiceName,
	})
}

// Ready checks if the service is ready to receive traffic.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.ready.Load() {
		response.Error(w, http.StatusServiceUnavailable, &response.ErrorBody{
			Code:    "NOT_READY",
			Message: "service is starting or shutting down",
		})
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status": "ready",
	})
}

// Live checks if the service is alive (for Kubernetes liveness probe).
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status": "alive",
	})
}
