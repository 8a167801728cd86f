package api

import (
	"net/http"
	"time"
)

type HealthResponse struct {
	Message       string            `json:"message"`
	Status        string            `json:"status"`
	Version       string            `json:"version"`
	UptimeSeconds int64             `json:"uptime_seconds"`
	Checks        map[string]string `json:"checks"`
}

type HealthHandler struct {
	provider  ProviderInfo
	version   string
	startTime time.Time
}

// ProviderInfo is the subset of the STT provider the health check reports on.
type ProviderInfo interface {
	Name() string
	Model() string
}

func NewHealthHandler(provider ProviderInfo, version string, startTime time.Time) *HealthHandler {
	return &HealthHandler{
		provider:  provider,
		version:   version,
		startTime: startTime,
	}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)
	status := "healthy"

	if h.provider != nil {
		checks["transcription"] = "ok"
		checks["provider"] = h.provider.Name()
	} else {
		checks["transcription"] = "not_configured"
		status = "degraded"
	}

	WriteJSON(w, http.StatusOK, HealthResponse{
		Message:       "SpeakWell API is running",
		Status:        status,
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Checks:        checks,
	})
}
