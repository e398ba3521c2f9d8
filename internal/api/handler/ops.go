// Package handler provides HTTP handlers for the GetSet API.
package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getset/getset/internal/api/models"
	"github.com/getset/getset/internal/api/response"
	"github.com/getset/getset/internal/provider/resilience"
	"github.com/getset/getset/internal/weather"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string

	// pingDB checks database connectivity; nil when running without a
	// database.
	pingDB func(ctx context.Context) error

	// weather exposes provider cache stats; nil when no provider is
	// configured.
	weather *weather.Service
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, pingDB func(ctx context.Context) error, weatherSvc *weather.Service) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		pingDB:    pingDB,
		weather:   weatherSvc,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. Fails when a
// configured database is unreachable.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}

	if h.pingDB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.pingDB(ctx); err != nil {
			health.Status = models.HealthStatusFail
			health.Details = map[string]interface{}{
				"database": err.Error(),
			}
			response.JSON(w, r, http.StatusServiceUnavailable, health)
			return
		}
	}

	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - subsystem and provider status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	now := models.Timestamp(time.Now())
	status := models.SystemStatus{
		Status: models.HealthStatusOK,
		Time:   now,
	}

	if h.pingDB != nil {
		dbStatus := models.SubsystemStatus{Name: "postgres", Status: models.HealthStatusOK}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		if err := h.pingDB(ctx); err != nil {
			detail := err.Error()
			dbStatus.Status = models.HealthStatusFail
			dbStatus.Detail = &detail
			status.Status = models.HealthStatusDegraded
		}
		cancel()
		status.Subsystems = append(status.Subsystems, dbStatus)
	} else {
		detail := "running on in-memory storage"
		status.Subsystems = append(status.Subsystems, models.SubsystemStatus{
			Name:   "storage",
			Status: models.HealthStatusOK,
			Detail: &detail,
		})
	}

	if h.weather != nil {
		stats := h.weather.Stats()
		detail := fmt.Sprintf("cache: %d current (%d fresh), %d forecast (%d fresh)",
			stats.CurrentEntries, stats.CurrentFreshEntries,
			stats.ForecastEntries, stats.ForecastFreshEntries)
		provider := models.ProviderStatus{
			Provider: stats.Provider,
			Status:   models.HealthStatusOK,
			Message:  &detail,
		}

		if health := resilience.GlobalRegistry.GetHealth(stats.Provider); health != nil {
			if health.IsDegraded() {
				provider.Status = models.HealthStatusDegraded
			} else if health.IsUnhealthy() {
				provider.Status = models.HealthStatusFail
				status.Status = models.HealthStatusDegraded
			}
			if health.LastSuccessAt != nil {
				ts := models.Timestamp(*health.LastSuccessAt)
				provider.LastSuccessAt = &ts
			}
			if health.LastFailureAt != nil {
				ts := models.Timestamp(*health.LastFailureAt)
				provider.LastFailureAt = &ts
			}
		}

		status.Providers = append(status.Providers, provider)
	}

	response.JSON(w, r, http.StatusOK, status)
}
