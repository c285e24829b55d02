package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/prometheus"
)

// healthCheckTimeout bounds each dependency probe.
const healthCheckTimeout = 5 * time.Second

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	checks  map[string]HealthCheck
	metrics *prometheus.AppMetrics
	log     logging.Logger
}

func NewHealthHandler(checks map[string]HealthCheck, metrics *prometheus.AppMetrics, log logging.Logger) *HealthHandler {
	return &HealthHandler{
		checks:  checks,
		metrics: metrics,
		log:     log,
	}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness probes every dependency and reports per-component status.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	components := make(map[string]string, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		err := check(ctx)
		if err != nil {
			healthy = false
			components[name] = "down"
			h.log.Warn("Health check failed",
				logging.String("component", name), logging.Err(err))
		} else {
			components[name] = "up"
		}
		if h.metrics != nil {
			value := 1.0
			if err != nil {
				value = 0
			}
			h.metrics.HealthCheckStatus.WithLabelValues(name).Set(value)
		}
	}

	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}
	c.JSON(status, gin.H{"status": overall, "components": components})
}

//Personal.AI order the ending
