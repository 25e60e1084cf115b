package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// ReadinessCheck reports whether a dependency is ready to serve traffic.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// SystemHandler handles health and system information endpoints.
type SystemHandler struct {
	BaseHandler
	version   string
	startTime time.Time
	checks    []ReadinessCheck
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(version string, checks ...ReadinessCheck) *SystemHandler {
	return &SystemHandler{
		version:   version,
		startTime: time.Now(),
		checks:    checks,
	}
}

// HealthResponse represents the liveness response.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// ReadinessResponse represents the readiness response.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz handles GET /healthz. It reports liveness only and never
// touches downstream dependencies.
func (h *SystemHandler) Healthz(c *gin.Context) {
	h.Success(c, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Readyz handles GET /readyz. It runs the registered dependency checks
// and reports 503 if any of them fail.
func (h *SystemHandler) Readyz(c *gin.Context) {
	resp := ReadinessResponse{Status: "ready"}
	if len(h.checks) > 0 {
		resp.Checks = make(map[string]string, len(h.checks))
	}

	healthy := true
	for _, check := range h.checks {
		if err := check.Check(c.Request.Context()); err != nil {
			resp.Checks[check.Name] = err.Error()
			healthy = false
			continue
		}
		resp.Checks[check.Name] = "ok"
	}

	if !healthy {
		resp.Status = "not_ready"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	h.Success(c, resp)
}
