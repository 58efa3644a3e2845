package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthChecker defines the interface for health check operations.
type HealthChecker interface {
	Check() error
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	checkers map[string]HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers: make(map[string]HealthChecker),
	}
}

// RegisterChecker adds a dependency to the readiness probe.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	if checker == nil {
		return
	}
	h.checkers[name] = checker
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness reports 503 when any registered checker fails, for example
// when the messages directory cannot be read.
func (h *HealthHandler) Readiness(c *gin.Context) {
	status := http.StatusOK
	checks := make(map[string]interface{})

	for name, checker := range h.checkers {
		if err := checker.Check(); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks[name] = "ok"
		}
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	c.JSON(status, gin.H{
		"status": map[bool]string{true: "ok", false: "degraded"}[status == http.StatusOK],
		"checks": checks,
	})
}
