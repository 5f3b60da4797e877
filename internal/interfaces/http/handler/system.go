package handler

import (
	"net/http"
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
)

// SystemHandler handles health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	startedAt time.Time
	version   string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database, version string) *SystemHandler {
	return &SystemHandler{db: db, startedAt: time.Now(), version: version}
}

// HealthStatus is the health endpoint payload
type HealthStatus struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	Database string `json:"database"`
}

// Health reports process liveness and database connectivity
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	status := HealthStatus{
		Status:   "ok",
		Version:  h.version,
		Uptime:   time.Since(h.startedAt).Round(time.Second).String(),
		Database: "up",
	}

	httpStatus := http.StatusOK
	if err := h.db.Ping(); err != nil {
		status.Status = "degraded"
		status.Database = "down"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, status)
}
