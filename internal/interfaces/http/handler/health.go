package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackcase/backend/internal/infrastructure/persistence"
)

// HealthHandler reports service liveness and database reachability.
type HealthHandler struct {
	BaseHandler
	db *persistence.Database
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(db *persistence.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"
	code := http.StatusOK

	if err := h.db.Ping(); err != nil {
		status = "degraded"
		dbStatus = "unreachable"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":   status,
		"database": dbStatus,
	})
}
