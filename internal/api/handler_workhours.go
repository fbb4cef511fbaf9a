package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetWorkHours handles GET /api/workhours.
func (h *Handler) GetWorkHours(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.WorkHours())
}

// Healthz handles GET /healthz.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
