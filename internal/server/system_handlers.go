package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shareit/internal/api"
)

// Health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} api.HealthResponse
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
}
