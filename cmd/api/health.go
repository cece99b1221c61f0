package main

import (
	"net/http"
	"time"

	"weather-dashboard/internal/config"

	"github.com/gin-gonic/gin"
)

// PingResponse reports that the API is up
type PingResponse struct {
	Message string    `json:"message" example:"pong"`
	Service string    `json:"service" example:"weather-dashboard"`
	Time    time.Time `json:"time" example:"2025-10-17T05:00:00Z"` // Server time in UTC
}

// handlePing godoc
// @Summary Ping health check
// @Description Liveness probe for the weather API. Upstream providers are not contacted.
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
		Service: config.ServiceName,
		Time:    time.Now().UTC(),
	})
}
