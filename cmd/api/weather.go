package main

import (
	"errors"
	"net/http"

	"weather-dashboard/internal/types"
	"weather-dashboard/internal/weather"

	"github.com/gin-gonic/gin"
)

// WeatherQueryInput defines the query parameters shared by the weather endpoints
type WeatherQueryInput struct {
	Latitude  *float64 `form:"lat" binding:"omitempty,latitude"`  // Latitude in decimal degrees
	Longitude *float64 `form:"lon" binding:"omitempty,longitude"` // Longitude in decimal degrees
	City      string   `form:"city" binding:"omitempty,max=200"`  // Free-text city name
}

// query converts the input to a service query. A coordinate needs both halves.
func (in WeatherQueryInput) query() weather.Query {
	q := weather.Query{City: in.City}
	if in.Latitude != nil && in.Longitude != nil {
		coords := types.NewCoords(*in.Latitude, *in.Longitude)
		q.Coords = &coords
	}
	return q
}

// handleGetWeather godoc
// @Summary Get unified weather
// @Description Current conditions, 10 day and 48 hour forecasts for a coordinate or a city name. The city wins when both are given.
// @Tags weather
// @Produce json
// @Param lat query number false "Latitude in decimal degrees" minimum(-90) maximum(90) example(28.6139)
// @Param lon query number false "Longitude in decimal degrees" minimum(-180) maximum(180) example(77.209)
// @Param city query string false "City name" example(Mumbai)
// @Success 200 {object} weather.UnifiedWeather
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	var input WeatherQueryInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Delegate to business layer
	unified, err := app.weatherService.FetchUnified(c.Request.Context(), input.query())
	if err != nil {
		app.writeWeatherError(c, err, "failed to fetch weather data")
		return
	}

	c.JSON(http.StatusOK, unified)
}

// writeWeatherError maps weather service errors to status codes. Upstream
// details are logged and never sent to the client.
func (app *App) writeWeatherError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, weather.ErrValidation), errors.Is(err, weather.ErrInvalidMode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, weather.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "city not found"})
	default:
		app.logger.Error(message,
			"path", c.FullPath(),
			"error", err,
		)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
