package main

import (
	"net/http"

	"weather-dashboard/internal/weather"

	"github.com/gin-gonic/gin"
)

// ForecastChartInput adds the view mode to the weather query parameters
type ForecastChartInput struct {
	WeatherQueryInput
	Mode string `form:"mode" binding:"omitempty,oneof=hourly weekly"` // hourly or weekly
}

// handleGetForecastChart godoc
// @Summary Get chart series
// @Description Normalized forecast points for the temperature and wind charts. Hourly mode picks one sample per target hour of today; weekly mode plots the daily midpoint temperature.
// @Tags weather
// @Produce json
// @Param lat query number false "Latitude in decimal degrees" minimum(-90) maximum(90) example(51.5074)
// @Param lon query number false "Longitude in decimal degrees" minimum(-180) maximum(180) example(-0.1278)
// @Param city query string false "City name" example(London)
// @Param mode query string false "View mode" Enums(hourly, weekly) default(hourly)
// @Success 200 {object} weather.Chart
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /forecast/chart [get]
func (app *App) handleGetForecastChart(c *gin.Context) {
	var input ForecastChartInput

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chart, err := app.weatherService.Chart(c.Request.Context(), input.query(), weather.ChartMode(input.Mode))
	if err != nil {
		app.writeWeatherError(c, err, "failed to build forecast chart")
		return
	}

	c.JSON(http.StatusOK, chart)
}
