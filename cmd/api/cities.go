package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PopularCitiesInput defines the optional caller position used to pick a region
type PopularCitiesInput struct {
	Latitude  *float64 `form:"lat" binding:"omitempty,latitude"`
	Longitude *float64 `form:"lon" binding:"omitempty,longitude"`
}

// handleGetPopularCities godoc
// @Summary Get popular cities
// @Description Current temperature and condition for five cities of the caller's region (india, usa, europe, or global when the position is unknown or elsewhere)
// @Tags weather
// @Produce json
// @Param lat query number false "Latitude in decimal degrees" minimum(-90) maximum(90) example(40.7128)
// @Param lon query number false "Longitude in decimal degrees" minimum(-180) maximum(180) example(-74.006)
// @Success 200 {array} weather.CityWeather
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /popular-cities [get]
func (app *App) handleGetPopularCities(c *gin.Context) {
	var input PopularCitiesInput

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := WeatherQueryInput{Latitude: input.Latitude, Longitude: input.Longitude}.query()

	cities, err := app.weatherService.PopularCities(c.Request.Context(), q.Coords)
	if err != nil {
		app.writeWeatherError(c, err, "failed to fetch cities data")
		return
	}

	c.JSON(http.StatusOK, cities)
}
