package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Weather endpoints
	app.router.GET("/weather", app.handleGetWeather)
	app.router.GET("/popular-cities", app.handleGetPopularCities)
	app.router.GET("/forecast/chart", app.handleGetForecastChart)

	// Preference endpoints
	prefs := app.router.Group("/preferences/background")
	prefs.GET("", app.handleGetBackground)
	prefs.PUT("", app.handleSelectBackground)
	prefs.POST("/custom", app.handleAddCustomBackground)
	prefs.DELETE("/custom/:index", app.handleRemoveCustomBackground)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
