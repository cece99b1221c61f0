package main

import (
	"context"
	"fmt"
	"log/slog"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/preferences"
	"weather-dashboard/internal/weather"

	"github.com/gin-gonic/gin"

	_ "weather-dashboard/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	weatherService weather.Service
	backgrounds    *preferences.Backgrounds
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize weather service
	weatherSvc, err := weather.NewWeatherService(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Background preference is read once at startup
	backgrounds := preferences.NewBackgrounds(preferences.NewMemoryStore(), logger)
	if err := backgrounds.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to load background preferences: %w", err)
	}

	return NewAppWithServices(cfg, logger, weatherSvc, backgrounds), nil
}

// NewAppWithServices creates an application around existing services
// This is useful for testing with mock services
func NewAppWithServices(
	cfg *config.Config,
	logger *slog.Logger,
	weatherSvc weather.Service,
	backgrounds *preferences.Backgrounds,
) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	app := &App{
		router:         router,
		logger:         logger,
		weatherService: weatherSvc,
		backgrounds:    backgrounds,
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
