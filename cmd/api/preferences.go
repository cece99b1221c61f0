package main

import (
	"errors"
	"net/http"
	"strconv"

	"weather-dashboard/internal/preferences"

	"github.com/gin-gonic/gin"
)

// maxCustomBackgroundBody leaves room for the JSON envelope around the data URL
const maxCustomBackgroundBody = preferences.MaxCustomBackgroundBytes + 1<<10

// SelectBackgroundInput is the body of PUT /preferences/background
type SelectBackgroundInput struct {
	URL string `json:"url" binding:"required" example:"https://images.unsplash.com/photo-1505142468610-359e7d316be0?w=1920&h=1080&fit=crop"`
}

// AddCustomBackgroundInput is the body of POST /preferences/background/custom
type AddCustomBackgroundInput struct {
	DataURL string `json:"dataUrl" binding:"required,max=5242880" example:"data:image/png;base64,iVBORw0KGgo="`
}

// handleGetBackground godoc
// @Summary Get background preference
// @Description The selected background, the built-in presets and the uploaded custom images
// @Tags preferences
// @Produce json
// @Success 200 {object} preferences.BackgroundState
// @Router /preferences/background [get]
func (app *App) handleGetBackground(c *gin.Context) {
	c.JSON(http.StatusOK, app.backgrounds.State())
}

// handleSelectBackground godoc
// @Summary Select background
// @Tags preferences
// @Accept json
// @Produce json
// @Param body body SelectBackgroundInput true "Background to select"
// @Success 200 {object} preferences.BackgroundState
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /preferences/background [put]
func (app *App) handleSelectBackground(c *gin.Context) {
	var input SelectBackgroundInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := app.backgrounds.Select(c.Request.Context(), input.URL)
	if err != nil {
		app.writePreferenceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// handleAddCustomBackground godoc
// @Summary Add custom background
// @Description Stores an uploaded image given as a data:image/ URL of at most 5 MiB
// @Tags preferences
// @Accept json
// @Produce json
// @Param body body AddCustomBackgroundInput true "Image data URL"
// @Success 201 {object} preferences.BackgroundState
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /preferences/background/custom [post]
func (app *App) handleAddCustomBackground(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxCustomBackgroundBody)

	var input AddCustomBackgroundInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := app.backgrounds.AddCustom(c.Request.Context(), input.DataURL)
	if err != nil {
		app.writePreferenceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, state)
}

// handleRemoveCustomBackground godoc
// @Summary Remove custom background
// @Tags preferences
// @Produce json
// @Param index path int true "Position in the custom list" minimum(0)
// @Success 200 {object} preferences.BackgroundState
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /preferences/background/custom/{index} [delete]
func (app *App) handleRemoveCustomBackground(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	state, err := app.backgrounds.RemoveCustom(c.Request.Context(), index)
	if err != nil {
		app.writePreferenceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (app *App) writePreferenceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, preferences.ErrInvalidBackground):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, preferences.ErrInvalidIndex):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		app.logger.Error("failed to save background preference", "error", err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save background preference"})
	}
}
