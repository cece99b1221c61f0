package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"weather-dashboard/internal/providers/upstream"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=28.61&longitude=77.21&current=temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m,surface_pressure,visibility&hourly=temperature_2m,weather_code,wind_speed_10m&daily=temperature_2m_max,temperature_2m_min,weather_code,wind_speed_10m_max&timezone=auto&forecast_days=10&wind_speed_unit=kmh
const (
	baseURL = "https://api.open-meteo.com/v1"

	// TimezoneAuto lets Open-Meteo resolve the timezone from the coordinate
	TimezoneAuto = "auto"
)

var (
	currentVars = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"weather_code",
		"wind_speed_10m",
		"surface_pressure",
		"visibility",
	}

	hourlyVars = []string{
		"temperature_2m",
		"weather_code",
		"wind_speed_10m",
	}

	dailyVars = []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"weather_code",
		"wind_speed_10m_max",
	}
)

type ForecastClient struct {
	client  *upstream.Client
	baseURL string
	logger  *slog.Logger
}

func NewForecastClient(base string, client *upstream.Client, logger *slog.Logger) *ForecastClient {
	if base == "" {
		base = baseURL
	}
	return &ForecastClient{
		client:  client,
		baseURL: strings.TrimRight(base, "/"),
		logger:  logger.With("component", "openmeteo-client"),
	}
}

// GetForecast fetches current conditions plus the hourly and daily series for a
// coordinate. Times in the response are local to tz.
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, tz string) (*ForecastAPIResponse, error) {
	if tz == "" {
		tz = TimezoneAuto
	}

	u, err := c.forecastURL(latitude, longitude, map[string]string{
		"current":         strings.Join(currentVars, ","),
		"hourly":          strings.Join(hourlyVars, ","),
		"daily":           strings.Join(dailyVars, ","),
		"timezone":        tz,
		"forecast_days":   strconv.Itoa(forecastDays),
		"wind_speed_unit": "kmh",
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetching Open-Meteo forecast",
		"latitude", latitude,
		"longitude", longitude,
		"timezone", tz,
		"url", u,
	)

	var apiResp ForecastAPIResponse
	if err := c.client.GetJSON(ctx, u, &apiResp); err != nil {
		c.logger.Error("failed to fetch Open-Meteo forecast",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, err
	}

	c.logger.Debug("successfully fetched Open-Meteo forecast",
		"latitude", latitude,
		"longitude", longitude,
		"timezone", apiResp.Timezone,
		"hourly_points", len(apiResp.Hourly.Time),
		"daily_points", len(apiResp.Daily.Time),
	)

	return &apiResp, nil
}

// GetCurrent fetches only the current temperature and weather code
func (c *ForecastClient) GetCurrent(ctx context.Context, latitude, longitude float64) (*CurrentAPIResponse, error) {
	u, err := c.forecastURL(latitude, longitude, map[string]string{
		"current":  "temperature_2m,weather_code",
		"timezone": TimezoneAuto,
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetching Open-Meteo current conditions",
		"latitude", latitude,
		"longitude", longitude,
	)

	var apiResp CurrentAPIResponse
	if err := c.client.GetJSON(ctx, u, &apiResp); err != nil {
		c.logger.Error("failed to fetch Open-Meteo current conditions",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, err
	}

	return &apiResp, nil
}

func (c *ForecastClient) forecastURL(latitude, longitude float64, params map[string]string) (string, error) {
	u, err := url.Parse(c.baseURL + "/forecast")
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
