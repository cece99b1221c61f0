package weather

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/forecast"
	"weather-dashboard/internal/location"
	"weather-dashboard/internal/providers/openmeteo"
	"weather-dashboard/internal/providers/openstreetmap"
	"weather-dashboard/internal/providers/upstream"
	"weather-dashboard/internal/timezone"
	"weather-dashboard/internal/types"
)

type ForecastProvider interface {
	// GetForecast fetches current conditions with the hourly and daily series for a coordinate
	GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*openmeteo.ForecastAPIResponse, error)
	// GetCurrent fetches the current temperature and weather code for a coordinate
	GetCurrent(ctx context.Context, latitude, longitude float64) (*openmeteo.CurrentAPIResponse, error)
}

type Service interface {
	FetchUnified(ctx context.Context, q Query) (*UnifiedWeather, error)
	PopularCities(ctx context.Context, coords *types.Coords) ([]CityWeather, error)
	Chart(ctx context.Context, q Query, mode ChartMode) (*Chart, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	locationService  location.Service
	timezoneService  timezone.Service
	cfg              *config.Config
	logger           *slog.Logger
	now              func() time.Time
}

// NewWeatherService wires the service to the live Open-Meteo and Nominatim APIs
func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	meteo := openmeteo.NewForecastClient(
		cfg.Upstream.OpenMeteoURL,
		upstream.NewClient(upstream.Options{
			Name:            "open-meteo",
			Timeout:         cfg.Upstream.Timeout,
			UserAgent:       cfg.Upstream.UserAgent,
			BreakerFailures: cfg.Upstream.BreakerFailures,
			BreakerTimeout:  cfg.Upstream.BreakerTimeout,
		}, logger),
		logger,
	)

	// Nominatim's usage policy allows one request per second
	osm := openstreetmap.NewClient(
		cfg.Upstream.NominatimURL,
		upstream.NewClient(upstream.Options{
			Name:            "nominatim",
			Timeout:         cfg.Upstream.Timeout,
			UserAgent:       cfg.Upstream.UserAgent,
			BreakerFailures: cfg.Upstream.BreakerFailures,
			BreakerTimeout:  cfg.Upstream.BreakerTimeout,
			RateLimit:       cfg.Upstream.NominatimRPS,
			Burst:           cfg.Upstream.NominatimBurst,
		}, logger),
		logger,
	)

	return NewWeatherServiceWithProviders(meteo, location.NewLocationService(osm, logger), tzSvc, cfg, logger), nil
}

// NewWeatherServiceWithProviders creates a weather service with custom providers
// This is useful for testing with mock providers
func NewWeatherServiceWithProviders(
	forecastProvider ForecastProvider,
	locationService location.Service,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		locationService:  locationService,
		timezoneService:  timezoneService,
		cfg:              cfg,
		logger:           logger.With("component", "weather-service"),
		now:              time.Now,
	}
}

// FetchUnified resolves the query to a coordinate, then fetches the forecast
// and the place name concurrently. A failed place lookup never fails the call.
func (s *weatherService) FetchUnified(ctx context.Context, q Query) (*UnifiedWeather, error) {
	coords, err := s.resolve(ctx, q)
	if err != nil {
		return nil, err
	}

	var (
		apiResponse *openmeteo.ForecastAPIResponse
		placeName   string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := s.fetchForecast(gctx, coords)
		if err != nil {
			return err
		}
		apiResponse = resp
		return nil
	})
	g.Go(func() error {
		placeName = s.locationService.PlaceName(gctx, coords)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mapForecastAPIResponse(apiResponse, coords, placeName, s.cfg.App.HourlyLimit, s.cfg.App.DailyLimit), nil
}

// Chart fetches the forecast for the query and normalizes the hourly or
// weekly series for plotting
func (s *weatherService) Chart(ctx context.Context, q Query, mode ChartMode) (*Chart, error) {
	if mode == "" {
		mode = ChartModeHourly
	}
	if mode != ChartModeHourly && mode != ChartModeWeekly {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	coords, err := s.resolve(ctx, q)
	if err != nil {
		return nil, err
	}

	apiResponse, err := s.fetchForecast(ctx, coords)
	if err != nil {
		return nil, err
	}

	data := mapForecastAPIResponse(apiResponse, coords, "", s.cfg.App.HourlyLimit, s.cfg.App.DailyLimit)

	normalizer := forecast.NewNormalizer(forecast.Options{
		TargetHours:        s.cfg.TargetHours(),
		SnapToleranceHours: s.cfg.Chart.SnapToleranceHours,
		FallbackCount:      s.cfg.Chart.FallbackCount,
		WeeklyDays:         s.cfg.Chart.WeeklyDays,
	}, data.Location)
	normalizer.Now = s.now

	chart := &Chart{
		Mode:     mode,
		Timezone: data.Timezone,
	}
	switch mode {
	case ChartModeWeekly:
		chart.Points = normalizer.Weekly(data.DailySamples)
	default:
		chart.Points = normalizer.Hourly(data.HourlySamples)
	}

	s.logger.Debug("built forecast chart",
		"mode", mode,
		"timezone", data.Timezone,
		"points", len(chart.Points),
	)

	return chart, nil
}

// resolve turns a query into a coordinate. Any supplied city wins over a
// coordinate, so a blank city is not found rather than invalid.
func (s *weatherService) resolve(ctx context.Context, q Query) (types.Coords, error) {
	if q.City != "" {
		city := strings.TrimSpace(q.City)
		if city == "" {
			return types.Coords{}, fmt.Errorf("%w: blank city name", ErrNotFound)
		}
		coords, err := s.locationService.ResolveCity(ctx, city)
		if err != nil {
			s.logger.Info("city geocoding failed", "city", city, "error", err)
			return types.Coords{}, fmt.Errorf("%w: %q", ErrNotFound, city)
		}
		return coords, nil
	}

	if q.Coords == nil {
		return types.Coords{}, ErrValidation
	}
	if !validCoords(*q.Coords) {
		return types.Coords{}, fmt.Errorf("%w: coordinate %v out of range", ErrValidation, *q.Coords)
	}

	return *q.Coords, nil
}

func validCoords(c types.Coords) bool {
	return c.IsFinite() &&
		math.Abs(c.Latitude) <= 90 &&
		math.Abs(c.Longitude) <= 180
}

func (s *weatherService) fetchForecast(ctx context.Context, coords types.Coords) (*openmeteo.ForecastAPIResponse, error) {
	// Look up timezone for the location, letting the provider decide when unknown
	tz, err := s.timezoneService.GetTimezone(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Warn("failed to determine timezone, using provider default",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		tz = openmeteo.TimezoneAuto
	}

	s.logger.Debug("determined timezone for location",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"timezone", tz,
	)

	apiResponse, err := s.forecastProvider.GetForecast(ctx, coords.Latitude, coords.Longitude, s.cfg.App.ForecastDays, tz)
	if err != nil {
		s.logger.Error("failed to get forecast from provider", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return apiResponse, nil
}
