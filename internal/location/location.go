package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"weather-dashboard/internal/providers/openstreetmap"
	"weather-dashboard/internal/types"
)

// ErrCityNotFound is returned when a city name cannot be resolved to a usable coordinate
var ErrCityNotFound = errors.New("city not found")

// fallbackPlaceName is shown when neither a geocoded name nor a coordinate is available
const fallbackPlaceName = "Current Location"

// Service resolves city names and coordinates
type Service interface {
	// ResolveCity forward geocodes a free-text city name
	ResolveCity(ctx context.Context, name string) (types.Coords, error)
	// PlaceName returns a display name for a coordinate. It never fails.
	PlaceName(ctx context.Context, coords types.Coords) string
}

// ReverseGeocodeProvider defines the interface for location data providers
type ReverseGeocodeProvider interface {
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}

// GeocodeProvider defines the interface for forward geocoding providers
type GeocodeProvider interface {
	Search(ctx context.Context, query string, limit int) (openstreetmap.SearchAPIResponse, error)
}

// OpenStreetMapProvider serves both directions
type OpenStreetMapProvider interface {
	ReverseGeocodeProvider
	GeocodeProvider
}

type locationService struct {
	geocodeProvider        GeocodeProvider
	reverseGeocodeProvider ReverseGeocodeProvider
	logger                 *slog.Logger
}

// NewLocationService creates a location service backed by a single Nominatim client
func NewLocationService(provider OpenStreetMapProvider, logger *slog.Logger) Service {
	return NewLocationServiceWithProviders(provider, provider, logger)
}

// NewLocationServiceWithProviders creates a new location service with custom providers
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	geocodeProvider GeocodeProvider,
	reverseGeocodeProvider ReverseGeocodeProvider,
	logger *slog.Logger,
) Service {
	return &locationService{
		geocodeProvider:        geocodeProvider,
		reverseGeocodeProvider: reverseGeocodeProvider,
		logger:                 logger.With("component", "location-service"),
	}
}

func (s *locationService) ResolveCity(ctx context.Context, name string) (types.Coords, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Coords{}, fmt.Errorf("%w: empty name", ErrCityNotFound)
	}

	results, err := s.geocodeProvider.Search(ctx, name, 1)
	if err != nil {
		s.logger.Warn("forward geocode failed", "city", name, "error", err)
		return types.Coords{}, fmt.Errorf("%w: %q: %v", ErrCityNotFound, name, err)
	}
	if len(results) == 0 {
		return types.Coords{}, fmt.Errorf("%w: %q", ErrCityNotFound, name)
	}

	coords, err := parseCoords(results[0].Lat, results[0].Lon)
	if err != nil {
		return types.Coords{}, fmt.Errorf("%w: %q: %v", ErrCityNotFound, name, err)
	}

	s.logger.Debug("resolved city",
		"city", name,
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
	)

	return coords, nil
}

func (s *locationService) PlaceName(ctx context.Context, coords types.Coords) string {
	if !coords.IsFinite() {
		return fallbackPlaceName
	}

	resp, err := s.reverseGeocodeProvider.Lookup(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Warn("reverse geocode failed, using coordinates",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return coords.String()
	}
	if resp == nil {
		return coords.String()
	}

	if name := DisplayName(resp.Address); name != "" {
		return name
	}
	return coords.String()
}

// DisplayName joins district, city and state into "District, City, State".
// The district is dropped when it repeats the city and the state is only
// added after another part.
func DisplayName(addr openstreetmap.Address) string {
	district := firstNonEmpty(addr.Suburb, addr.Neighbourhood, addr.Quarter)
	city := firstNonEmpty(addr.City, addr.Town, addr.Village, addr.Municipality)
	state := firstNonEmpty(addr.State, addr.Province)

	parts := make([]string, 0, 3)
	if district != "" && district != city {
		parts = append(parts, district)
	}
	if city != "" {
		parts = append(parts, city)
	}
	if state != "" && len(parts) > 0 {
		parts = append(parts, state)
	}

	return strings.Join(parts, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func parseCoords(rawLat, rawLon string) (types.Coords, error) {
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return types.Coords{}, fmt.Errorf("invalid latitude %q: %w", rawLat, err)
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return types.Coords{}, fmt.Errorf("invalid longitude %q: %w", rawLon, err)
	}

	coords := types.NewCoords(lat, lon)
	if !coords.IsFinite() {
		return types.Coords{}, fmt.Errorf("non-finite coordinate %s, %s", rawLat, rawLon)
	}
	return coords, nil
}
