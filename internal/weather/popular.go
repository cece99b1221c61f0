package weather

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"weather-dashboard/internal/location"
	"weather-dashboard/internal/types"
)

// PopularCities fetches current conditions for the fixed city list of the
// caller's region, or the global list when coords is nil. All cities are
// fetched concurrently and the result keeps the list order. Any failure
// fails the whole call.
func (s *weatherService) PopularCities(ctx context.Context, coords *types.Coords) ([]CityWeather, error) {
	region := location.RegionGlobal
	if coords != nil && coords.IsFinite() {
		region = location.RegionFor(coords.Latitude, coords.Longitude)
	}
	cities := location.CitiesFor(region)

	s.logger.Debug("fetching popular cities", "region", region, "cities", len(cities))

	results := make([]CityWeather, len(cities))

	g, gctx := errgroup.WithContext(ctx)
	for i, city := range cities {
		g.Go(func() error {
			resp, err := s.forecastProvider.GetCurrent(gctx, city.Coords.Latitude, city.Coords.Longitude)
			if err != nil {
				return fmt.Errorf("%s: %w", city.Name, err)
			}

			code := missingCode
			if resp.Current.WeatherCode != nil {
				code = *resp.Current.WeatherCode
			}
			condition := types.Classify(code)

			results[i] = CityWeather{
				Name:        city.Name,
				Temp:        fmt.Sprintf("%d°", types.RoundOrZero(types.ValueOrNaN(resp.Current.Temperature2M))),
				Condition:   string(condition.Category),
				Description: condition.Description,
				Icon:        condition.Icon,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to fetch popular cities", "region", region, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return results, nil
}
