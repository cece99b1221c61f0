package weather

import "errors"

var (
	// ErrValidation is returned when neither a usable coordinate nor a city is supplied
	ErrValidation = errors.New("latitude and longitude or city name required")
	// ErrNotFound is returned when a city name cannot be geocoded
	ErrNotFound = errors.New("city not found")
	// ErrUpstream is returned when the forecast provider fails
	ErrUpstream = errors.New("failed to fetch weather data")
	// ErrInvalidMode is returned for an unknown chart mode
	ErrInvalidMode = errors.New("invalid chart mode")
)
