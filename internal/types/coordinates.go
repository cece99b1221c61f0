package types

import (
	"fmt"
	"math"
)

type Coords struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// IsFinite reports whether both components are usable numbers
func (c Coords) IsFinite() bool {
	return !math.IsNaN(c.Latitude) && !math.IsInf(c.Latitude, 0) &&
		!math.IsNaN(c.Longitude) && !math.IsInf(c.Longitude, 0)
}

// String renders the coordinate as "lat, lon" rounded to two decimals
func (c Coords) String() string {
	return fmt.Sprintf("%.2f, %.2f", c.Latitude, c.Longitude)
}
