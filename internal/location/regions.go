package location

import "weather-dashboard/internal/types"

// Region keys a fixed list of popular cities
type Region string

const (
	RegionGlobal Region = "global"
	RegionIndia  Region = "india"
	RegionUSA    Region = "usa"
	RegionEurope Region = "europe"
)

// City is a named coordinate shown on the popular cities panel
type City struct {
	Name   string       `json:"name"`
	Coords types.Coords `json:"coord"`
}

type bounds struct {
	minLat, maxLat float64
	minLon, maxLon float64
}

func (b bounds) contains(lat, lon float64) bool {
	return lat >= b.minLat && lat <= b.maxLat && lon >= b.minLon && lon <= b.maxLon
}

// Checked in order, first match wins
var regionBounds = []struct {
	region Region
	bounds bounds
}{
	{RegionIndia, bounds{minLat: 6, maxLat: 37, minLon: 68, maxLon: 97}},
	{RegionUSA, bounds{minLat: 24, maxLat: 49, minLon: -125, maxLon: -66}},
	{RegionEurope, bounds{minLat: 35, maxLat: 71, minLon: -10, maxLon: 40}},
}

var (
	newYork = City{Name: "New York", Coords: types.NewCoords(40.7128, -74.006)}
	london  = City{Name: "London", Coords: types.NewCoords(51.5074, -0.1278)}
	paris   = City{Name: "Paris", Coords: types.NewCoords(48.8566, 2.3522)}

	regionCities = map[Region][]City{
		RegionGlobal: {
			newYork,
			london,
			{Name: "Tokyo", Coords: types.NewCoords(35.6762, 139.6503)},
			paris,
			{Name: "Sydney", Coords: types.NewCoords(-33.8688, 151.2093)},
		},
		RegionIndia: {
			{Name: "Delhi", Coords: types.NewCoords(28.6139, 77.209)},
			{Name: "Mumbai", Coords: types.NewCoords(19.076, 72.8777)},
			{Name: "Bangalore", Coords: types.NewCoords(12.9716, 77.5946)},
			{Name: "Hyderabad", Coords: types.NewCoords(17.385, 78.4867)},
			{Name: "Chennai", Coords: types.NewCoords(13.0827, 80.2707)},
		},
		RegionUSA: {
			newYork,
			{Name: "Los Angeles", Coords: types.NewCoords(34.0522, -118.2437)},
			{Name: "Chicago", Coords: types.NewCoords(41.8781, -87.6298)},
			{Name: "Houston", Coords: types.NewCoords(29.7604, -95.3698)},
			{Name: "Miami", Coords: types.NewCoords(25.7617, -80.1918)},
		},
		RegionEurope: {
			london,
			paris,
			{Name: "Berlin", Coords: types.NewCoords(52.52, 13.405)},
			{Name: "Madrid", Coords: types.NewCoords(40.4168, -3.7038)},
			{Name: "Rome", Coords: types.NewCoords(41.9028, 12.4964)},
		},
	}
)

// RegionFor maps a coordinate to its region key, defaulting to global
func RegionFor(latitude, longitude float64) Region {
	for _, rb := range regionBounds {
		if rb.bounds.contains(latitude, longitude) {
			return rb.region
		}
	}
	return RegionGlobal
}

// CitiesFor returns a copy of the city list for region. Unknown regions get the global list.
func CitiesFor(region Region) []City {
	cities, ok := regionCities[region]
	if !ok {
		cities = regionCities[RegionGlobal]
	}
	out := make([]City, len(cities))
	copy(out, cities)
	return out
}
