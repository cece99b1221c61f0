package weather

import (
	"time"

	"weather-dashboard/internal/forecast"
	"weather-dashboard/internal/types"
)

// Query selects the place to fetch weather for. City takes precedence over Coords.
type Query struct {
	Coords *types.Coords
	City   string
}

// UnifiedWeather is the combined current, daily and hourly view of one place
type UnifiedWeather struct {
	Current  Current        `json:"current"`
	Forecast DailyForecast  `json:"forecast"`
	Hourly   HourlyForecast `json:"hourly"`
	Timezone string         `json:"timezone" example:"Asia/Kolkata"`

	// Samples backing the lists above, kept for chart normalization
	HourlySamples []types.TimedSample `json:"-"`
	DailySamples  []types.DailySample `json:"-"`
	Location      *time.Location      `json:"-"`
}

type Current struct {
	Name       string            `json:"name" example:"Connaught Place, New Delhi, Delhi"`
	Main       CurrentMain       `json:"main"`
	Weather    []types.Condition `json:"weather"`
	Wind       Wind              `json:"wind"`
	Visibility float64           `json:"visibility" example:"10000"`
	Coord      types.Coords      `json:"coord"`
}

type CurrentMain struct {
	Temp     int      `json:"temp" example:"29"`
	Humidity *float64 `json:"humidity" example:"58"`
	Pressure int      `json:"pressure" example:"986"`
}

type Wind struct {
	Speed int `json:"speed" example:"8"` // km/h
}

type DailyForecast struct {
	List []DailyEntry `json:"list"`
}

type DailyEntry struct {
	Dt      int64             `json:"dt" example:"1760659200"`
	DtTxt   string            `json:"dt_txt" example:"2025-10-17"`
	Main    DailyMain         `json:"main"`
	Weather []types.Condition `json:"weather"`
	Wind    Wind              `json:"wind"`
}

type DailyMain struct {
	Temp    int `json:"temp"`
	TempMax int `json:"temp_max"`
	TempMin int `json:"temp_min"`
}

type HourlyForecast struct {
	List []HourlyEntry `json:"list"`
}

type HourlyEntry struct {
	Dt      int64             `json:"dt" example:"1760673600"`
	DtTxt   string            `json:"dt_txt" example:"2025-10-17T10:00"`
	Main    HourlyMain        `json:"main"`
	Weather []types.Condition `json:"weather"`
	Wind    Wind              `json:"wind"`
}

type HourlyMain struct {
	Temp int `json:"temp"`
}

// CityWeather is one entry of the popular cities panel
type CityWeather struct {
	Name        string `json:"name" example:"Delhi"`
	Temp        string `json:"temp" example:"29°"`
	Condition   string `json:"condition" example:"Clouds"`
	Description string `json:"description" example:"Partly cloudy"`
	Icon        string `json:"icon" example:"2"`
}

// ChartMode selects the series a chart is built from
type ChartMode string

const (
	ChartModeHourly ChartMode = "hourly"
	ChartModeWeekly ChartMode = "weekly"
)

// Chart is a normalized series ready for plotting
type Chart struct {
	Mode     ChartMode                  `json:"mode" example:"hourly"`
	Timezone string                     `json:"timezone" example:"Asia/Kolkata"`
	Points   []forecast.NormalizedPoint `json:"points"`
}
