package openmeteo

// Every variable may be null in an Open-Meteo response, hence the pointers.

type ForecastAPIResponse struct {
	Latitude         float64       `json:"latitude"`
	Longitude        float64       `json:"longitude"`
	Timezone         string        `json:"timezone"`
	UtcOffsetSeconds int           `json:"utc_offset_seconds"`
	Current          CurrentValues `json:"current"`
	Hourly           HourlyValues  `json:"hourly"`
	Daily            DailyValues   `json:"daily"`
}

type CurrentValues struct {
	Time               string   `json:"time"`
	Interval           int      `json:"interval"`
	Temperature2M      *float64 `json:"temperature_2m"`
	RelativeHumidity2M *float64 `json:"relative_humidity_2m"`
	WeatherCode        *int     `json:"weather_code"`
	WindSpeed10M       *float64 `json:"wind_speed_10m"`
	SurfacePressure    *float64 `json:"surface_pressure"`
	Visibility         *float64 `json:"visibility"`
}

type HourlyValues struct {
	Time          []string   `json:"time"`
	Temperature2M []*float64 `json:"temperature_2m"`
	WeatherCode   []*int     `json:"weather_code"`
	WindSpeed10M  []*float64 `json:"wind_speed_10m"`
}

type DailyValues struct {
	Time             []string   `json:"time"`
	Temperature2MMax []*float64 `json:"temperature_2m_max"`
	Temperature2MMin []*float64 `json:"temperature_2m_min"`
	WeatherCode      []*int     `json:"weather_code"`
	WindSpeed10MMax  []*float64 `json:"wind_speed_10m_max"`
}

// CurrentAPIResponse is the reduced payload used for the popular cities panel
type CurrentAPIResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Current   struct {
		Time          string   `json:"time"`
		Temperature2M *float64 `json:"temperature_2m"`
		WeatherCode   *int     `json:"weather_code"`
	} `json:"current"`
}
