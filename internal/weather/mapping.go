package weather

import (
	"math"

	"weather-dashboard/internal/providers/openmeteo"
	"weather-dashboard/internal/timezone"
	"weather-dashboard/internal/types"
)

const (
	// missingCode classifies as Clear with the generic description
	missingCode = -1

	defaultVisibility = 10000
)

func mapForecastAPIResponse(apiResponse *openmeteo.ForecastAPIResponse, coords types.Coords, placeName string, hourlyLimit, dailyLimit int) *UnifiedWeather {
	loc := timezone.LoadLocation(apiResponse.Timezone, apiResponse.UtcOffsetSeconds)

	out := &UnifiedWeather{
		Current:  mapCurrent(apiResponse.Current, coords, placeName),
		Timezone: apiResponse.Timezone,
		Location: loc,
	}

	hourly := apiResponse.Hourly
	n := limit(len(hourly.Time), hourlyLimit)
	out.HourlySamples = make([]types.TimedSample, 0, n)
	out.Hourly.List = make([]HourlyEntry, 0, n)
	for i := 0; i < n; i++ {
		sample := types.TimedSample{
			Time:        types.ParseTimestamp(hourly.Time[i], loc),
			Temperature: floatAt(hourly.Temperature2M, i),
			WindSpeed:   floatAt(hourly.WindSpeed10M, i),
			Code:        codeAt(hourly.WeatherCode, i),
		}
		out.HourlySamples = append(out.HourlySamples, sample)
		out.Hourly.List = append(out.Hourly.List, HourlyEntry{
			Dt:      unix(sample),
			DtTxt:   hourly.Time[i],
			Main:    HourlyMain{Temp: types.RoundOrZero(sample.Temperature)},
			Weather: []types.Condition{types.Classify(sample.Code)},
			Wind:    Wind{Speed: types.RoundOrZero(sample.WindSpeed)},
		})
	}

	daily := apiResponse.Daily
	n = limit(len(daily.Time), dailyLimit)
	out.DailySamples = make([]types.DailySample, 0, n)
	out.Forecast.List = make([]DailyEntry, 0, n)
	for i := 0; i < n; i++ {
		sample := types.DailySample{
			TimedSample: types.TimedSample{
				Time:      types.ParseTimestamp(daily.Time[i], loc),
				WindSpeed: floatAt(daily.WindSpeed10MMax, i),
				Code:      codeAt(daily.WeatherCode, i),
			},
			TempMax: floatAt(daily.Temperature2MMax, i),
			TempMin: floatAt(daily.Temperature2MMin, i),
		}
		sample.Temperature = (sample.TempMax + sample.TempMin) / 2
		out.DailySamples = append(out.DailySamples, sample)
		out.Forecast.List = append(out.Forecast.List, DailyEntry{
			Dt:    unix(sample.TimedSample),
			DtTxt: daily.Time[i],
			Main: DailyMain{
				Temp:    types.RoundOrZero(sample.Temperature),
				TempMax: types.RoundOrZero(sample.TempMax),
				TempMin: types.RoundOrZero(sample.TempMin),
			},
			Weather: []types.Condition{types.Classify(sample.Code)},
			Wind:    Wind{Speed: types.RoundOrZero(sample.WindSpeed)},
		})
	}

	return out
}

func mapCurrent(current openmeteo.CurrentValues, coords types.Coords, placeName string) Current {
	code := missingCode
	if current.WeatherCode != nil {
		code = *current.WeatherCode
	}

	visibility := types.ValueOrNaN(current.Visibility)
	if !types.IsFinite(visibility) || visibility == 0 {
		visibility = defaultVisibility
	}

	return Current{
		Name: placeName,
		Main: CurrentMain{
			Temp:     types.RoundOrZero(types.ValueOrNaN(current.Temperature2M)),
			Humidity: current.RelativeHumidity2M,
			Pressure: types.RoundOrZero(types.ValueOrNaN(current.SurfacePressure)),
		},
		Weather:    []types.Condition{types.Classify(code)},
		Wind:       Wind{Speed: types.RoundOrZero(types.ValueOrNaN(current.WindSpeed10M))},
		Visibility: visibility,
		Coord:      coords,
	}
}

func limit(n, maxLen int) int {
	if maxLen > 0 && n > maxLen {
		return maxLen
	}
	return n
}

// floatAt tolerates arrays shorter than the time axis
func floatAt(values []*float64, i int) float64 {
	if i >= len(values) {
		return math.NaN()
	}
	return types.ValueOrNaN(values[i])
}

func codeAt(values []*int, i int) int {
	if i >= len(values) || values[i] == nil {
		return missingCode
	}
	return *values[i]
}

func unix(s types.TimedSample) int64 {
	if s.Time.IsZero() {
		return 0
	}
	return s.Time.Unix()
}
