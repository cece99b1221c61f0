package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/forecast"
	"weather-dashboard/internal/preferences"
	"weather-dashboard/internal/types"
	"weather-dashboard/internal/weather"

	"github.com/gin-gonic/gin"
)

type mockWeatherService struct {
	unified *weather.UnifiedWeather
	cities  []weather.CityWeather
	chart   *weather.Chart
	err     error

	lastQuery  weather.Query
	lastCoords *types.Coords
	lastMode   weather.ChartMode
}

func (m *mockWeatherService) FetchUnified(ctx context.Context, q weather.Query) (*weather.UnifiedWeather, error) {
	m.lastQuery = q
	return m.unified, m.err
}

func (m *mockWeatherService) PopularCities(ctx context.Context, coords *types.Coords) ([]weather.CityWeather, error) {
	m.lastCoords = coords
	return m.cities, m.err
}

func (m *mockWeatherService) Chart(ctx context.Context, q weather.Query, mode weather.ChartMode) (*weather.Chart, error) {
	m.lastQuery = q
	m.lastMode = mode
	return m.chart, m.err
}

func newTestApp(svc weather.Service) *App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Server: config.ServerConfig{GinMode: gin.TestMode}}
	return NewAppWithServices(cfg, logger, svc, preferences.NewBackgrounds(preferences.NewMemoryStore(), logger))
}

func doRequest(app *App, method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func TestHandlePing(t *testing.T) {
	app := newTestApp(&mockWeatherService{})

	rec := doRequest(app, http.MethodGet, "/ping", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp PingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "pong" {
		t.Errorf("Message = %q, want pong", resp.Message)
	}
	if resp.Service != config.ServiceName {
		t.Errorf("Service = %q, want %q", resp.Service, config.ServiceName)
	}
	if resp.Time.IsZero() {
		t.Error("Time is zero")
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Error("response is missing the request id header")
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	app := newTestApp(&mockWeatherService{})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "abc-123" {
		t.Errorf("%s = %q, want abc-123", requestIDHeader, got)
	}
}

func TestHandleGetWeather(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
		wantError  string
		checkQuery func(*testing.T, weather.Query)
	}{
		{
			name:       "coordinates",
			target:     "/weather?lat=28.6139&lon=77.209",
			wantStatus: http.StatusOK,
			checkQuery: func(t *testing.T, q weather.Query) {
				if q.Coords == nil || *q.Coords != types.NewCoords(28.6139, 77.209) {
					t.Errorf("Coords = %v, want 28.6139,77.209", q.Coords)
				}
			},
		},
		{
			name:       "city",
			target:     "/weather?city=San%20Francisco",
			wantStatus: http.StatusOK,
			checkQuery: func(t *testing.T, q weather.Query) {
				if q.City != "San Francisco" || q.Coords != nil {
					t.Errorf("Query = %+v, want city only", q)
				}
			},
		},
		{
			name:       "half a coordinate is no coordinate",
			target:     "/weather?lat=10",
			err:        weather.ErrValidation,
			wantStatus: http.StatusBadRequest,
			checkQuery: func(t *testing.T, q weather.Query) {
				if q.Coords != nil {
					t.Errorf("Coords = %v, want nil", q.Coords)
				}
			},
		},
		{
			name:       "latitude out of range",
			target:     "/weather?lat=95&lon=10",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "latitude not a number",
			target:     "/weather?lat=north&lon=10",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown city",
			target:     "/weather?city=Nonexistent%20City",
			err:        fmt.Errorf("%w: %q", weather.ErrNotFound, "Nonexistent City"),
			wantStatus: http.StatusNotFound,
			wantError:  "city not found",
		},
		{
			name:       "upstream failure hides details",
			target:     "/weather?lat=1&lon=2",
			err:        fmt.Errorf("%w: fetch returned status 502: bad gateway", weather.ErrUpstream),
			wantStatus: http.StatusInternalServerError,
			wantError:  "failed to fetch weather data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockWeatherService{
				unified: &weather.UnifiedWeather{Timezone: "Asia/Kolkata"},
				err:     tt.err,
			}
			app := newTestApp(svc)

			rec := doRequest(app, http.MethodGet, tt.target, nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}

			if tt.wantError != "" {
				var body map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}
				if body["error"] != tt.wantError {
					t.Errorf("error = %q, want %q", body["error"], tt.wantError)
				}
			}

			if tt.checkQuery != nil {
				tt.checkQuery(t, svc.lastQuery)
			}
		})
	}
}

func TestHandleGetWeather_ResponseShape(t *testing.T) {
	humidity := 58.0
	svc := &mockWeatherService{unified: &weather.UnifiedWeather{
		Current: weather.Current{
			Name:       "London, England",
			Main:       weather.CurrentMain{Temp: 14, Humidity: &humidity, Pressure: 1012},
			Weather:    []types.Condition{types.Classify(3)},
			Wind:       weather.Wind{Speed: 11},
			Visibility: 10000,
			Coord:      types.NewCoords(51.5074, -0.1278),
		},
		Forecast: weather.DailyForecast{List: []weather.DailyEntry{{DtTxt: "2025-10-17"}}},
		Hourly:   weather.HourlyForecast{List: []weather.HourlyEntry{{DtTxt: "2025-10-17T00:00"}}},
		Timezone: "Europe/London",
	}}
	app := newTestApp(svc)

	rec := doRequest(app, http.MethodGet, "/weather?lat=51.5074&lon=-0.1278", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Current struct {
			Name string `json:"name"`
			Main struct {
				Temp     int     `json:"temp"`
				Humidity float64 `json:"humidity"`
			} `json:"main"`
			Weather []struct {
				Condition   string `json:"condition"`
				Description string `json:"description"`
			} `json:"weather"`
			Coord struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"coord"`
		} `json:"current"`
		Forecast struct {
			List []struct {
				DtTxt string `json:"dt_txt"`
			} `json:"list"`
		} `json:"forecast"`
		Hourly struct {
			List []json.RawMessage `json:"list"`
		} `json:"hourly"`
		Timezone string `json:"timezone"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body.Current.Name != "London, England" || body.Current.Main.Temp != 14 || body.Current.Main.Humidity != 58 {
		t.Errorf("current = %+v", body.Current)
	}
	if len(body.Current.Weather) != 1 || body.Current.Weather[0].Condition != "Clouds" {
		t.Errorf("current.weather = %+v", body.Current.Weather)
	}
	if body.Current.Coord.Lat != 51.5074 || body.Current.Coord.Lon != -0.1278 {
		t.Errorf("current.coord = %+v", body.Current.Coord)
	}
	if len(body.Forecast.List) != 1 || body.Forecast.List[0].DtTxt != "2025-10-17" {
		t.Errorf("forecast.list = %+v", body.Forecast.List)
	}
	if len(body.Hourly.List) != 1 {
		t.Errorf("len(hourly.list) = %d, want 1", len(body.Hourly.List))
	}
	if body.Timezone != "Europe/London" {
		t.Errorf("timezone = %q", body.Timezone)
	}
}

func TestHandleGetPopularCities(t *testing.T) {
	cities := []weather.CityWeather{{Name: "Delhi", Temp: "31°", Condition: "Clear", Description: "Clear sky", Icon: "0"}}

	t.Run("with coordinate", func(t *testing.T) {
		svc := &mockWeatherService{cities: cities}
		rec := doRequest(newTestApp(svc), http.MethodGet, "/popular-cities?lat=28.6&lon=77.2", nil)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if svc.lastCoords == nil || svc.lastCoords.Latitude != 28.6 {
			t.Errorf("coords = %v, want 28.6,77.2", svc.lastCoords)
		}

		var got []weather.CityWeather
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(got) != 1 || got[0].Temp != "31°" {
			t.Errorf("cities = %+v", got)
		}
	})

	t.Run("without coordinate", func(t *testing.T) {
		svc := &mockWeatherService{cities: cities}
		rec := doRequest(newTestApp(svc), http.MethodGet, "/popular-cities", nil)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if svc.lastCoords != nil {
			t.Errorf("coords = %v, want nil", svc.lastCoords)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		svc := &mockWeatherService{err: fmt.Errorf("%w: Tokyo: timeout", weather.ErrUpstream)}
		rec := doRequest(newTestApp(svc), http.MethodGet, "/popular-cities", nil)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
		if body["error"] != "failed to fetch cities data" {
			t.Errorf("error = %q", body["error"])
		}
	})
}

func TestHandleGetForecastChart(t *testing.T) {
	chart := &weather.Chart{
		Mode:   weather.ChartModeHourly,
		Points: []forecast.NormalizedPoint{{Label: "7 AM", ShortLabel: "7", Temperature: 24, WindSpeed: 10, Condition: "clear"}},
	}

	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
		wantMode   weather.ChartMode
	}{
		{name: "default mode", target: "/forecast/chart?lat=1&lon=2", wantStatus: http.StatusOK, wantMode: ""},
		{name: "weekly", target: "/forecast/chart?city=Paris&mode=weekly", wantStatus: http.StatusOK, wantMode: weather.ChartModeWeekly},
		{name: "unknown mode", target: "/forecast/chart?lat=1&lon=2&mode=monthly", wantStatus: http.StatusBadRequest},
		{name: "missing place", target: "/forecast/chart", err: weather.ErrValidation, wantStatus: http.StatusBadRequest},
		{name: "upstream failure", target: "/forecast/chart?lat=1&lon=2", err: weather.ErrUpstream, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockWeatherService{chart: chart, err: tt.err}
			rec := doRequest(newTestApp(svc), http.MethodGet, tt.target, nil)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			if svc.lastMode != tt.wantMode {
				t.Errorf("mode = %q, want %q", svc.lastMode, tt.wantMode)
			}

			var body struct {
				Points []forecast.NormalizedPoint `json:"points"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(body.Points) != 1 || body.Points[0].Label != "7 AM" {
				t.Errorf("points = %+v", body.Points)
			}
		})
	}
}

func TestBackgroundPreferenceEndpoints(t *testing.T) {
	app := newTestApp(&mockWeatherService{})

	decode := func(t *testing.T, rec *httptest.ResponseRecorder) preferences.BackgroundState {
		t.Helper()
		var state preferences.BackgroundState
		if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		return state
	}

	rec := doRequest(app, http.MethodGet, "/preferences/background", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", rec.Code)
	}
	if state := decode(t, rec); state.Selected != preferences.Presets()[0].URL || len(state.Presets) != 8 {
		t.Errorf("initial state = %+v", state)
	}

	rec = doRequest(app, http.MethodPut, "/preferences/background", SelectBackgroundInput{URL: preferences.Presets()[2].URL})
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, want 200", rec.Code)
	}
	if state := decode(t, rec); state.Selected != preferences.Presets()[2].URL {
		t.Errorf("selected = %q", state.Selected)
	}

	rec = doRequest(app, http.MethodPost, "/preferences/background/custom", AddCustomBackgroundInput{DataURL: "data:image/png;base64,AAAA"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, want 201", rec.Code)
	}
	if state := decode(t, rec); len(state.Custom) != 1 {
		t.Errorf("custom = %v", state.Custom)
	}

	rec = doRequest(app, http.MethodPost, "/preferences/background/custom", AddCustomBackgroundInput{DataURL: "https://example.com/a.png"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("POST non-image status = %d, want 400", rec.Code)
	}

	oversized := "data:image/png;base64," + strings.Repeat("A", preferences.MaxCustomBackgroundBytes)
	rec = doRequest(app, http.MethodPost, "/preferences/background/custom", AddCustomBackgroundInput{DataURL: oversized})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("POST oversized image status = %d, want 400", rec.Code)
	}

	rec = doRequest(app, http.MethodPut, "/preferences/background", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("PUT without url status = %d, want 400", rec.Code)
	}

	rec = doRequest(app, http.MethodDelete, "/preferences/background/custom/3", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("DELETE out of range status = %d, want 404", rec.Code)
	}

	rec = doRequest(app, http.MethodDelete, "/preferences/background/custom/first", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("DELETE non-integer status = %d, want 400", rec.Code)
	}

	rec = doRequest(app, http.MethodDelete, "/preferences/background/custom/0", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE status = %d, want 200", rec.Code)
	}
	if state := decode(t, rec); len(state.Custom) != 0 {
		t.Errorf("custom after delete = %v", state.Custom)
	}
}

func TestWriteWeatherError_Wrapped(t *testing.T) {
	app := newTestApp(&mockWeatherService{err: errors.Join(errors.New("context"), weather.ErrNotFound)})

	rec := doRequest(app, http.MethodGet, "/weather?city=x", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
