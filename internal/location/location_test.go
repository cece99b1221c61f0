package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"weather-dashboard/internal/providers/openstreetmap"
	"weather-dashboard/internal/types"
)

// Mock providers for testing

type mockGeocodeProvider struct {
	response openstreetmap.SearchAPIResponse
	err      error
}

func (m *mockGeocodeProvider) Search(ctx context.Context, query string, limit int) (openstreetmap.SearchAPIResponse, error) {
	return m.response, m.err
}

type mockReverseGeocodeProvider struct {
	response *openstreetmap.LookupAPIResponse
	err      error
	calls    int
}

func (m *mockReverseGeocodeProvider) Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error) {
	m.calls++
	return m.response, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocationService_ResolveCity(t *testing.T) {
	tests := []struct {
		name     string
		city     string
		response openstreetmap.SearchAPIResponse
		err      error
		want     types.Coords
		wantErr  bool
	}{
		{
			name:     "resolves first result",
			city:     "Mumbai",
			response: openstreetmap.SearchAPIResponse{{Lat: "19.0759899", Lon: "72.8773928"}},
			want:     types.NewCoords(19.0759899, 72.8773928),
		},
		{
			name:     "no results",
			city:     "Nonexistent City",
			response: openstreetmap.SearchAPIResponse{},
			wantErr:  true,
		},
		{
			name:    "provider error",
			city:    "Paris",
			err:     errors.New("connection refused"),
			wantErr: true,
		},
		{
			name:     "unparseable coordinate",
			city:     "Paris",
			response: openstreetmap.SearchAPIResponse{{Lat: "north", Lon: "2.35"}},
			wantErr:  true,
		},
		{
			name:     "non-finite coordinate",
			city:     "Paris",
			response: openstreetmap.SearchAPIResponse{{Lat: "NaN", Lon: "2.35"}},
			wantErr:  true,
		},
		{
			name:    "blank name",
			city:    "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewLocationServiceWithProviders(
				&mockGeocodeProvider{response: tt.response, err: tt.err},
				&mockReverseGeocodeProvider{},
				testLogger(),
			)

			got, err := svc.ResolveCity(context.Background(), tt.city)
			if tt.wantErr {
				if !errors.Is(err, ErrCityNotFound) {
					t.Fatalf("ResolveCity() error = %v, want %v", err, ErrCityNotFound)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveCity() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveCity() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLocationService_PlaceName(t *testing.T) {
	tests := []struct {
		name      string
		coords    types.Coords
		response  *openstreetmap.LookupAPIResponse
		err       error
		want      string
		wantCalls int
	}{
		{
			name:   "district city and state",
			coords: types.NewCoords(28.6315, 77.2167),
			response: &openstreetmap.LookupAPIResponse{Address: openstreetmap.Address{
				Suburb: "Connaught Place",
				City:   "New Delhi",
				State:  "Delhi",
			}},
			want:      "Connaught Place, New Delhi, Delhi",
			wantCalls: 1,
		},
		{
			name:   "district equal to city is dropped",
			coords: types.NewCoords(51.5074, -0.1278),
			response: &openstreetmap.LookupAPIResponse{Address: openstreetmap.Address{
				Suburb: "London",
				City:   "London",
				State:  "England",
			}},
			want:      "London, England",
			wantCalls: 1,
		},
		{
			name:   "town used when city missing",
			coords: types.NewCoords(39.19, -106.82),
			response: &openstreetmap.LookupAPIResponse{Address: openstreetmap.Address{
				Town:  "Aspen",
				State: "Colorado",
			}},
			want:      "Aspen, Colorado",
			wantCalls: 1,
		},
		{
			name:   "state alone is not a name",
			coords: types.NewCoords(12.34, 56.78),
			response: &openstreetmap.LookupAPIResponse{Address: openstreetmap.Address{
				State: "Somewhere",
			}},
			want:      "12.34, 56.78",
			wantCalls: 1,
		},
		{
			name:      "provider error falls back to coordinates",
			coords:    types.NewCoords(40.71277, -74.00597),
			err:       errors.New("timeout"),
			want:      "40.71, -74.01",
			wantCalls: 1,
		},
		{
			name:      "non-finite coordinate",
			coords:    types.NewCoords(math.NaN(), 10),
			want:      "Current Location",
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reverse := &mockReverseGeocodeProvider{response: tt.response, err: tt.err}
			svc := NewLocationServiceWithProviders(&mockGeocodeProvider{}, reverse, testLogger())

			if got := svc.PlaceName(context.Background(), tt.coords); got != tt.want {
				t.Errorf("PlaceName() = %q, want %q", got, tt.want)
			}
			if reverse.calls != tt.wantCalls {
				t.Errorf("Lookup called %d times, want %d", reverse.calls, tt.wantCalls)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		addr openstreetmap.Address
		want string
	}{
		{
			name: "neighbourhood preferred after suburb",
			addr: openstreetmap.Address{Neighbourhood: "Bandra West", City: "Mumbai", State: "Maharashtra"},
			want: "Bandra West, Mumbai, Maharashtra",
		},
		{
			name: "quarter and village",
			addr: openstreetmap.Address{Quarter: "Altstadt", Village: "Hallstatt"},
			want: "Altstadt, Hallstatt",
		},
		{
			name: "district only keeps state",
			addr: openstreetmap.Address{Suburb: "Brooklyn", State: "New York"},
			want: "Brooklyn, New York",
		},
		{
			name: "province when state missing",
			addr: openstreetmap.Address{City: "Toronto", Province: "Ontario"},
			want: "Toronto, Ontario",
		},
		{
			name: "municipality",
			addr: openstreetmap.Address{Municipality: "Oslo"},
			want: "Oslo",
		},
		{
			name: "empty",
			addr: openstreetmap.Address{Country: "Nowhere"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.addr); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
