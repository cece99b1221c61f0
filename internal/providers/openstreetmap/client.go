package openstreetmap

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"weather-dashboard/internal/providers/upstream"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Reverse/
// Sample request: https://nominatim.openstreetmap.org/reverse?lat=28.61&lon=77.21&format=json&zoom=10&addressdetails=1
// Sample request: https://nominatim.openstreetmap.org/search?q=Delhi&format=json&limit=1&addressdetails=1
const (
	baseURL = "https://nominatim.openstreetmap.org"
)

type Client struct {
	client  *upstream.Client
	baseURL string
	logger  *slog.Logger
}

func NewClient(base string, client *upstream.Client, logger *slog.Logger) *Client {
	if base == "" {
		base = baseURL
	}
	return &Client{
		client:  client,
		baseURL: strings.TrimRight(base, "/"),
		logger:  logger.With("component", "openstreetmap-client"),
	}
}

// Lookup reverse geocodes a coordinate at city zoom level
func (c *Client) Lookup(ctx context.Context, latitude, longitude float64) (*LookupAPIResponse, error) {
	u, err := c.endpoint("/reverse", map[string]string{
		"lat":            strconv.FormatFloat(latitude, 'f', -1, 64),
		"lon":            strconv.FormatFloat(longitude, 'f', -1, 64),
		"zoom":           "10",
		"addressdetails": "1",
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetching OpenStreetMap location data",
		"latitude", latitude,
		"longitude", longitude,
		"url", u,
	)

	var apiResp LookupAPIResponse
	if err := c.client.GetJSON(ctx, u, &apiResp); err != nil {
		c.logger.Error("failed to fetch OpenStreetMap data",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, err
	}

	// Nominatim answers 200 with an error body when nothing is near the point
	if apiResp.Error != "" {
		return nil, fmt.Errorf("reverse lookup failed: %s", apiResp.Error)
	}

	c.logger.Debug("successfully fetched OpenStreetMap location data",
		"latitude", latitude,
		"longitude", longitude,
		"display_name", apiResp.DisplayName,
	)

	return &apiResp, nil
}

// Search forward geocodes a free-text query and returns at most limit results
func (c *Client) Search(ctx context.Context, query string, limit int) (SearchAPIResponse, error) {
	u, err := c.endpoint("/search", map[string]string{
		"q":              query,
		"limit":          strconv.Itoa(limit),
		"addressdetails": "1",
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("searching OpenStreetMap",
		"query", query,
		"url", u,
	)

	var apiResp SearchAPIResponse
	if err := c.client.GetJSON(ctx, u, &apiResp); err != nil {
		c.logger.Error("failed to search OpenStreetMap",
			"query", query,
			"error", err,
		)
		return nil, err
	}

	c.logger.Debug("successfully searched OpenStreetMap",
		"query", query,
		"results", len(apiResp),
	)

	return apiResp, nil
}

func (c *Client) endpoint(path string, params map[string]string) (string, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("format", "json")
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
