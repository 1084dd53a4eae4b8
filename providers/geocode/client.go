// Package geocode wraps the Google Maps geocoding API behind the single
// place-name-to-coordinates call the trip pipeline needs.
package geocode

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Client handles geocoding requests
type Client struct {
	MapsClient *maps.Client
}

// NewClient creates a new geocoding client.
// Returns an error if the underlying maps client cannot be initialized.
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &Client{MapsClient: c}, nil
}

// Coordinates resolves a free-text place name to latitude/longitude.
// Only the first geocoding result is consulted; ok is false when the place
// could not be matched at all.
func (c *Client) Coordinates(ctx context.Context, place string) (lat, lng float64, ok bool, err error) {
	if c.MapsClient == nil {
		return 0, 0, false, fmt.Errorf("maps client not initialized")
	}

	results, err := c.MapsClient.Geocode(ctx, &maps.GeocodingRequest{Address: place})
	if err != nil {
		return 0, 0, false, fmt.Errorf("geocode request failed: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, false, nil
	}

	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, true, nil
}
