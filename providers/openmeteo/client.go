// Package openmeteo fetches daily high-temperature forecasts from the
// Open-Meteo API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.open-meteo.com/v1"

// Client handles Open-Meteo API requests
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new Open-Meteo client
func NewClient(timeout time.Duration) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type forecastResponse struct {
	Daily struct {
		Time             []string  `json:"time"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
	} `json:"daily"`
}

// DailyHigh is one forecasted day with its maximum temperature in Fahrenheit
type DailyHigh struct {
	Date string  `json:"date"` // YYYY-MM-DD
	MaxF float64 `json:"max_f"`
}

// DailyHighs returns the multi-day max-temperature forecast for a coordinate
func (c *Client) DailyHighs(ctx context.Context, lat, lon float64) ([]DailyHigh, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lon))
	params.Set("temperature_unit", "fahrenheit")
	params.Set("daily", "temperature_2m_max")
	params.Set("timezone", "auto")

	endpoint := fmt.Sprintf("%s/forecast?%s", c.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast request failed with status %d", resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(body.Daily.Time) != len(body.Daily.Temperature2mMax) {
		return nil, fmt.Errorf("malformed forecast: %d dates, %d temperatures",
			len(body.Daily.Time), len(body.Daily.Temperature2mMax))
	}

	highs := make([]DailyHigh, len(body.Daily.Time))
	for i, date := range body.Daily.Time {
		highs[i] = DailyHigh{Date: date, MaxF: body.Daily.Temperature2mMax[i]}
	}
	return highs, nil
}
