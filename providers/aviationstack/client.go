// Package aviationstack queries the AviationStack flight-data API for
// scheduled flights between two airports.
package aviationstack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "http://api.aviationstack.com/v1"

// ErrNoAccessKey is returned when the client was constructed without an
// access credential.
var ErrNoAccessKey = errors.New("aviationstack access key is not configured")

// Client is the AviationStack API client
type Client struct {
	AccessKey  string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new AviationStack client. The access key is validated
// at call time, not here, so a keyless client can still be constructed and
// report a structured error downstream.
func NewClient(accessKey string, timeout time.Duration) *Client {
	return &Client{
		AccessKey:  accessKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Endpoint is one end of a flight: the departure or arrival side
type Endpoint struct {
	Airport   string `json:"airport"`
	IATA      string `json:"iata"`
	Terminal  string `json:"terminal"`
	Scheduled string `json:"scheduled"`
}

// Airline identifies the operating carrier
type Airline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
}

// FlightIdent carries the flight number designators
type FlightIdent struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
}

// Flight is a single raw flight record from the API. Departure and arrival
// are pointers so a missing side is distinguishable from an empty one.
type Flight struct {
	FlightDate   string       `json:"flight_date"`
	FlightStatus string       `json:"flight_status"`
	Departure    *Endpoint    `json:"departure"`
	Arrival      *Endpoint    `json:"arrival"`
	Airline      *Airline     `json:"airline"`
	Ident        *FlightIdent `json:"flight"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type flightsResponse struct {
	Data  []Flight  `json:"data"`
	Error *apiError `json:"error"`
}

// SearchFlights returns the raw flights between two IATA airport codes
func (c *Client) SearchFlights(ctx context.Context, depIATA, arrIATA string) ([]Flight, error) {
	if c.AccessKey == "" {
		return nil, ErrNoAccessKey
	}

	params := url.Values{}
	params.Set("access_key", c.AccessKey)
	params.Set("dep_iata", depIATA)
	params.Set("arr_iata", arrIATA)

	endpoint := fmt.Sprintf("%s/flights?%s", c.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight search failed with status %d", resp.StatusCode)
	}

	var body flightsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if body.Error != nil {
		return nil, fmt.Errorf("aviationstack error: %s", body.Error.Message)
	}

	return body.Data, nil
}
