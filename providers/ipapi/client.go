// Package ipapi resolves the caller's public IP address to a coarse
// city/region location using the ipify and ip-api.com services.
package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ipifyURL  = "https://api.ipify.org?format=json"
	lookupURL = "http://ip-api.com/json/"
)

// Client handles IP detection and geolocation requests
type Client struct {
	IPEndpoint     string
	LookupEndpoint string
	HTTPClient     *http.Client
}

// NewClient creates a new IP geolocation client
func NewClient(timeout time.Duration) *Client {
	return &Client{
		IPEndpoint:     ipifyURL,
		LookupEndpoint: lookupURL,
		HTTPClient:     &http.Client{Timeout: timeout},
	}
}

type ipResponse struct {
	IP string `json:"ip"`
}

// GeoResponse is the subset of the ip-api.com payload we consume
type GeoResponse struct {
	Status     string `json:"status"`
	City       string `json:"city"`
	RegionName string `json:"regionName"`
}

// CurrentIP detects the caller's public IP address
func (c *Client) CurrentIP(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.IPEndpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to detect public IP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("IP detection failed with status %d", resp.StatusCode)
	}

	var body ipResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return body.IP, nil
}

// Lookup geolocates an IP address. An empty ip means "detect my own first".
func (c *Client) Lookup(ctx context.Context, ip string) (*GeoResponse, error) {
	if ip == "" {
		detected, err := c.CurrentIP(ctx)
		if err != nil {
			return nil, err
		}
		ip = detected
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.LookupEndpoint+ip, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation lookup failed with status %d", resp.StatusCode)
	}

	var geo GeoResponse
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &geo, nil
}
