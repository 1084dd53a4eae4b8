package aviationstack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SearchFlights(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(flightsResponse{
			Data: []Flight{
				{
					FlightDate:   "2026-08-29",
					FlightStatus: "scheduled",
					Departure:    &Endpoint{Airport: "Phoenix Sky Harbor", IATA: "PHX", Scheduled: "2026-08-29T08:00:00+00:00"},
					Arrival:      &Endpoint{Airport: "San Diego Intl", IATA: "SAN", Scheduled: "2026-08-29T09:20:00+00:00"},
					Airline:      &Airline{Name: "Southwest Airlines", IATA: "WN"},
					Ident:        &FlightIdent{Number: "1234", IATA: "WN1234"},
				},
			},
		})
	}))
	defer ts.Close()

	client := NewClient("test-key", 5*time.Second)
	client.BaseURL = ts.URL

	flights, err := client.SearchFlights(context.Background(), "PHX", "SAN")
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "2026-08-29", flights[0].FlightDate)
	assert.Equal(t, "Southwest Airlines", flights[0].Airline.Name)
	assert.Equal(t, "PHX", flights[0].Departure.IATA)

	assert.Contains(t, gotQuery, "access_key=test-key")
	assert.Contains(t, gotQuery, "dep_iata=PHX")
	assert.Contains(t, gotQuery, "arr_iata=SAN")
}

func TestClient_SearchFlights_NoAccessKey(t *testing.T) {
	client := NewClient("", 5*time.Second)

	_, err := client.SearchFlights(context.Background(), "PHX", "SAN")
	assert.ErrorIs(t, err, ErrNoAccessKey)
}

func TestClient_SearchFlights_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(flightsResponse{
			Error: &apiError{Code: "invalid_access_key", Message: "You have not supplied a valid API Access Key."},
		})
	}))
	defer ts.Close()

	client := NewClient("bad-key", 5*time.Second)
	client.BaseURL = ts.URL

	_, err := client.SearchFlights(context.Background(), "PHX", "SAN")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "valid API Access Key")
}

func TestClient_SearchFlights_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	client := NewClient("test-key", 5*time.Second)
	client.BaseURL = ts.URL

	_, err := client.SearchFlights(context.Background(), "PHX", "SAN")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
