// Package trip implements the weekend-getaway pipeline: resolve the
// caller's location, find nearby cities with mild weekend weather, and
// list weekend flights from the origin to those cities.
package trip

import "context"

// DataSource tags whether a forecast result came from live upstream data or
// from the hard-coded sample substituted when upstreams are unusable.
type DataSource string

const (
	SourceLive     DataSource = "live"
	SourceFallback DataSource = "fallback"
)

// Location is the caller's resolved city/region. Empty fields mean
// resolution failed.
type Location struct {
	City   string `json:"city,omitempty"`
	Region string `json:"region,omitempty"`
}

// Resolved reports whether both fields were determined
func (l Location) Resolved() bool {
	return l.City != "" && l.Region != ""
}

// CoolCity is a candidate destination that passed the distance and
// temperature filters.
type CoolCity struct {
	City          string  `json:"city"`
	DistanceMiles float64 `json:"distance"`
	WeekendHighF  float64 `json:"max_temp"`
}

// ForecastResult is the outcome of the cool-destination scan.
// If Error is set, WeekendDates and CoolCities are empty.
type ForecastResult struct {
	OriginCity   string     `json:"origin"`
	WeekendDates []string   `json:"dates"` // YYYY-MM-DD, Saturday then Sunday
	CoolCities   []CoolCity `json:"cities"`
	Source       DataSource `json:"source"`
	Error        string     `json:"error,omitempty"`
}

// FlightStop is one side of a flight: where and when it departs or arrives
type FlightStop struct {
	Airport   string `json:"airport"`
	Scheduled string `json:"scheduled"`
	Terminal  string `json:"terminal,omitempty"`
}

// FlightRecord is a single weekend flight, annotated with the destination
// city it was found for and its parsed departure date.
type FlightRecord struct {
	Airline         string     `json:"airline"`
	FlightNumber    string     `json:"flight_number"`
	Departure       FlightStop `json:"departure"`
	Arrival         FlightStop `json:"arrival"`
	Status          string     `json:"status"`
	DestinationCity string     `json:"destination_city"`
	FlightDate      string     `json:"flight_date"` // YYYY-MM-DD
}

// FlightSearchResult aggregates the weekend flights across all destinations.
// Empty Flights with no Error is the distinct "no flights found" state.
type FlightSearchResult struct {
	Flights           []FlightRecord `json:"flights"`
	OriginCity        string         `json:"origin_city"`
	DestinationCities []string       `json:"destination_cities"`
	InvalidCities     []string       `json:"invalid_cities,omitempty"`
	WeekendDates      []string       `json:"weekend_dates"`
	Error             string         `json:"error,omitempty"`
}

// LocationResolver resolves the caller's location from their public address
type LocationResolver interface {
	Resolve(ctx context.Context) Location
}

// DestinationFinder scans candidate cities for cool weekend destinations
type DestinationFinder interface {
	FindCoolDestinations(ctx context.Context, origin Location) ForecastResult
}

// FlightSearcher finds weekend flights from an origin to destination cities
type FlightSearcher interface {
	FindFlights(ctx context.Context, originCity string, destinationCities []string, weekendDates []string) FlightSearchResult
}
