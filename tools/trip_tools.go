package tools

import (
	"context"
	"fmt"

	"github.com/adisuri/weekendwings/trip"
)

// State is the request-scoped data shared by one agent run's tool calls.
// Each run gets a fresh State so concurrent requests cannot interfere.
type State struct {
	Location trip.Location
	Forecast *trip.ForecastResult
	Flights  *trip.FlightSearchResult
}

// LocationTool resolves the caller's city and region from their public IP
type LocationTool struct {
	Resolver trip.LocationResolver
	State    *State
}

func (t *LocationTool) Name() string {
	return "get_city_location"
}

func (t *LocationTool) Description() string {
	return "Detects the public IP address and returns the current city and region. Takes no meaningful argument."
}

func (t *LocationTool) Execute(ctx context.Context, _ string) (interface{}, error) {
	location := t.Resolver.Resolve(ctx)
	t.State.Location = location
	return location, nil
}

// ForecastTool finds cool weekend destinations near the resolved location
type ForecastTool struct {
	Finder trip.DestinationFinder
	State  *State
}

func (t *ForecastTool) Name() string {
	return "get_weather_forecast"
}

func (t *ForecastTool) Description() string {
	return "Takes the current city and region and returns the weekend dates and nearby cool destinations."
}

func (t *ForecastTool) Execute(ctx context.Context, _ string) (interface{}, error) {
	result := t.Finder.FindCoolDestinations(ctx, t.State.Location)
	t.State.Forecast = &result
	return result, nil
}

// FlightsTool searches weekend flights to the forecasted destinations
type FlightsTool struct {
	Searcher trip.FlightSearcher
	State    *State
}

func (t *FlightsTool) Name() string {
	return "get_flights"
}

func (t *FlightsTool) Description() string {
	return "Takes the weekend dates, current city and destinations and returns flight details."
}

func (t *FlightsTool) Execute(ctx context.Context, _ string) (interface{}, error) {
	if t.State.Forecast == nil {
		return nil, fmt.Errorf("no forecast available yet; call get_weather_forecast first")
	}

	forecast := t.State.Forecast
	cities := make([]string, len(forecast.CoolCities))
	for i, c := range forecast.CoolCities {
		cities[i] = c.City
	}

	result := t.Searcher.FindFlights(ctx, forecast.OriginCity, cities, forecast.WeekendDates)
	t.State.Flights = &result
	return result, nil
}

// NewTripRegistry builds a registry with the three pipeline tools wired to a
// fresh shared State.
func NewTripRegistry(resolver trip.LocationResolver, finder trip.DestinationFinder, searcher trip.FlightSearcher) *Registry {
	state := &State{}
	registry := NewRegistry()
	registry.Register(&LocationTool{Resolver: resolver, State: state})
	registry.Register(&ForecastTool{Finder: finder, State: state})
	registry.Register(&FlightsTool{Searcher: searcher, State: state})
	return registry
}
