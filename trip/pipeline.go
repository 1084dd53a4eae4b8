package trip

import (
	"context"

	"github.com/adisuri/weekendwings/log"
)

// Pipeline runs the three lookups in their canonical order:
// location -> forecast -> flights. All state is request-scoped and threaded
// through explicitly.
type Pipeline struct {
	Resolver LocationResolver
	Forecast DestinationFinder
	Flights  FlightSearcher
}

// Run executes one full pipeline pass
func (p *Pipeline) Run(ctx context.Context) FlightSearchResult {
	location := p.Resolver.Resolve(ctx)
	log.Infof(ctx, "resolved location: city=%q region=%q", location.City, location.Region)

	forecast := p.Forecast.FindCoolDestinations(ctx, location)
	if forecast.Error != "" {
		return FlightSearchResult{Error: forecast.Error}
	}
	log.Infof(ctx, "found %d cool destinations near %s (source=%s)",
		len(forecast.CoolCities), forecast.OriginCity, forecast.Source)

	cities := make([]string, len(forecast.CoolCities))
	for i, c := range forecast.CoolCities {
		cities[i] = c.City
	}

	return p.Flights.FindFlights(ctx, forecast.OriginCity, cities, forecast.WeekendDates)
}
