package trip

import (
	"context"
	"errors"
	"time"

	"github.com/adisuri/weekendwings/log"
	"github.com/adisuri/weekendwings/providers/aviationstack"
)

// FlightAPI queries the flight-data service for flights between two airports
type FlightAPI interface {
	SearchFlights(ctx context.Context, depIATA, arrIATA string) ([]aviationstack.Flight, error)
}

// Structured error messages surfaced in FlightSearchResult.Error.
const (
	errMissingData     = "missing required data"
	errNoOriginAirport = "no airport code for origin"
	errNoFlights       = "no flights found for any route"
)

// FlightFinder aggregates weekend flights from the origin to each
// destination city.
type FlightFinder struct {
	API FlightAPI
}

var _ FlightSearcher = (*FlightFinder)(nil)

// FindFlights queries the flight-data API per destination and assembles a
// combined, date-filtered flight list. Per-city failures are logged and
// treated as zero flights; a missing API credential short-circuits with a
// structured error.
func (f *FlightFinder) FindFlights(ctx context.Context, originCity string, destinationCities []string, weekendDates []string) FlightSearchResult {
	if originCity == "" || len(destinationCities) == 0 {
		return FlightSearchResult{Error: errMissingData}
	}

	originCode, ok := AirportCode(originCity)
	if !ok {
		return FlightSearchResult{Error: errNoOriginAirport}
	}

	var (
		flights       []FlightRecord
		validCities   []string
		invalidCities []string
	)

	for _, dest := range destinationCities {
		destCode, ok := AirportCode(dest)
		if !ok {
			invalidCities = append(invalidCities, dest)
			continue
		}
		validCities = append(validCities, dest)

		raw, err := f.API.SearchFlights(ctx, originCode, destCode)
		if err != nil {
			if errors.Is(err, aviationstack.ErrNoAccessKey) {
				return FlightSearchResult{Error: err.Error()}
			}
			log.Warnf(ctx, "flight lookup %s->%s failed: %v", originCode, destCode, err)
			continue
		}

		for _, fl := range raw {
			record, ok := weekendRecord(fl, dest, weekendDates)
			if !ok {
				continue
			}
			flights = append(flights, record)
		}
	}

	if len(flights) == 0 {
		return FlightSearchResult{Error: errNoFlights}
	}

	return FlightSearchResult{
		Flights:           flights,
		OriginCity:        originCity,
		DestinationCities: validCities,
		InvalidCities:     invalidCities,
		WeekendDates:      weekendDates,
	}
}

// weekendRecord converts a raw flight into a FlightRecord if it has both
// departure and arrival info and departs on one of the weekend dates.
func weekendRecord(fl aviationstack.Flight, destinationCity string, weekendDates []string) (FlightRecord, bool) {
	if fl.Departure == nil || fl.Arrival == nil {
		return FlightRecord{}, false
	}

	date := departureDate(fl.Departure.Scheduled)
	if date == "" || !containsDate(weekendDates, date) {
		return FlightRecord{}, false
	}

	record := FlightRecord{
		Departure: FlightStop{
			Airport:   fl.Departure.Airport,
			Scheduled: fl.Departure.Scheduled,
			Terminal:  fl.Departure.Terminal,
		},
		Arrival: FlightStop{
			Airport:   fl.Arrival.Airport,
			Scheduled: fl.Arrival.Scheduled,
			Terminal:  fl.Arrival.Terminal,
		},
		Status:          fl.FlightStatus,
		DestinationCity: destinationCity,
		FlightDate:      date,
	}
	if fl.Airline != nil {
		record.Airline = fl.Airline.Name
	}
	if fl.Ident != nil {
		record.FlightNumber = fl.Ident.Number
	}
	return record, true
}

// departureDate extracts the date component of a scheduled timestamp like
// "2026-08-29T10:00:00+00:00". Returns "" when it cannot be parsed.
func departureDate(scheduled string) string {
	if len(scheduled) < len(dateLayout) {
		return ""
	}
	date := scheduled[:len(dateLayout)]
	if _, err := time.Parse(dateLayout, date); err != nil {
		return ""
	}
	return date
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}
