package trip

import (
	"fmt"
	"html"
	"strings"
)

// Format selects the presenter's output flavor
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// flightsPerCity caps how many flights are shown per destination section,
// in aggregated-list order.
const flightsPerCity = 3

// Render formats a flight search result as plain text or an HTML fragment.
// It has no side effects.
func Render(result FlightSearchResult, format Format) string {
	if format == FormatHTML {
		return renderHTML(result)
	}
	return renderText(result)
}

// cityFlights returns result's flights for one city, preserving order
func cityFlights(result FlightSearchResult, city string) []FlightRecord {
	var flights []FlightRecord
	for _, fl := range result.Flights {
		if fl.DestinationCity == city {
			flights = append(flights, fl)
		}
	}
	return flights
}

func renderText(result FlightSearchResult) string {
	var b strings.Builder

	if result.Error != "" {
		fmt.Fprintf(&b, "Error: %s\n", result.Error)
		return b.String()
	}
	if len(result.Flights) == 0 {
		b.WriteString("No flights found for this route.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Flights from %s for the weekend of %s:\n",
		result.OriginCity, strings.Join(result.WeekendDates, " and "))

	if len(result.InvalidCities) > 0 {
		fmt.Fprintf(&b, "Warning: no airport code for: %s\n",
			strings.Join(result.InvalidCities, ", "))
	}

	for _, city := range result.DestinationCities {
		flights := cityFlights(result, city)
		if len(flights) == 0 {
			continue
		}
		if len(flights) > flightsPerCity {
			flights = flights[:flightsPerCity]
		}

		fmt.Fprintf(&b, "\n%s\n%s\n", city, strings.Repeat("-", len(city)))
		for _, fl := range flights {
			fmt.Fprintf(&b, "Airline: %s\n", fl.Airline)
			fmt.Fprintf(&b, "Flight Number: %s\n", fl.FlightNumber)
			fmt.Fprintf(&b, "Departure: %s%s at %s\n",
				fl.Departure.Airport, terminalText(fl.Departure.Terminal), fl.Departure.Scheduled)
			fmt.Fprintf(&b, "Arrival: %s%s at %s\n",
				fl.Arrival.Airport, terminalText(fl.Arrival.Terminal), fl.Arrival.Scheduled)
			fmt.Fprintf(&b, "Status: %s\n", fl.Status)
		}
	}

	return b.String()
}

func terminalText(terminal string) string {
	if terminal == "" {
		return ""
	}
	return fmt.Sprintf(" (Terminal %s)", terminal)
}

func renderHTML(result FlightSearchResult) string {
	var b strings.Builder
	b.WriteString(`<div class="flight-results">`)

	switch {
	case result.Error != "":
		fmt.Fprintf(&b, `<p class="error">%s</p>`, html.EscapeString(result.Error))
	case len(result.Flights) == 0:
		b.WriteString(`<p class="empty">No flights found for this route.</p>`)
	default:
		fmt.Fprintf(&b, `<h2>Flights from %s for the weekend of %s</h2>`,
			html.EscapeString(result.OriginCity),
			html.EscapeString(strings.Join(result.WeekendDates, " and ")))

		if len(result.InvalidCities) > 0 {
			fmt.Fprintf(&b, `<p class="warning">No airport code for: %s</p>`,
				html.EscapeString(strings.Join(result.InvalidCities, ", ")))
		}

		for _, city := range result.DestinationCities {
			flights := cityFlights(result, city)
			if len(flights) == 0 {
				continue
			}
			if len(flights) > flightsPerCity {
				flights = flights[:flightsPerCity]
			}

			fmt.Fprintf(&b, `<section class="destination"><h3>%s</h3><ul>`, html.EscapeString(city))
			for _, fl := range flights {
				fmt.Fprintf(&b, `<li>%s flight %s: %s%s at %s to %s%s at %s (%s)</li>`,
					html.EscapeString(fl.Airline),
					html.EscapeString(fl.FlightNumber),
					html.EscapeString(fl.Departure.Airport),
					html.EscapeString(terminalText(fl.Departure.Terminal)),
					html.EscapeString(fl.Departure.Scheduled),
					html.EscapeString(fl.Arrival.Airport),
					html.EscapeString(terminalText(fl.Arrival.Terminal)),
					html.EscapeString(fl.Arrival.Scheduled),
					html.EscapeString(fl.Status))
			}
			b.WriteString(`</ul></section>`)
		}
	}

	b.WriteString(`</div>`)
	return b.String()
}
