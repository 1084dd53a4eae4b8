package trip

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/adisuri/weekendwings/log"
	"github.com/adisuri/weekendwings/providers/openmeteo"
)

// Geocoder resolves a free-text place name to coordinates. ok is false when
// the place has no match.
type Geocoder interface {
	Coordinates(ctx context.Context, place string) (lat, lng float64, ok bool, err error)
}

// WeatherProvider fetches the multi-day high-temperature forecast for a
// coordinate.
type WeatherProvider interface {
	DailyHighs(ctx context.Context, lat, lon float64) ([]openmeteo.DailyHigh, error)
}

const (
	radiusMiles  = 1000.0
	coolMaxTempF = 100.0
)

// candidateCities is the fixed list of major cities scanned as potential
// weekend destinations.
var candidateCities = []string{
	"Los Angeles", "Las Vegas", "Salt Lake City", "Denver",
	"Albuquerque", "San Diego", "El Paso", "San Antonio",
	"Houston", "Dallas", "Oklahoma City", "Kansas City",
}

// fallbackCities is the fixed sample destination set substituted when live
// upstream data is unusable.
var fallbackCities = []CoolCity{
	{City: "San Diego", DistanceMiles: 298.5, WeekendHighF: 72.5},
	{City: "Los Angeles", DistanceMiles: 357.2, WeekendHighF: 78.3},
	{City: "Las Vegas", DistanceMiles: 255.6, WeekendHighF: 89.1},
	{City: "Denver", DistanceMiles: 602.0, WeekendHighF: 78.0},
}

// ForecastFinder scans the candidate list for cities within range of the
// origin whose forecasted weekend high stays under the temperature limit.
type ForecastFinder struct {
	Geocoder Geocoder
	Weather  WeatherProvider

	// HomeCity/HomeRegion are substituted when the origin location could
	// not be resolved.
	HomeCity   string
	HomeRegion string

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

var _ DestinationFinder = (*ForecastFinder)(nil)

func (f *ForecastFinder) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// FindCoolDestinations returns the qualifying destinations for the next
// weekend. When geocoding the origin fails, or no candidate qualifies, it
// degrades to the fixed sample dataset instead of erroring; the result's
// Source field records which happened.
func (f *ForecastFinder) FindCoolDestinations(ctx context.Context, origin Location) ForecastResult {
	originCity := fmt.Sprintf("%s, %s", f.HomeCity, f.HomeRegion)
	if origin.Resolved() {
		originCity = fmt.Sprintf("%s, %s", origin.City, origin.Region)
	}

	if f.Geocoder == nil {
		log.Warnf(ctx, "no geocoder configured, using sample forecast data")
		return f.fallback(originCity)
	}

	originLat, originLng, ok, err := f.Geocoder.Coordinates(ctx, originCity)
	if err != nil || !ok {
		log.Warnf(ctx, "could not geocode origin %q (err=%v), using sample forecast data", originCity, err)
		return f.fallback(originCity)
	}

	weekend := WeekendDates(f.now())

	var coolCities []CoolCity
	var weekendDates []string

	for _, city := range candidateCities {
		lat, lng, ok, err := f.Geocoder.Coordinates(ctx, city)
		if err != nil || !ok {
			log.Warnf(ctx, "skipping %s: geocode failed (err=%v)", city, err)
			continue
		}

		distance := haversineMiles(originLat, originLng, lat, lng)
		if distance > radiusMiles {
			continue
		}

		highs, err := f.Weather.DailyHighs(ctx, lat, lng)
		if err != nil {
			log.Warnf(ctx, "skipping %s: forecast failed: %v", city, err)
			continue
		}

		matchedDates, weekendHigh := weekendHigh(highs, weekend)
		if len(matchedDates) == 0 || weekendHigh >= coolMaxTempF {
			continue
		}

		// The first city with forecast data for the weekend pins the
		// result's dates; later cities do not overwrite them.
		if len(weekendDates) == 0 {
			weekendDates = matchedDates
		}

		coolCities = append(coolCities, CoolCity{
			City:          city,
			DistanceMiles: round1(distance),
			WeekendHighF:  round1(weekendHigh),
		})
	}

	if len(coolCities) == 0 {
		log.Warnf(ctx, "no qualifying destinations near %q, using sample forecast data", originCity)
		return f.fallback(originCity)
	}

	return ForecastResult{
		OriginCity:   originCity,
		WeekendDates: weekendDates,
		CoolCities:   coolCities,
		Source:       SourceLive,
	}
}

// weekendHigh extracts the forecast days falling on the weekend and the
// maximum temperature among them.
func weekendHigh(highs []openmeteo.DailyHigh, weekend []string) (matched []string, max float64) {
	for _, day := range highs {
		for _, date := range weekend {
			if day.Date == date {
				matched = append(matched, day.Date)
				if day.MaxF > max || len(matched) == 1 {
					max = day.MaxF
				}
			}
		}
	}
	return matched, max
}

func (f *ForecastFinder) fallback(originCity string) ForecastResult {
	cities := make([]CoolCity, len(fallbackCities))
	copy(cities, fallbackCities)
	return ForecastResult{
		OriginCity:   originCity,
		WeekendDates: WeekendDates(f.now()),
		CoolCities:   cities,
		Source:       SourceFallback,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
