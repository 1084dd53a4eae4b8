package trip

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adisuri/weekendwings/providers/openmeteo"
)

type coord struct {
	lat, lng float64
}

type fakeGeocoder struct {
	coords map[string]coord
	errFor map[string]bool
}

func (f *fakeGeocoder) Coordinates(ctx context.Context, place string) (float64, float64, bool, error) {
	if f.errFor[place] {
		return 0, 0, false, fmt.Errorf("geocode service unavailable")
	}
	c, ok := f.coords[place]
	if !ok {
		return 0, 0, false, nil
	}
	return c.lat, c.lng, true, nil
}

type fakeWeather struct {
	byLat map[float64][]openmeteo.DailyHigh
	err   error
}

func (f *fakeWeather) DailyHighs(ctx context.Context, lat, lon float64) ([]openmeteo.DailyHigh, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byLat[lat], nil
}

// monday precedes the weekend of 2026-08-29/30
var monday = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

const (
	saturdayDate = "2026-08-29"
	sundayDate   = "2026-08-30"
)

func TestForecastFinder_FindCoolDestinations(t *testing.T) {
	ctx := context.Background()
	origin := Location{City: "Phoenix", Region: "Arizona"}

	// Latitude degrees from the origin control distance: 1 degree is
	// roughly 69.09 miles. Denver sits at ~602 mi, Albuquerque ~415 mi,
	// Dallas ~967 mi, Houston ~1202 mi (out of range).
	geocoder := &fakeGeocoder{
		coords: map[string]coord{
			"Phoenix, Arizona": {0, 0},
			"Denver":           {8.7129, 0},
			"Albuquerque":      {6.0, 0},
			"Dallas":           {14.0, 0},
			"Houston":          {17.4, 0},
		},
		errFor: map[string]bool{"Las Vegas": true},
	}

	weather := &fakeWeather{byLat: map[float64][]openmeteo.DailyHigh{
		8.7129: {
			{Date: "2026-08-28", MaxF: 95},
			{Date: saturdayDate, MaxF: 78},
			{Date: sundayDate, MaxF: 76},
		},
		6.0: {
			{Date: saturdayDate, MaxF: 75},
			{Date: sundayDate, MaxF: 74},
		},
		14.0: {
			{Date: saturdayDate, MaxF: 105},
			{Date: sundayDate, MaxF: 99},
		},
		17.4: {
			{Date: saturdayDate, MaxF: 70},
		},
	}}

	finder := &ForecastFinder{
		Geocoder:   geocoder,
		Weather:    weather,
		HomeCity:   "Phoenix",
		HomeRegion: "Arizona",
		Now:        func() time.Time { return monday },
	}

	result := finder.FindCoolDestinations(ctx, origin)

	require.Empty(t, result.Error)
	assert.Equal(t, "Phoenix, Arizona", result.OriginCity)
	assert.Equal(t, SourceLive, result.Source)
	assert.Equal(t, []string{saturdayDate, sundayDate}, result.WeekendDates)

	// Denver qualifies at 602 mi / 78F; Albuquerque at 415 mi / 75F.
	// Dallas is hot (105F max over the weekend), Houston is out of range,
	// Las Vegas fails to geocode. Ordering follows the candidate list, not
	// distance.
	require.Len(t, result.CoolCities, 2)
	assert.Equal(t, "Denver", result.CoolCities[0].City)
	assert.InDelta(t, 602.0, result.CoolCities[0].DistanceMiles, 0.5)
	assert.InDelta(t, 78.0, result.CoolCities[0].WeekendHighF, 0.01)
	assert.Equal(t, "Albuquerque", result.CoolCities[1].City)
}

func TestForecastFinder_Fallbacks(t *testing.T) {
	ctx := context.Background()
	now := func() time.Time { return monday }

	t.Run("OriginGeocodeFails", func(t *testing.T) {
		finder := &ForecastFinder{
			Geocoder:   &fakeGeocoder{errFor: map[string]bool{"Phoenix, Arizona": true}},
			Weather:    &fakeWeather{},
			HomeCity:   "Phoenix",
			HomeRegion: "Arizona",
			Now:        now,
		}
		result := finder.FindCoolDestinations(ctx, Location{City: "Phoenix", Region: "Arizona"})

		assert.Equal(t, SourceFallback, result.Source)
		assert.Equal(t, "Phoenix, Arizona", result.OriginCity)
		assert.Equal(t, []string{saturdayDate, sundayDate}, result.WeekendDates)
		assert.Len(t, result.CoolCities, 4)
		assert.Empty(t, result.Error)
	})

	t.Run("NoQualifyingCity", func(t *testing.T) {
		// Origin geocodes but every candidate is unmatched.
		finder := &ForecastFinder{
			Geocoder:   &fakeGeocoder{coords: map[string]coord{"Phoenix, Arizona": {0, 0}}},
			Weather:    &fakeWeather{},
			HomeCity:   "Phoenix",
			HomeRegion: "Arizona",
			Now:        now,
		}
		result := finder.FindCoolDestinations(ctx, Location{City: "Phoenix", Region: "Arizona"})

		assert.Equal(t, SourceFallback, result.Source)
		assert.Len(t, result.CoolCities, 4)
	})

	t.Run("NoGeocoderConfigured", func(t *testing.T) {
		finder := &ForecastFinder{
			Weather:    &fakeWeather{},
			HomeCity:   "Phoenix",
			HomeRegion: "Arizona",
			Now:        now,
		}
		result := finder.FindCoolDestinations(ctx, Location{})

		assert.Equal(t, SourceFallback, result.Source)
	})

	t.Run("UnresolvedOriginUsesHomeFallback", func(t *testing.T) {
		geocoder := &fakeGeocoder{errFor: map[string]bool{"Phoenix, Arizona": true}}
		finder := &ForecastFinder{
			Geocoder:   geocoder,
			Weather:    &fakeWeather{},
			HomeCity:   "Phoenix",
			HomeRegion: "Arizona",
			Now:        now,
		}
		result := finder.FindCoolDestinations(ctx, Location{})

		assert.Equal(t, "Phoenix, Arizona", result.OriginCity)
	})
}
