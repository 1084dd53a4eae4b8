package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextWeekend(t *testing.T) {
	// A known Saturday; the following six days cover every weekday.
	base := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Saturday, base.Weekday())

	for i := 0; i < 7; i++ {
		today := base.AddDate(0, 0, i)
		t.Run(today.Weekday().String(), func(t *testing.T) {
			saturday, sunday := NextWeekend(today)

			assert.Equal(t, time.Saturday, saturday.Weekday())
			assert.Equal(t, time.Sunday, sunday.Weekday())
			assert.Equal(t, saturday.AddDate(0, 0, 1), sunday)

			// Nearest Saturday on or after today.
			assert.False(t, saturday.Before(today))
			assert.Less(t, int(saturday.Sub(today).Hours()), 7*24)
		})
	}

	t.Run("SaturdayIsItself", func(t *testing.T) {
		saturday, _ := NextWeekend(base)
		assert.Equal(t, base, saturday)
	})
}

func TestWeekendDates(t *testing.T) {
	// Friday 2026-08-28 -> weekend of the 29th and 30th
	friday := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, []string{"2026-08-29", "2026-08-30"}, WeekendDates(friday))
}
