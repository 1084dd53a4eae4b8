package trip

import "time"

const dateLayout = "2006-01-02"

// NextWeekend returns the nearest Saturday on or after today, and the day
// after it. If today is itself a Saturday, it is returned unchanged.
func NextWeekend(today time.Time) (saturday, sunday time.Time) {
	// Monday=0 .. Sunday=6 so that (5 - weekday) mod 7 lands on Saturday.
	weekday := (int(today.Weekday()) + 6) % 7
	offset := ((5-weekday)%7 + 7) % 7
	saturday = today.AddDate(0, 0, offset)
	sunday = saturday.AddDate(0, 0, 1)
	return saturday, sunday
}

// WeekendDates formats the next weekend as a [Saturday, Sunday] date pair
func WeekendDates(today time.Time) []string {
	saturday, sunday := NextWeekend(today)
	return []string{saturday.Format(dateLayout), sunday.Format(dateLayout)}
}
