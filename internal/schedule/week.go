package schedule

import "time"

// WeekRange returns the 7 consecutive calendar days of the week containing
// ref, starting at Sunday. Each entry is midnight in ref's location.
func WeekRange(ref time.Time) [7]time.Time {
	midnight := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	sunday := midnight.AddDate(0, 0, -int(midnight.Weekday()))
	var days [7]time.Time
	for i := range days {
		days[i] = sunday.AddDate(0, 0, i)
	}
	return days
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayBounds returns the inclusive start and end instants of the calendar day,
// for date-range queries against the store.
func DayBounds(day time.Time) (start, end time.Time) {
	start = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end = start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
