package scheduling

import "time"

func mustUTC(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func utcLoc() *time.Location {
	return time.UTC
}
