package scheduling

import "time"

// WallClock is a zone's local calendar/clock reading of an instant.
type WallClock struct {
	Year, Month, Day int
	Hour, Minute     int
	Weekday          time.Weekday
}

// loadZone resolves an IANA timezone name, returning the engine's typed
// error when it doesn't resolve (spec §4.1, §7 INVALID_TIMEZONE).
func loadZone(tz string) (*time.Location, error) {
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, errInvalidTimezone(tz)
	}
	return loc, nil
}

// toWallClock converts an instant to the given zone's local calendar
// fields. time.Time.In already performs DST-correct conversion; this is
// just a typed accessor so callers don't repeat the six-field read.
func toWallClock(instant time.Time, loc *time.Location) WallClock {
	local := instant.In(loc)
	return WallClock{
		Year:    local.Year(),
		Month:   int(local.Month()),
		Day:     local.Day(),
		Hour:    local.Hour(),
		Minute:  local.Minute(),
		Weekday: local.Weekday(),
	}
}

// fromWallClock reconstructs the unambiguous instant for a zone's local
// wall-clock reading. In a spring-forward gap it returns the later valid
// instant (02:30 in a 02:00->03:00 gap becomes 03:30): time.Date may resolve
// a gap with the post-transition offset and land before the gap, so the
// other offset's reading is taken when it is later. In a fall-back overlap
// the result is whatever time.Date picks, which for US zones is the first
// (earlier) occurrence.
func fromWallClock(year, month, day, hour, minute int, loc *time.Location) time.Time {
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	if t.Hour() != hour || t.Minute() != minute {
		_, offset := t.Zone()
		later := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC).
			Add(-time.Duration(offset) * time.Second).In(loc)
		if later.After(t) {
			t = later
		}
	}
	return t
}

// civilDayKey returns a stable "YYYY-MM-DD" key for an instant under a
// given zone's calendar, used to bucket density/overload counts by day.
func civilDayKey(instant time.Time, loc *time.Location) string {
	return instant.In(loc).Format("2006-01-02")
}

// sameLocalDay reports whether two instants fall on the same civil day
// under the given zone.
func sameLocalDay(a, b time.Time, loc *time.Location) bool {
	return civilDayKey(a, loc) == civilDayKey(b, loc)
}

// hourFraction splits a fractional hour (e.g. 17.5) into (hour, minute).
func hourFraction(f float64) (hour, minute int) {
	hour = int(f)
	minute = int((f - float64(hour)) * 60)
	return hour, minute
}

// utcOffsetHours returns loc's UTC offset, in hours, as observed at ref —
// DST-correct since it reads the offset of ref converted into loc, not a
// zone-wide constant.
func utcOffsetHours(ref time.Time, loc *time.Location) float64 {
	_, offsetSeconds := ref.In(loc).Zone()
	return float64(offsetSeconds) / 3600
}

// offsetDeltaHours returns the organizer<->contact UTC offset difference,
// in hours, at ref (spec §4.8's |Δ| gate for extreme-timezone handling).
func offsetDeltaHours(ref time.Time, organizerLoc, contactLoc *time.Location) float64 {
	return utcOffsetHours(ref, contactLoc) - utcOffsetHours(ref, organizerLoc)
}
