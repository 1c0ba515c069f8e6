package worklog

import "time"

// secondsPerDay is the day-bucketing modulus applied to raw unix seconds.
const secondsPerDay = 86400

// DayKey identifies a calendar day as the unix second of its boundary.
// It is derived by plain modulo arithmetic on the raw authorship instant;
// no calendar-library timezone adjustment is performed.
type DayKey int64

// DayOf truncates an authorship instant (unix seconds) to its day boundary.
func DayOf(instant int64) DayKey {
	return DayKey(instant - instant%secondsPerDay)
}

// Unix returns the day boundary as unix seconds.
func (d DayKey) Unix() int64 {
	return int64(d)
}

// Time returns the day boundary as a UTC time.
func (d DayKey) Time() time.Time {
	return time.Unix(int64(d), 0).UTC()
}

// String renders the day as DD.MM.YYYY, the report header format.
func (d DayKey) String() string {
	return d.Time().Format("02.01.2006")
}
