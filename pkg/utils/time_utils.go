package utils

import "time"

// India time location (IST, +05:30)
var istLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}()

const dateOnlyLayout = "2006-01-02"

// ParseDateOnly parses a calendar date ("2024-01-10") in IST.
func ParseDateOnly(s string) (time.Time, error) {
	return time.ParseInLocation(dateOnlyLayout, s, istLoc)
}

func FormatDateOnly(t time.Time) string {
	return t.Format(dateOnlyLayout)
}

// InclusiveDayCount returns the number of calendar days a trip spans,
// counting both endpoints. Same-day trips count as 1.
func InclusiveDayCount(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// AddDays shifts a date by whole calendar days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
