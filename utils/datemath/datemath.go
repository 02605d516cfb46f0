package datemath

import "time"

// DaysInMonth returns the number of days in the given month (1..12) of year,
// following the Gregorian calendar including leap years.
func DaysInMonth(month, year int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first day of the given month
// (1..12), 0 = Sunday.
func FirstWeekday(month, year int) int {
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Weekday returns the weekday of a specific day of the month, 0 = Sunday.
func Weekday(month, day, year int) int {
	return int(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday())
}

// IsToday reports whether (month, day, year) is the wall-clock date right now.
func IsToday(month, day, year int) bool {
	now := time.Now()
	return now.Year() == year && int(now.Month()) == month && now.Day() == day
}

// WeekBucket partitions a month into 7-day buckets counted from day 1:
// days 1-7 are bucket 1, days 8-14 bucket 2, and so on. This is a coarse
// septile partition, not an ISO week; it does not align with weekday
// boundaries.
func WeekBucket(day int) int {
	return (day + 6) / 7
}
