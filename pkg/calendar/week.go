package calendar

import "time"

// week1Monday returns the Monday of ISO week 1. Jan 4 always falls in week
// 1, so walk back from it to the preceding Monday (Mon=1..Sun=7).
func week1Monday(year int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7 // Sunday
	}
	return jan4.AddDate(0, 0, -(wd - 1))
}

// WeekRange returns the Monday–Sunday span of the given ISO-8601 week,
// clipped so the start is never before Jan 1 and the end never after Dec 31
// of the year.
func WeekRange(year, week int) (start, end time.Time) {
	monday := week1Monday(year).AddDate(0, 0, (week-1)*7)
	sunday := monday.AddDate(0, 0, 6)

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	if monday.Before(jan1) {
		monday = jan1
	}
	if sunday.After(dec31) {
		sunday = dec31
	}
	return monday, sunday
}

// TotalWeeks returns the number of ISO-8601 weeks in the year: 53 when Jan 1
// is a Thursday, or a Wednesday in a leap year; 52 otherwise.
func TotalWeeks(year int) int {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	switch jan1.Weekday() {
	case time.Thursday:
		return 53
	case time.Wednesday:
		if isLeap(year) {
			return 53
		}
	}
	return 52
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
