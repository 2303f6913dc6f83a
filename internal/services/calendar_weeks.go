package services

import (
	"errors"
	"time"
)

var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// WeekRef names one ISO-8601 week. Year is the ISO week-numbering
// year, which near month boundaries may differ from the calendar year
// of the days inside the week.
type WeekRef struct {
	Year int `json:"year"`
	Week int `json:"week"`
}

// WeeksInMonth enumerates every calendar day of the given month and
// collects the distinct ISO (year, week) pairs those days fall into.
// The result is ordered by first occurrence; callers treat it as a set.
func WeeksInMonth(year int, month int) ([]WeekRef, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	weeks := make([]WeekRef, 0, 6)
	seen := make(map[WeekRef]bool, 6)
	for day := monthStart; day.Before(monthEnd); day = day.AddDate(0, 0, 1) {
		isoYear, isoWeek := day.ISOWeek()
		ref := WeekRef{Year: isoYear, Week: isoWeek}
		if seen[ref] {
			continue
		}
		seen[ref] = true
		weeks = append(weeks, ref)
	}
	return weeks, nil
}

// CurrentWeek returns the ISO (year, week) pair for the given instant.
func CurrentWeek(now time.Time) (int, int) {
	return now.ISOWeek()
}
