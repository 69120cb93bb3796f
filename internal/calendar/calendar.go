// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

// Package calendar maps simulated day indices to calendar context.
package calendar

import (
	"fmt"
	"time"

	"github.com/tomtom215/cinesynth/internal/models"
)

// DateLayout is the date format accepted for start dates and written to
// output files.
const DateLayout = "2006-01-02"

// DayContext is the calendar context for one simulated day.
type DayContext struct {
	Index     int
	Date      time.Time
	Season    string
	DayOfWeek string
}

var seasonByMonth = [13]string{
	time.December:  models.SeasonWinter,
	time.January:   models.SeasonWinter,
	time.February:  models.SeasonWinter,
	time.March:     models.SeasonSpring,
	time.April:     models.SeasonSpring,
	time.May:       models.SeasonSpring,
	time.June:      models.SeasonSummer,
	time.July:      models.SeasonSummer,
	time.August:    models.SeasonSummer,
	time.September: models.SeasonAutumn,
	time.October:   models.SeasonAutumn,
	time.November:  models.SeasonAutumn,
}

// SeasonForMonth returns the meteorological season of m.
func SeasonForMonth(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return seasonByMonth[m]
}

// DayOfWeekLabel returns the weekday name used in preference tables.
func DayOfWeekLabel(d time.Weekday) string {
	return d.String()
}

// ParseDate parses a YYYY-MM-DD date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want %s): %w", s, DateLayout, err)
	}
	return t, nil
}

// BuildDayMapping returns one DayContext per index in [0, numDays). Dates
// are calendar days after start, truncated to UTC midnight.
func BuildDayMapping(start time.Time, numDays int) ([]DayContext, error) {
	if numDays < 0 {
		return nil, fmt.Errorf("number of days must not be negative, got %d", numDays)
	}
	y, m, d := start.Date()
	base := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	days := make([]DayContext, numDays)
	for i := range days {
		date := base.AddDate(0, 0, i)
		days[i] = DayContext{
			Index:     i,
			Date:      date,
			Season:    SeasonForMonth(date.Month()),
			DayOfWeek: DayOfWeekLabel(date.Weekday()),
		}
	}
	return days, nil
}
