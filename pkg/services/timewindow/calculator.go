// Package timewindow derives the start/end pairs used by every reporting
// granularity. All arithmetic is done in UTC on whole days, and every helper
// returns a new time.Time rather than adjusting its argument.
package timewindow

import (
	"time"

	"github.com/de-tools/report-views/pkg/models/domain"
)

// BeginDay returns 00:00:00.000 UTC of ts's day.
func BeginDay(ts time.Time) time.Time {
	yy, mm, dd := ts.UTC().Date()
	return time.Date(yy, mm, dd, 0, 0, 0, 0, time.UTC)
}

// EndDay returns 23:59:59.999 UTC of ts's day.
func EndDay(ts time.Time) time.Time {
	yy, mm, dd := ts.UTC().Date()
	return time.Date(yy, mm, dd, 23, 59, 59, int(time.Second-time.Millisecond), time.UTC)
}

// BeginMonth returns the first instant of the month that is monthOffset months
// away from ts's month. Month and year carry through time.Date normalization.
func BeginMonth(ts time.Time, monthOffset int) time.Time {
	yy, mm, _ := ts.UTC().Date()
	return time.Date(yy, mm+time.Month(monthOffset), 1, 0, 0, 0, 0, time.UTC)
}

// EndMonth returns the last instant of ts's month.
func EndMonth(ts time.Time) time.Time {
	yy, mm, _ := ts.UTC().Date()
	// Day 0 of the next month is the last day of this one.
	return EndDay(time.Date(yy, mm+1, 0, 0, 0, 0, 0, time.UTC))
}

// ComputeRange returns the window for granularity g anchored at anchor, reaching
// offset units back. QUARTERLY windows are counted in months. CURRENT and
// unknown tags are treated as DAILY.
func ComputeRange(g domain.Granularity, anchor time.Time, offset int) domain.DateRange {
	switch g {
	case domain.GranularityWeekly:
		return weekRange(anchor, offset)
	case domain.GranularityMonthly, domain.GranularityQuarterly:
		return monthRange(anchor, offset)
	case domain.GranularityYearly:
		return yearRange(anchor, offset)
	default:
		return dayRange(anchor, offset)
	}
}

// dayRange spans offset+1 days ending on anchor's day.
func dayRange(anchor time.Time, offset int) domain.DateRange {
	return domain.DateRange{
		StartDate: BeginDay(anchor).AddDate(0, 0, -offset),
		EndDate:   EndDay(anchor),
	}
}

// weekRange spans offset+1 whole weeks, the last of which ends on anchor's day.
func weekRange(anchor time.Time, offset int) domain.DateRange {
	return domain.DateRange{
		StartDate: BeginDay(anchor).AddDate(0, 0, -(6 + offset*7)),
		EndDate:   EndDay(anchor),
	}
}

// monthRange spans offset+1 calendar months ending with anchor's month.
func monthRange(anchor time.Time, offset int) domain.DateRange {
	return domain.DateRange{
		StartDate: BeginMonth(anchor, -offset),
		EndDate:   EndMonth(anchor),
	}
}

// yearRange starts the month after anchor's month, offset years back, and ends
// with anchor's month. With offset 1 this is the trailing twelve months, not a
// calendar year.
func yearRange(anchor time.Time, offset int) domain.DateRange {
	yy, mm, _ := anchor.UTC().Date()
	return domain.DateRange{
		StartDate: time.Date(yy-offset, mm+1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   EndMonth(anchor),
	}
}
