package timewindow

import (
	"time"

	"github.com/de-tools/report-views/pkg/models/domain"
)

// Offsets used when the default windows are built.
const (
	CurrentDays     = 1
	DefaultDays     = 30
	WeeklyWeeks     = 12
	MonthlyMonths   = 12
	QuarterlyMonths = 36
	YearlyYears     = 1
)

// Windows holds the default range for each granularity, computed once against
// a single anchor. Hosts build it at startup and pass it where it is needed.
type Windows struct {
	Anchor    time.Time
	Current   domain.DateRange
	Daily     domain.DateRange
	Weekly    domain.DateRange
	Monthly   domain.DateRange
	Quarterly domain.DateRange
	Yearly    domain.DateRange
}

// NewWindows computes every default window against now.
func NewWindows(now time.Time) Windows {
	return Windows{
		Anchor:    now,
		Current:   ComputeRange(domain.GranularityDaily, now, CurrentDays),
		Daily:     ComputeRange(domain.GranularityDaily, now, DefaultDays),
		Weekly:    ComputeRange(domain.GranularityWeekly, now, WeeklyWeeks),
		Monthly:   ComputeRange(domain.GranularityMonthly, now, MonthlyMonths),
		Quarterly: ComputeRange(domain.GranularityQuarterly, now, QuarterlyMonths),
		Yearly:    ComputeRange(domain.GranularityYearly, now, YearlyYears),
	}
}

// Lookup returns the default window for g. CURRENT and unknown tags get the
// DAILY window.
func (w Windows) Lookup(g domain.Granularity) domain.DateRange {
	switch g {
	case domain.GranularityWeekly:
		return w.Weekly
	case domain.GranularityMonthly:
		return w.Monthly
	case domain.GranularityQuarterly:
		return w.Quarterly
	case domain.GranularityYearly:
		return w.Yearly
	default:
		return w.Daily
	}
}
