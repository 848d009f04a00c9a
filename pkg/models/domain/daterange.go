package domain

import "time"

// Granularity is the reporting bucket size used to pick a date window.
type Granularity string

const (
	GranularityDaily     Granularity = "DAILY"
	GranularityWeekly    Granularity = "WEEKLY"
	GranularityMonthly   Granularity = "MONTHLY"
	GranularityQuarterly Granularity = "QUARTERLY"
	GranularityYearly    Granularity = "YEARLY"
	GranularityCurrent   Granularity = "CURRENT"
)

// Granularities lists every known tag, in display order.
var Granularities = []Granularity{
	GranularityDaily,
	GranularityWeekly,
	GranularityMonthly,
	GranularityQuarterly,
	GranularityYearly,
	GranularityCurrent,
}

// DateRange is an inclusive window of whole UTC days. StartDate sits at
// 00:00:00.000 and EndDate at 23:59:59.999 of their respective days.
type DateRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Days returns the number of calendar days the range covers.
func (r DateRange) Days() int {
	return int(r.EndDate.Sub(r.StartDate)/(24*time.Hour)) + 1
}
