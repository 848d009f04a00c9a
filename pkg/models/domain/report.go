package domain

import "time"

// Report is a printable summary of windows, months or views.
type Report struct {
	Title    string
	Period   *TimePeriod
	Sections []ReportSection
}

// TimePeriod represents the time range a report covers
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

// NewTimePeriod converts a date range into a report period.
func NewTimePeriod(r DateRange) *TimePeriod {
	return &TimePeriod{Start: r.StartDate, End: r.EndDate, Duration: r.Days()}
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail is one row of a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
