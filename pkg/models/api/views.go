package api

import (
	"time"

	"github.com/de-tools/report-views/pkg/models/domain"
)

// DateRange is the response body of the range endpoints.
type DateRange struct {
	Granularity domain.Granularity `json:"granularity"`
	Offset      *int               `json:"offset,omitempty"`
	StartDate   time.Time          `json:"startDate"`
	EndDate     time.Time          `json:"endDate"`
}

// MonthList is the response body of the month index endpoint.
type MonthList struct {
	Months []domain.MonthBucket `json:"months"`
}

// Timestamp is the response body of the formats endpoint.
type Timestamp struct {
	YearMonthDate string `json:"yearMonthDate"`
	TimeLong      string `json:"timeLong"`
	YearTimeLong  string `json:"yearTimeLong"`
	TimeShort     string `json:"timeShort"`
	YearTimeShort string `json:"yearTimeShort"`
}
