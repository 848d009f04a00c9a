package adapters

import (
	"time"

	"github.com/de-tools/report-views/pkg/models/api"
	"github.com/de-tools/report-views/pkg/models/domain"
	"github.com/de-tools/report-views/pkg/services/timewindow"
)

func MapDomainRangeToApiRange(g domain.Granularity, r domain.DateRange) api.DateRange {
	return api.DateRange{
		Granularity: g,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

func MapDomainRangeToApiComputedRange(g domain.Granularity, offset int, r domain.DateRange) api.DateRange {
	rng := MapDomainRangeToApiRange(g, r)
	rng.Offset = &offset
	return rng
}

func MapDomainMonthIndexToApiMonthList(index domain.MonthIndex) api.MonthList {
	months := make([]domain.MonthBucket, len(index.List))
	copy(months, index.List)
	return api.MonthList{Months: months}
}

func MapInstantToApiTimestamp(at time.Time) api.Timestamp {
	utc := timewindow.UTCTimeFormats(at)
	return api.Timestamp{
		YearMonthDate: timewindow.NumericDay(at).YearMonthDate,
		TimeLong:      utc.TimeLong,
		YearTimeLong:  utc.YearTimeLong,
		TimeShort:     utc.TimeShort,
		YearTimeShort: utc.YearTimeShort,
	}
}
