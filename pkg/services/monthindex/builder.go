// Package monthindex builds the rolling list of months offered by the month
// picker, newest first.
package monthindex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/report-views/pkg/models/domain"
	"github.com/de-tools/report-views/pkg/services/i18n"
	"github.com/de-tools/report-views/pkg/services/timewindow"
)

// CurrentKey selects the current month from an index.
const CurrentKey = "current"

// Build walks span month by month and returns the resulting index. Titles are
// year-qualified for months outside now's year. span is normally the yearly
// default window, which keeps the index within twelve months.
func Build(span domain.DateRange, now time.Time, translator i18n.Translator) domain.MonthIndex {
	currentYear := now.UTC().Year()
	end := span.EndDate.UTC()

	index := domain.MonthIndex{
		ByName:  map[string]domain.MonthBucket{},
		ByMonth: map[int]domain.MonthBucket{},
	}

	for cursor := timewindow.BeginMonth(span.StartDate, 0); end.After(cursor) || sameMonth(cursor, end); cursor = cursor.AddDate(0, 1, 0) {
		name := cursor.Month().String()
		title := name
		if cursor.Year() != currentYear {
			title = fmt.Sprintf("%s %d", name, cursor.Year())
		}

		bucket := domain.MonthBucket{
			Title:    translator.Label(i18n.ToolbarLabel, i18n.ContextRangedMonthly, title),
			RawTitle: strings.ToLower(name),
			Value: domain.DateRange{
				StartDate: cursor,
				EndDate:   timewindow.EndMonth(cursor),
			},
		}

		index.ByName[bucket.RawTitle] = bucket
		index.ByMonth[int(cursor.Month())-1] = bucket
		index.List = append(index.List, bucket)
	}

	if len(index.List) == 0 {
		return index
	}

	for i, j := 0, len(index.List)-1; i < j; i, j = i+1, j-1 {
		index.List[i], index.List[j] = index.List[j], index.List[i]
	}

	index.List[0].IsCurrent = true
	index.List[0].RawTitle = CurrentKey
	index.List[0].Title = translator.Label(i18n.ToolbarLabel, i18n.ContextRangedMonthly, CurrentKey)
	index.Current = index.List[0]

	return index
}

// Select returns the bucket stored under key: "current", a lower-cased month
// name, or a zero-based month number.
func Select(index domain.MonthIndex, key string) (domain.MonthBucket, bool) {
	if key == CurrentKey {
		return index.Current, len(index.List) > 0
	}
	if bucket, ok := index.ByName[key]; ok {
		return bucket, true
	}
	if n, err := strconv.Atoi(key); err == nil {
		bucket, ok := index.ByMonth[n]
		return bucket, ok
	}
	return domain.MonthBucket{}, false
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
