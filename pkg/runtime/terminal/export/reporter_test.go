package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-views/pkg/models/domain"
)

func TestReporter_Handle(t *testing.T) {
	var out bytes.Buffer
	reporter := NewReporter(&out)

	report := &domain.Report{
		Title: "Date windows",
		Period: domain.NewTimePeriod(domain.DateRange{
			StartDate: time.Date(2019, time.August, 20, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2019, time.August, 20, 23, 59, 59, 999000000, time.UTC),
		}),
		Sections: []domain.ReportSection{{
			Title:   "Windows",
			Summary: map[string]interface{}{"anchor": "2019-08-20T10:00:00Z"},
			Details: []domain.ReportDetail{
				{Name: "DAILY", Value: "2019-07-21 to 2019-08-20", Unit: "31 days", Description: "Daily"},
			},
		}},
	}

	require.NoError(t, reporter.Handle(report))

	rendered := out.String()
	assert.Contains(t, rendered, "Active Period: 2019-08-20 to 2019-08-20 (1 days)")
	assert.Contains(t, rendered, "=== Windows ===")
	assert.Contains(t, rendered, "anchor: 2019-08-20T10:00:00Z")
	assert.Contains(t, rendered, "| DAILY            | 2019-07-21 to 2019-08-20")
	assert.Contains(t, rendered, "| 31 days    | Daily")
}
