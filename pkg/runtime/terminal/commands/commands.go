package commands

import (
	"github.com/de-tools/report-views/pkg/models/domain"
)

// Reporter renders a finished report.
type Reporter interface {
	Handle(report *domain.Report) error
}

const dateLayout = "2006-01-02"

func describeRange(r domain.DateRange) string {
	return r.StartDate.Format(dateLayout) + " to " + r.EndDate.Format(dateLayout)
}
