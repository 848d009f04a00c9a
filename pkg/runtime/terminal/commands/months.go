package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/report-views/pkg/models/domain"
	"github.com/de-tools/report-views/pkg/services/reporting"
)

type MonthsCmd struct {
	month    string
	service  *reporting.Service
	reporter Reporter
}

func NewMonthsCmd(service *reporting.Service, reporter Reporter) *cobra.Command {
	mc := &MonthsCmd{service: service, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "months",
		Short: "List the months offered by the month picker",
		RunE:  mc.run,
	}

	cmd.Flags().StringVar(&mc.month, "month", "", "Show a single month: \"current\", a month name or a zero-based month number")

	return cmd
}

func (mc *MonthsCmd) run(cmd *cobra.Command, args []string) error {
	buckets := mc.service.Months().List
	if mc.month != "" {
		bucket, ok := mc.service.Month(mc.month)
		if !ok {
			return fmt.Errorf("unknown month %q", mc.month)
		}
		buckets = []domain.MonthBucket{bucket}
	}

	section := domain.ReportSection{Title: "Months"}
	for _, b := range buckets {
		unit := ""
		if b.IsCurrent {
			unit = "current"
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        b.RawTitle,
			Value:       b.Title,
			Unit:        unit,
			Description: describeRange(b.Value),
		})
	}

	return mc.reporter.Handle(&domain.Report{
		Title:    "Month picker",
		Period:   domain.NewTimePeriod(mc.service.Windows().Yearly),
		Sections: []domain.ReportSection{section},
	})
}
