package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/de-tools/report-views/pkg/models/domain"
	"github.com/de-tools/report-views/pkg/services/reporting"
	"github.com/de-tools/report-views/pkg/services/timewindow"
)

type FormatCmd struct {
	at       string
	service  *reporting.Service
	reporter Reporter
}

func NewFormatCmd(service *reporting.Service, reporter Reporter) *cobra.Command {
	fc := &FormatCmd{service: service, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Render an instant with every display format",
		RunE:  fc.run,
	}

	cmd.Flags().StringVar(&fc.at, "at", "", "Instant to render in RFC 3339 (defaults to the service anchor)")

	return cmd
}

func (fc *FormatCmd) run(cmd *cobra.Command, args []string) error {
	at := fc.service.Windows().Anchor
	if fc.at != "" {
		parsed, err := time.Parse(time.RFC3339, fc.at)
		if err != nil {
			return fmt.Errorf("invalid --at value %q: %w", fc.at, err)
		}
		at = parsed
	}

	utc := timewindow.UTCTimeFormats(at)
	day := at.UTC()

	return fc.reporter.Handle(&domain.Report{
		Title: "Display formats",
		Sections: []domain.ReportSection{
			{
				Title: "UTC",
				Details: []domain.ReportDetail{
					{Name: "yearMonthDate", Value: timewindow.NumericDay(at).YearMonthDate},
					{Name: "timeLong", Value: utc.TimeLong},
					{Name: "yearTimeLong", Value: utc.YearTimeLong},
					{Name: "timeShort", Value: utc.TimeShort},
					{Name: "yearTimeShort", Value: utc.YearTimeShort},
				},
			},
			{
				Title: "Labels",
				Details: []domain.ReportDetail{
					{Name: "dayLong", Value: day.Format(timewindow.DayFormats.Long)},
					{Name: "dayYearShort", Value: day.Format(timewindow.DayFormats.YearShort)},
					{Name: "monthYearLong", Value: day.Format(timewindow.MonthFormats.YearLong)},
					{Name: "quarterShort", Value: day.Format(timewindow.QuarterFormats.Short)},
					{Name: "timeLong", Value: day.Format(timewindow.TimeFormats.TimeLong)},
					{Name: "yearTimeShort", Value: day.Format(timewindow.TimeFormats.YearTimeShort)},
				},
			},
		},
	})
}
