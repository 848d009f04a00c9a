package commands

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/de-tools/report-views/pkg/models/domain"
	"github.com/de-tools/report-views/pkg/services/i18n"
	"github.com/de-tools/report-views/pkg/services/reporting"
)

type RangeCmd struct {
	offset   int
	service  *reporting.Service
	reporter Reporter
}

func NewRangeCmd(service *reporting.Service, reporter Reporter) *cobra.Command {
	rc := &RangeCmd{service: service, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "range [granularity...]",
		Short: "Show the date window for each granularity",
		RunE:  rc.run,
	}

	cmd.Flags().IntVar(&rc.offset, "offset", -1, "Window length in granularity units (negative uses the default window)")

	return cmd
}

func (rc *RangeCmd) run(cmd *cobra.Command, args []string) error {
	granularities := domain.Granularities
	if len(args) > 0 {
		granularities = make([]domain.Granularity, 0, len(args))
		for _, arg := range args {
			g := domain.Granularity(strings.ToUpper(arg))
			if !slices.Contains(domain.Granularities, g) {
				return fmt.Errorf("unsupported granularity %q. Supported granularities: %v", arg, domain.Granularities)
			}
			granularities = append(granularities, g)
		}
	}

	translator := rc.service.Translator()
	section := domain.ReportSection{
		Title:   "Windows",
		Summary: map[string]interface{}{"anchor": rc.service.Windows().Anchor.Format(time.RFC3339)},
	}
	if rc.offset >= 0 {
		section.Summary["offset"] = rc.offset
	}

	for _, g := range granularities {
		rng := rc.service.Range(g)
		if rc.offset >= 0 {
			rng = rc.service.ComputeRange(g, rc.offset)
		}

		section.Details = append(section.Details, domain.ReportDetail{
			Name:        string(g),
			Value:       describeRange(rng),
			Unit:        fmt.Sprintf("%d days", rng.Days()),
			Description: translator.Label(i18n.ToolbarLabel, i18n.ContextGranularity, strings.ToLower(string(g))),
		})
	}

	return rc.reporter.Handle(&domain.Report{
		Title:    "Date windows",
		Period:   domain.NewTimePeriod(rc.service.Windows().Current),
		Sections: []domain.ReportSection{section},
	})
}
