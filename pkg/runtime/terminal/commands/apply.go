package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/de-tools/report-views/pkg/models/domain"
	"github.com/de-tools/report-views/pkg/services/reporting"
)

type ApplyCmd struct {
	viewID      string
	granularity string
	service     *reporting.Service
	reporter    Reporter
}

func NewApplyCmd(service *reporting.Service, reporter Reporter) *cobra.Command {
	ac := &ApplyCmd{service: service, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Select a granularity for a view and show the resulting query",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.viewID, "view", "", "View id to update")
	cmd.Flags().StringVar(&ac.granularity, "granularity", "", "Granularity to select (e.g., weekly)")

	_ = cmd.MarkFlagRequired("view")
	_ = cmd.MarkFlagRequired("granularity")

	return cmd
}

func (ac *ApplyCmd) run(cmd *cobra.Command, args []string) error {
	g := domain.Granularity(strings.ToUpper(ac.granularity))
	if !slices.Contains(domain.Granularities, g) {
		return fmt.Errorf("unsupported granularity %q. Supported granularities: %v", ac.granularity, domain.Granularities)
	}

	state := ac.service.ApplyGranularity(cmd.Context(), ac.viewID, g)

	details := queryDetails(state.GraphTallyQuery[ac.viewID], "graph")
	details = append(details, queryDetails(state.Query[ac.viewID], "query")...)

	return ac.reporter.Handle(&domain.Report{
		Title:    fmt.Sprintf("Query for %s", ac.viewID),
		Period:   domain.NewTimePeriod(ac.service.Range(g)),
		Sections: []domain.ReportSection{{Title: string(g), Details: details}},
	})
}
