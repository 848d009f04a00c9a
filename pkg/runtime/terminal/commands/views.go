package commands

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/de-tools/report-views/pkg/models/domain"
	"github.com/de-tools/report-views/pkg/services/reporting"
)

type ViewsCmd struct {
	group    string
	viewID   string
	service  *reporting.Service
	reporter Reporter
}

func NewViewsCmd(service *reporting.Service, reporter Reporter) *cobra.Command {
	vc := &ViewsCmd{service: service, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "views",
		Short: "List configured products and the views they govern",
		RunE:  vc.run,
	}

	cmd.Flags().StringVar(&vc.group, "group", "", "Only list views of this product group")
	cmd.Flags().StringVar(&vc.viewID, "id", "", "Only list views registered under this view id")
	cmd.MarkFlagsMutuallyExclusive("group", "id")

	return cmd
}

func (vc *ViewsCmd) run(cmd *cobra.Command, args []string) error {
	reg := vc.service.Registry()

	var section domain.ReportSection
	switch {
	case vc.group != "":
		section = viewSection(fmt.Sprintf("Views of group %s", vc.group), vc.group, reg.ViewsByGroup(vc.group))
	case vc.viewID != "":
		section = viewSection(fmt.Sprintf("Views registered as %s", vc.viewID), vc.viewID, reg.ViewsByID(vc.viewID))
	default:
		section = domain.ReportSection{Title: "Products"}
		for _, p := range reg.Products() {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:        p.ProductID,
				Value:       p.ViewID,
				Description: p.ProductGroup,
			})
		}
	}

	return vc.reporter.Handle(&domain.Report{
		Title:    "Product registry",
		Sections: []domain.ReportSection{section},
	})
}

func viewSection(title, key string, views []string) domain.ReportSection {
	section := domain.ReportSection{
		Title:   title,
		Summary: map[string]interface{}{"views": len(views)},
	}
	for _, id := range views {
		section.Details = append(section.Details, domain.ReportDetail{Name: id, Value: key})
	}
	return section
}

// queryDetails lists the fields of q in key order.
func queryDetails(q domain.Query, unit string) []domain.ReportDetail {
	details := make([]domain.ReportDetail, 0, len(q))
	for _, key := range slices.Sorted(maps.Keys(q)) {
		details = append(details, domain.ReportDetail{Name: key, Value: q[key], Unit: unit})
	}
	return details
}
