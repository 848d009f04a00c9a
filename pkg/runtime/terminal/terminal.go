package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/report-views/pkg/models/domain"
	"github.com/de-tools/report-views/pkg/runtime/terminal/commands"
	"github.com/de-tools/report-views/pkg/runtime/terminal/export"
	"github.com/de-tools/report-views/pkg/services/reporting"
)

// CLI represents the command-line interface
type CLI struct {
	service *reporting.Service
	output  string
	table   *export.Reporter
	plain   *Reporter
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Service *reporting.Service
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		service: opts.Service,
		table:   export.NewReporter(opts.Output),
		plain:   NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides the arguments Execute parses.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

// Handle renders report with the reporter picked by --output.
func (cli *CLI) Handle(report *domain.Report) error {
	switch cli.output {
	case "table", "":
		return cli.table.Handle(report)
	case "text":
		return cli.plain.Handle(report)
	default:
		return fmt.Errorf("unsupported output %q. Supported outputs: table, text", cli.output)
	}
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "views",
		Short:         "Reporting view query and date window tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&cli.output, "output", "o", "table", "Output format: table or text")

	cmd.AddCommand(commands.NewRangeCmd(cli.service, cli))
	cmd.AddCommand(commands.NewMonthsCmd(cli.service, cli))
	cmd.AddCommand(commands.NewFormatCmd(cli.service, cli))
	cmd.AddCommand(commands.NewViewsCmd(cli.service, cli))
	cmd.AddCommand(commands.NewApplyCmd(cli.service, cli))

	return cmd
}
