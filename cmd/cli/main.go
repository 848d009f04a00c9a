package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/de-tools/report-views/pkg/runtime/terminal"
	"github.com/de-tools/report-views/pkg/services/config"
	"github.com/de-tools/report-views/pkg/services/reporting"
)

func main() {
	_ = godotenv.Load()

	settings, err := config.Load(os.Getenv("REPORTING_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	svc, err := reporting.Bootstrap(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Service: svc,
		Output:  os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
