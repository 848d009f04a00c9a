package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/report-views/pkg/server"
	"github.com/de-tools/report-views/pkg/services/config"
	"github.com/de-tools/report-views/pkg/services/reporting"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for report views",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a settings file (REPORTING_* environment variables take precedence)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	settings, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	svc, err := reporting.Bootstrap(settings)
	if err != nil {
		return fmt.Errorf("failed to create reporting service: %w", err)
	}

	windows := svc.Windows()
	logger.Info().
		Str("env", settings.Env).
		Time("anchor", windows.Anchor).
		Int("products", len(svc.Registry().Products())).
		Msg("reporting service ready")

	addr := net.JoinHostPort(settings.ServerHost, settings.ServerPort)

	return server.NewWebAPI(logger, server.Config{
		Addr:           addr,
		AllowedOrigins: settings.AllowedOrigins,
		Dependencies:   server.Dependencies{Service: svc},
	}).Start()
}
