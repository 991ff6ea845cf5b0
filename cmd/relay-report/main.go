// Command relay-report prints relay statistics for one or more countries.
//
//	relay-report [-config path] [country ...]
//
// With no countries the configured default country is reported.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"relay-analytics/internal/app"
	"relay-analytics/internal/relaystats"
	"relay-analytics/internal/reports"
	"relay-analytics/internal/shared/configs"
	"relay-analytics/internal/shared/loggers"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("relay-report", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "./configs/configs.yml", "path to the YAML config file")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}

	logger, err := loggers.NewWithWriter(cfg.Log.Level, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	logger = logger.With().Str(loggers.FieldComponent, "cli").Logger()

	service, err := app.NewRelayStatsService(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize relay stats: %v\n", err)
		return 1
	}

	countries := flags.Args()
	if len(countries) == 0 {
		countries = []string{cfg.Report.DefaultCountry}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	if failed := writeReports(ctx, service, countries, stdout, stderr); failed > 0 {
		return 1
	}
	return 0
}

// writeReports prints one report per country and returns how many could not be produced.
func writeReports(ctx context.Context, service relaystats.RelayStatsService, countries []string, stdout, stderr io.Writer) int {
	failed := 0
	for i, country := range countries {
		report, err := service.CountryReport(ctx, country)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", country, err)
			failed++
			continue
		}
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		if err := reports.WriteCountryReport(stdout, report); err != nil {
			fmt.Fprintf(stderr, "%s: failed to write report: %v\n", country, err)
			failed++
		}
	}
	return failed
}
