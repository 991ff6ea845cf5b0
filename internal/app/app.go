package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"relay-analytics/internal/aggregators"
	internalhttp "relay-analytics/internal/http"
	"relay-analytics/internal/relaystats"
	"relay-analytics/internal/shared/configs"
	"relay-analytics/internal/shared/filestorages"
	"relay-analytics/internal/shared/loggers"
	"relay-analytics/internal/sources"
)

const appName = "relay-analytics"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	relayStatsService, err := NewRelayStatsService(config, appLogger)
	if err != nil {
		return nil, err
	}

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(relayStatsService, config.Report.DefaultCountry, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// NewRelayStatsService wires the relay source selected by config.Upstream into a
// RelayStatsService. Shared by the server and the relay-report CLI.
func NewRelayStatsService(config *configs.Config, logger loggers.Logger) (relaystats.RelayStatsService, error) {
	source, err := newRelaySource(config.Upstream)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str(loggers.FieldComponent, "upstream").
		Str("mode", config.Upstream.Mode).
		Bool("network_weight", config.Upstream.NetworkWeight).
		Msg("relay source configured")

	return relaystats.NewRelayStatsService(
		sources.NewInstrumentedRelaySource(source),
		aggregators.NewStatsAggregator(),
		config.Upstream.NetworkWeight,
	), nil
}

func newRelaySource(upstream configs.UpstreamConfig) (sources.RelaySource, error) {
	switch upstream.Mode {
	case configs.UpstreamModeFile:
		fileStorage, err := filestorages.NewFileStorage(upstream.SnapshotDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize snapshot storage: %w", err)
		}
		return sources.NewSnapshotFileSource(fileStorage, upstream.SnapshotFile), nil
	case configs.UpstreamModeOnionoo:
		return sources.NewOnionooSource(upstream.BaseURL, upstream.UserAgent, upstream.TimeoutDuration()), nil
	default:
		return nil, fmt.Errorf("unknown upstream mode %q", upstream.Mode)
	}
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting %s service on port %d (log_level=%s, upstream_mode=%s, default_country=%s)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Upstream.Mode,
			app.config.Report.DefaultCountry)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
