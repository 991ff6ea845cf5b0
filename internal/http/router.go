package http

import (
	"net/http"

	"relay-analytics/internal/relaystats"
	"relay-analytics/internal/shared/loggers"
	"relay-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(relayStatsService relaystats.RelayStatsService, defaultCountry string, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	relayStatsHandler := NewRelayStatsHandler(relayStatsService)
	indexPageHandler := NewIndexPageHandler(relayStatsService, defaultCountry)

	router.Get("/", errorHandlingAdapter(indexPageHandler))
	router.Get("/api/relays/{"+paramCountry+"}", errorHandlingAdapter(relayStatsHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
