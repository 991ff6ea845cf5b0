package http

import (
	"net/http"

	"relay-analytics/internal/relaystats"

	"github.com/go-chi/chi/v5"
)

const paramCountry = "country"

type relayStatsHandler struct {
	relayStatsService relaystats.RelayStatsService
}

func NewRelayStatsHandler(relayStatsService relaystats.RelayStatsService) AppHttpHandler {
	return &relayStatsHandler{
		relayStatsService: relayStatsService,
	}
}

// Handle processes GET /api/relays/{country} requests.
func (h *relayStatsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.relayStatsService.CountryReport(r.Context(), chi.URLParam(r, paramCountry))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, report)
	return nil
}
