package http

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"strings"

	"relay-analytics/internal/models"
	"relay-analytics/internal/relaystats"
	"relay-analytics/internal/reports"
)

//go:embed templates/index.html.tmpl
var indexTemplateText string

var indexTemplate = template.Must(template.New("index").
	Funcs(template.FuncMap{
		"percent":   reports.FormatPercent,
		"bandwidth": reports.FormatBandwidth,
		"upper":     strings.ToUpper,
	}).
	Parse(indexTemplateText))

type indexPageData struct {
	Country string
	Report  *models.CountryReport
	Error   *ErrorResponse
}

type indexPageHandler struct {
	relayStatsService relaystats.RelayStatsService
	defaultCountry    string
}

// NewIndexPageHandler serves the HTML overview. Requests without ?country= show defaultCountry.
func NewIndexPageHandler(relayStatsService relaystats.RelayStatsService, defaultCountry string) AppHttpHandler {
	return &indexPageHandler{
		relayStatsService: relayStatsService,
		defaultCountry:    defaultCountry,
	}
}

// Handle processes GET / requests. Service failures are rendered into the page with the
// matching status code rather than returned as JSON.
func (h *indexPageHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	country := r.URL.Query().Get(paramCountry)
	if strings.TrimSpace(country) == "" {
		country = h.defaultCountry
	}

	data := indexPageData{Country: country}
	status := http.StatusOK

	report, err := h.relayStatsService.CountryReport(r.Context(), country)
	if err != nil {
		svcErr := toServiceError(r, err)
		markServiceError(w, svcErr)
		status = svcErr.HttpStatusCode
		data.Error = &ErrorResponse{
			RequestID:        requestID(r),
			ErrorCategory:    svcErr.Category,
			ErrorCode:        svcErr.Code,
			ErrorDescription: svcErr.Message,
		}
	} else {
		data.Report = report
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		return errInternalPageRenderFailed(err)
	}

	w.Header().Set(headerContentType, "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}
