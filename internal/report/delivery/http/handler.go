package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/inventoryops/warehouse-api/internal/middleware"
	"github.com/inventoryops/warehouse-api/internal/report/domain"
	"github.com/inventoryops/warehouse-api/internal/report/render"
	"github.com/inventoryops/warehouse-api/internal/report/usecase/query"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
	authpkg "github.com/inventoryops/warehouse-api/pkg/auth"
	"github.com/inventoryops/warehouse-api/pkg/logger"
)

// ReportHandler serves the stock status report as CSV or PDF.
type ReportHandler struct {
	buildHandler *query.BuildReportHandler
	authn        func(http.HandlerFunc) http.HandlerFunc
}

// NewReportHandler creates a new report handler
func NewReportHandler(buildHandler *query.BuildReportHandler, tokens *authpkg.TokenManager) *ReportHandler {
	return &ReportHandler{
		buildHandler: buildHandler,
		authn:        middleware.Auth(tokens),
	}
}

func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/inventory/report-csv", h.authn(h.ReportCSV)).Methods("GET")
	router.HandleFunc("/inventory/report-pdf", h.authn(h.ReportPDF)).Methods("GET")
}

// ReportCSV handles GET /inventory/report-csv
func (h *ReportHandler) ReportCSV(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.buildRows(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory-report.csv"`)
	if err := render.WriteCSV(w, rows); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to write csv report")
	}
}

// ReportPDF handles GET /inventory/report-pdf
func (h *ReportHandler) ReportPDF(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.buildRows(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory-report.pdf"`)
	if err := render.WritePDF(w, rows); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to write pdf report")
	}
}

func (h *ReportHandler) buildRows(w http.ResponseWriter, r *http.Request) ([]domain.Row, bool) {
	q := query.BuildReportQuery{}

	start, ok := parseDate(w, r, "startDate")
	if !ok {
		return nil, false
	}
	end, ok := parseDate(w, r, "endDate")
	if !ok {
		return nil, false
	}
	q.StartDate = start
	q.EndDate = end

	rows, err := h.buildHandler.Handle(q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to build report")
		respondError(w, apperror.HTTPStatus(err), err.Error())
		return nil, false
	}
	return rows, true
}

// parseDate reads an optional date query parameter, accepting either a
// plain date or a full RFC 3339 timestamp.
func parseDate(w http.ResponseWriter, r *http.Request, name string) (*time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	respondError(w, http.StatusBadRequest, "Invalid "+name)
	return nil, false
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
