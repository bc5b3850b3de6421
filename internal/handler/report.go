package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shipgrid/shipgrid/internal/export"
	"github.com/shipgrid/shipgrid/internal/metrics"
	"github.com/shipgrid/shipgrid/internal/model"
	"github.com/shipgrid/shipgrid/internal/report"
	"github.com/shipgrid/shipgrid/internal/reportcache"
)

// ReportProvider supplies cached reports per month.
type ReportProvider interface {
	Get(ctx context.Context, key reportcache.Key) (*model.Report, error)
}

// ReportHandler serves the regularity report endpoints.
type ReportHandler struct {
	reports ReportProvider
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports ReportProvider, recorder metrics.Recorder, logger *slog.Logger) *ReportHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ReportHandler{
		reports: reports,
		metrics: recorder,
		logger:  logger.With("component", "handler.report"),
	}
}

// parsePeriod validates the year/month path parameters. Malformed input
// never reaches the cache or the upstream source.
func parsePeriod(r *http.Request) (int, time.Month, error) {
	yearStr := chi.URLParam(r, "year")
	monthStr := chi.URLParam(r, "month")

	year, err := strconv.Atoi(yearStr)
	if err != nil || len(yearStr) != 4 {
		return 0, 0, fmt.Errorf("invalid year %q", yearStr)
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %q", monthStr)
	}

	return year, time.Month(month), nil
}

// Get handles GET /api/relatorio/{year}/{month}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	year, month, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}

	rep, err := h.reports.Get(r.Context(), reportcache.Key{Year: year, Month: month})
	if err != nil {
		h.logger.Error("report unavailable", "year", year, "month", int(month), "error", err)
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Report data is unavailable")
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

// Facets handles GET /api/relatorio/{year}/{month}/facets.
// Query parameters empresa, filial and fornecedor carry the current
// selection; absent means "all".
func (h *ReportHandler) Facets(w http.ResponseWriter, r *http.Request) {
	year, month, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}

	rep, err := h.reports.Get(r.Context(), reportcache.Key{Year: year, Month: month})
	if err != nil {
		h.logger.Error("report unavailable", "year", year, "month", int(month), "error", err)
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Report data is unavailable")
		return
	}

	sel := model.FilterSelection{
		Year:     year,
		Month:    int(month),
		Company:  queryOr(r, "empresa", model.FilterAll),
		Branch:   queryOr(r, "filial", model.FilterAll),
		Supplier: queryOr(r, "fornecedor", model.FilterAll),
	}

	writeJSON(w, http.StatusOK, report.Facets(rep, sel))
}

// Export handles GET /api/relatorio/{year}/{month}/export.
// The CSV is buffered fully before the first byte is sent, so a failed
// export never produces a partial download.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	year, month, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}

	rep, err := h.reports.Get(r.Context(), reportcache.Key{Year: year, Month: month})
	if err != nil {
		h.logger.Error("report unavailable", "year", year, "month", int(month), "error", err)
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Report data is unavailable")
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, rep, year, month); err != nil {
		if errors.Is(err, export.ErrNoRows) {
			h.metrics.IncExportEmpty()
			writeError(w, http.StatusNotFound, "NO_DATA", "Não há dados para exportar")
			return
		}
		h.logger.Error("export failed", "year", year, "month", int(month), "error", err)
		writeError(w, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to export report")
		return
	}

	h.metrics.IncExport()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(year, month)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func queryOr(r *http.Request, name, fallback string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return fallback
}
