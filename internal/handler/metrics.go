package handler

import (
	"fmt"
	"net/http"

	"github.com/shipgrid/shipgrid/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
//
// GET /metrics
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "shipgrid_report_cache_hits_total %d\n", snap.ReportCacheHits)
	writeMetric(w, "shipgrid_report_cache_misses_total %d\n", snap.ReportCacheMisses)
	writeMetric(w, "shipgrid_report_cache_stale_served_total %d\n", snap.ReportCacheStale)
	writeMetric(w, "shipgrid_fetch_errors_total %d\n", snap.FetchErrors)
	writeMetric(w, "shipgrid_fetch_duration_seconds_count %d\n", snap.FetchDurationCount)
	writeMetric(w, "shipgrid_fetch_duration_seconds_sum %.6f\n", float64(snap.FetchDurationTotalNs)/1e9)
	writeMetric(w, "shipgrid_report_rows %d\n", snap.ReportRowsLast)
	writeMetric(w, "shipgrid_exports_total %d\n", snap.Exports)
	writeMetric(w, "shipgrid_exports_empty_total %d\n", snap.ExportsEmpty)
}

func writeMetric(w http.ResponseWriter, format string, value any) {
	fmt.Fprintf(w, format, value)
}
