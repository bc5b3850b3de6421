// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Report cache metrics
	IncReportCacheHit()
	IncReportCacheMiss()
	IncReportCacheStale()

	// Upstream fetch metrics
	IncFetchError()
	ObserveFetchDuration(duration time.Duration)
	ObserveReportRows(rows int)

	// Export metrics
	IncExport()
	IncExportEmpty()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
