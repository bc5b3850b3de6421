package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	ReportCacheHits      uint64
	ReportCacheMisses    uint64
	ReportCacheStale     uint64
	FetchErrors          uint64
	FetchDurationCount   uint64
	FetchDurationTotalNs int64
	ReportRowsLast       int64
	Exports              uint64
	ExportsEmpty         uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	reportCacheHits      uint64
	reportCacheMisses    uint64
	reportCacheStale     uint64
	fetchErrors          uint64
	fetchDurationCount   uint64
	fetchDurationTotalNs int64
	reportRowsLast       int64
	exports              uint64
	exportsEmpty         uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		ReportCacheHits:      atomic.LoadUint64(&m.reportCacheHits),
		ReportCacheMisses:    atomic.LoadUint64(&m.reportCacheMisses),
		ReportCacheStale:     atomic.LoadUint64(&m.reportCacheStale),
		FetchErrors:          atomic.LoadUint64(&m.fetchErrors),
		FetchDurationCount:   atomic.LoadUint64(&m.fetchDurationCount),
		FetchDurationTotalNs: atomic.LoadInt64(&m.fetchDurationTotalNs),
		ReportRowsLast:       atomic.LoadInt64(&m.reportRowsLast),
		Exports:              atomic.LoadUint64(&m.exports),
		ExportsEmpty:         atomic.LoadUint64(&m.exportsEmpty),
	}
}

// IncReportCacheHit increments the fresh-hit counter.
func (m *InMemoryRecorder) IncReportCacheHit() {
	atomic.AddUint64(&m.reportCacheHits, 1)
}

// IncReportCacheMiss increments the miss counter.
func (m *InMemoryRecorder) IncReportCacheMiss() {
	atomic.AddUint64(&m.reportCacheMisses, 1)
}

// IncReportCacheStale counts reads served from a stale entry.
func (m *InMemoryRecorder) IncReportCacheStale() {
	atomic.AddUint64(&m.reportCacheStale, 1)
}

// IncFetchError increments the upstream failure counter.
func (m *InMemoryRecorder) IncFetchError() {
	atomic.AddUint64(&m.fetchErrors, 1)
}

// ObserveFetchDuration records one upstream fetch duration.
func (m *InMemoryRecorder) ObserveFetchDuration(duration time.Duration) {
	atomic.AddUint64(&m.fetchDurationCount, 1)
	atomic.AddInt64(&m.fetchDurationTotalNs, duration.Nanoseconds())
}

// ObserveReportRows records the row count of the last built report.
func (m *InMemoryRecorder) ObserveReportRows(rows int) {
	atomic.StoreInt64(&m.reportRowsLast, int64(rows))
}

// IncExport increments the successful export counter.
func (m *InMemoryRecorder) IncExport() {
	atomic.AddUint64(&m.exports, 1)
}

// IncExportEmpty counts export attempts against empty reports.
func (m *InMemoryRecorder) IncExportEmpty() {
	atomic.AddUint64(&m.exportsEmpty, 1)
}
