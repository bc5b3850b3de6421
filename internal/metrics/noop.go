package metrics

import "time"

// NoopRecorder discards all metric events.
type NoopRecorder struct{}

// NewNoop returns a Recorder that does nothing.
func NewNoop() *NoopRecorder { return &NoopRecorder{} }

func (*NoopRecorder) IncReportCacheHit()                 {}
func (*NoopRecorder) IncReportCacheMiss()                {}
func (*NoopRecorder) IncReportCacheStale()               {}
func (*NoopRecorder) IncFetchError()                     {}
func (*NoopRecorder) ObserveFetchDuration(time.Duration) {}
func (*NoopRecorder) ObserveReportRows(int)              {}
func (*NoopRecorder) IncExport()                         {}
func (*NoopRecorder) IncExportEmpty()                    {}
