// Package reportcache caches built reports per (year, month) with
// stale-while-revalidate semantics: readers always get a complete,
// immutable report, stale entries are served while a background refresh
// runs, and concurrent fetches for the same month are coalesced.
package reportcache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/shipgrid/shipgrid/internal/metrics"
	"github.com/shipgrid/shipgrid/internal/model"
	"github.com/shipgrid/shipgrid/internal/report"
	"github.com/shipgrid/shipgrid/internal/source"
)

// Key identifies one cached report.
type Key struct {
	Year  int
	Month time.Month
}

// String renders the key as YYYY-MM.
func (k Key) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

type entry struct {
	report    *model.Report
	fetchedAt time.Time
}

// Cache holds the last built report per month and keeps it fresh in the
// background. A stored report is never mutated; a rebuild swaps in a new
// one atomically.
type Cache struct {
	src          source.EventSource
	builder      *report.Builder
	interval     time.Duration
	fetchTimeout time.Duration
	logger       *slog.Logger
	metrics      metrics.Recorder

	group singleflight.Group

	mu      sync.RWMutex
	entries map[Key]*entry
	subs    map[Key][]chan *model.Report

	stop     chan struct{}
	done     chan struct{}
	started  bool
	stopOnce sync.Once
}

// New creates a Cache. interval is both the freshness window and the
// background revalidation period.
func New(src source.EventSource, builder *report.Builder, interval, fetchTimeout time.Duration, logger *slog.Logger, recorder metrics.Recorder) *Cache {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Cache{
		src:          src,
		builder:      builder,
		interval:     interval,
		fetchTimeout: fetchTimeout,
		logger:       logger.With("component", "reportcache"),
		metrics:      recorder,
		entries:      make(map[Key]*entry),
		subs:         make(map[Key][]chan *model.Report),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Get returns the report for key, fetching and building it when absent.
// A stale entry is returned immediately while a refresh runs in the
// background; only a first-ever request blocks on the upstream fetch.
// Fetch failures leave a previous report authoritative and surface an
// error only when no report exists yet.
func (c *Cache) Get(ctx context.Context, key Key) (*model.Report, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		if time.Since(e.fetchedAt) < c.interval {
			c.metrics.IncReportCacheHit()
			return e.report, nil
		}
		c.metrics.IncReportCacheStale()
		go c.refresh(key)
		return e.report, nil
	}

	c.metrics.IncReportCacheMiss()
	return c.fetch(ctx, key)
}

// fetch loads and builds the report for key. Concurrent callers for the
// same key share a single upstream fetch.
func (c *Cache) fetch(ctx context.Context, key Key) (*model.Report, error) {
	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		start := time.Now()

		events, err := c.src.FetchMonth(ctx, key.Year, key.Month)
		if err != nil {
			c.metrics.IncFetchError()
			return nil, fmt.Errorf("fetch %s: %w", key, err)
		}
		c.metrics.ObserveFetchDuration(time.Since(start))

		rep := c.builder.Build(key.Year, key.Month, events)
		c.metrics.ObserveReportRows(len(rep.Suppliers))
		c.store(key, rep)

		c.logger.Debug("report built",
			"key", key.String(),
			"events", len(events),
			"rows", len(rep.Suppliers),
		)
		return rep, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Report), nil
}

// refresh rebuilds one key in the background. A failure keeps the
// previous report in place.
func (c *Cache) refresh(key Key) {
	ctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
	defer cancel()

	if _, err := c.fetch(ctx, key); err != nil {
		c.logger.Warn("revalidation failed, serving stale report",
			"key", key.String(),
			"error", err,
		)
	}
}

// store publishes a freshly built report and notifies subscribers.
func (c *Cache) store(key Key, rep *model.Report) {
	c.mu.Lock()
	c.entries[key] = &entry{report: rep, fetchedAt: time.Now()}
	subs := append([]chan *model.Report(nil), c.subs[key]...)
	c.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- rep:
		default:
			// Lagging subscriber; it picks up the next rebuild.
		}
	}
}

// Subscribe returns a channel receiving each new report built for key.
// The channel is buffered; slow consumers miss intermediate rebuilds
// instead of blocking the cache.
func (c *Cache) Subscribe(key Key) <-chan *model.Report {
	ch := make(chan *model.Report, 1)
	c.mu.Lock()
	c.subs[key] = append(c.subs[key], ch)
	c.mu.Unlock()
	return ch
}

// Revalidate refreshes every known key without blocking, for
// reconnect-style triggers.
func (c *Cache) Revalidate() {
	c.mu.RLock()
	keys := make([]Key, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	c.mu.RUnlock()

	for _, key := range keys {
		go c.refresh(key)
	}
}

// Start launches the interval revalidation loop.
func (c *Cache) Start() {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()
	go c.run()
}

func (c *Cache) run() {
	defer close(c.done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Revalidate()
		case <-c.stop:
			return
		}
	}
}

// Stop terminates the revalidation loop.
func (c *Cache) Stop(ctx context.Context) error {
	c.mu.RLock()
	started := c.started
	c.mu.RUnlock()
	if !started {
		return nil
	}

	c.stopOnce.Do(func() { close(c.stop) })
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
