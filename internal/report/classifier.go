package report

import (
	"time"

	"github.com/shipgrid/shipgrid/internal/model"
)

// DayExceptionProvider signals non-business days for a cohort, such as a
// holiday calendar or a no-billing agreement. It is consulted only for
// days without a file arrival; returning false falls through to the
// pending/future classification.
type DayExceptionProvider interface {
	ClassifyException(cohort model.CohortKey, day int) (model.DayStatus, bool)
}

// Builder turns a month of raw arrival events into a Report.
// The zero options build against the wall clock with no day exceptions.
type Builder struct {
	exceptions DayExceptionProvider
	now        func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithExceptions installs a day-exception provider.
func WithExceptions(p DayExceptionProvider) Option {
	return func(b *Builder) { b.exceptions = p }
}

// WithClock overrides the clock used for the future/pending split and the
// summary day bound. Tests use this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build materializes the report for the (year, month) window.
// Each call produces a fresh Report; published reports are never mutated.
func (b *Builder) Build(year int, month time.Month, events []model.ShipmentEvent) *model.Report {
	now := b.now()

	keys, groups := Cohorts(events)
	rows := make([]model.SupplierRow, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, b.classify(year, month, now, key, groups[key]))
	}

	return &model.Report{
		Suppliers: rows,
		Summary:   Summarize(rows, year, month, now),
		Metadata: model.Metadata{
			Count:     len(events),
			Year:      year,
			Month:     int(month),
			Companies: distinctSorted(rows, companyOf),
			Branches:  distinctSorted(rows, branchOf),
			Suppliers: distinctSorted(rows, supplierOf),
		},
	}
}

// classify produces the dense day mapping for one cohort. When several
// files arrive on the same day the last one in arrival order wins;
// earlier arrivals are superseded silently.
func (b *Builder) classify(year int, month time.Month, now time.Time, key model.CohortKey, events []model.ShipmentEvent) model.SupplierRow {
	total := model.DaysInMonth(year, month)
	days := make(map[int]model.DayRecord, total)

	for _, ev := range events {
		days[ev.FileDate.Day()] = model.DayRecord{
			Status:     model.StatusSent,
			Timestamp:  ev.FileTime,
			SourceFile: ev.Routine,
		}
	}

	currentMonth := now.Year() == year && now.Month() == month
	for day := 1; day <= total; day++ {
		if _, ok := days[day]; ok {
			continue
		}
		if b.exceptions != nil {
			if status, ok := b.exceptions.ClassifyException(key, day); ok {
				days[day] = model.DayRecord{Status: status}
				continue
			}
		}
		if currentMonth && day > now.Day() {
			days[day] = model.DayRecord{Status: model.StatusFuture}
		} else {
			days[day] = model.DayRecord{Status: model.StatusPending}
		}
	}

	return model.SupplierRow{
		ID:       key.ID(),
		Supplier: key.Supplier,
		Company:  key.Company,
		Branch:   key.Branch,
		Days:     days,
	}
}
