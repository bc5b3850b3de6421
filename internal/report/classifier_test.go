package report

import (
	"testing"
	"time"

	"github.com/shipgrid/shipgrid/internal/model"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type exceptionFunc func(cohort model.CohortKey, day int) (model.DayStatus, bool)

func (f exceptionFunc) ClassifyException(cohort model.CohortKey, day int) (model.DayStatus, bool) {
	return f(cohort, day)
}

func TestBuild_DenseDayMap(t *testing.T) {
	t.Parallel()

	// February 2024 is a leap month.
	now := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	b := NewBuilder(WithClock(fixedClock(now)))

	rep := b.Build(2024, time.February, []model.ShipmentEvent{
		{Supplier: "A", Company: "01", Branch: "00", FileDate: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), FileTime: "08:00:00"},
	})

	if len(rep.Suppliers) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rep.Suppliers))
	}
	row := rep.Suppliers[0]
	if len(row.Days) != 29 {
		t.Errorf("expected 29 day entries for February 2024, got %d", len(row.Days))
	}
	for day := 1; day <= 29; day++ {
		if _, ok := row.Days[day]; !ok {
			t.Errorf("day %d missing from the day map", day)
		}
	}
}

func TestBuild_LastArrivalWins(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	b := NewBuilder(WithClock(fixedClock(now)))

	day5 := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)
	rep := b.Build(2025, time.June, []model.ShipmentEvent{
		{Supplier: "A", Company: "01", Branch: "00", Routine: "S_ACCERA", FileDate: day5, FileTime: "08:00:00"},
		{Supplier: "A", Company: "01", Branch: "00", Routine: "S_ARQSALES", FileDate: day5, FileTime: "09:00:00"},
	})

	rec := rep.Suppliers[0].Days[5]
	if rec.Status != model.StatusSent {
		t.Fatalf("day 5 status = %s, want %s", rec.Status, model.StatusSent)
	}
	if rec.Timestamp != "09:00:00" {
		t.Errorf("day 5 timestamp = %q, want %q (later arrival wins)", rec.Timestamp, "09:00:00")
	}
	if rec.SourceFile != "S_ARQSALES" {
		t.Errorf("day 5 source = %q, want %q", rec.SourceFile, "S_ARQSALES")
	}
}

func TestBuild_CurrentMonthSplitsPendingAndFuture(t *testing.T) {
	t.Parallel()

	// Today is June 10 of a 30-day month.
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	b := NewBuilder(WithClock(fixedClock(now)))

	rep := b.Build(2025, time.June, []model.ShipmentEvent{
		{Supplier: "A", Company: "01", Branch: "00", FileDate: time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC), FileTime: "07:00:00"},
	})

	days := rep.Suppliers[0].Days
	for day := 1; day <= 30; day++ {
		got := days[day].Status
		var want model.DayStatus
		switch {
		case day == 3:
			want = model.StatusSent
		case day <= 10:
			want = model.StatusPending
		default:
			want = model.StatusFuture
		}
		if got != want {
			t.Errorf("day %d status = %s, want %s", day, got, want)
		}
	}
}

func TestBuild_PastMonthHasNoFutureDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC)
	b := NewBuilder(WithClock(fixedClock(now)))

	rep := b.Build(2025, time.April, []model.ShipmentEvent{
		{Supplier: "A", Company: "01", Branch: "00", FileDate: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), FileTime: "07:00:00"},
	})

	for day, rec := range rep.Suppliers[0].Days {
		if rec.Status == model.StatusFuture {
			t.Errorf("day %d classified as future in a past month", day)
		}
	}
}

func TestBuild_ExceptionsApplyToMissingDaysOnly(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC)
	exceptions := exceptionFunc(func(_ model.CohortKey, day int) (model.DayStatus, bool) {
		switch day {
		case 7:
			return model.StatusHoliday, true
		case 14:
			return model.StatusNoBilling, true
		}
		return "", false
	})
	b := NewBuilder(WithClock(fixedClock(now)), WithExceptions(exceptions))

	rep := b.Build(2025, time.June, []model.ShipmentEvent{
		{Supplier: "A", Company: "01", Branch: "00", FileDate: time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC), FileTime: "08:00:00"},
	})

	days := rep.Suppliers[0].Days
	if days[7].Status != model.StatusSent {
		t.Errorf("day 7 = %s, want %s (arrival beats exception)", days[7].Status, model.StatusSent)
	}
	if days[14].Status != model.StatusNoBilling {
		t.Errorf("day 14 = %s, want %s", days[14].Status, model.StatusNoBilling)
	}
	if days[15].Status != model.StatusPending {
		t.Errorf("day 15 = %s, want %s", days[15].Status, model.StatusPending)
	}
}

func TestBuild_TimestampOnlyOnSentDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC)
	b := NewBuilder(WithClock(fixedClock(now)))

	rep := b.Build(2025, time.June, []model.ShipmentEvent{
		{Supplier: "A", Company: "01", Branch: "00", FileDate: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), FileTime: "08:30:00"},
	})

	for day, rec := range rep.Suppliers[0].Days {
		if rec.Status == model.StatusSent && rec.Timestamp == "" {
			t.Errorf("day %d sent without a timestamp", day)
		}
		if rec.Status != model.StatusSent && rec.Timestamp != "" {
			t.Errorf("day %d has timestamp %q without a file", day, rec.Timestamp)
		}
	}
}

func TestBuild_Metadata(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC)
	b := NewBuilder(WithClock(fixedClock(now)))

	june := func(day int) time.Time { return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC) }
	rep := b.Build(2025, time.June, []model.ShipmentEvent{
		{Supplier: "MONDELEZ", Company: "01", Branch: "02", FileDate: june(1), FileTime: "08:00:00"},
		{Supplier: "AJINOMOTO", Company: "01", Branch: "00", FileDate: june(1), FileTime: "08:00:00"},
		{Supplier: "AJINOMOTO", Company: "01", Branch: "00", FileDate: june(2), FileTime: "08:00:00"},
	})

	if rep.Metadata.Count != 3 {
		t.Errorf("Count = %d, want 3", rep.Metadata.Count)
	}
	if rep.Metadata.Year != 2025 || rep.Metadata.Month != 6 {
		t.Errorf("period = %d-%d, want 2025-6", rep.Metadata.Year, rep.Metadata.Month)
	}
	wantSuppliers := []string{"AJINOMOTO", "MONDELEZ"}
	if len(rep.Metadata.Suppliers) != 2 || rep.Metadata.Suppliers[0] != wantSuppliers[0] || rep.Metadata.Suppliers[1] != wantSuppliers[1] {
		t.Errorf("Suppliers = %v, want %v (distinct, sorted)", rep.Metadata.Suppliers, wantSuppliers)
	}
	if len(rep.Metadata.Branches) != 2 {
		t.Errorf("Branches = %v, want 2 distinct values", rep.Metadata.Branches)
	}
}

func TestBuild_EmptyMonth(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC)
	b := NewBuilder(WithClock(fixedClock(now)))

	rep := b.Build(2025, time.June, nil)
	if len(rep.Suppliers) != 0 {
		t.Errorf("expected no rows, got %d", len(rep.Suppliers))
	}
	if rep.Summary != (model.Summary{}) {
		t.Errorf("expected zero summary, got %+v", rep.Summary)
	}
	if rep.Metadata.Count != 0 {
		t.Errorf("Count = %d, want 0", rep.Metadata.Count)
	}
}
