package source

import (
	"context"
	"reflect"
	"testing"
	"time"
)

func TestSyntheticSource_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := NewSyntheticSource(1).FetchMonth(context.Background(), 2025, time.June)
	if err != nil {
		t.Fatalf("FetchMonth: %v", err)
	}
	b, err := NewSyntheticSource(1).FetchMonth(context.Background(), 2025, time.June)
	if err != nil {
		t.Fatalf("FetchMonth: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and month must generate identical events")
	}

	other, err := NewSyntheticSource(2).FetchMonth(context.Background(), 2025, time.June)
	if err != nil {
		t.Fatalf("FetchMonth: %v", err)
	}
	if reflect.DeepEqual(a, other) {
		t.Error("different seeds should generate different events")
	}
}

func TestSyntheticSource_EventsStayInMonth(t *testing.T) {
	t.Parallel()

	events, err := NewSyntheticSource(1).FetchMonth(context.Background(), 2024, time.February)
	if err != nil {
		t.Fatalf("FetchMonth: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("expected a populated month")
	}

	for _, ev := range events {
		if ev.FileDate.Year() != 2024 || ev.FileDate.Month() != time.February {
			t.Fatalf("event outside requested month: %s", ev.FileDate)
		}
		if ev.FileDate.Day() < 1 || ev.FileDate.Day() > 29 {
			t.Fatalf("event day out of range: %d", ev.FileDate.Day())
		}
		if ev.Supplier == "" || ev.Routine == "" || ev.Company == "" || ev.Branch == "" {
			t.Fatalf("event with empty identity: %+v", ev)
		}
	}
}

func TestSyntheticSource_RoughFillRate(t *testing.T) {
	t.Parallel()

	events, err := NewSyntheticSource(1).FetchMonth(context.Background(), 2025, time.July)
	if err != nil {
		t.Fatalf("FetchMonth: %v", err)
	}

	// 4 suppliers x 1 company x 2 branches x 31 days = 248 cells at ~70%.
	cells := 4 * 2 * 31
	if len(events) < cells/2 || len(events) > cells {
		t.Errorf("fill = %d of %d cells, expected roughly 70%%", len(events), cells)
	}
}
