package source

import (
	"testing"
	"time"
)

func TestParseFileDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  time.Time
		isErr bool
	}{
		{"rfc3339", "2025-06-03T08:15:00Z", time.Date(2025, time.June, 3, 8, 15, 0, 0, time.UTC), false},
		{"zoneless datetime", "2025-06-03T08:15:00", time.Date(2025, time.June, 3, 8, 15, 0, 0, time.UTC), false},
		{"bare date", "2025-06-03", time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC), false},
		{"brazilian format", "03/06/2025", time.Time{}, true},
		{"empty", "", time.Time{}, true},
		{"garbage", "not-a-date", time.Time{}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseFileDate(tt.value)
			if tt.isErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFileDate(%q): %v", tt.value, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseFileDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestDecodeEvents(t *testing.T) {
	t.Parallel()

	items := []wireEvent{
		{Supplier: "AJINOMOTO", Routine: "S_ACCERA", Company: "01", Branch: "00", FileDate: "2025-06-03", FileTime: "08:15:00"},
		{Supplier: "MONDELEZ", Routine: "S_ARQSALES", Company: "01", Branch: "02", FileDate: "2025-06-04T09:30:00", FileTime: "09:30:00"},
	}

	events, err := decodeEvents(items)
	if err != nil {
		t.Fatalf("decodeEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	first := events[0]
	if first.Supplier != "AJINOMOTO" || first.Routine != "S_ACCERA" || first.Company != "01" || first.Branch != "00" {
		t.Errorf("unexpected first event: %+v", first)
	}
	if first.FileDate.Day() != 3 || first.FileTime != "08:15:00" {
		t.Errorf("unexpected first event date: %+v", first)
	}
	if events[1].FileDate.Day() != 4 {
		t.Errorf("unexpected second event day: %d", events[1].FileDate.Day())
	}
}

func TestDecodeEvents_BadDateFailsBatch(t *testing.T) {
	t.Parallel()

	items := []wireEvent{
		{Supplier: "A", FileDate: "2025-06-03"},
		{Supplier: "B", FileDate: "nope"},
	}

	if _, err := decodeEvents(items); err == nil {
		t.Fatal("expected a batch failure for one bad DATA_ARQUIVO, got nil")
	}
}

func TestDecodeEvents_Empty(t *testing.T) {
	t.Parallel()

	events, err := decodeEvents(nil)
	if err != nil {
		t.Fatalf("decodeEvents(nil): %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}
