package report

import (
	"testing"
	"time"

	"github.com/shipgrid/shipgrid/internal/model"
)

func event(supplier, company, branch string, day int, fileTime string) model.ShipmentEvent {
	return model.ShipmentEvent{
		Supplier: supplier,
		Routine:  "S_ACCERA",
		Company:  company,
		Branch:   branch,
		FileDate: time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC),
		FileTime: fileTime,
	}
}

func TestCohorts_GroupsByExactKey(t *testing.T) {
	t.Parallel()

	events := []model.ShipmentEvent{
		event("A", "01", "00", 1, "08:00:00"),
		event("B", "01", "00", 1, "08:10:00"),
		event("A", "01", "02", 2, "08:20:00"),
		event("A", "01", "00", 3, "08:30:00"),
	}

	keys, groups := Cohorts(events)

	if len(keys) != 3 {
		t.Fatalf("expected 3 cohorts, got %d", len(keys))
	}

	// First-observation order
	want := []model.CohortKey{
		{Supplier: "A", Company: "01", Branch: "00"},
		{Supplier: "B", Company: "01", Branch: "00"},
		{Supplier: "A", Company: "01", Branch: "02"},
	}
	for i, key := range want {
		if keys[i] != key {
			t.Errorf("keys[%d] = %+v, want %+v", i, keys[i], key)
		}
	}

	if got := len(groups[want[0]]); got != 2 {
		t.Errorf("cohort A/01/00 has %d events, want 2", got)
	}
}

func TestCohorts_PreservesArrivalOrder(t *testing.T) {
	t.Parallel()

	events := []model.ShipmentEvent{
		event("A", "01", "00", 5, "08:00:00"),
		event("A", "01", "00", 2, "09:00:00"),
		event("A", "01", "00", 5, "10:00:00"),
	}

	_, groups := Cohorts(events)
	group := groups[model.CohortKey{Supplier: "A", Company: "01", Branch: "00"}]

	if len(group) != 3 {
		t.Fatalf("expected 3 events, got %d", len(group))
	}
	for i, wantTime := range []string{"08:00:00", "09:00:00", "10:00:00"} {
		if group[i].FileTime != wantTime {
			t.Errorf("group[%d].FileTime = %s, want %s", i, group[i].FileTime, wantTime)
		}
	}
}

func TestCohorts_NoNormalization(t *testing.T) {
	t.Parallel()

	events := []model.ShipmentEvent{
		event("ACME", "01", "00", 1, "08:00:00"),
		event("acme", "01", "00", 1, "08:00:00"),
		event("ACME ", "01", "00", 1, "08:00:00"),
	}

	keys, _ := Cohorts(events)
	if len(keys) != 3 {
		t.Errorf("case/whitespace variants must form distinct cohorts, got %d", len(keys))
	}
}

func TestCohorts_Empty(t *testing.T) {
	t.Parallel()

	keys, groups := Cohorts(nil)
	if len(keys) != 0 || len(groups) != 0 {
		t.Errorf("expected no cohorts for no events, got %d keys", len(keys))
	}
}
