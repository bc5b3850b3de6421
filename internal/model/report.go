package model

import "time"

// DayStatus classifies one calendar day of a supplier row.
// The JSON values match the vocabulary the dashboard already consumes.
type DayStatus string

const (
	StatusSent      DayStatus = "enviado"
	StatusPending   DayStatus = "pendente"
	StatusFuture    DayStatus = "futuro"
	StatusHoliday   DayStatus = "feriado"
	StatusNoBilling DayStatus = "sem-faturamento"
)

// IsValid checks whether the status is one of the five known members.
func (s DayStatus) IsValid() bool {
	switch s {
	case StatusSent, StatusPending, StatusFuture, StatusHoliday, StatusNoBilling:
		return true
	}
	return false
}

// CohortKey uniquely identifies one report row.
// Keys compare by exact string equality; no case or whitespace
// normalization is applied, so inconsistent source data yields distinct
// cohorts.
type CohortKey struct {
	Supplier string
	Company  string
	Branch   string
}

// ID returns the row identifier used in API responses.
func (k CohortKey) ID() string {
	return k.Supplier + "-" + k.Company + "-" + k.Branch
}

// DayRecord is the status of one (cohort, day) cell.
// Timestamp and SourceFile are populated only when Status is StatusSent.
type DayRecord struct {
	Status     DayStatus `json:"status"`
	Timestamp  string    `json:"timestamp,omitempty"`
	SourceFile string    `json:"arquivo,omitempty"`
}

// SupplierRow is one cohort with its day-by-day classification.
// Days holds exactly one entry per day 1..DaysInMonth with no gaps.
// Rows are built once per report and must not be mutated afterwards.
type SupplierRow struct {
	ID       string            `json:"id"`
	Supplier string            `json:"fornecedor"`
	Company  string            `json:"empresa"`
	Branch   string            `json:"filial"`
	Days     map[int]DayRecord `json:"dias"`
}

// Cohort returns the row's grouping key.
func (r SupplierRow) Cohort() CohortKey {
	return CohortKey{Supplier: r.Supplier, Company: r.Company, Branch: r.Branch}
}

// Summary holds the aggregate metrics over a classified report.
type Summary struct {
	// PendingAverage is the mean pending-day count per supplier row,
	// truncated to an integer.
	PendingAverage int `json:"pending_average"`
	// TotalSent counts sent day records through the day bound.
	TotalSent int `json:"total_sent"`
	// SuccessRate is TotalSent over the counted day grid, as a rounded
	// integer percent.
	SuccessRate int `json:"success_rate"`
}

// Metadata describes the report window and the distinct values observed
// per filter dimension. The value lists are sorted ascending and hold no
// duplicates.
type Metadata struct {
	Count     int      `json:"count"`
	Year      int      `json:"year"`
	Month     int      `json:"month"`
	Companies []string `json:"unique_companies"`
	Branches  []string `json:"unique_branches"`
	Suppliers []string `json:"unique_manufacturers"`
}

// Report is one fully classified month. It is built atomically from one
// batch of events; a rebuild replaces the whole report rather than
// patching it.
type Report struct {
	Suppliers []SupplierRow `json:"suppliers"`
	Summary   Summary       `json:"summary"`
	Metadata  Metadata      `json:"metadata"`
}

// DaysInMonth returns the real length of the month, leap-years included.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
