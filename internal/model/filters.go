package model

import "time"

// FilterAll is the sentinel selection meaning "no constraint on this
// dimension".
const FilterAll = "all"

// FilterSelection is the active filter state of the dashboard. It is
// passed explicitly into facet derivation and row filtering; nothing in
// the core reads it from ambient state.
type FilterSelection struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Company  string `json:"company"`
	Branch   string `json:"branch"`
	Supplier string `json:"manufacturer"`
}

// DefaultFilters returns the first-use selection: the current calendar
// month with every dimension unconstrained.
func DefaultFilters(now time.Time) FilterSelection {
	return FilterSelection{
		Year:     now.Year(),
		Month:    int(now.Month()),
		Company:  FilterAll,
		Branch:   FilterAll,
		Supplier: FilterAll,
	}
}
