// Package report implements the event-to-grid transformation: cohort
// grouping, day classification, summary aggregation and facet derivation.
// Everything here is a pure function of an event batch or an already
// materialized report; nothing blocks or touches the network.
package report

import (
	"sort"

	"github.com/shipgrid/shipgrid/internal/model"
)

// Cohorts partitions events by (supplier, company, filial) key.
// Cohorts are returned in first-observation order and events keep their
// arrival order within each cohort. No event is dropped or deduplicated.
func Cohorts(events []model.ShipmentEvent) ([]model.CohortKey, map[model.CohortKey][]model.ShipmentEvent) {
	keys := make([]model.CohortKey, 0)
	groups := make(map[model.CohortKey][]model.ShipmentEvent)

	for _, ev := range events {
		key := ev.Cohort()
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], ev)
	}

	return keys, groups
}

// distinctSorted collects the sorted distinct values of one row dimension.
func distinctSorted(rows []model.SupplierRow, dim func(model.SupplierRow) string) []string {
	seen := make(map[string]struct{}, len(rows))
	values := make([]string, 0, len(rows))

	for _, row := range rows {
		v := dim(row)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	sort.Strings(values)
	return values
}

func companyOf(r model.SupplierRow) string  { return r.Company }
func branchOf(r model.SupplierRow) string   { return r.Branch }
func supplierOf(r model.SupplierRow) string { return r.Supplier }
