package report

import "github.com/shipgrid/shipgrid/internal/model"

// FacetOptions lists the selectable values per filter dimension.
type FacetOptions struct {
	Companies []string `json:"companies"`
	Branches  []string `json:"branches"`
	Suppliers []string `json:"manufacturers"`
}

// Facets derives the selectable values for each dimension using the
// leave-one-out rule: a dimension's options are constrained by the other
// two selections only, never by its own. Changing one filter therefore
// never hides the value currently selected in that same dimension.
func Facets(rep *model.Report, sel model.FilterSelection) FacetOptions {
	rows := rep.Suppliers
	return FacetOptions{
		Companies: distinctSorted(filterRows(rows, model.FilterAll, sel.Branch, sel.Supplier), companyOf),
		Branches:  distinctSorted(filterRows(rows, sel.Company, model.FilterAll, sel.Supplier), branchOf),
		Suppliers: distinctSorted(filterRows(rows, sel.Company, sel.Branch, model.FilterAll), supplierOf),
	}
}

// Filter returns the rows matching the full selection, in report order.
func Filter(rep *model.Report, sel model.FilterSelection) []model.SupplierRow {
	return filterRows(rep.Suppliers, sel.Company, sel.Branch, sel.Supplier)
}

func filterRows(rows []model.SupplierRow, company, branch, supplier string) []model.SupplierRow {
	out := make([]model.SupplierRow, 0, len(rows))
	for _, row := range rows {
		if !matches(company, row.Company) || !matches(branch, row.Branch) || !matches(supplier, row.Supplier) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// matches treats the "all" sentinel and the empty string as no constraint.
func matches(want, got string) bool {
	return want == "" || want == model.FilterAll || want == got
}
