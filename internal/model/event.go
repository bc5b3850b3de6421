// Package model defines domain entities for the application.
package model

import "time"

// ShipmentEvent is one successful shipment-file delivery from a supplier.
// Events come from an event source fully formed and are never mutated.
type ShipmentEvent struct {
	Supplier string    // FORNECEDOR
	Routine  string    // ROTINA, the originating file/process name
	Company  string    // EMPRESA
	Branch   string    // FILIAL, branch code
	FileDate time.Time // DATA_ARQUIVO
	FileTime string    // HORA_ARQUIVO, "HH:MM:SS"
}

// Cohort returns the grouping key for the event.
func (e ShipmentEvent) Cohort() CohortKey {
	return CohortKey{Supplier: e.Supplier, Company: e.Company, Branch: e.Branch}
}
