package model

import "time"

// SupplierState marks a registry entry as active or inactive.
type SupplierState string

const (
	SupplierActive   SupplierState = "active"
	SupplierInactive SupplierState = "inactive"
)

// IsValid checks whether the state is a known member.
func (s SupplierState) IsValid() bool {
	return s == SupplierActive || s == SupplierInactive
}

// Supplier is a master-data registry entry. The registry is mock data
// held in memory; edits do not survive a restart.
type Supplier struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	CNPJ        string        `json:"cnpj"`
	Phone       string        `json:"phone"`
	Address     string        `json:"address"`
	City        string        `json:"city"`
	State       string        `json:"state"`
	ZipCode     string        `json:"zip_code"`
	Status      SupplierState `json:"status"`
	Description string        `json:"description,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
