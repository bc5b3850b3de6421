// Package dto provides Data Transfer Objects for API requests and
// responses.
package dto

import "github.com/shipgrid/shipgrid/internal/model"

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// CreateSupplierRequest is the request body for creating a supplier.
type CreateSupplierRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CNPJ        string `json:"cnpj"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateSupplierRequest is the request body for updating a supplier.
// Nil fields stay unchanged.
type UpdateSupplierRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	CNPJ        *string `json:"cnpj,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	ZipCode     *string `json:"zip_code,omitempty"`
	Status      *string `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SupplierListResponse wraps the supplier collection.
type SupplierListResponse struct {
	Data []model.Supplier `json:"data"`
}
