package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shipgrid/shipgrid/internal/handler/dto"
	"github.com/shipgrid/shipgrid/internal/model"
	"github.com/shipgrid/shipgrid/internal/suppliers"
)

// SupplierHandler serves the mock supplier registry.
type SupplierHandler struct {
	registry *suppliers.Registry
	logger   *slog.Logger
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(registry *suppliers.Registry, logger *slog.Logger) *SupplierHandler {
	return &SupplierHandler{
		registry: registry,
		logger:   logger.With("component", "handler.supplier"),
	}
}

// List handles GET /api/v1/fornecedores.
func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.SupplierListResponse{Data: h.registry.List()})
}

// Get handles GET /api/v1/fornecedores/{id}.
func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s, err := h.registry.Get(id)
	if err != nil {
		if errors.Is(err, suppliers.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Supplier not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load supplier")
		return
	}

	writeJSON(w, http.StatusOK, s)
}

// Create handles POST /api/v1/fornecedores.
func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "name is required")
		return
	}

	status := model.SupplierState(req.Status)
	if req.Status != "" && !status.IsValid() {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "status must be active or inactive")
		return
	}

	s := h.registry.Create(suppliers.CreateInput{
		Name:        req.Name,
		Email:       req.Email,
		CNPJ:        req.CNPJ,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Status:      status,
		Description: req.Description,
	})

	h.logger.Info("supplier_created", "supplier_id", s.ID, "name", s.Name)
	writeJSON(w, http.StatusCreated, s)
}

// Update handles PUT /api/v1/fornecedores/{id}.
func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	var status *model.SupplierState
	if req.Status != nil {
		st := model.SupplierState(*req.Status)
		if !st.IsValid() {
			writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "status must be active or inactive")
			return
		}
		status = &st
	}

	s, err := h.registry.Update(id, suppliers.UpdateInput{
		Name:        req.Name,
		Email:       req.Email,
		CNPJ:        req.CNPJ,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Status:      status,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, suppliers.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Supplier not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update supplier")
		return
	}

	writeJSON(w, http.StatusOK, s)
}

// Delete handles DELETE /api/v1/fornecedores/{id}.
func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.registry.Delete(id); err != nil {
		if errors.Is(err, suppliers.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Supplier not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete supplier")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
