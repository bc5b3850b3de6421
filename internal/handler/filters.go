package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shipgrid/shipgrid/internal/model"
	"github.com/shipgrid/shipgrid/internal/prefs"
)

// FiltersHandler serves the persisted filter selection.
type FiltersHandler struct {
	store  prefs.Store
	logger *slog.Logger
}

// NewFiltersHandler creates a new FiltersHandler.
func NewFiltersHandler(store prefs.Store, logger *slog.Logger) *FiltersHandler {
	return &FiltersHandler{
		store:  store,
		logger: logger.With("component", "handler.filters"),
	}
}

// Get handles GET /api/v1/filters.
func (h *FiltersHandler) Get(w http.ResponseWriter, r *http.Request) {
	sel, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to load filters", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load filters")
		return
	}
	writeJSON(w, http.StatusOK, sel)
}

// Put handles PUT /api/v1/filters.
func (h *FiltersHandler) Put(w http.ResponseWriter, r *http.Request) {
	var sel model.FilterSelection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if sel.Year < 1000 || sel.Year > 9999 {
		writeError(w, http.StatusBadRequest, "INVALID_PERIOD", "year must be a 4-digit number")
		return
	}
	if sel.Month < 1 || sel.Month > 12 {
		writeError(w, http.StatusBadRequest, "INVALID_PERIOD", "month must be between 1 and 12")
		return
	}

	// Empty dimensions collapse to the "all" sentinel.
	if sel.Company == "" {
		sel.Company = model.FilterAll
	}
	if sel.Branch == "" {
		sel.Branch = model.FilterAll
	}
	if sel.Supplier == "" {
		sel.Supplier = model.FilterAll
	}

	if err := h.store.Set(r.Context(), sel); err != nil {
		h.logger.Error("failed to persist filters", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to persist filters")
		return
	}

	writeJSON(w, http.StatusOK, sel)
}
