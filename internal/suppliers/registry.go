// Package suppliers provides the mock supplier registry backing the
// master-data screens. Entries live in memory only; edits do not survive
// a restart.
package suppliers

import (
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/shipgrid/shipgrid/internal/model"
)

// ErrNotFound is returned when no supplier has the requested ID.
var ErrNotFound = errors.New("supplier not found")

// Registry is an in-memory supplier store seeded with demo data.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]model.Supplier
	order   []string
	now     func() time.Time
}

// NewRegistry creates a Registry with the demo seed.
func NewRegistry() *Registry {
	r := &Registry{
		entries: make(map[string]model.Supplier),
		now:     time.Now,
	}
	for _, s := range seedSuppliers() {
		r.entries[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	return r
}

// List returns all suppliers in insertion order.
func (r *Registry) List() []model.Supplier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Supplier, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// Get returns one supplier by ID.
func (r *Registry) Get(id string) (model.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.entries[id]
	if !ok {
		return model.Supplier{}, ErrNotFound
	}
	return s, nil
}

// CreateInput holds the fields for a new supplier.
type CreateInput struct {
	Name        string
	Email       string
	CNPJ        string
	Phone       string
	Address     string
	City        string
	State       string
	ZipCode     string
	Status      model.SupplierState
	Description string
}

// Create adds a supplier and returns it with a generated ID.
func (r *Registry) Create(input CreateInput) model.Supplier {
	now := r.now().UTC()

	status := input.Status
	if status == "" {
		status = model.SupplierActive
	}

	s := model.Supplier{
		ID:          newID(),
		Name:        input.Name,
		Email:       input.Email,
		CNPJ:        input.CNPJ,
		Phone:       input.Phone,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		ZipCode:     input.ZipCode,
		Status:      status,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.mu.Lock()
	r.entries[s.ID] = s
	r.order = append(r.order, s.ID)
	r.mu.Unlock()

	return s
}

// UpdateInput holds the mutable supplier fields; nil means unchanged.
type UpdateInput struct {
	Name        *string
	Email       *string
	CNPJ        *string
	Phone       *string
	Address     *string
	City        *string
	State       *string
	ZipCode     *string
	Status      *model.SupplierState
	Description *string
}

// Update applies the non-nil fields and returns the updated supplier.
func (r *Registry) Update(id string, input UpdateInput) (model.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.entries[id]
	if !ok {
		return model.Supplier{}, ErrNotFound
	}

	if input.Name != nil {
		s.Name = *input.Name
	}
	if input.Email != nil {
		s.Email = *input.Email
	}
	if input.CNPJ != nil {
		s.CNPJ = *input.CNPJ
	}
	if input.Phone != nil {
		s.Phone = *input.Phone
	}
	if input.Address != nil {
		s.Address = *input.Address
	}
	if input.City != nil {
		s.City = *input.City
	}
	if input.State != nil {
		s.State = *input.State
	}
	if input.ZipCode != nil {
		s.ZipCode = *input.ZipCode
	}
	if input.Status != nil {
		s.Status = *input.Status
	}
	if input.Description != nil {
		s.Description = *input.Description
	}
	s.UpdatedAt = r.now().UTC()

	r.entries[id] = s
	return s, nil
}

// Delete removes a supplier.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return ErrNotFound
	}
	delete(r.entries, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func newID() string {
	return ulid.Make().String()
}
