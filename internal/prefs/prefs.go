// Package prefs persists the dashboard's active filter selection behind
// a narrow get/set interface. The selection lives in a single named
// store; on first use it defaults to the current calendar month with
// every dimension unconstrained.
package prefs

import (
	"context"

	"github.com/shipgrid/shipgrid/internal/model"
)

// storeName is the single named store holding the selection.
const storeName = "shipment-filters"

// Store persists the active filter selection across sessions.
type Store interface {
	Get(ctx context.Context) (model.FilterSelection, error)
	Set(ctx context.Context, sel model.FilterSelection) error
}
