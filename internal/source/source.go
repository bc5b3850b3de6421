// Package source provides the event sources that deliver shipment-file
// arrival events for a (year, month) window.
package source

import (
	"context"
	"time"

	"github.com/shipgrid/shipgrid/internal/model"
)

// EventSource fetches the raw arrival events for one month. Fetching is
// the only suspending operation in the pipeline; implementations must
// honor context cancellation.
type EventSource interface {
	FetchMonth(ctx context.Context, year int, month time.Month) ([]model.ShipmentEvent, error)
}
