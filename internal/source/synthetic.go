package source

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shipgrid/shipgrid/internal/model"
)

// SyntheticSource generates a plausible month of arrivals for development
// and demos. Output is deterministic for a given seed and month.
type SyntheticSource struct {
	seed int64
}

var (
	syntheticSuppliers = []string{"AJINOMOTO", "MONDELEZ", "CATUPIRY", "OURO FINO"}
	syntheticRoutines  = []string{"S_ACCERA", "S_ARQSALES", "S_ARQACCERA"}
	syntheticCompanies = []string{"01"}
	syntheticBranches  = []string{"00", "02"}
)

// NewSyntheticSource creates a SyntheticSource.
func NewSyntheticSource(seed int64) *SyntheticSource {
	return &SyntheticSource{seed: seed}
}

// FetchMonth implements EventSource. Roughly 70% of the (cohort, day)
// cells receive a file arrival.
func (s *SyntheticSource) FetchMonth(_ context.Context, year int, month time.Month) ([]model.ShipmentEvent, error) {
	rng := rand.New(rand.NewSource(s.seed + int64(year)*100 + int64(month)))
	days := model.DaysInMonth(year, month)

	var events []model.ShipmentEvent
	for _, supplier := range syntheticSuppliers {
		for _, company := range syntheticCompanies {
			for _, branch := range syntheticBranches {
				for day := 1; day <= days; day++ {
					if rng.Float64() <= 0.3 {
						continue
					}
					events = append(events, model.ShipmentEvent{
						Supplier: supplier,
						Routine:  syntheticRoutines[rng.Intn(len(syntheticRoutines))],
						Company:  company,
						Branch:   branch,
						FileDate: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
						FileTime: fmt.Sprintf("%02d:%02d:%02d", rng.Intn(24), rng.Intn(60), rng.Intn(60)),
					})
				}
			}
		}
	}

	return events, nil
}
