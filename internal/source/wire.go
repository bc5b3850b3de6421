package source

import (
	"errors"
	"fmt"
	"time"

	"github.com/shipgrid/shipgrid/internal/model"
)

// wireResponse mirrors the upstream relatorio payload.
type wireResponse struct {
	Metadata wireMetadata `json:"metadata"`
	Data     []wireEvent  `json:"data"`
}

type wireMetadata struct {
	Count int `json:"count"`
	Year  int `json:"year"`
	Month int `json:"month"`
}

type wireEvent struct {
	Supplier string `json:"FORNECEDOR"`
	Routine  string `json:"ROTINA"`
	Company  string `json:"EMPRESA"`
	Branch   string `json:"FILIAL"`
	FileDate string `json:"DATA_ARQUIVO"`
	FileTime string `json:"HORA_ARQUIVO"`
}

// decodeEvents converts wire events to domain events, preserving order.
// An unparseable DATA_ARQUIVO fails the whole batch rather than silently
// skewing one arrival onto another day.
func decodeEvents(items []wireEvent) ([]model.ShipmentEvent, error) {
	events := make([]model.ShipmentEvent, 0, len(items))
	for i, item := range items {
		date, err := parseFileDate(item.FileDate)
		if err != nil {
			return nil, fmt.Errorf("event %d: parse DATA_ARQUIVO %q: %w", i, item.FileDate, err)
		}
		events = append(events, model.ShipmentEvent{
			Supplier: item.Supplier,
			Routine:  item.Routine,
			Company:  item.Company,
			Branch:   item.Branch,
			FileDate: date,
			FileTime: item.FileTime,
		})
	}
	return events, nil
}

// parseFileDate accepts the ISO-8601 variants observed from the source:
// full RFC 3339, a zone-less datetime, or a bare date.
func parseFileDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unsupported datetime format")
}
