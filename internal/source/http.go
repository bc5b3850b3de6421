package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shipgrid/shipgrid/internal/model"
)

// HTTPSource fetches arrival events from the relatorio endpoint of an
// upstream service.
type HTTPSource struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPSource creates an HTTPSource for the given base URL.
func NewHTTPSource(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With("component", "source.http"),
	}
}

// FetchMonth implements EventSource.
func (s *HTTPSource) FetchMonth(ctx context.Context, year int, month time.Month) ([]model.ShipmentEvent, error) {
	url := fmt.Sprintf("%s/api/relatorio/%d/%d", s.baseURL, year, int(month))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	var payload wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	events, err := decodeEvents(payload.Data)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("events fetched",
		"year", year,
		"month", int(month),
		"count", len(events),
	)

	return events, nil
}
