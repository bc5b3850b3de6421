package source

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shipgrid/shipgrid/internal/model"
)

// PostgresSource reads arrival events from the shipment_files table.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource opens a connection pool and verifies connectivity.
func NewPostgresSource(ctx context.Context, databaseURL string) (*PostgresSource, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Connection pool settings
	config.MaxConns = 10
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresSource{pool: pool}, nil
}

// Ping checks database connectivity.
func (s *PostgresSource) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the connection pool.
func (s *PostgresSource) Close() {
	s.pool.Close()
}

const fetchMonthQuery = `
	SELECT fornecedor, rotina, empresa, filial, data_arquivo, hora_arquivo
	FROM shipment_files
	WHERE data_arquivo >= $1 AND data_arquivo < $2
	ORDER BY data_arquivo, hora_arquivo
`

// FetchMonth implements EventSource.
func (s *PostgresSource) FetchMonth(ctx context.Context, year int, month time.Month) ([]model.ShipmentEvent, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := s.pool.Query(ctx, fetchMonthQuery, from, to)
	if err != nil {
		return nil, fmt.Errorf("query shipment files: %w", err)
	}
	defer rows.Close()

	var events []model.ShipmentEvent
	for rows.Next() {
		var ev model.ShipmentEvent
		if err := rows.Scan(&ev.Supplier, &ev.Routine, &ev.Company, &ev.Branch, &ev.FileDate, &ev.FileTime); err != nil {
			return nil, fmt.Errorf("scan shipment file: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read shipment files: %w", err)
	}

	return events, nil
}
