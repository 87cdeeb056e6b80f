package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	_ "github.com/lib/pq"

	"review-advisor/models"
	"review-advisor/utils"
)

// ErrNoSnapshot is returned when the dataset has never been published.
var ErrNoSnapshot = errors.New("postgres: no snapshot published")

// PostgresSource loads the latest snapshot the aggregation backend
// published to the snapshots table.
type PostgresSource struct {
	db      *sql.DB
	dataset string
}

// NewPostgresSource opens a connection to PostgreSQL, retrying the ping with
// backoff, ensures the schema exists and returns a ready-to-use source.
func NewPostgresSource(ctx context.Context, dsn, dataset string, retry *utils.RetryConfig) (*PostgresSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	err = retry.Do(ctx, "postgres-ping", func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return db.PingContext(pingCtx)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	ps := NewPostgresSourceWithDB(db, dataset)
	if err := ps.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return ps, nil
}

// NewPostgresSourceWithDB wraps an already open database handle.
func NewPostgresSourceWithDB(db *sql.DB, dataset string) *PostgresSource {
	return &PostgresSource{db: db, dataset: dataset}
}

func (ps *PostgresSource) migrate(ctx context.Context) error {
	_, err := ps.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			id          SERIAL PRIMARY KEY,
			dataset     VARCHAR(64) NOT NULL,
			payload     JSONB       NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_snapshots_dataset_created ON snapshots(dataset, created_at DESC);
	`)
	return err
}

// Load fetches and decodes the newest snapshot for the configured dataset.
func (ps *PostgresSource) Load(ctx context.Context) (*models.Snapshot, error) {
	var payload []byte
	err := ps.db.QueryRowContext(ctx, `
		SELECT payload
		FROM snapshots
		WHERE dataset = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, ps.dataset).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w for dataset %q", ErrNoSnapshot, ps.dataset)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch snapshot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("postgres: decode snapshot: %w", err)
	}
	return &snap, nil
}

func (ps *PostgresSource) Close() error {
	return ps.db.Close()
}
