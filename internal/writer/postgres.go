package writer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mhalvorsen/lsm-workbench/internal/model"
)

// Schema creates the results table. Run volume is a handful of rows per
// benchmark invocation, so plain inserts are sufficient.
const Schema = `
CREATE TABLE IF NOT EXISTS run_results (
    id            BIGSERIAL PRIMARY KEY,
    case_name     TEXT NOT NULL,
    backend       TEXT NOT NULL,
    timestamp_utc TIMESTAMPTZ NOT NULL,
    s0            DOUBLE PRECISION NOT NULL,
    k             DOUBLE PRECISION NOT NULL,
    t             DOUBLE PRECISION NOT NULL,
    r             DOUBLE PRECISION NOT NULL,
    sigma         DOUBLE PRECISION NOT NULL,
    num_paths     BIGINT NOT NULL,
    num_steps     BIGINT NOT NULL,
    seed          BIGINT NOT NULL,
    price         DOUBLE PRECISION NOT NULL,
    time_ms       DOUBLE PRECISION NOT NULL,
    system_info   JSONB NOT NULL
)`

// PostgresWriter inserts result records into the run_results table.
type PostgresWriter struct {
	pool *pgxpool.Pool
}

// NewPostgresWriter ensures the schema exists and returns a writer that
// takes ownership of the pool.
func NewPostgresWriter(ctx context.Context, pool *pgxpool.Pool) (*PostgresWriter, error) {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return nil, fmt.Errorf("ensure results schema: %w", err)
	}
	return &PostgresWriter{pool: pool}, nil
}

func (w *PostgresWriter) Write(ctx context.Context, rec model.ResultRecord) error {
	info, err := json.Marshal(rec.SystemInfo)
	if err != nil {
		return fmt.Errorf("marshal system info: %w", err)
	}

	_, err = w.pool.Exec(ctx, `
		INSERT INTO run_results (
			case_name, backend, timestamp_utc,
			s0, k, t, r, sigma, num_paths, num_steps, seed,
			price, time_ms, system_info
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		rec.CaseName, rec.Backend, rec.Timestamp,
		rec.Inputs.S0, rec.Inputs.K, rec.Inputs.T, rec.Inputs.R, rec.Inputs.Sigma,
		rec.Inputs.NumPaths, rec.Inputs.NumSteps, int64(rec.Inputs.Seed),
		rec.Outputs.Price, rec.Outputs.TimeMS, info,
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (w *PostgresWriter) Close() error {
	w.pool.Close()
	return nil
}
