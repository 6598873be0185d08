package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB initializes the database connection pool using the DATABASE_URL environment variable
func InitDB(ctx context.Context) error {
	var err error
	once.Do(func() {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			err = fmt.Errorf("DATABASE_URL environment variable not set")
			return
		}

		config, parseErr := pgxpool.ParseConfig(dbURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse database config: %w", parseErr)
			return
		}

		pool, err = pgxpool.NewWithConfig(ctx, config)
	})
	return err
}

// GetPool returns the database connection pool
func GetPool() *pgxpool.Pool {
	return pool
}

// Close closes the database connection pool
func Close() {
	if pool != nil {
		pool.Close()
	}
}

// schema is applied idempotently at startup. Production deployments manage
// migrations outside the binary, but the bootstrap keeps local setups
// self-contained.
const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id          SERIAL PRIMARY KEY,
	user_id     INTEGER NOT NULL,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	industry    TEXT NOT NULL DEFAULT '',
	start_date  DATE NOT NULL,
	end_date    DATE NOT NULL,
	currency    TEXT NOT NULL DEFAULT 'USD',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS revenue_products (
	id                 SERIAL PRIMARY KEY,
	project_id         INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	name               TEXT NOT NULL,
	average_price      BIGINT NOT NULL,
	volume             BIGINT NOT NULL,
	unit               TEXT NOT NULL DEFAULT '',
	seasonality_factor BIGINT NOT NULL DEFAULT 100
);

CREATE TABLE IF NOT EXISTS cogs_items (
	id          SERIAL PRIMARY KEY,
	project_id  INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	cost_type   TEXT NOT NULL,
	amount      BIGINT NOT NULL,
	growth_rate BIGINT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS salaries (
	id           SERIAL PRIMARY KEY,
	project_id   INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	position     TEXT NOT NULL,
	monthly_cost BIGINT NOT NULL,
	start_date   DATE NOT NULL,
	end_date     DATE
);

CREATE TABLE IF NOT EXISTS opex_items (
	id           SERIAL PRIMARY KEY,
	project_id   INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	name         TEXT NOT NULL,
	expense_type TEXT NOT NULL,
	amount       BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS fixed_expenses (
	id         SERIAL PRIMARY KEY,
	project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	amount     BIGINT NOT NULL,
	date       DATE NOT NULL,
	frequency  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS capex_items (
	id            SERIAL PRIMARY KEY,
	project_id    INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	name          TEXT NOT NULL,
	amount        BIGINT NOT NULL,
	purchase_date DATE NOT NULL,
	payment_delay INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS funding_sources (
	id            SERIAL PRIMARY KEY,
	project_id    INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	source_type   TEXT NOT NULL,
	amount        BIGINT NOT NULL,
	interest_rate BIGINT NOT NULL DEFAULT 0,
	date          DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS insight_reports (
	id         TEXT PRIMARY KEY,
	project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	kind       TEXT NOT NULL,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate applies the schema bootstrap against the shared pool.
func Migrate(ctx context.Context) error {
	p := GetPool()
	if p == nil {
		return fmt.Errorf("database pool not initialized")
	}
	if _, err := p.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
