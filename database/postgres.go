package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jobify-dev/jobs-api/config"
	"github.com/rs/zerolog/log"

	// PostgreSQL driver
	_ "github.com/lib/pq"
)

// InitDB opens and verifies a PostgreSQL connection pool.
func InitDB(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	log.Info().Str("host", cfg.Host).Str("db", cfg.Name).Msg("initializing postgresql database connection")

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Msg("PostgreSQL Database connection successfully established")
	return db, nil
}

// Migrate creates the tables and indexes the application needs.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("error applying schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	name          VARCHAR(20) NOT NULL,
	last_name     VARCHAR(20) NOT NULL DEFAULT 'lastName',
	location      VARCHAR(20) NOT NULL DEFAULT 'my city',
	password_hash TEXT NOT NULL,
	test_user     BOOLEAN NOT NULL DEFAULT FALSE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS jobs (
	id         UUID PRIMARY KEY,
	company    VARCHAR(50) NOT NULL,
	position   VARCHAR(100) NOT NULL,
	status     TEXT NOT NULL DEFAULT 'pending'
		CHECK (status IN ('pending', 'interview', 'declined')),
	job_type   TEXT NOT NULL DEFAULT 'full-time'
		CHECK (job_type IN ('full-time', 'part-time', 'remote', 'internship')),
	created_by UUID NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS jobs_created_by_created_at_idx ON jobs (created_by, created_at DESC);
`
