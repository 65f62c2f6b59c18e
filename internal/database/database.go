// Package database manages the PostgreSQL connection and schema bootstrap.
package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// NewPostgresConnection opens and verifies a PostgreSQL connection
func NewPostgresConnection(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate applies the schema. Every statement is idempotent so startup can
// run it unconditionally.
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id         TEXT PRIMARY KEY,
		code       TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		created_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS participants (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_participants_session ON participants(session_id)`,
	`CREATE TABLE IF NOT EXISTS bill_items (
		id           TEXT PRIMARY KEY,
		session_id   TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		name         TEXT NOT NULL,
		total_amount DOUBLE PRECISION NOT NULL,
		paid_by      TEXT NOT NULL,
		shared_by    TEXT[] NOT NULL,
		has_sst      BOOLEAN NOT NULL DEFAULT FALSE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bill_items_session ON bill_items(session_id)`,
	`CREATE TABLE IF NOT EXISTS settlements (
		id               TEXT PRIMARY KEY,
		session_id       TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		from_participant TEXT NOT NULL,
		to_participant   TEXT NOT NULL,
		amount           DOUBLE PRECISION NOT NULL,
		method           TEXT NOT NULL DEFAULT '',
		note             TEXT NOT NULL DEFAULT '',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_settlements_session ON settlements(session_id)`,
	`CREATE TABLE IF NOT EXISTS payment_profiles (
		id             TEXT PRIMARY KEY,
		session_id     TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		participant_id TEXT NOT NULL,
		method         TEXT NOT NULL,
		handle         TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (participant_id, method)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payment_profiles_session ON payment_profiles(session_id)`,
}
