// Package postgres implements the storage interfaces on PostgreSQL via
// database/sql and lib/pq.
package postgres

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	full_name     TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password      TEXT NOT NULL,
	session_token TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS conversations (
	id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	participant1_id TEXT NOT NULL,
	participant2_id TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (participant1_id, participant2_id)
);

CREATE TABLE IF NOT EXISTS messages (
	id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	seq             BIGSERIAL,
	conversation_id TEXT NOT NULL,
	sender_id       TEXT NOT NULL,
	content         TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_messages_conversation
	ON messages (conversation_id, seq);
`

// Open connects to PostgreSQL, verifies the connection and bootstraps the
// schema.
func Open(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	log.Println("Successfully connected to PostgreSQL database.")
	return db, nil
}
