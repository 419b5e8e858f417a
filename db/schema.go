// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/survey-portal/cliparse"
)

// InsertChannel is the LISTEN/NOTIFY channel fired for every new response row.
const InsertChannel = "response_inserted"

// Open connects to the configured backend and verifies the connection.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driver := "postgres"
	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		driver = "sqlite"
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DatabaseType, err)
	}

	if driver == "sqlite" {
		// One writer; also keeps a :memory: database alive on a single connection
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.DatabaseType, err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, databaseType string) error {
	stmts := postgresSchema
	if databaseType == cliparse.DatabaseSQLite {
		stmts = sqliteSchema
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS response (
    id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
    name TEXT NOT NULL CHECK (length(trim(name)) > 0),
    age INTEGER NOT NULL CHECK (age > 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_response_created_at ON response(created_at)`,
	`CREATE OR REPLACE FUNCTION notify_response_inserted() RETURNS trigger AS $$
BEGIN
    PERFORM pg_notify('` + InsertChannel + `', NEW.id);
    RETURN NEW;
END;
$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS response_inserted ON response`,
	`CREATE TRIGGER response_inserted
    AFTER INSERT ON response
    FOR EACH ROW EXECUTE FUNCTION notify_response_inserted()`,
}

// created_at holds Unix nanoseconds; SQLite has no native timestamp type
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS response (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL CHECK (length(trim(name)) > 0),
    age INTEGER NOT NULL CHECK (age > 0),
    created_at INTEGER NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_response_created_at ON response(created_at)`,
}
