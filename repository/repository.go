// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/survey-portal/cliparse"
	"github.com/danielhkuo/survey-portal/db"
	"github.com/danielhkuo/survey-portal/models"
	"github.com/danielhkuo/survey-portal/notify"
)

// Repository is typed access to the response table.
type Repository interface {
	Insert(ctx context.Context, name string, age int) error
	FetchAll(ctx context.Context) ([]models.Response, error)
	SubscribeToInserts(onInsert func()) notify.Subscription
	Close() error
}

// StorageError is returned for any failure of the data service.
// Its message is the underlying error's, unchanged.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Open connects, creates the schema and returns the configured backend.
func Open(cfg cliparse.Config) (Repository, *sql.DB, error) {
	conn, err := db.Open(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		conn.Close()
		return nil, nil, err
	}

	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		return NewSQLiteRepository(conn), conn, nil
	}

	repo, err := NewPostgresRepository(conn, cfg.DatabaseURL)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to start change feed: %w", err)
	}
	return repo, conn, nil
}

func scanResponses(rows *sql.Rows, scan func(*sql.Rows, *models.Response) error) ([]models.Response, error) {
	defer rows.Close()

	responses := []models.Response{}
	for rows.Next() {
		var r models.Response
		if err := scan(rows, &r); err != nil {
			return nil, err
		}
		responses = append(responses, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return responses, nil
}

var (
	_ Repository = (*PostgresRepository)(nil)
	_ Repository = (*SQLiteRepository)(nil)
)
