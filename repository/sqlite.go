// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/survey-portal/models"
	"github.com/danielhkuo/survey-portal/notify"
)

// SQLiteRepository stores responses in SQLite. SQLite has no change feed, so
// only inserts made through this repository are published.
type SQLiteRepository struct {
	db  *sql.DB
	hub *notify.Hub
	now func() time.Time
}

func NewSQLiteRepository(conn *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{
		db:  conn,
		hub: notify.NewHub(),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Insert adds one response, assigning the id and created_at the way the
// PostgreSQL column defaults would.
func (r *SQLiteRepository) Insert(ctx context.Context, name string, age int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO response (id, name, age, created_at)
		VALUES (?, ?, ?, ?)
	`, uuid.NewString(), name, age, r.now().UnixNano())
	if err != nil {
		return &StorageError{Op: "insert", Err: err}
	}

	r.hub.Publish()
	return nil
}

// FetchAll returns every response, newest first.
func (r *SQLiteRepository) FetchAll(ctx context.Context) ([]models.Response, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, age, created_at
		FROM response
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, &StorageError{Op: "fetch", Err: err}
	}

	responses, err := scanResponses(rows, func(rows *sql.Rows, resp *models.Response) error {
		var nanos int64
		if err := rows.Scan(&resp.ID, &resp.Name, &resp.Age, &nanos); err != nil {
			return err
		}
		resp.CreatedAt = time.Unix(0, nanos).UTC()
		return nil
	})
	if err != nil {
		return nil, &StorageError{Op: "fetch", Err: err}
	}
	return responses, nil
}

func (r *SQLiteRepository) SubscribeToInserts(onInsert func()) notify.Subscription {
	return r.hub.Subscribe(onInsert)
}

// Subscribers reports how many insert subscriptions are open
func (r *SQLiteRepository) Subscribers() int {
	return r.hub.Len()
}

// Close is a no-op; the *sql.DB is owned by the caller.
func (r *SQLiteRepository) Close() error {
	return nil
}
