// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/danielhkuo/survey-portal/db"
	"github.com/danielhkuo/survey-portal/models"
	"github.com/danielhkuo/survey-portal/notify"
)

const (
	listenerMinReconnect = 10 * time.Second
	listenerMaxReconnect = time.Minute
	listenerPingInterval = 90 * time.Second
)

// PostgresRepository stores responses in PostgreSQL and turns the
// response_inserted notifications into hub signals.
type PostgresRepository struct {
	db       *sql.DB
	hub      *notify.Hub
	listener *pq.Listener
	done     chan struct{}
	closed   sync.Once
}

func NewPostgresRepository(conn *sql.DB, dsn string) (*PostgresRepository, error) {
	listener := pq.NewListener(dsn, listenerMinReconnect, listenerMaxReconnect, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			slog.Warn("response listener event", "event", ev, "error", err)
		}
	})
	if err := listener.Listen(db.InsertChannel); err != nil {
		listener.Close()
		return nil, err
	}

	r := &PostgresRepository{
		db:       conn,
		hub:      notify.NewHub(),
		listener: listener,
		done:     make(chan struct{}),
	}
	go r.listen()

	slog.Info("listening for response inserts", "channel", db.InsertChannel)
	return r, nil
}

func (r *PostgresRepository) listen() {
	ticker := time.NewTicker(listenerPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case n, ok := <-r.listener.Notify:
			if !ok {
				return
			}
			// nil means the connection was re-established and
			// notifications may have been missed; resync everyone
			if n == nil {
				slog.Info("response listener reconnected")
			}
			r.hub.Publish()
		case <-ticker.C:
			go func() {
				if err := r.listener.Ping(); err != nil {
					slog.Warn("response listener ping failed", "error", err)
				}
			}()
		}
	}
}

// Insert adds one response; id and created_at come from column defaults.
func (r *PostgresRepository) Insert(ctx context.Context, name string, age int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO response (name, age)
		VALUES ($1, $2)
	`, name, age)
	if err != nil {
		return &StorageError{Op: "insert", Err: err}
	}
	return nil
}

// FetchAll returns every response, newest first.
func (r *PostgresRepository) FetchAll(ctx context.Context) ([]models.Response, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, age, created_at
		FROM response
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, &StorageError{Op: "fetch", Err: err}
	}

	responses, err := scanResponses(rows, func(rows *sql.Rows, resp *models.Response) error {
		return rows.Scan(&resp.ID, &resp.Name, &resp.Age, &resp.CreatedAt)
	})
	if err != nil {
		return nil, &StorageError{Op: "fetch", Err: err}
	}
	return responses, nil
}

func (r *PostgresRepository) SubscribeToInserts(onInsert func()) notify.Subscription {
	return r.hub.Subscribe(onInsert)
}

// Subscribers reports how many insert subscriptions are open
func (r *PostgresRepository) Subscribers() int {
	return r.hub.Len()
}

// Close stops the listener. The *sql.DB is owned by the caller.
func (r *PostgresRepository) Close() error {
	var err error
	r.closed.Do(func() {
		close(r.done)
		err = r.listener.Close()
	})
	return err
}
