// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Backends

Open picks the driver from Config.DatabaseType:

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite (pure Go, no cgo)

	conn, err := db.Open(cfg)
	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

CreateSchema is safe to call multiple times.

# Tables

A single append-only table:

	response (id, name, age, created_at)

Both backends enforce age > 0 and a non-blank name with CHECK constraints.
On PostgreSQL the id and created_at are filled in by column defaults; the SQLite
repository supplies them itself.

# Change Feed

On PostgreSQL an AFTER INSERT trigger calls pg_notify on InsertChannel with the
new row id. The repository package LISTENs on that channel.
*/
package db
