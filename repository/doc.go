// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package repository provides typed access to stored survey responses.

# Backends

	repo, conn, err := repository.Open(cfg)

PostgresRepository uses github.com/lib/pq. A trigger on the response table
sends pg_notify('response_inserted', id) for every row, and a pq.Listener
turns those into insert signals, so inserts from any server process reach
every subscriber. When the listener reconnects it signals once as well,
since notifications may have been lost in between.

SQLiteRepository uses modernc.org/sqlite. It has no change feed; it signals
after each insert it makes itself.

# Errors

Every database failure is returned as *StorageError. Its message is the
database's own message, unchanged, because the respondent sees it.
*/
package repository
