// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify fans out "a response was inserted" signals.

A Hub carries no payload. Subscribers are told that something changed and
refetch whatever they display:

	hub := notify.NewHub()
	sub := hub.Subscribe(func() { view.Reload() })
	defer sub.Unsubscribe()

	hub.Publish()

Handlers run on the publishing goroutine, outside the hub's lock, so a
handler may unsubscribe itself. Unsubscribe is idempotent.

Both repositories publish through a Hub: SQLite after its own inserts,
PostgreSQL when the LISTEN connection delivers a notification or reconnects.
*/
package notify
