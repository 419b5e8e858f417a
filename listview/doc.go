// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package listview implements the surveyor's live response list.

# Lifecycle

A View moves between three statuses:

	loading → ready
	loading → failed

Mount subscribes to inserts and runs the first fetch. Every insert
notification starts a full refetch in the background; Refresh runs one
synchronously. A failed fetch shows

	Failed to load responses. Please try again.

and keeps the previously loaded rows. When fetches overlap, the one that
started last wins.

Unmount is final: the subscription is closed, in-flight fetches are
cancelled and their results dropped, and no callback runs after it returns.

# Sorting

The stored rows are never reordered. State returns them sorted by the
current field and direction, created_at descending by default:

	v.ToggleSort(listview.SortByAge) // age asc
	v.ToggleSort(listview.SortByAge) // age desc
	v.ToggleSort(listview.SortByName) // name asc

# Export

	data, err := v.Export()

renders the sorted rows through csvexport and returns ErrNothingToExport
when the list is empty.

# Registry

Registry hands out ids for mounted views so that HTTP requests can reach
the view an event stream owns.
*/
package listview
