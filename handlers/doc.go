// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the survey portal API.

# Handler Types

  - ResponseHandler: respondent submissions
  - SurveyorHandler: the password gate (status, unlock, lock)
  - ListHandler: response lists, exports and the live event stream

Handlers are created via constructor functions that take their storage
dependency and the Config:

	responseHandler := handlers.NewResponseHandler(repo, cfg)

# Submission

	POST /responses → Submit

The body is {"name": ..., "age": ...}. Validation failures answer 400 with
a message per field; nothing is stored. A storage failure answers 500 and
carries the database's own message, which the client shows as-is.

# Password Gate

	GET  /surveyor/gate   → GateStatus
	POST /surveyor/unlock → Unlock
	POST /surveyor/lock   → Lock

Each browser gets its own gate through the gate_session cookie. A correct
password sets the surveyor_token cookie; a wrong one answers 401 with the
countdown message.

# Live Lists

	GET  /surveyor/stream             → Stream
	POST /surveyor/views/{id}/sort    → Sort
	POST /surveyor/views/{id}/refresh → Refresh
	GET  /surveyor/views/{id}/export  → Export

Stream mounts a listview.View for the lifetime of the connection and sends
it as Server-Sent Events:

	event: view
	data: {"view_id":"..."}

	event: state
	data: {"view_id":"...","status":"ready","responses":[...],...}

Any insert, from this process or (with PostgreSQL) any other, makes every
open view refetch the full list. The view is unmounted and forgotten when
the client disconnects.

# One-shot Lists

	GET /surveyor/responses → GetResponses
	GET /surveyor/export    → ExportSnapshot

Exports answer 204 No Content when there is nothing to export.
*/
package handlers
