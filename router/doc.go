// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the survey portal API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(repo, cfg)

# Endpoints

Health:

	GET /health

Respondent (public):

	POST /responses - Submit name and age

Password gate (public, one gate per gate_session cookie):

	GET  /surveyor/gate   - Attempts, countdown message, unlocked flag
	POST /surveyor/unlock - Check password, set surveyor_token cookie
	POST /surveyor/lock   - Clear the cookie and reset the gate

Response list (requires surveyor_token):

	GET  /surveyor/responses          - One-shot sorted list
	GET  /surveyor/export             - One-shot CSV download
	GET  /surveyor/stream             - Live list as Server-Sent Events
	POST /surveyor/views/{id}/sort    - Toggle sort on a live view
	POST /surveyor/views/{id}/refresh - Refetch a live view
	GET  /surveyor/views/{id}/export  - CSV of a live view's projection

Both list endpoints accept ?sort=name|age|created_at and ?dir=asc|desc.
Exports answer 204 No Content when there is nothing to export.

# Handler Initialization

The router owns the per-process state shared between requests: the gate
sessions and the registry of live views.
*/
package router
