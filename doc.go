// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the survey portal API server.

Respondents submit their name and age. Surveyors unlock a password gate and
watch the collected responses live, sort them and export them as CSV.

# Starting the Server

The server requires environment variables, a .env file or CLI flags:

	DATABASE_URL=postgres://... SURVEYOR_PASSWORD=... go run .

Or with flags:

	go run . -p 3318 -d "postgres://..." -password "..."

For local development a SQLite file works too:

	go run . -d survey.db -password 4268

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL URL or SQLite path
  - SURVEYOR_PASSWORD (-password): Password for the surveyor gate

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): postgres or sqlite (inferred from the URL)
  - SESSION_SECRET (-session-secret): Signing key for surveyor cookies
    (random per process when unset)
  - DISPLAY_TIMEZONE (-tz): Zone for rendered timestamps (default: Local)

A missing required setting stops the server before it touches the database.

# Architecture

  - handlers: HTTP request handlers (submission, gate, list, event stream)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, surveyor tokens, JSON helpers
  - repository: Response storage and the insert change feed
  - listview: Live, sortable response lists
  - submission: Respondent form validation and submit
  - gate: Password gate and its sessions
  - csvexport: CSV rendering
  - notify: Change-feed fan-out
  - models: Request/response types
  - auth: Surveyor tokens and hashing
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
