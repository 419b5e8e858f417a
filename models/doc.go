// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Response: id, name, age, created_at. Created by the database; never
    updated or deleted.

# Request Types

  - SubmitResponseRequest: name, age. Age may be sent as a JSON string or
    number (FormValue keeps the raw text for validation).
  - UnlockRequest: password
  - SortRequest: field

# Response Types

  - SubmitResponseResponse: message
  - GateStatusResponse: unlocked, attempts, remaining, message
  - ListState: one state of a surveyor's list, with ResponseRow entries
    carrying the rendered timestamp and a relative "received" column
  - ViewCreatedEvent: first event of a surveyor stream
  - ErrorResponse: error, message, and per-field messages
*/
package models
