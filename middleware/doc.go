// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms), both tagged with a random request_id. The wrapped writer
still supports flushing through http.ResponseController, which the event
stream relies on.

# Surveyor Access

Protect surveyor routes with the token issued by the password gate:

	protect := middleware.RequireSurveyor(secret)
	mux.HandleFunc("GET /surveyor/responses", middleware.WithLogging(protect(h.GetResponses)))

The token is read from the surveyor_token cookie or an Authorization bearer
header. Handlers can read the claims with SurveyorFromContext.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusUnauthorized, "message")
	middleware.FieldErrorResponse(w, fieldErrors.Map())

Parse JSON request bodies:

	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Only ever logged through auth.HashIP.
*/
package middleware
