// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /slack/estimate", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Response Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Slack-facing soft failures use Ephemeral, which always returns 200 with a
user-visible message:

	middleware.Ephemeral(w, "No active round in this channel")
*/
package middleware
