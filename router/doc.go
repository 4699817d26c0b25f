// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method/path
patterns.

	mux := router.NewRouter(db, cfg, publisher, titles)

Routes:

	GET  /health          → liveness check
	POST /slack/estimate  → slash commands and block interactions
	GET  /                → service banner

NewRouter also selects the request verifier implied by the configured
auth mode (hmac, permissive, or strict).
*/
package router
